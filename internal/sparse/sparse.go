// Package sparse provides a visited-set for program-counter deduplication
// during epsilon-closure walks over a compiled digit-alphabet program.
//
// automaton's subset construction re-walks the same program repeatedly,
// once per DFA state being built, each time needing an O(1)
// contains/insert set over program counters bounded by len(prog.Inst). A
// sparse set fits better than a hash map here: Contains and Insert touch
// only two fixed-size arrays, no hashing or bucket chasing.
package sparse

// PCSet is a set of program-counter values in [0, capacity), used to mark
// instructions already visited during a single epsilon-closure walk. It
// exposes only what that walk needs: membership test and insert.
type PCSet struct {
	sparse []uint32 // Maps pc -> index in dense
	dense  []uint32 // Contains the pcs inserted so far
	size   uint32   // Current number of elements
}

// NewPCSet creates a PCSet over program counters [0, capacity).
func NewPCSet(capacity uint32) *PCSet {
	return &PCSet{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
		size:   0,
	}
}

// Insert marks pc as visited. If pc is already present, this is a no-op.
// Panics if pc >= capacity.
func (s *PCSet) Insert(pc uint32) {
	if s.Contains(pc) {
		return
	}

	// Add to dense array
	s.dense = append(s.dense, pc)
	// Map pc to its index in dense
	s.sparse[pc] = s.size
	s.size++
}

// Contains returns true if pc has been marked visited.
func (s *PCSet) Contains(pc uint32) bool {
	// Bounds check: pc must be within sparse array bounds
	// Check for potential overflow when converting len to uint32
	if len(s.sparse) > 0x7FFFFFFF {
		return false // len too large for safe conversion
	}
	//nolint:gosec // G115: len is checked above for safe conversion to uint32
	sparseLen := uint32(len(s.sparse))
	if pc >= sparseLen {
		return false
	}
	idx := s.sparse[pc]
	return idx < s.size && s.dense[idx] == pc
}
