package automaton

import (
	"regexp/syntax"
	"sort"
	"strconv"
	"strings"

	"github.com/coregx/numplan/internal/sparse"
)

// epsilonClosure returns the sorted, deduplicated set of "significant"
// program counters reachable from starts by following every
// non-consuming instruction (InstAlt, InstCapture, InstNop, passable
// InstEmptyWidth). A pc is significant if it consumes a digit
// (InstRune/InstRune1/InstRuneAny/InstRuneAnyNotNL) or terminates a match
// (InstMatch); these are exactly the pcs a later transition or
// acceptance test needs to inspect, so they double as the DFA state's
// identity for subset construction.
//
// atStart is true only when computing the closure of the automaton's
// initial position; it gates ^ and \A so they never pass after the first
// digit has been consumed. $ , \z and word-boundary assertions are
// accepted unconditionally: this package only ever matches a whole digit
// sequence from position 0 to its end, so treating them as always
// satisfied is indistinguishable from evaluating them properly at the
// one position (end of input) where metadata patterns use them.
func epsilonClosure(prog *syntax.Prog, starts []uint32, atStart bool) []uint32 {
	seen := sparse.NewPCSet(uint32(len(prog.Inst)))
	var result []uint32

	var visit func(pc uint32)
	visit = func(pc uint32) {
		if seen.Contains(pc) {
			return
		}
		seen.Insert(pc)
		inst := &prog.Inst[pc]
		switch inst.Op {
		case syntax.InstAlt, syntax.InstAltMatch:
			visit(inst.Out)
			visit(inst.Arg)
		case syntax.InstCapture, syntax.InstNop:
			visit(inst.Out)
		case syntax.InstEmptyWidth:
			op := syntax.EmptyOp(inst.Arg)
			if op&(syntax.EmptyBeginText|syntax.EmptyBeginLine) != 0 && !atStart {
				return
			}
			visit(inst.Out)
		case syntax.InstFail:
			// Dead end; contributes no reachable state.
		case syntax.InstRune, syntax.InstRune1, syntax.InstRuneAny, syntax.InstRuneAnyNotNL, syntax.InstMatch:
			result = append(result, pc)
		}
	}
	for _, pc := range starts {
		visit(pc)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// isConsuming reports whether op reads one input symbol.
func isConsuming(op syntax.InstOp) bool {
	switch op {
	case syntax.InstRune, syntax.InstRune1, syntax.InstRuneAny, syntax.InstRuneAnyNotNL:
		return true
	default:
		return false
	}
}

// matchesDigit reports whether a consuming instruction accepts the digit
// '0'+sym.
func matchesDigit(inst *syntax.Inst, sym int) bool {
	r := rune('0' + sym)
	switch inst.Op {
	case syntax.InstRune1:
		return len(inst.Rune) > 0 && inst.Rune[0] == r
	case syntax.InstRune:
		for i := 0; i+1 < len(inst.Rune); i += 2 {
			if inst.Rune[i] <= r && r <= inst.Rune[i+1] {
				return true
			}
		}
		return false
	case syntax.InstRuneAny, syntax.InstRuneAnyNotNL:
		// Decimal digits are never '\n', so both variants accept them.
		return true
	default:
		return false
	}
}

// pcSetKey builds a canonical map key for a sorted pc set.
func pcSetKey(pcs []uint32) string {
	var b strings.Builder
	for i, pc := range pcs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(pc), 10))
	}
	return b.String()
}

// buildingState accumulates one DFA state during subset construction.
type buildingState struct {
	pcs    []uint32
	accept bool
	trans  [NumSymbols]int32
}

// determinize performs subset construction over prog, restricted to the
// digit alphabet, producing a fully determinized DFA (not a lazy one:
// numbering-plan patterns are small enough that eager determinization at
// metadata-load time is cheaper than the bookkeeping a lazy cache needs).
func determinize(prog *syntax.Prog, cfg Config) (*DFA, error) {
	if cfg.MaxStates <= 0 {
		cfg = DefaultConfig()
	}

	idOf := make(map[string]int32)
	var states []buildingState

	internState := func(pcs []uint32) (int32, bool) {
		key := pcSetKey(pcs)
		if id, ok := idOf[key]; ok {
			return id, false
		}
		id := int32(len(states))
		states = append(states, buildingState{pcs: pcs})
		idOf[key] = id
		return id, true
	}

	startSet := epsilonClosure(prog, []uint32{uint32(prog.Start)}, true)
	start, _ := internState(startSet)

	queue := []int32{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		pcs := states[cur].pcs
		for _, pc := range pcs {
			if prog.Inst[pc].Op == syntax.InstMatch {
				states[cur].accept = true
			}
		}

		for sym := 0; sym < NumSymbols; sym++ {
			var nextStarts []uint32
			for _, pc := range pcs {
				inst := &prog.Inst[pc]
				if isConsuming(inst.Op) && matchesDigit(inst, sym) {
					nextStarts = append(nextStarts, inst.Out)
				}
			}
			if len(nextStarts) == 0 {
				states[cur].trans[sym] = Dead
				continue
			}
			closure := epsilonClosure(prog, nextStarts, false)
			if len(closure) == 0 {
				states[cur].trans[sym] = Dead
				continue
			}
			id, isNew := internState(closure)
			if isNew {
				if len(states) > cfg.MaxStates {
					return nil, ErrTooComplex
				}
				queue = append(queue, id)
			}
			states[cur].trans[sym] = id
		}
	}

	return assembleDFA(states, start), nil
}

// assembleDFA packages the subset-construction result into the
// executable DFA shape, deriving the two properties execution and
// classification need beyond raw transitions: which states can still
// reach an accepting state (canAccept), and which digit-sequence lengths
// can reach one from the start state (the possible-lengths mask).
func assembleDFA(states []buildingState, start int32) *DFA {
	n := len(states)
	trans := make([][NumSymbols]int32, n)
	accept := make([]bool, n)
	for i, st := range states {
		trans[i] = st.trans
		accept[i] = st.accept
	}

	rev := make([][]int32, n)
	for s := 0; s < n; s++ {
		for sym := 0; sym < NumSymbols; sym++ {
			t := trans[s][sym]
			if t != Dead {
				rev[t] = append(rev[t], int32(s))
			}
		}
	}
	canAccept := make([]bool, n)
	var q []int32
	for s := 0; s < n; s++ {
		if accept[s] {
			canAccept[s] = true
			q = append(q, int32(s))
		}
	}
	for len(q) > 0 {
		s := q[0]
		q = q[1:]
		for _, p := range rev[s] {
			if !canAccept[p] {
				canAccept[p] = true
				q = append(q, p)
			}
		}
	}

	return &DFA{
		trans:      trans,
		accept:     accept,
		canAccept:  canAccept,
		start:      start,
		lengthMask: computeLengthMask(trans, accept, start),
	}
}

// computeLengthMask breadth-first searches (state, depth) pairs up to
// digitseq.MaxLength to find every digit count that can lead from start
// to an accepting state. The depth bound matches the longest digit
// sequence the rest of this module ever handles, so it also caps
// unbounded repeats like \d* at a depth the rest of the system would
// reject anyway.
func computeLengthMask(trans [][NumSymbols]int32, accept []bool, start int32) uint32 {
	const maxDepth = 19 // digitseq.MaxLength, duplicated to avoid an import cycle.
	n := len(trans)
	visited := make([][maxDepth + 1]bool, n)

	type node struct {
		state int32
		depth int
	}
	var mask uint32
	queue := []node{{start, 0}}
	visited[start][0] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if accept[cur.state] {
			mask |= 1 << uint(cur.depth)
		}
		if cur.depth == maxDepth {
			continue
		}
		for sym := 0; sym < NumSymbols; sym++ {
			t := trans[cur.state][sym]
			if t == Dead {
				continue
			}
			if visited[t][cur.depth+1] {
				continue
			}
			visited[t][cur.depth+1] = true
			queue = append(queue, node{t, cur.depth + 1})
		}
	}
	return mask
}
