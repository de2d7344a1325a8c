package automaton

import (
	"encoding/binary"

	"github.com/coregx/numplan/internal/conv"
)

// Bytecode wire format (little-endian), the "compact byte array" the DFA
// matcher variant decodes directly with no compilation step:
//
//	offset 0:  uint32  numStates
//	offset 4:  uint32  startState
//	offset 8:  uint32  possibleLengthsMask
//	offset 12: numStates records of 41 bytes each:
//	             10 x int32  transitions, Dead (-1) for no transition
//	             1  byte     accept flag (0 or 1)
const (
	headerSize     = 12
	stateRecordLen = NumSymbols*4 + 1
)

// Encode packs d into the compact bytecode format Decode reads back.
func Encode(d *DFA) []byte {
	n := len(d.trans)
	buf := make([]byte, headerSize+n*stateRecordLen)
	binary.LittleEndian.PutUint32(buf[0:4], conv.IntToUint32(n))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(d.start))
	binary.LittleEndian.PutUint32(buf[8:12], d.lengthMask)

	off := headerSize
	for s := 0; s < n; s++ {
		for sym := 0; sym < NumSymbols; sym++ {
			binary.LittleEndian.PutUint32(buf[off:off+4], uint32(d.trans[s][sym]))
			off += 4
		}
		if d.accept[s] {
			buf[off] = 1
		} else {
			buf[off] = 0
		}
		off++
	}
	return buf
}

// Decode unpacks a byte array produced by Encode (or an equivalent
// metadata-generation pipeline honoring the same wire format) into an
// executable DFA. It validates every transition target before trusting
// it, so a corrupted blob fails fast with ErrCorruptBytecode rather than
// panicking deep inside Step.
func Decode(data []byte) (*DFA, error) {
	if len(data) < headerSize {
		return nil, ErrCorruptBytecode
	}
	n := int(binary.LittleEndian.Uint32(data[0:4]))
	start := int32(binary.LittleEndian.Uint32(data[4:8]))
	lengthMask := binary.LittleEndian.Uint32(data[8:12])

	want := headerSize + n*stateRecordLen
	if len(data) != want {
		return nil, ErrCorruptBytecode
	}
	if n == 0 || start < 0 || int(start) >= n {
		return nil, ErrCorruptBytecode
	}

	trans := make([][NumSymbols]int32, n)
	accept := make([]bool, n)
	off := headerSize
	for s := 0; s < n; s++ {
		for sym := 0; sym < NumSymbols; sym++ {
			v := int32(binary.LittleEndian.Uint32(data[off : off+4]))
			if v != Dead && (v < 0 || int(v) >= n) {
				return nil, ErrCorruptBytecode
			}
			trans[s][sym] = v
			off += 4
		}
		accept[s] = data[off] == 1
		off++
	}

	dfa := &DFA{trans: trans, accept: accept, start: start, lengthMask: lengthMask}
	dfa.canAccept = deriveCanAccept(trans, accept)
	return dfa, nil
}

// deriveCanAccept computes, for a decoded DFA whose bytecode carries no
// canAccept flags of its own, which states can still reach an accepting
// state. Identical to the backward reachability pass assembleDFA runs
// after subset construction.
func deriveCanAccept(trans [][NumSymbols]int32, accept []bool) []bool {
	n := len(trans)
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
	return canAccept
}
