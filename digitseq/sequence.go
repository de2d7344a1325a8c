package digitseq

// MaxLength is the largest number of digits a Sequence can hold. E.164
// numbers (calling code + national number) never exceed this.
const MaxLength = 19

// offset[L] is T[L-1] = 1 + 10 + ... + 10^(L-1), the encoded value of the
// smallest length-L sequence ("0" x L). offset[0] is unused (the empty
// sequence is encoded as the bare word 0, not offset[0]+0).
var offset [MaxLength + 2]uint64

// pow10[k] is 10^k.
var pow10 [MaxLength + 1]uint64

func init() {
	pow10[0] = 1
	for k := 1; k <= MaxLength; k++ {
		pow10[k] = pow10[k-1] * 10
	}
	var acc uint64
	for l := 1; l <= MaxLength+1; l++ {
		acc += pow10[l-1]
		offset[l] = acc
	}
}

// Sequence is an immutable sequence of 0-19 decimal digits packed into a
// single 64-bit word. The zero value is the empty sequence.
//
// Encoding: the empty sequence is the word 0. A non-empty sequence of
// length L with unsigned integer value v (0 <= v < 10^L) is encoded as
// v + offset[L]. This makes leading zeros significant ("0" and "00" encode
// to different words) and preserves lexical order of the digit strings
// under ordinary unsigned comparison of the encoded word: every length-L
// sequence sorts below every length-(L+1) sequence because offset[L+1] is
// itself greater than the largest length-L encoding (offset[L]+10^L-1 ==
// offset[L+1]-1).
type Sequence uint64

// Empty is the zero-length sequence.
const Empty Sequence = 0

// Parse decodes s, a string of ASCII decimal digits, into a Sequence.
// It fails with ErrInvalidDigit if s contains a non-digit byte, or with
// ErrSequenceTooLong if len(s) > MaxLength.
func Parse(s string) (Sequence, error) {
	if len(s) > MaxLength {
		return 0, &ParseError{Input: s, Pos: MaxLength, Err: ErrSequenceTooLong}
	}
	if len(s) == 0 {
		return Empty, nil
	}
	var v uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, &ParseError{Input: s, Pos: i, Err: ErrInvalidDigit}
		}
		v = v*10 + uint64(c-'0')
	}
	return Sequence(v + offset[len(s)]), nil
}

// MustParse is like Parse but panics on error. Intended for metadata
// constants and tests where the input is known good.
func MustParse(s string) Sequence {
	seq, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return seq
}

// lengthOf returns the digit length encoded in word w.
func lengthOf(w uint64) int {
	if w == 0 {
		return 0
	}
	// offset is monotonically increasing and MaxLength is small; a linear
	// scan from the top avoids a division per digit of length.
	for l := MaxLength; l >= 1; l-- {
		if w >= offset[l] {
			return l
		}
	}
	return 0
}

// IsEmpty reports whether the sequence has zero digits.
func (s Sequence) IsEmpty() bool {
	return s == Empty
}

// Length returns the number of digits in s, in the range [0, MaxLength].
func (s Sequence) Length() int {
	return lengthOf(uint64(s))
}

// value returns the unsigned integer interpretation of s's digits.
func (s Sequence) value() uint64 {
	l := s.Length()
	if l == 0 {
		return 0
	}
	return uint64(s) - offset[l]
}

// GetDigit returns the i'th digit of s, 0-based, most-significant first.
// It panics if i is outside [0, Length()).
func (s Sequence) GetDigit(i int) int {
	l := s.Length()
	if i < 0 || i >= l {
		panic("digitseq: GetDigit index out of range")
	}
	v := s.value()
	shift := l - 1 - i
	return int((v / pow10[shift]) % 10)
}

// String renders s as its plain decimal digit string, preserving leading
// zeros (e.g. Sequence encoding "007" renders as "007").
func (s Sequence) String() string {
	l := s.Length()
	if l == 0 {
		return ""
	}
	v := s.value()
	buf := make([]byte, l)
	for i := l - 1; i >= 0; i-- {
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf)
}

// Compare returns -1, 0 or +1 as s is lexically less than, equal to, or
// greater than other. Lexical order here means: shorter sequences sort
// before longer ones, and sequences of equal length sort by their digit
// string. This falls directly out of unsigned comparison of the packed
// word, so Compare never decodes either operand.
func (s Sequence) Compare(other Sequence) int {
	switch {
	case s < other:
		return -1
	case s > other:
		return 1
	default:
		return 0
	}
}

// Equal reports whether s and other encode the same digit string.
func (s Sequence) Equal(other Sequence) bool {
	return s == other
}

// CompareLengthOf compares s's length against n without decoding s's
// digits (Length() is already O(1), but this helper documents the intent
// at call sites that only care about length, such as matcher length
// masks).
func (s Sequence) CompareLengthOf(n int) int {
	l := s.Length()
	switch {
	case l < n:
		return -1
	case l > n:
		return 1
	default:
		return 0
	}
}

// Append concatenates a and b, returning a new sequence whose digits are
// a's digits followed by b's digits. It fails with ErrSequenceTooLong if
// the combined length would exceed MaxLength.
func Append(a, b Sequence) (Sequence, error) {
	la, lb := a.Length(), b.Length()
	if la+lb > MaxLength {
		return 0, ErrSequenceTooLong
	}
	if lb == 0 {
		return a, nil
	}
	if la == 0 {
		return b, nil
	}
	v := a.value()*pow10[lb] + b.value()
	return Sequence(v + offset[la+lb]), nil
}

// GetPrefix returns the first n digits of s. It fails with
// ErrLengthExceeded if n > s.Length(). GetPrefix(0) returns Empty;
// GetPrefix(Length()) returns s itself.
func (s Sequence) GetPrefix(n int) (Sequence, error) {
	l := s.Length()
	if n < 0 || n > l {
		return 0, ErrLengthExceeded
	}
	if n == l {
		return s, nil
	}
	if n == 0 {
		return Empty, nil
	}
	v := s.value() / pow10[l-n]
	return Sequence(v + offset[n]), nil
}

// GetSuffix returns the last n digits of s. It fails with
// ErrLengthExceeded if n > s.Length(). GetSuffix(0) returns Empty;
// GetSuffix(Length()) returns s itself.
func (s Sequence) GetSuffix(n int) (Sequence, error) {
	l := s.Length()
	if n < 0 || n > l {
		return 0, ErrLengthExceeded
	}
	if n == l {
		return s, nil
	}
	if n == 0 {
		return Empty, nil
	}
	v := s.value() % pow10[n]
	return Sequence(v + offset[n]), nil
}

// HasPrefix reports whether s begins with the digits of prefix.
func (s Sequence) HasPrefix(prefix Sequence) bool {
	pl := prefix.Length()
	if pl == 0 {
		return true
	}
	if pl > s.Length() {
		return false
	}
	got, err := s.GetPrefix(pl)
	if err != nil {
		return false
	}
	return got == prefix
}

// TrimPrefix removes prefix from the front of s, returning the remaining
// suffix. If s does not start with prefix, it returns s unchanged and
// false.
func (s Sequence) TrimPrefix(prefix Sequence) (Sequence, bool) {
	if !s.HasPrefix(prefix) {
		return s, false
	}
	suffix, err := s.GetSuffix(s.Length() - prefix.Length())
	if err != nil {
		// HasPrefix already established prefix.Length() <= s.Length().
		panic("digitseq: unreachable TrimPrefix GetSuffix failure")
	}
	return suffix, true
}
