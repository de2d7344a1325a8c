package digitseq

import "testing"

func TestParseRoundTrip(t *testing.T) {
	cases := []string{"", "0", "1", "9", "007", "00", "01", "1234567890123456789"}
	for _, s := range cases {
		seq, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", s, err)
		}
		if got := seq.String(); got != s {
			t.Errorf("Parse(%q).String() = %q, want %q", s, got, s)
		}
		if seq.Length() != len(s) {
			t.Errorf("Parse(%q).Length() = %d, want %d", s, seq.Length(), len(s))
		}
	}
}

func TestParseInvalidDigit(t *testing.T) {
	_, err := Parse("12a4")
	if err == nil {
		t.Fatal("expected error for non-digit input")
	}
}

func TestParseTooLong(t *testing.T) {
	_, err := Parse("12345678901234567890") // 20 digits
	if err == nil {
		t.Fatal("expected ErrSequenceTooLong")
	}
}

func TestCompareOrdering(t *testing.T) {
	// "0" < "1" < ... < "9" < "00" < "01" < ... regardless of numeric value,
	// because shorter sequences always sort before longer ones.
	ordered := []string{"0", "1", "9", "00", "01", "09", "10", "99", "007", "100"}
	for i := 0; i < len(ordered)-1; i++ {
		a := MustParse(ordered[i])
		b := MustParse(ordered[i+1])
		if a.Compare(b) >= 0 {
			t.Errorf("expected %q < %q, got Compare=%d", ordered[i], ordered[i+1], a.Compare(b))
		}
	}
}

func Test007GreaterThan1(t *testing.T) {
	a := MustParse("007")
	b := MustParse("1")
	if a.Compare(b) <= 0 {
		t.Errorf("expected %q > %q since it is longer, got Compare=%d", "007", "1", a.Compare(b))
	}
	if a.Length() != 3 {
		t.Errorf("Length() = %d, want 3", a.Length())
	}
	digits := []int{0, 0, 7}
	for i, want := range digits {
		if got := a.GetDigit(i); got != want {
			t.Errorf("GetDigit(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestAppend(t *testing.T) {
	a := MustParse("41")
	b := MustParse("7955")
	got, err := Append(a, b)
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if want := "417955"; got.String() != want {
		t.Errorf("Append = %q, want %q", got.String(), want)
	}
}

func TestAppendTooLong(t *testing.T) {
	a := MustParse("12345678901234567") // 17 digits
	b := MustParse("123")               // 3 digits, 20 total
	_, err := Append(a, b)
	if err == nil {
		t.Fatal("expected ErrSequenceTooLong")
	}
}

func TestPrefixSuffixRoundTrip(t *testing.T) {
	s := MustParse("4179551234")
	for n := 0; n <= s.Length(); n++ {
		prefix, err := s.GetPrefix(n)
		if err != nil {
			t.Fatalf("GetPrefix(%d) failed: %v", n, err)
		}
		suffix, err := s.GetSuffix(s.Length() - n)
		if err != nil {
			t.Fatalf("GetSuffix(%d) failed: %v", s.Length()-n, err)
		}
		rejoined, err := Append(prefix, suffix)
		if err != nil {
			t.Fatalf("Append failed: %v", err)
		}
		if rejoined != s {
			t.Errorf("n=%d: GetPrefix(n).Append(GetSuffix(len-n)) = %q, want %q", n, rejoined, s)
		}
	}
}

func TestGetPrefixLengthExceeded(t *testing.T) {
	s := MustParse("123")
	if _, err := s.GetPrefix(4); err == nil {
		t.Fatal("expected ErrLengthExceeded")
	}
	if _, err := s.GetSuffix(4); err == nil {
		t.Fatal("expected ErrLengthExceeded")
	}
}

func TestHasPrefixTrimPrefix(t *testing.T) {
	s := MustParse("07955")
	p := MustParse("0")
	if !s.HasPrefix(p) {
		t.Fatal("expected HasPrefix to be true")
	}
	rest, ok := s.TrimPrefix(p)
	if !ok {
		t.Fatal("expected TrimPrefix to succeed")
	}
	if want := "7955"; rest.String() != want {
		t.Errorf("TrimPrefix = %q, want %q", rest.String(), want)
	}

	other := MustParse("9")
	if s.HasPrefix(other) {
		t.Fatal("expected HasPrefix to be false")
	}
	if _, ok := s.TrimPrefix(other); ok {
		t.Fatal("expected TrimPrefix to fail")
	}
}

func TestEmptySequence(t *testing.T) {
	if !Empty.IsEmpty() {
		t.Fatal("Empty.IsEmpty() = false")
	}
	if Empty.Length() != 0 {
		t.Fatalf("Empty.Length() = %d, want 0", Empty.Length())
	}
	if Empty.String() != "" {
		t.Fatalf("Empty.String() = %q, want empty", Empty.String())
	}
}

func TestCursor(t *testing.T) {
	s := MustParse("1234")
	c := s.Iterate()
	var got []int
	for {
		d, ok := c.Next()
		if !ok {
			break
		}
		got = append(got, d)
	}
	want := []int{1, 2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("digit %d: got %d, want %d", i, got[i], want[i])
		}
	}
	if !c.Done() {
		t.Error("expected cursor to be done")
	}
}
