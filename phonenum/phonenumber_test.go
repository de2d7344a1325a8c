package phonenum

import (
	"errors"
	"testing"

	"github.com/coregx/numplan/digitseq"
)

func TestNewRejectsBadCallingCodeLength(t *testing.T) {
	tooLong := digitseq.MustParse("1234")
	nn := digitseq.MustParse("5550123")
	if _, err := New(tooLong, nn); !errors.Is(err, ErrInvalidPhoneNumber) {
		t.Fatalf("New with 4-digit calling code: err = %v, want ErrInvalidPhoneNumber", err)
	}

	if _, err := New(digitseq.Empty, nn); !errors.Is(err, ErrInvalidPhoneNumber) {
		t.Fatalf("New with empty calling code: err = %v, want ErrInvalidPhoneNumber", err)
	}
}

func TestNewRejectsExcessiveTotalLength(t *testing.T) {
	cc := digitseq.MustParse("1")
	nn := digitseq.MustParse("123456789012345678") // 18 digits, cc+nn=19 > 17
	if _, err := New(cc, nn); !errors.Is(err, ErrInvalidPhoneNumber) {
		t.Fatalf("err = %v, want ErrInvalidPhoneNumber", err)
	}
}

func TestNewAcceptsMaximalShape(t *testing.T) {
	cc := digitseq.MustParse("123")
	nn := digitseq.MustParse("12345678901234") // 3 + 14 = 17
	if _, err := New(cc, nn); err != nil {
		t.Fatalf("New: %v", err)
	}
}

func TestStringFormatsE164(t *testing.T) {
	n, err := New(digitseq.MustParse("44"), digitseq.MustParse("123456789"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got, want := n.String(), "+44123456789"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestEqual(t *testing.T) {
	a, _ := New(digitseq.MustParse("44"), digitseq.MustParse("123456789"))
	b, _ := New(digitseq.MustParse("44"), digitseq.MustParse("123456789"))
	c, _ := New(digitseq.MustParse("44"), digitseq.MustParse("987654321"))

	if !a.Equal(b) {
		t.Error("expected a.Equal(b)")
	}
	if a.Equal(c) {
		t.Error("expected !a.Equal(c)")
	}
}
