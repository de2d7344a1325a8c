// Package phonenum defines PhoneNumber, the calling-code/national-number
// pair shared by the parser and formatter packages.
package phonenum

import (
	"errors"

	"github.com/coregx/numplan/digitseq"
)

// ErrInvalidPhoneNumber is returned when a (callingCode, nationalNumber)
// pair violates the E.164 shape invariant: calling code length in
// {1,2,3} and total digit count at most 17.
var ErrInvalidPhoneNumber = errors.New("phonenum: calling code / national number shape invalid")

// PhoneNumber is a calling code paired with a national number, e.g. "1"
// + "2125550123" for a US number. Zero value is not a valid PhoneNumber;
// use New.
type PhoneNumber struct {
	CallingCode    digitseq.Sequence
	NationalNumber digitseq.Sequence
}

// maxE164Digits is the maximum combined calling-code + national-number
// digit count.
const maxE164Digits = 17

// New builds a PhoneNumber, validating the E.164 shape invariant: calling
// code length in {1,2,3} and combined digit count at most 17.
func New(callingCode, nationalNumber digitseq.Sequence) (PhoneNumber, error) {
	ccLen := callingCode.Length()
	if ccLen < 1 || ccLen > 3 {
		return PhoneNumber{}, ErrInvalidPhoneNumber
	}
	if ccLen+nationalNumber.Length() > maxE164Digits {
		return PhoneNumber{}, ErrInvalidPhoneNumber
	}
	return PhoneNumber{CallingCode: callingCode, NationalNumber: nationalNumber}, nil
}

// String renders the number in bare E.164 form: "+" + callingCode +
// nationalNumber, with no separators.
func (n PhoneNumber) String() string {
	return "+" + n.CallingCode.String() + n.NationalNumber.String()
}

// Equal reports whether n and other have the same calling code and
// national number.
func (n PhoneNumber) Equal(other PhoneNumber) bool {
	return n.CallingCode.Equal(other.CallingCode) && n.NationalNumber.Equal(other.NationalNumber)
}
