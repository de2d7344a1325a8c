package phonemeta

import (
	"errors"
	"fmt"
)

// ErrUnknownCallingCode is returned by queries against a calling code the
// loaded metadata does not support.
var ErrUnknownCallingCode = errors.New("phonemeta: unknown calling code")

// ErrUnknownRegion is returned by region-keyed queries for a region the
// loaded metadata does not map to any calling code.
var ErrUnknownRegion = errors.New("phonemeta: unknown region")

// AssertionError reports a structural invariant violation in decoded
// metadata: the kind of bug that indicates a codec or data-generation
// defect rather than a bad end-user input. Recovery is not attempted;
// construction simply fails so the caller's aggregate load error
// surfaces the cause.
type AssertionError struct {
	Message string
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("phonemeta: internal assertion failed: %s", e.Message)
}
