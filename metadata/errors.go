package metadata

import (
	"errors"
	"fmt"

	"github.com/coregx/numplan/phonemeta"
)

// ErrIncompatibleMetadata is wrapped by IncompatibleMetadataError.
var ErrIncompatibleMetadata = errors.New("metadata: schema version incompatible with request")

// IncompatibleMetadataError reports that a decoded document's VersionInfo
// does not satisfy the version a loader requested.
type IncompatibleMetadataError struct {
	Got, Requested phonemeta.VersionInfo
}

func (e *IncompatibleMetadataError) Error() string {
	return fmt.Sprintf("metadata: got version %s, does not satisfy requested %s", e.Got, e.Requested)
}

func (e *IncompatibleMetadataError) Unwrap() error {
	return ErrIncompatibleMetadata
}

// ErrCorruptMetadata is wrapped by CorruptMetadataError.
var ErrCorruptMetadata = errors.New("metadata: corrupt metadata blob")

// CorruptMetadataError reports a structural defect found while decoding
// a metadata blob: truncation, a bad length prefix, an out-of-range
// token index, or similar.
type CorruptMetadataError struct {
	Reason string
}

func (e *CorruptMetadataError) Error() string {
	return fmt.Sprintf("metadata: corrupt metadata: %s", e.Reason)
}

func (e *CorruptMetadataError) Unwrap() error {
	return ErrCorruptMetadata
}
