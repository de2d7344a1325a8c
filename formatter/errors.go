package formatter

import "errors"

// ErrUnterminatedGroup is returned by Parse when a template contains an
// unmatched '{'.
var ErrUnterminatedGroup = errors.New("formatter: unterminated optional group in template")
