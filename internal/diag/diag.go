// Package diag emits structured diagnostic events for parse, classify,
// and metadata-load outcomes. It never influences control flow: every
// function here takes the outcome that was already decided and only
// logs it.
package diag

import (
	"log/slog"

	"github.com/coregx/numplan/matcher"
	"github.com/coregx/numplan/parser"
)

// Logger wraps a *slog.Logger; a nil *Logger (or one built from a nil
// *slog.Logger) silently discards every event, so callers that do not
// want diagnostics never pay for them beyond a nil check.
type Logger struct {
	base *slog.Logger
}

// New wraps base. Passing a nil base yields a Logger that discards
// every event.
func New(base *slog.Logger) *Logger {
	return &Logger{base: base}
}

func (l *Logger) enabled() bool {
	return l != nil && l.base != nil
}

// ParseResult logs the outcome of one ParseLeniently/ParseStrictly call.
func (l *Logger) ParseResult(text string, result parser.Result, err error) {
	if !l.enabled() {
		return
	}
	if err != nil {
		l.base.Warn("phone number parse failed", "input", text, "error", err)
		return
	}
	l.base.Debug("phone number parsed",
		"input", text,
		"calling_code", result.Number.CallingCode.String(),
		"national_number", result.Number.NationalNumber.String(),
		"match", result.Match.String(),
		"format", result.Format.String(),
	)
}

// ClassifyResult logs the outcome of one RawClassifier.Classify call.
func (l *Logger) ClassifyResult(typeName string, values []string, match matcher.Result) {
	if !l.enabled() {
		return
	}
	l.base.Debug("number classified", "type", typeName, "values", values, "match", match.String())
}

// LoadOutcome logs a metadata load: n providers requested, succeeded
// equal to n on success, or the aggregate failure otherwise.
func (l *Logger) LoadOutcome(requestedProviders int, err error) {
	if !l.enabled() {
		return
	}
	if err != nil {
		l.base.Error("metadata load failed", "providers", requestedProviders, "error", err)
		return
	}
	l.base.Info("metadata load succeeded", "providers", requestedProviders)
}
