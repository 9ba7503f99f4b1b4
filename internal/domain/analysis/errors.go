package analysis

import (
	"errors"
	"fmt"
)

// Sentinel kinds for analysis errors.
var (
	// ErrEmptyURL is a validation failure; no request was sent.
	ErrEmptyURL = errors.New("empty url")
	// ErrAnalyzeFailed covers every transport, status and decode failure.
	ErrAnalyzeFailed = errors.New("analyze failed")
)

// wrapKind tags err with op and kind so errors.Is matches both.
func wrapKind(op string, kind, err error) error {
	return fmt.Errorf("%s: %w: %w", op, kind, err)
}
