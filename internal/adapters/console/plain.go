package console

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// RunPlain analyzes rawURL, if given, and writes one text report to w.
// It returns the submission error so callers can set an exit status.
func RunPlain(ctx context.Context, w io.Writer, backend Backend, rawURL string) error {
	var submitErr error
	if strings.TrimSpace(rawURL) != "" {
		if out := backend.Submit(ctx, SessionID, rawURL); !out.OK() {
			submitErr = out.Err
		}
	}
	page, err := backend.Page(ctx, SessionID)
	if err != nil {
		return fmt.Errorf("console.plain: %w", err)
	}
	if _, err := io.WriteString(w, Render(page, PlainTheme())); err != nil {
		return fmt.Errorf("console.plain: %w", err)
	}
	return submitErr
}
