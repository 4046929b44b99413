package api

import (
	"errors"
	"fmt"

	"github.com/antab/antabcli/internal/common"
)

// Error is a request the server rejected without the expiry signal: either
// a non-2xx status, or a 2xx body missing its success marker. Message holds
// the server-supplied text and may be empty.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed (status %d)", e.Status)
}

// MessageOr converts err into the inline text a screen displays: the
// server's message when it sent one, "Network error" for transport
// failures, and the screen's own fallback otherwise.
func MessageOr(err error, fallback string) string {
	if errors.Is(err, common.ErrNetwork) {
		return common.ErrNetwork.Error()
	}
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
