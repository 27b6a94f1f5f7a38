package usecase

import (
	"errors"
	"fmt"

	"notes-client/internal/note"
	"notes-client/internal/note/repository"
)

// failureMessage renders err as the alert shown for a failed action,
// e.g. "Error creating note: 500" or "Network error while creating note".
func failureMessage(action string, err error) string {
	switch repository.Classify(err) {
	case repository.KindHTTP:
		var httpErr *repository.HTTPError
		errors.As(err, &httpErr)
		msg := fmt.Sprintf("Error %s: %d", action, httpErr.Status)
		if httpErr.Message != "" {
			msg += " (" + httpErr.Message + ")"
		}
		return msg
	case repository.KindNetwork:
		return "Network error while " + action
	case repository.KindParse:
		if errors.Is(err, repository.ErrMissingToken) {
			return fmt.Sprintf("Error %s: no token in response", action)
		}
		return note.MsgUnexpectedReply
	default:
		return fmt.Sprintf("Error %s: %v", action, err)
	}
}
