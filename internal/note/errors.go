package note

import "errors"

// Domain-specific errors for the note package.
var (
	ErrEmptyNoteID = errors.New("note id is empty")
)
