package repository

import (
	"context"

	"notes-client/internal/model"
)

// Repository is the composed interface for the notes backend.
type Repository interface {
	AuthRepository
	NotesRepository
}

// AuthRepository defines the authentication endpoints.
type AuthRepository interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, creds model.Credentials) (string, error)
	Register(ctx context.Context, reg model.Registration) error
	Me(ctx context.Context) (model.User, error)
}

// NotesRepository defines the note endpoints. All calls are authenticated
// with the current session token when one is present.
type NotesRepository interface {
	ListNotes(ctx context.Context) ([]model.Note, error)
	CreateNote(ctx context.Context, opt CreateNoteOptions) error
	DeleteNote(ctx context.Context, id model.ID) error
}
