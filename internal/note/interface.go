package note

import (
	"context"

	"notes-client/internal/model"
)

// UseCase defines the client-side operations of the notes application.
// Every operation reports its outcome through the given Presenter and also
// returns the error (if any) for callers that need an exit status.
type UseCase interface {
	// Login exchanges credentials for a token, persists it, switches to the
	// notes view and loads the notes.
	Login(ctx context.Context, p Presenter, input LoginInput) error
	Register(ctx context.Context, p Presenter, input RegisterInput) error
	// LoadNotes fetches the full list and re-renders it. On failure the
	// previous rendering is left untouched.
	LoadNotes(ctx context.Context, p Presenter) error
	CreateNote(ctx context.Context, p Presenter, input CreateNoteInput) error
	DeleteNote(ctx context.Context, p Presenter, id model.ID) error
	Logout(ctx context.Context, p Presenter) error
	WhoAmI(ctx context.Context) (model.User, error)
}

// Presenter is the output port the UseCase drives. Implementations turn
// these calls into pages, terminal output, etc.
type Presenter interface {
	ShowAuth(ctx context.Context)
	ShowNotes(ctx context.Context)
	// RenderNotes replaces whatever list was shown before.
	RenderNotes(ctx context.Context, notes []model.Note)
	Alert(ctx context.Context, msg string)
}
