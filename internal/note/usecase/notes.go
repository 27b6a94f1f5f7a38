package usecase

import (
	"context"

	"notes-client/internal/model"
	"notes-client/internal/note"
	"notes-client/internal/note/repository"
)

func (uc *implUseCase) LoadNotes(ctx context.Context, p note.Presenter) error {
	notes, err := uc.repo.ListNotes(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "note.usecase.LoadNotes: failed to load notes (status %d): %v",
			repository.StatusCode(err), err)
		if uc.policy == note.PolicyStrict {
			p.Alert(ctx, failureMessage("loading notes", err))
		}
		return err
	}

	p.RenderNotes(ctx, notes)
	return nil
}

func (uc *implUseCase) CreateNote(ctx context.Context, p note.Presenter, input note.CreateNoteInput) error {
	uc.l.Debugf(ctx, "note.usecase.CreateNote: sending note title=%q", input.Title)

	err := uc.repo.CreateNote(ctx, repository.CreateNoteOptions{
		Title:   input.Title,
		Content: input.Content,
	})
	if err != nil {
		uc.l.Errorf(ctx, "note.usecase.CreateNote: repo.CreateNote: %v", err)
		p.Alert(ctx, failureMessage("creating note", err))
		return err
	}

	return uc.LoadNotes(ctx, p)
}

func (uc *implUseCase) DeleteNote(ctx context.Context, p note.Presenter, id model.ID) error {
	if id == "" {
		p.Alert(ctx, "Error deleting note: missing id")
		return note.ErrEmptyNoteID
	}

	err := uc.repo.DeleteNote(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "note.usecase.DeleteNote: repo.DeleteNote(%s): %v", id, err)
		// Lenient mode ignores the response status, not transport failures.
		if uc.policy == note.PolicyStrict || repository.Classify(err) != repository.KindHTTP {
			p.Alert(ctx, failureMessage("deleting note", err))
			return err
		}
	}

	return uc.LoadNotes(ctx, p)
}
