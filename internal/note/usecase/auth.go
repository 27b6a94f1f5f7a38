package usecase

import (
	"context"

	"notes-client/internal/model"
	"notes-client/internal/note"
	"notes-client/internal/note/repository"
)

func (uc *implUseCase) Login(ctx context.Context, p note.Presenter, input note.LoginInput) error {
	tok, err := uc.repo.Login(ctx, model.Credentials{
		Username: input.Username,
		Password: input.Password,
	})
	if err != nil {
		uc.l.Errorf(ctx, "note.usecase.Login: repo.Login: %v", err)
		p.Alert(ctx, failureMessage("logging in", err))
		return err
	}

	if err := uc.session.SetToken(ctx, tok); err != nil {
		// The in-memory session is usable; only persistence failed.
		uc.l.Warnf(ctx, "note.usecase.Login: session.SetToken: %v", err)
	}

	p.ShowNotes(ctx)

	// Load failures are reported by LoadNotes itself and do not undo the login.
	if err := uc.LoadNotes(ctx, p); err != nil {
		uc.l.Warnf(ctx, "note.usecase.Login: initial load failed: %v", err)
	}
	return nil
}

func (uc *implUseCase) Register(ctx context.Context, p note.Presenter, input note.RegisterInput) error {
	err := uc.repo.Register(ctx, model.Registration{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
	})
	if err == nil {
		p.Alert(ctx, note.MsgRegistered)
		return nil
	}

	uc.l.Errorf(ctx, "note.usecase.Register: repo.Register: %v", err)

	// Lenient mode confirms whenever the server answered at all.
	if uc.policy == note.PolicyLenient && repository.Classify(err) != repository.KindNetwork {
		p.Alert(ctx, note.MsgRegistered)
		return nil
	}

	p.Alert(ctx, failureMessage("registering", err))
	return err
}

func (uc *implUseCase) Logout(ctx context.Context, p note.Presenter) error {
	err := uc.session.Clear(ctx)
	p.ShowAuth(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "note.usecase.Logout: session.Clear: %v", err)
		p.Alert(ctx, "Error logging out: the saved session could not be removed")
		return err
	}
	return nil
}

func (uc *implUseCase) WhoAmI(ctx context.Context) (model.User, error) {
	u, err := uc.repo.Me(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "note.usecase.WhoAmI: repo.Me: %v", err)
		return model.User{}, err
	}
	return u, nil
}
