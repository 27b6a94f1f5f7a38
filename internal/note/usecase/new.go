package usecase

import (
	"notes-client/internal/note"
	"notes-client/internal/note/repository"
	"notes-client/internal/session"
	pkgLog "notes-client/pkg/log"
)

type implUseCase struct {
	l       pkgLog.Logger
	repo    repository.Repository
	session *session.Session
	policy  note.Policy
}

// New creates a new note UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	sess *session.Session,
	policy note.Policy,
) note.UseCase {
	return &implUseCase{
		l:       l,
		repo:    repo,
		session: sess,
		policy:  policy,
	}
}
