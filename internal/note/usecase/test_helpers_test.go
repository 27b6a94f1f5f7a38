package usecase

import (
	"context"
	"fmt"
	"testing"

	"notes-client/internal/model"
	"notes-client/internal/note"
	"notes-client/internal/note/repository/rest"
	"notes-client/internal/note/repository/rest/resttest"
	"notes-client/internal/session"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// fakePresenter records every call in order.
type fakePresenter struct {
	events   []string
	alerts   []string
	rendered []model.Note
	renders  int
	view     string
}

func (p *fakePresenter) ShowAuth(ctx context.Context) {
	p.view = "auth"
	p.events = append(p.events, "show:auth")
}

func (p *fakePresenter) ShowNotes(ctx context.Context) {
	p.view = "notes"
	p.events = append(p.events, "show:notes")
}

func (p *fakePresenter) RenderNotes(ctx context.Context, notes []model.Note) {
	p.rendered = append([]model.Note(nil), notes...)
	p.renders++
	p.events = append(p.events, fmt.Sprintf("render:%d", len(notes)))
}

func (p *fakePresenter) Alert(ctx context.Context, msg string) {
	p.alerts = append(p.alerts, msg)
	p.events = append(p.events, "alert:"+msg)
}

type fixture struct {
	srv     *resttest.Server
	store   *session.MemoryStore
	session *session.Session
	uc      note.UseCase
	p       *fakePresenter
}

func newFixture(t *testing.T, policy note.Policy) *fixture {
	t.Helper()

	srv := resttest.NewServer()
	t.Cleanup(srv.Close)

	l := &mockLogger{}
	store := session.NewMemoryStore()
	sess := session.New(l, store, session.DefaultKey)
	client := rest.NewClient(srv.BaseURL(), sess, l)

	return &fixture{
		srv:     srv,
		store:   store,
		session: sess,
		uc:      New(l, client, sess, policy),
		p:       &fakePresenter{view: "auth"},
	}
}

// login signs the fixture in and resets the presenter.
func (f *fixture) login(t *testing.T) {
	t.Helper()
	if err := f.uc.Login(context.Background(), f.p, note.LoginInput{Username: "alice", Password: "pw"}); err != nil {
		t.Fatalf("Login: %v", err)
	}
	f.p = &fakePresenter{view: "notes"}
}
