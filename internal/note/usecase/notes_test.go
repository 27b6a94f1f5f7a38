package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"testing"

	"notes-client/internal/model"
	"notes-client/internal/note"
	"notes-client/internal/note/repository"
)

func TestLoadNotes(t *testing.T) {
	ctx := context.Background()

	t.Run("renders the full server list", func(t *testing.T) {
		f := newFixture(t, note.PolicyStrict)
		f.login(t)
		f.srv.AddNote("a", "1")
		f.srv.AddNote("b", "2")

		if err := f.uc.LoadNotes(ctx, f.p); err != nil {
			t.Fatalf("LoadNotes: %v", err)
		}
		if !reflect.DeepEqual(f.p.rendered, f.srv.Notes()) {
			t.Errorf("rendered = %+v, want %+v", f.p.rendered, f.srv.Notes())
		}
	})

	for _, policy := range []note.Policy{note.PolicyStrict, note.PolicyLenient} {
		t.Run("401 leaves the previous list "+policy.String(), func(t *testing.T) {
			f := newFixture(t, policy)
			f.login(t)
			f.srv.AddNote("kept", "x")
			_ = f.uc.LoadNotes(ctx, f.p)
			before := f.p.rendered
			renders := f.p.renders

			f.srv.Respond(http.MethodGet, "/api/notes", http.StatusUnauthorized, `{}`)
			err := f.uc.LoadNotes(ctx, f.p)
			if repository.StatusCode(err) != http.StatusUnauthorized {
				t.Fatalf("err = %v, want 401", err)
			}
			if f.p.renders != renders || !reflect.DeepEqual(f.p.rendered, before) {
				t.Errorf("list changed on failed load: %+v", f.p.rendered)
			}

			switch policy {
			case note.PolicyStrict:
				if want := []string{"Error loading notes: 401"}; !reflect.DeepEqual(f.p.alerts, want) {
					t.Errorf("alerts = %v, want %v", f.p.alerts, want)
				}
			case note.PolicyLenient:
				if len(f.p.alerts) != 0 {
					t.Errorf("lenient load must be silent, got %v", f.p.alerts)
				}
			}
		})
	}
}

func TestCreateNote(t *testing.T) {
	ctx := context.Background()

	t.Run("round-trips title and content verbatim", func(t *testing.T) {
		f := newFixture(t, note.PolicyStrict)
		f.login(t)

		in := note.CreateNoteInput{Title: "  <b>T</b> ", Content: "line 1\nline 2 ✓"}
		if err := f.uc.CreateNote(ctx, f.p, in); err != nil {
			t.Fatalf("CreateNote: %v", err)
		}
		if len(f.p.rendered) != 1 {
			t.Fatalf("rendered = %+v", f.p.rendered)
		}
		got := f.p.rendered[0]
		if got.Title != in.Title || got.Content != in.Content {
			t.Errorf("rendered note = %+v, want title %q content %q", got, in.Title, in.Content)
		}
	})

	t.Run("rendered count equals server count", func(t *testing.T) {
		f := newFixture(t, note.PolicyStrict)
		f.login(t)

		for i := 0; i < 5; i++ {
			in := note.CreateNoteInput{Title: fmt.Sprintf("n%d", i), Content: "c"}
			if err := f.uc.CreateNote(ctx, f.p, in); err != nil {
				t.Fatalf("CreateNote %d: %v", i, err)
			}
		}
		if err := f.uc.LoadNotes(ctx, f.p); err != nil {
			t.Fatalf("LoadNotes: %v", err)
		}
		if len(f.p.rendered) != len(f.srv.Notes()) || len(f.p.rendered) != 5 {
			t.Errorf("rendered %d, server %d", len(f.p.rendered), len(f.srv.Notes()))
		}
	})

	for _, policy := range []note.Policy{note.PolicyStrict, note.PolicyLenient} {
		t.Run("500 alerts and skips reload "+policy.String(), func(t *testing.T) {
			f := newFixture(t, policy)
			f.login(t)
			loads := f.srv.Count(http.MethodGet, "/api/notes")

			f.srv.Respond(http.MethodPost, "/api/notes", http.StatusInternalServerError, `{}`)
			err := f.uc.CreateNote(ctx, f.p, note.CreateNoteInput{Title: "T", Content: "C"})
			if repository.StatusCode(err) != http.StatusInternalServerError {
				t.Fatalf("err = %v, want 500", err)
			}
			if want := []string{"Error creating note: 500"}; !reflect.DeepEqual(f.p.alerts, want) {
				t.Errorf("alerts = %v, want %v", f.p.alerts, want)
			}
			if got := f.srv.Count(http.MethodGet, "/api/notes"); got != loads {
				t.Errorf("reload triggered: %d list calls, want %d", got, loads)
			}
		})
	}

	t.Run("network failure alerts a fixed message", func(t *testing.T) {
		f := newFixture(t, note.PolicyStrict)
		f.login(t)
		f.srv.Close()

		err := f.uc.CreateNote(ctx, f.p, note.CreateNoteInput{Title: "T", Content: "C"})
		if repository.Classify(err) != repository.KindNetwork {
			t.Fatalf("err = %v, want network error", err)
		}
		if want := []string{"Network error while creating note"}; !reflect.DeepEqual(f.p.alerts, want) {
			t.Errorf("alerts = %v, want %v", f.p.alerts, want)
		}
		if f.p.renders != 0 {
			t.Error("no rendering expected")
		}
	})
}

func TestDeleteNote(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes and reloads", func(t *testing.T) {
		f := newFixture(t, note.PolicyStrict)
		f.login(t)
		n := f.srv.AddNote("gone", "x")
		f.srv.AddNote("stays", "y")

		if err := f.uc.DeleteNote(ctx, f.p, n.ID); err != nil {
			t.Fatalf("DeleteNote: %v", err)
		}
		if len(f.p.rendered) != 1 || f.p.rendered[0].Title != "stays" {
			t.Errorf("rendered = %+v", f.p.rendered)
		}
	})

	t.Run("404 lenient still reloads", func(t *testing.T) {
		f := newFixture(t, note.PolicyLenient)
		f.login(t)
		loads := f.srv.Count(http.MethodGet, "/api/notes")

		if err := f.uc.DeleteNote(ctx, f.p, model.ID("7")); err != nil {
			t.Fatalf("DeleteNote: %v", err)
		}
		if f.srv.Count(http.MethodGet, "/api/notes") != loads+1 {
			t.Error("expected a reload after delete")
		}
		if len(f.p.alerts) != 0 {
			t.Errorf("lenient delete must not alert, got %v", f.p.alerts)
		}
	})

	t.Run("404 strict alerts and skips reload", func(t *testing.T) {
		f := newFixture(t, note.PolicyStrict)
		f.login(t)
		loads := f.srv.Count(http.MethodGet, "/api/notes")

		err := f.uc.DeleteNote(ctx, f.p, model.ID("7"))
		if repository.StatusCode(err) != http.StatusNotFound {
			t.Fatalf("err = %v, want 404", err)
		}
		if f.srv.Count(http.MethodGet, "/api/notes") != loads {
			t.Error("strict delete must not reload after a failure")
		}
		if want := []string{"Error deleting note: 404 (Note not found)"}; !reflect.DeepEqual(f.p.alerts, want) {
			t.Errorf("alerts = %v, want %v", f.p.alerts, want)
		}
	})

	t.Run("network failure is reported in lenient mode", func(t *testing.T) {
		f := newFixture(t, note.PolicyLenient)
		f.login(t)
		f.srv.Close()

		err := f.uc.DeleteNote(ctx, f.p, model.ID("1"))
		if repository.Classify(err) != repository.KindNetwork {
			t.Fatalf("err = %v, want network error", err)
		}
		if want := []string{"Network error while deleting note"}; !reflect.DeepEqual(f.p.alerts, want) {
			t.Errorf("alerts = %v, want %v", f.p.alerts, want)
		}
	})

	t.Run("empty id", func(t *testing.T) {
		f := newFixture(t, note.PolicyStrict)
		if err := f.uc.DeleteNote(ctx, f.p, ""); !errors.Is(err, note.ErrEmptyNoteID) {
			t.Errorf("err = %v, want ErrEmptyNoteID", err)
		}
	})
}
