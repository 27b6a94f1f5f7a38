package view

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"notes-client/internal/model"
)

func TestCards(t *testing.T) {
	notes := []model.Note{
		{ID: "1", Title: "First", Content: "one"},
		{ID: "a b/c", Title: "Second", Content: "two", Pinned: true},
	}

	got := Cards(notes)
	want := []Card{
		{ID: "1", Title: "First", Content: "one", DeleteAction: "/notes/1/delete"},
		{ID: "a b/c", Title: "Second", Content: "two", Pinned: true, DeleteAction: "/notes/a%20b%2Fc/delete"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Cards() = %+v, want %+v", got, want)
	}

	if again := Cards(notes); !reflect.DeepEqual(again, got) {
		t.Error("Cards() is not idempotent")
	}

	if empty := Cards(nil); empty == nil || len(empty) != 0 {
		t.Errorf("Cards(nil) = %#v, want empty non-nil slice", empty)
	}
}

func TestRender(t *testing.T) {
	tmpl, err := Templates()
	if err != nil {
		t.Fatalf("Templates: %v", err)
	}

	t.Run("auth screen", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Render(&buf, tmpl, Page{Screen: ScreenAuth, Alerts: []string{"Registered! Now login."}}); err != nil {
			t.Fatalf("Render: %v", err)
		}
		out := buf.String()
		for _, want := range []string{`id="auth"`, `id="login-username"`, `id="register-email"`, "Registered! Now login."} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q", want)
			}
		}
		if strings.Contains(out, `id="notes-list"`) {
			t.Error("auth screen must not render the notes list")
		}
	})

	t.Run("notes screen escapes content", func(t *testing.T) {
		page := Page{
			Screen: ScreenNotes,
			Cards:  Cards([]model.Note{{ID: "7", Title: "<script>x</script>", Content: "a & b"}}),
		}
		var buf bytes.Buffer
		if err := Render(&buf, tmpl, page); err != nil {
			t.Fatalf("Render: %v", err)
		}
		out := buf.String()
		if strings.Contains(out, "<script>x</script>") {
			t.Error("title was not escaped")
		}
		for _, want := range []string{`id="notes-list"`, "&lt;script&gt;", "a &amp; b", `action="/notes/7/delete"`, `class="note-card"`} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q", want)
			}
		}
		if strings.Contains(out, `id="auth"`) {
			t.Error("notes screen must not render the auth view")
		}
	})

	t.Run("same cards render identically", func(t *testing.T) {
		page := Page{Screen: ScreenNotes, Cards: Cards([]model.Note{{ID: "1", Title: "T", Content: "C"}})}
		var a, b bytes.Buffer
		if err := Render(&a, tmpl, page); err != nil {
			t.Fatal(err)
		}
		if err := Render(&b, tmpl, page); err != nil {
			t.Fatal(err)
		}
		if a.String() != b.String() {
			t.Error("render is not idempotent")
		}
		if n := strings.Count(a.String(), `class="note-card`); n != 1 {
			t.Errorf("rendered %d cards, want 1", n)
		}
	})
}
