package rest_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"notes-client/internal/model"
	"notes-client/internal/note/repository"
	"notes-client/internal/note/repository/rest"
	"notes-client/internal/note/repository/rest/resttest"
	pkgLog "notes-client/pkg/log"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestClientAuth(t *testing.T) {
	srv := resttest.NewServer()
	defer srv.Close()
	srv.SetToken("abc")

	client := rest.NewClient(srv.BaseURL(), staticToken(""), pkgLog.NewNop())
	ctx := context.Background()

	t.Run("Login", func(t *testing.T) {
		tok, err := client.Login(ctx, model.Credentials{Username: "alice", Password: "pw"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok != "abc" {
			t.Errorf("token = %q, want abc", tok)
		}

		req, ok := srv.Last(http.MethodPost, "/api/auth/login")
		if !ok {
			t.Fatal("login request not recorded")
		}
		if req.Body != `{"username":"alice","password":"pw"}` {
			t.Errorf("login body = %s", req.Body)
		}
		if req.Authorization != "" {
			t.Errorf("Authorization header sent without token: %q", req.Authorization)
		}
		if req.RequestID == "" {
			t.Error("X-Request-ID header missing")
		}
	})

	t.Run("Login keeps the caller's request id", func(t *testing.T) {
		ctx := pkgLog.WithRequestID(context.Background(), "req-from-browser")
		if _, err := client.Login(ctx, model.Credentials{Username: "alice", Password: "pw"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		req, _ := srv.Last(http.MethodPost, "/api/auth/login")
		if req.RequestID != "req-from-browser" {
			t.Errorf("X-Request-ID = %q, want req-from-browser", req.RequestID)
		}
	})

	t.Run("Login sends empty fields as-is", func(t *testing.T) {
		if _, err := client.Login(ctx, model.Credentials{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		req, _ := srv.Last(http.MethodPost, "/api/auth/login")
		if req.Body != `{"username":"","password":""}` {
			t.Errorf("login body = %s", req.Body)
		}
	})

	t.Run("Login without token field", func(t *testing.T) {
		srv.Respond(http.MethodPost, "/api/auth/login", http.StatusOK, `{"data":{}}`)
		defer srv.Reset(http.MethodPost, "/api/auth/login")

		tok, err := client.Login(ctx, model.Credentials{Username: "alice", Password: "pw"})
		if tok != "" {
			t.Errorf("token = %q, want empty", tok)
		}
		if !errors.Is(err, repository.ErrMissingToken) {
			t.Errorf("err = %v, want ErrMissingToken", err)
		}
		if repository.Classify(err) != repository.KindParse {
			t.Errorf("Classify = %v, want parse", repository.Classify(err))
		}
	})

	t.Run("Login rejected", func(t *testing.T) {
		srv.Respond(http.MethodPost, "/api/auth/login", http.StatusUnauthorized,
			`{"success":false,"error":{"code":"invalid_credentials","message":"Invalid username or password"}}`)
		defer srv.Reset(http.MethodPost, "/api/auth/login")

		_, err := client.Login(ctx, model.Credentials{Username: "alice", Password: "bad"})
		var httpErr *repository.HTTPError
		if !errors.As(err, &httpErr) {
			t.Fatalf("err = %v, want *HTTPError", err)
		}
		if httpErr.Status != 401 || httpErr.Code != "invalid_credentials" {
			t.Errorf("httpErr = %+v", httpErr)
		}
	})

	t.Run("Register", func(t *testing.T) {
		err := client.Register(ctx, model.Registration{Username: "bob", Email: "b@x.com", Password: "pw"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		req, _ := srv.Last(http.MethodPost, "/api/auth/register")
		if req.Body != `{"username":"bob","email":"b@x.com","password":"pw"}` {
			t.Errorf("register body = %s", req.Body)
		}
	})

	t.Run("Register failure", func(t *testing.T) {
		srv.Respond(http.MethodPost, "/api/auth/register", http.StatusBadRequest, `{"success":false}`)
		defer srv.Reset(http.MethodPost, "/api/auth/register")

		err := client.Register(ctx, model.Registration{Username: "bob"})
		if repository.StatusCode(err) != 400 {
			t.Errorf("err = %v, want status 400", err)
		}
	})
}

func TestClientNotes(t *testing.T) {
	srv := resttest.NewServer()
	defer srv.Close()
	srv.SetToken("abc")
	srv.AddNote("First", "one")

	client := rest.NewClient(srv.BaseURL(), staticToken("abc"), pkgLog.NewNop())
	ctx := context.Background()

	t.Run("ListNotes carries bearer token", func(t *testing.T) {
		notes, err := client.ListNotes(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(notes) != 1 || notes[0].Title != "First" || notes[0].Content != "one" {
			t.Errorf("notes = %+v", notes)
		}
		req, _ := srv.Last(http.MethodGet, "/api/notes")
		if req.Authorization != "Bearer abc" {
			t.Errorf("Authorization = %q, want %q", req.Authorization, "Bearer abc")
		}
	})

	t.Run("CreateNote", func(t *testing.T) {
		err := client.CreateNote(ctx, repository.CreateNoteOptions{Title: "T", Content: "C"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		req, _ := srv.Last(http.MethodPost, "/api/notes")
		if req.Body != `{"title":"T","content":"C"}` {
			t.Errorf("create body = %s", req.Body)
		}
		if len(srv.Notes()) != 2 {
			t.Errorf("server has %d notes, want 2", len(srv.Notes()))
		}
	})

	t.Run("DeleteNote", func(t *testing.T) {
		if err := client.DeleteNote(ctx, "1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(srv.Notes()) != 1 {
			t.Errorf("server has %d notes, want 1", len(srv.Notes()))
		}
	})

	t.Run("DeleteNote unknown id", func(t *testing.T) {
		err := client.DeleteNote(ctx, "7")
		if repository.StatusCode(err) != http.StatusNotFound {
			t.Errorf("err = %v, want 404", err)
		}
	})

	t.Run("DeleteNote escapes id", func(t *testing.T) {
		_ = client.DeleteNote(ctx, "a/b")
		reqs := srv.Requests()
		last := reqs[len(reqs)-1]
		if last.Path != "/api/notes/a%2Fb" || last.Method != http.MethodDelete {
			t.Errorf("last request = %s %s", last.Method, last.Path)
		}
	})

	t.Run("Me", func(t *testing.T) {
		u, err := client.Me(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.Username != "alice" {
			t.Errorf("user = %+v", u)
		}
	})
}

func TestClientErrorClassification(t *testing.T) {
	srv := resttest.NewServer()
	defer srv.Close()
	ctx := context.Background()

	t.Run("unauthenticated list is HTTP 401", func(t *testing.T) {
		client := rest.NewClient(srv.BaseURL(), staticToken(""), pkgLog.NewNop())
		_, err := client.ListNotes(ctx)
		if repository.Classify(err) != repository.KindHTTP || repository.StatusCode(err) != 401 {
			t.Errorf("err = %v, want HTTP 401", err)
		}
		req, _ := srv.Last(http.MethodGet, "/api/notes")
		if req.Authorization != "" {
			t.Errorf("Authorization header should be omitted, got %q", req.Authorization)
		}
	})

	t.Run("malformed JSON is a parse error", func(t *testing.T) {
		srv.Respond(http.MethodGet, "/api/notes", http.StatusOK, `{"data":`)
		defer srv.Reset(http.MethodGet, "/api/notes")

		client := rest.NewClient(srv.BaseURL(), staticToken(resttest.DefaultToken), pkgLog.NewNop())
		_, err := client.ListNotes(ctx)
		if repository.Classify(err) != repository.KindParse {
			t.Errorf("err = %v, want parse error", err)
		}
	})

	t.Run("missing content is a parse error", func(t *testing.T) {
		srv.Respond(http.MethodGet, "/api/notes", http.StatusOK, `{"data":{}}`)
		defer srv.Reset(http.MethodGet, "/api/notes")

		client := rest.NewClient(srv.BaseURL(), staticToken(resttest.DefaultToken), pkgLog.NewNop())
		_, err := client.ListNotes(ctx)
		if repository.Classify(err) != repository.KindParse {
			t.Errorf("err = %v, want parse error", err)
		}
	})

	t.Run("empty list is not an error", func(t *testing.T) {
		client := rest.NewClient(srv.BaseURL(), staticToken(resttest.DefaultToken), pkgLog.NewNop())
		notes, err := client.ListNotes(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(notes) != 0 {
			t.Errorf("notes = %+v, want empty", notes)
		}
	})

	t.Run("unreachable backend is a network error", func(t *testing.T) {
		dead := httptest.NewServer(http.NotFoundHandler())
		url := dead.URL
		dead.Close()

		client := rest.NewClient(url+"/api", staticToken(""), pkgLog.NewNop())
		_, err := client.ListNotes(ctx)
		if repository.Classify(err) != repository.KindNetwork {
			t.Errorf("err = %v, want network error", err)
		}
	})

	t.Run("timeout is a network error", func(t *testing.T) {
		slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}))
		defer slow.Close()

		client := rest.NewClient(slow.URL, staticToken(""), pkgLog.NewNop(), rest.WithTimeout(50*time.Millisecond))
		_, err := client.ListNotes(ctx)
		if repository.Classify(err) != repository.KindNetwork {
			t.Errorf("err = %v, want network error", err)
		}
	})

	t.Run("non-JSON error body keeps raw text", func(t *testing.T) {
		srv.Respond(http.MethodPost, "/api/notes", http.StatusInternalServerError, "upstream exploded")
		defer srv.Reset(http.MethodPost, "/api/notes")

		client := rest.NewClient(srv.BaseURL(), staticToken(resttest.DefaultToken), pkgLog.NewNop())
		err := client.CreateNote(ctx, repository.CreateNoteOptions{Title: "T", Content: "C"})
		var httpErr *repository.HTTPError
		if !errors.As(err, &httpErr) {
			t.Fatalf("err = %v, want *HTTPError", err)
		}
		if httpErr.Status != 500 || !strings.Contains(httpErr.Body, "upstream exploded") {
			t.Errorf("httpErr = %+v", httpErr)
		}
	})
}
