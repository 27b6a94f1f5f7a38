// Package resttest provides an in-memory notes backend for tests.
package resttest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"notes-client/internal/model"
)

// DefaultToken is the token issued by a successful login.
const DefaultToken = "test-token"

// Request is a request recorded by the Server.
type Request struct {
	Method        string
	Path          string
	Authorization string
	RequestID     string
	Body          string
}

type cannedResponse struct {
	status int
	body   string
}

// Server is a fake notes backend mounted under /api.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	token    string
	notes    []model.Note
	nextID   int
	requests []Request
	canned   map[string]cannedResponse
}

// NewServer starts a backend that issues DefaultToken on login.
func NewServer() *Server {
	s := &Server{
		token:  DefaultToken,
		nextID: 1,
		canned: map[string]cannedResponse{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", s.login)
	mux.HandleFunc("POST /api/auth/register", s.register)
	mux.HandleFunc("GET /api/auth/me", s.authenticated(s.me))
	mux.HandleFunc("GET /api/notes", s.authenticated(s.listNotes))
	mux.HandleFunc("POST /api/notes", s.authenticated(s.createNote))
	mux.HandleFunc("DELETE /api/notes/{id}", s.authenticated(s.deleteNote))

	s.Server = httptest.NewServer(s.record(mux))
	return s
}

// BaseURL is the API root to hand to the client.
func (s *Server) BaseURL() string { return s.URL + "/api" }

// SetToken changes the token issued on login and required on note calls.
func (s *Server) SetToken(tok string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = tok
}

// Respond makes the next and all following calls to "METHOD /api/path"
// return status with the raw body.
func (s *Server) Respond(method, path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.canned[method+" "+path] = cannedResponse{status: status, body: body}
}

// Reset removes a canned response.
func (s *Server) Reset(method, path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.canned, method+" "+path)
}

// AddNote seeds a note directly.
func (s *Server) AddNote(title, content string) model.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addNoteLocked(title, content)
}

// AddNoteWithID seeds a note under a caller-chosen id, e.g. one that needs
// escaping in a URL path.
func (s *Server) AddNoteWithID(id model.ID, title, content string) model.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := model.Note{ID: id, Title: title, Content: content}
	s.notes = append(s.notes, n)
	return n
}

// Notes returns a copy of the stored notes.
func (s *Server) Notes() []model.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Note(nil), s.notes...)
}

// Requests returns every request seen so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Count returns how many times "METHOD /api/path" was requested.
func (s *Server) Count(method, path string) int {
	n := 0
	for _, r := range s.Requests() {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

// Last returns the most recent request to "METHOD /api/path".
func (s *Server) Last(method, path string) (Request, bool) {
	reqs := s.Requests()
	for i := len(reqs) - 1; i >= 0; i-- {
		if reqs[i].Method == method && reqs[i].Path == path {
			return reqs[i], true
		}
	}
	return Request{}, false
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(raw))

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:        r.Method,
			Path:          r.URL.EscapedPath(),
			Authorization: r.Header.Get("Authorization"),
			RequestID:     r.Header.Get("X-Request-ID"),
			Body:          string(raw),
		})
		canned, ok := s.canned[r.Method+" "+r.URL.Path]
		s.mu.Unlock()

		if ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(canned.status)
			io.WriteString(w, canned.body)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) authenticated(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		want := "Bearer " + s.token
		s.mu.Unlock()
		if r.Header.Get("Authorization") != want {
			writeError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
			return
		}
		next(w, r)
	}
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var creds model.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	s.mu.Lock()
	tok := s.token
	s.mu.Unlock()
	writeData(w, http.StatusOK, map[string]string{"token": tok})
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var reg model.Registration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	s.mu.Lock()
	tok := s.token
	s.mu.Unlock()
	writeData(w, http.StatusOK, map[string]string{"token": tok})
}

func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, model.User{ID: "1", Username: "alice", Email: "alice@example.com"})
}

func (s *Server) listNotes(w http.ResponseWriter, r *http.Request) {
	notes := s.Notes()
	if notes == nil {
		notes = []model.Note{}
	}
	writeData(w, http.StatusOK, map[string]any{
		"content":       notes,
		"pageNumber":    0,
		"pageSize":      len(notes),
		"totalElements": len(notes),
		"totalPages":    1,
	})
}

func (s *Server) createNote(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	s.mu.Lock()
	n := s.addNoteLocked(req.Title, req.Content)
	s.mu.Unlock()
	writeData(w, http.StatusCreated, n)
}

func (s *Server) deleteNote(w http.ResponseWriter, r *http.Request) {
	id := model.ID(r.PathValue("id"))

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, n := range s.notes {
		if n.ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			writeData(w, http.StatusOK, nil)
			return
		}
	}
	writeError(w, http.StatusNotFound, "not_found", "Note not found")
}

func (s *Server) addNoteLocked(title, content string) model.Note {
	n := model.Note{ID: model.ID(strconv.Itoa(s.nextID)), Title: title, Content: content}
	s.nextID++
	s.notes = append(s.notes, n)
	return n
}

func writeData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   map[string]string{"code": code, "message": msg},
	})
}
