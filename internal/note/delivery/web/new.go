package web

import (
	"html/template"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"notes-client/internal/note"
	"notes-client/internal/session"
	"notes-client/internal/view"
	pkgLog "notes-client/pkg/log"
)

// Handler is the interface for the web frontend delivery handler.
type Handler interface {
	Index(c *gin.Context)
	Login(c *gin.Context)
	Register(c *gin.Context)
	CreateNote(c *gin.Context)
	DeleteNote(c *gin.Context)
	Logout(c *gin.Context)
}

type handler struct {
	l        pkgLog.Logger
	uc       note.UseCase
	session  *session.Session
	tmpl     *template.Template
	flashes  *flashStore
	browsers *browserStore

	// The last rendered list, kept the way a page keeps its DOM until the
	// next render. It belongs to the token it was fetched with.
	mu         sync.Mutex
	rendered   bool
	cardsToken string
	cards      []view.Card
}

// New creates a new web delivery handler. tmpl must define view.PageTemplate.
func New(l pkgLog.Logger, uc note.UseCase, sess *session.Session, tmpl *template.Template, flashTTL time.Duration) Handler {
	return &handler{
		l:        l,
		uc:       uc,
		session:  sess,
		tmpl:     tmpl,
		flashes:  newFlashStore(flashTTL),
		browsers: newBrowserStore(),
	}
}

func (h *handler) setCards(token string, cards []view.Card) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.rendered = true
	h.cardsToken = token
	h.cards = cards
}

func (h *handler) resetCards() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.rendered = false
	h.cardsToken = ""
	h.cards = nil
}

// currentCards returns the last list rendered under token. A list fetched
// with another token is never returned.
func (h *handler) currentCards(token string) ([]view.Card, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.rendered || h.cardsToken != token {
		return nil, false
	}
	return h.cards, true
}
