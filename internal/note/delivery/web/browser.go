package web

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const browserCookie = "notes_session"

// browserStore remembers which browsers signed in through this frontend and
// the token each one received. A browser is authorized only while the
// session still holds that token.
type browserStore struct {
	mu     sync.Mutex
	tokens map[string]string // cookie id -> token
}

func newBrowserStore() *browserStore {
	return &browserStore{tokens: map[string]string{}}
}

// bind issues a fresh cookie to the browser behind c for token. Bindings to
// other tokens can no longer authorize anything and are dropped.
func (b *browserStore) bind(c *gin.Context, token string) {
	id := uuid.NewString()

	b.mu.Lock()
	for k, v := range b.tokens {
		if v != token {
			delete(b.tokens, k)
		}
	}
	b.tokens[id] = token
	b.mu.Unlock()

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     browserCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// authorized reports whether the browser behind c signed in with token.
func (b *browserStore) authorized(c *gin.Context, token string) bool {
	if token == "" {
		return false
	}
	id, err := c.Cookie(browserCookie)
	if err != nil || id == "" {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	return b.tokens[id] == token
}

// forget drops the binding of the browser behind c and expires its cookie.
func (b *browserStore) forget(c *gin.Context) {
	if id, err := c.Cookie(browserCookie); err == nil {
		b.mu.Lock()
		delete(b.tokens, id)
		b.mu.Unlock()
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     browserCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
