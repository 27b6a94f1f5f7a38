package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const flashCookie = "notes_flash"

// flashStore keeps alerts between a POST and the GET it redirects to.
type flashStore struct {
	alerts *expirable.LRU[string, []string]
	ttl    time.Duration
}

func newFlashStore(ttl time.Duration) *flashStore {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &flashStore{
		alerts: expirable.NewLRU[string, []string](1000, nil, ttl),
		ttl:    ttl,
	}
}

// push queues msgs for the client behind c.
func (f *flashStore) push(c *gin.Context, msgs []string) {
	if len(msgs) == 0 {
		return
	}
	id, err := c.Cookie(flashCookie)
	if err != nil || id == "" {
		id = uuid.NewString()
	}
	existing, _ := f.alerts.Get(id)
	f.alerts.Add(id, append(existing, msgs...))
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, id, int(f.ttl.Seconds()), "/", "", false, true)
}

// pop returns and forgets the queued alerts for the client behind c.
func (f *flashStore) pop(c *gin.Context) []string {
	id, err := c.Cookie(flashCookie)
	if err != nil || id == "" {
		return nil
	}
	msgs, ok := f.alerts.Get(id)
	if !ok {
		return nil
	}
	f.alerts.Remove(id)
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	return msgs
}
