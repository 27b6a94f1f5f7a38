package web

import (
	"context"

	"notes-client/internal/model"
	"notes-client/internal/view"
)

// presenter collects the effects of one use-case call made on behalf of a
// single HTTP request.
type presenter struct {
	h      *handler
	alerts []string
}

func (p *presenter) ShowAuth(ctx context.Context) {
	p.h.resetCards()
}

// ShowNotes is implicit on the web: the screen follows the browser binding.
func (p *presenter) ShowNotes(ctx context.Context) {}

func (p *presenter) RenderNotes(ctx context.Context, notes []model.Note) {
	p.h.setCards(p.h.session.Token(), view.Cards(notes))
}

func (p *presenter) Alert(ctx context.Context, msg string) {
	p.alerts = append(p.alerts, msg)
}
