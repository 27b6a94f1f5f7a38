package view

import (
	"net/url"

	"notes-client/internal/model"
)

// Card is the view model of one note in the list.
type Card struct {
	ID           model.ID
	Title        string
	Content      string
	Pinned       bool
	DeleteAction string // form action that deletes this note
}

// Cards maps notes to cards, one per note, preserving order. It is a pure
// function of its input; the caller replaces any previous list with the result.
func Cards(notes []model.Note) []Card {
	cards := make([]Card, 0, len(notes))
	for _, n := range notes {
		cards = append(cards, Card{
			ID:           n.ID,
			Title:        n.Title,
			Content:      n.Content,
			Pinned:       n.Pinned,
			DeleteAction: DeletePath(n.ID),
		})
	}
	return cards
}

// DeletePath is the frontend route that deletes the note with id.
func DeletePath(id model.ID) string {
	return "/notes/" + url.PathEscape(id.String()) + "/delete"
}
