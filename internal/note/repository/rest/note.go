package rest

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"notes-client/internal/model"
	"notes-client/internal/note/repository"
)

var errMissingContent = errors.New("response has no data.content")

// ListNotes calls GET /notes and returns the full collection.
func (c *Client) ListNotes(ctx context.Context) ([]model.Note, error) {
	var resp listNotesResp
	if err := c.do(ctx, http.MethodGet, "/notes", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil || resp.Data.Content == nil {
		return nil, &repository.ParseError{Op: "GET /notes", Err: errMissingContent}
	}
	return *resp.Data.Content, nil
}

// CreateNote calls POST /notes. The created note is not decoded; callers
// reload the list for the authoritative state.
func (c *Client) CreateNote(ctx context.Context, opt repository.CreateNoteOptions) error {
	return c.do(ctx, http.MethodPost, "/notes", opt, nil)
}

// DeleteNote calls DELETE /notes/{id}.
func (c *Client) DeleteNote(ctx context.Context, id model.ID) error {
	return c.do(ctx, http.MethodDelete, "/notes/"+url.PathEscape(id.String()), nil, nil)
}

var _ repository.Repository = (*Client)(nil)
