package web

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"notes-client/internal/model"
	"notes-client/internal/note"
	"notes-client/internal/view"
	"notes-client/pkg/response"
)

// Index renders the notes screen for a browser that signed in here, and the
// auth screen for anyone else. The list is fetched on the first visit, after
// the token changes and on ?refresh=1; otherwise the last rendered list is
// shown.
func (h *handler) Index(c *gin.Context) {
	ctx := c.Request.Context()
	p := &presenter{h: h}

	page := view.Page{Screen: view.ScreenAuth}
	token := h.session.Token()
	if h.browsers.authorized(c, token) {
		page.Screen = view.ScreenNotes
		if _, rendered := h.currentCards(token); !rendered || c.Query("refresh") != "" {
			if err := h.uc.LoadNotes(ctx, p); err != nil {
				h.l.Warnf(ctx, "web.Index: uc.LoadNotes: %v", err)
			}
		}
		page.Cards, _ = h.currentCards(token)
	}

	page.Alerts = append(h.flashes.pop(c), p.alerts...)
	h.render(c, page)
}

func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()
	p := &presenter{h: h}

	input := note.LoginInput{
		Username: c.PostForm("login-username"),
		Password: c.PostForm("login-password"),
	}
	if err := h.uc.Login(ctx, p, input); err != nil {
		h.l.Warnf(ctx, "web.Login: uc.Login: %v", err)
	} else {
		h.browsers.bind(c, h.session.Token())
	}
	h.redirect(c, p)
}

func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()
	p := &presenter{h: h}

	input := note.RegisterInput{
		Username: c.PostForm("register-username"),
		Email:    c.PostForm("register-email"),
		Password: c.PostForm("register-password"),
	}
	if err := h.uc.Register(ctx, p, input); err != nil {
		h.l.Warnf(ctx, "web.Register: uc.Register: %v", err)
	}
	h.redirect(c, p)
}

func (h *handler) CreateNote(c *gin.Context) {
	if !h.authorize(c) {
		return
	}
	ctx := c.Request.Context()
	p := &presenter{h: h}

	input := note.CreateNoteInput{
		Title:   c.PostForm("note-title"),
		Content: c.PostForm("note-content"),
	}
	if err := h.uc.CreateNote(ctx, p, input); err != nil {
		h.l.Warnf(ctx, "web.CreateNote: uc.CreateNote: %v", err)
	}
	h.redirect(c, p)
}

func (h *handler) DeleteNote(c *gin.Context) {
	if !h.authorize(c) {
		return
	}
	ctx := c.Request.Context()
	p := &presenter{h: h}

	id := model.ID(c.Param("id"))
	if err := h.uc.DeleteNote(ctx, p, id); err != nil {
		h.l.Warnf(ctx, "web.DeleteNote: uc.DeleteNote(%s): %v", id, err)
	}
	h.redirect(c, p)
}

func (h *handler) Logout(c *gin.Context) {
	if !h.authorize(c) {
		return
	}
	ctx := c.Request.Context()
	p := &presenter{h: h}

	if err := h.uc.Logout(ctx, p); err != nil {
		h.l.Warnf(ctx, "web.Logout: uc.Logout: %v", err)
	}
	h.browsers.forget(c)
	h.redirect(c, p)
}

// authorize rejects requests from browsers that did not sign in here with
// the current token.
func (h *handler) authorize(c *gin.Context) bool {
	if h.browsers.authorized(c, h.session.Token()) {
		return true
	}
	h.l.Warnf(c.Request.Context(), "web: rejected %s %s from a browser without a session", c.Request.Method, c.Request.URL.Path)
	response.Forbidden(c)
	return false
}

// redirect stores the collected alerts and sends the browser back to the index.
func (h *handler) redirect(c *gin.Context, p *presenter) {
	h.flashes.push(c, p.alerts)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *handler) render(c *gin.Context, page view.Page) {
	var buf bytes.Buffer
	if err := view.Render(&buf, h.tmpl, page); err != nil {
		h.l.Errorf(c.Request.Context(), "web.render: %v", err)
		response.InternalError(c)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
