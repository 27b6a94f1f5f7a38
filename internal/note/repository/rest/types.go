package rest

import "notes-client/internal/model"

// ---- Wire types scoped to this package ----

// apiError is the backend error payload: {"code": "...", "message": "..."}.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorEnvelope matches {"success": false, "error": {...}}.
type errorEnvelope struct {
	Error *apiError `json:"error"`
}

// loginResp matches {"data": {"token": "..."}}.
type loginResp struct {
	Data *struct {
		Token string `json:"token"`
	} `json:"data"`
}

// listNotesResp matches {"data": {"content": [...]}}.
type listNotesResp struct {
	Data *struct {
		Content *[]model.Note `json:"content"`
	} `json:"data"`
}

// meResp accepts both a bare user object and one wrapped in "data".
type meResp struct {
	Data *model.User `json:"data"`
	model.User
}
