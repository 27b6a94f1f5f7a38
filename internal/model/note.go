package model

import (
	"bytes"
	"encoding/json"
	"time"
)

// Note is a single note owned by the backend. The client only ever holds a
// transient copy taken from the latest list response.
type Note struct {
	ID        ID         `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Pinned    bool       `json:"pinned,omitempty"`
	Archived  bool       `json:"archived,omitempty"`
	Trashed   bool       `json:"trashed,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// ID is an opaque backend identifier. The backend may send it as a JSON
// number or a JSON string; both decode to the same textual form.
type ID string

// UnmarshalJSON accepts numbers and strings.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

// Credentials are sent once to the login endpoint and never stored.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration is sent once to the register endpoint and never stored.
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
