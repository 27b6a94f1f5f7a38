package repository

// CreateNoteOptions holds the body of POST /notes.
type CreateNoteOptions struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
