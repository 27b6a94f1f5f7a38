package note

// LoginInput is the input for Login. Fields are sent as-is, empty or not.
type LoginInput struct {
	Username string
	Password string
}

// RegisterInput is the input for Register.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// CreateNoteInput is the input for CreateNote.
type CreateNoteInput struct {
	Title   string
	Content string
}

// Policy selects how failures of load, delete and register are reported.
type Policy int

const (
	// PolicyStrict reports every HTTP and network failure to the user.
	PolicyStrict Policy = iota
	// PolicyLenient keeps the legacy behaviour: load fails silently, delete
	// ignores the response status and register always confirms.
	PolicyLenient
)

func (p Policy) String() string {
	if p == PolicyLenient {
		return "lenient"
	}
	return "strict"
}

// User-facing messages.
const (
	MsgRegistered      = "Registered! Now login."
	MsgUnexpectedReply = "Unexpected response from server"
)
