package model

// User is the account behind the current session, as reported by /auth/me.
type User struct {
	ID       ID     `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
