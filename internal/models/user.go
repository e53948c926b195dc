package models

// User is a locally stored credential record. The whole list lives in the
// "users" storage key; there is no per-user scoping of financial data.
// The password is stored as a bcrypt hash, never in clear text.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
	FullName     string `json:"fullName,omitempty"`
}
