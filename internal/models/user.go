package models

// User represents a registered account.
//
// Users are referenced by categories, groups, transactions and split rows and
// are never hard-deleted once they own data.
type User struct {
	ID int64 `json:"id"`

	// Email is unique across all users and used for login.
	Email string `json:"email"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// PasswordHash is the bcrypt hash of the user's password. Never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64 `json:"createdAt"`
}

// FullName returns the display name used in settlement summaries.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
