package models

// User represents a row in the aware_users table. The password is stored
// and returned in plaintext by contract.
type User struct {
	ID       int    `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Password string `json:"password" db:"password"`
}

// NewUser carries the fields a client supplies when creating a user.
type NewUser struct {
	Username string
	Password string
}

// UserUpdate carries the updatable user fields; nil means "leave unchanged".
type UserUpdate struct {
	Username *string
	Password *string
}
