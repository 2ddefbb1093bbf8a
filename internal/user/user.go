package user

import "errors"

var (
	// ErrNotFound is returned when no account exists for a username.
	ErrNotFound = errors.New("user not found")
	// ErrAlreadyExists is returned when registering a username that is taken.
	ErrAlreadyExists = errors.New("user already exists")
)

// User is a registered account. Passwords are stored as given; the service
// keeps no credential state beyond this record and accounts are never
// updated or deleted after creation.
type User struct {
	Username string `json:"username"`
	Password string `json:"-"`
}
