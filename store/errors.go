package store

import "errors"

var (
	// ErrDuplicateUsername indicates the username is already registered.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrDuplicateEmail indicates the email is already registered.
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrInvalidCredentials is returned for both an unknown username and a
	// wrong password, so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	// ErrNotFound indicates a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidRestaurant indicates a menu item referenced a nonexistent restaurant.
	ErrInvalidRestaurant = errors.New("restaurant does not exist")
)
