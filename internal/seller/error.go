package seller

import "errors"

var (
	// -- Conflicts --
	ErrUsernameTaken = errors.New("username already registered")
	ErrEmailTaken    = errors.New("email already registered")

	// -- Resource state --
	ErrSellerNotFound = errors.New("seller not found")

	// -- Authentication --
	// One error for both unknown username and wrong password, so responses
	// cannot be used for username enumeration.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// -- Constants (external systems) --
	PgUniqueViolation = "23505"
)
