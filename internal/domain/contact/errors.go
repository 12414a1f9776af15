package contact

import "errors"

var (
	ErrContactNotFound  = errors.New("contact not found")
	ErrMissingFirstName = errors.New("first name is required")
	ErrMissingLastName  = errors.New("last name is required")
)
