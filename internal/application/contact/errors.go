package contact

import "errors"

var (
	ErrInvalidContactID = errors.New("invalid contact id")
	ErrInvalidContact   = errors.New("invalid contact payload")
	ErrContactNotFound  = errors.New("contact not found")
	ErrSaveContact      = errors.New("failed to save contact")
	ErrDeleteContact    = errors.New("failed to delete contact")
	ErrGetContact       = errors.New("failed to get contact")
	ErrListContacts     = errors.New("failed to list contacts")
)
