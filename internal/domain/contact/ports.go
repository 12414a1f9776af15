package contact

import "context"

// Repository is the persistence port for the contact aggregate. Every write
// method commits atomically: either the contact and all of its owned children
// are applied together or nothing is.
type Repository interface {
	// GetByID loads a contact with both child collections attached.
	// Returns ErrContactNotFound when no contact has the given id.
	GetByID(ctx context.Context, contactID string) (*Contact, error)

	// ListAll returns every contact, ordered by first name ascending
	// (byte-wise) with ties broken by id.
	ListAll(ctx context.Context) ([]Contact, error)

	// Create persists a new contact together with its children.
	Create(ctx context.Context, aggregate *Contact) error

	// Replace overwrites the scalar fields of an existing contact and swaps
	// its full child collections for the ones on the aggregate. Returns
	// ErrContactNotFound when the contact no longer exists.
	Replace(ctx context.Context, aggregate *Contact) error

	// Delete removes the contact and all of its owned children.
	// Returns ErrContactNotFound when the contact does not exist.
	Delete(ctx context.Context, contactID string) error
}
