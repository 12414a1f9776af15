package contact

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/chrisospina/contact-manager/internal/domain/contact"
)

type DeleteContactInput struct {
	ContactID string
}

type DeleteContact interface {
	Execute(ctx context.Context, in DeleteContactInput) error
}

type deleteContact struct {
	repo     domain.Repository
	notifier ChangeNotifier
}

func NewDeleteContact(repo domain.Repository, notifier ChangeNotifier) DeleteContact {
	return &deleteContact{repo: repo, notifier: notifier}
}

// Execute removes the contact and every owned email address and postal
// address in one transaction. A missing id is a caller error, reported as
// ErrContactNotFound, distinct from persistence failures. No notification
// is sent unless the delete durably committed.
func (uc *deleteContact) Execute(ctx context.Context, in DeleteContactInput) error {
	if !contactIDPattern.MatchString(in.ContactID) {
		return ErrInvalidContactID
	}

	if _, err := uc.repo.GetByID(ctx, in.ContactID); err != nil {
		if errors.Is(err, domain.ErrContactNotFound) {
			return ErrContactNotFound
		}
		return fmt.Errorf("%w: %v", ErrDeleteContact, err)
	}

	if err := uc.repo.Delete(ctx, in.ContactID); err != nil {
		if errors.Is(err, domain.ErrContactNotFound) {
			return ErrContactNotFound
		}
		return fmt.Errorf("%w: %v", ErrDeleteContact, err)
	}

	uc.notifier.ContactsChanged(ctx)

	return nil
}
