package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	domain "github.com/chrisospina/contact-manager/internal/domain/contact"
)

type SaveEmailInput struct {
	Type  string
	Email string
}

type SaveAddressInput struct {
	Type    string
	Street1 string
	Street2 string
	City    string
	State   string
	Zip     string
}

type SaveContactInput struct {
	ContactID string
	Title     string
	FirstName string
	LastName  string
	DOB       *time.Time
	Emails    []SaveEmailInput
	Addresses []SaveAddressInput
}

type SaveContactOutput struct {
	ID      string `json:"id"`
	Created bool   `json:"created"`
}

type SaveContact interface {
	Execute(ctx context.Context, in SaveContactInput) (SaveContactOutput, error)
}

type saveContact struct {
	repo     domain.Repository
	notifier ChangeNotifier
}

func NewSaveContact(repo domain.Repository, notifier ChangeNotifier) SaveContact {
	return &saveContact{repo: repo, notifier: notifier}
}

// Execute creates a new contact when no id is supplied and otherwise updates
// the existing one. On update the full email and address collections are
// discarded and rebuilt from the submitted payload in the same transaction;
// there is no per-child diffing, so child ids change on every save. The
// change notification fires only after the commit has succeeded.
func (uc *saveContact) Execute(ctx context.Context, in SaveContactInput) (SaveContactOutput, error) {
	contactID := strings.TrimSpace(in.ContactID)
	isNew := contactID == ""

	if !isNew && !contactIDPattern.MatchString(contactID) {
		return SaveContactOutput{}, ErrInvalidContactID
	}
	if isNew {
		contactID = uuid.NewString()
	}

	emails := make([]domain.EmailAddress, 0, len(in.Emails))
	for _, email := range in.Emails {
		emails = append(emails, domain.EmailAddress{
			ID:        uuid.NewString(),
			ContactID: contactID,
			Type:      email.Type,
			Email:     email.Email,
		})
	}

	addresses := make([]domain.Address, 0, len(in.Addresses))
	for _, address := range in.Addresses {
		addresses = append(addresses, domain.Address{
			ID:        uuid.NewString(),
			ContactID: contactID,
			Type:      address.Type,
			Street1:   address.Street1,
			Street2:   address.Street2,
			City:      address.City,
			State:     address.State,
			Zip:       address.Zip,
		})
	}

	aggregate, err := domain.NewContact(contactID, in.Title, in.FirstName, in.LastName, in.DOB, emails, addresses)
	if err != nil {
		return SaveContactOutput{}, fmt.Errorf("%w: %v", ErrInvalidContact, err)
	}

	if isNew {
		if err := uc.repo.Create(ctx, &aggregate); err != nil {
			return SaveContactOutput{}, fmt.Errorf("%w: %v", ErrSaveContact, err)
		}
	} else {
		if _, err := uc.repo.GetByID(ctx, contactID); err != nil {
			if errors.Is(err, domain.ErrContactNotFound) {
				return SaveContactOutput{}, ErrContactNotFound
			}
			return SaveContactOutput{}, fmt.Errorf("%w: %v", ErrSaveContact, err)
		}

		if err := uc.repo.Replace(ctx, &aggregate); err != nil {
			if errors.Is(err, domain.ErrContactNotFound) {
				return SaveContactOutput{}, ErrContactNotFound
			}
			return SaveContactOutput{}, fmt.Errorf("%w: %v", ErrSaveContact, err)
		}
	}

	uc.notifier.ContactsChanged(ctx)

	return SaveContactOutput{ID: contactID, Created: isNew}, nil
}
