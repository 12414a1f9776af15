package contact

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/chrisospina/contact-manager/internal/domain/contact"
)

type GetContactInput struct {
	ContactID string
}

type GetContact interface {
	Execute(ctx context.Context, in GetContactInput) (ContactOutput, error)
}

type getContact struct {
	repo domain.Repository
}

func NewGetContact(repo domain.Repository) GetContact {
	return &getContact{repo: repo}
}

func (uc *getContact) Execute(ctx context.Context, in GetContactInput) (ContactOutput, error) {
	if !contactIDPattern.MatchString(in.ContactID) {
		return ContactOutput{}, ErrInvalidContactID
	}

	aggregate, err := uc.repo.GetByID(ctx, in.ContactID)
	if err != nil {
		if errors.Is(err, domain.ErrContactNotFound) {
			return ContactOutput{}, ErrContactNotFound
		}
		return ContactOutput{}, fmt.Errorf("%w: %v", ErrGetContact, err)
	}

	return toContactOutput(*aggregate), nil
}
