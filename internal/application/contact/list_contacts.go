package contact

import (
	"context"
	"fmt"

	domain "github.com/chrisospina/contact-manager/internal/domain/contact"
)

type ListContactsOutput struct {
	Contacts []ContactOutput `json:"contacts"`
}

type ListContacts interface {
	Execute(ctx context.Context) (ListContactsOutput, error)
}

type listContacts struct {
	repo domain.Repository
}

func NewListContacts(repo domain.Repository) ListContacts {
	return &listContacts{repo: repo}
}

// Execute returns every contact in display order: first name ascending,
// byte-wise, with ties broken by id. The ordering comes from the repository.
func (uc *listContacts) Execute(ctx context.Context) (ListContactsOutput, error) {
	aggregates, err := uc.repo.ListAll(ctx)
	if err != nil {
		return ListContactsOutput{}, fmt.Errorf("%w: %v", ErrListContacts, err)
	}

	contacts := make([]ContactOutput, 0, len(aggregates))
	for _, aggregate := range aggregates {
		contacts = append(contacts, toContactOutput(aggregate))
	}

	return ListContactsOutput{Contacts: contacts}, nil
}
