package contact

import (
	"regexp"

	domain "github.com/chrisospina/contact-manager/internal/domain/contact"
)

const dateLayout = "2006-01-02"

var contactIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[1-5][0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`)

type EmailAddressOutput struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Email string `json:"email"`
}

type AddressOutput struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Street1 string `json:"street1"`
	Street2 string `json:"street2,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
}

type ContactOutput struct {
	ID             string               `json:"id"`
	Title          string               `json:"title"`
	FirstName      string               `json:"first_name"`
	LastName       string               `json:"last_name"`
	DOB            string               `json:"dob,omitempty"`
	EmailAddresses []EmailAddressOutput `json:"email_addresses"`
	Addresses      []AddressOutput      `json:"addresses"`
}

func toContactOutput(aggregate domain.Contact) ContactOutput {
	emails := make([]EmailAddressOutput, 0, len(aggregate.EmailAddresses))
	for _, email := range aggregate.EmailAddresses {
		emails = append(emails, EmailAddressOutput{
			ID:    email.ID,
			Type:  email.Type,
			Email: email.Email,
		})
	}

	addresses := make([]AddressOutput, 0, len(aggregate.Addresses))
	for _, address := range aggregate.Addresses {
		addresses = append(addresses, AddressOutput{
			ID:      address.ID,
			Type:    address.Type,
			Street1: address.Street1,
			Street2: address.Street2,
			City:    address.City,
			State:   address.State,
			Zip:     address.Zip,
		})
	}

	out := ContactOutput{
		ID:             aggregate.ID,
		Title:          aggregate.Title,
		FirstName:      aggregate.FirstName,
		LastName:       aggregate.LastName,
		EmailAddresses: emails,
		Addresses:      addresses,
	}
	if aggregate.DOB != nil {
		out.DOB = aggregate.DOB.Format(dateLayout)
	}
	return out
}
