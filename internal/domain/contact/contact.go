package contact

import (
	"strings"
	"time"
)

// EmailAddress is exclusively owned by one contact; its lifetime is bounded
// by the owner. No format validation is applied to the email string.
type EmailAddress struct {
	ID        string
	ContactID string
	Type      string
	Email     string
}

// Address is a postal address exclusively owned by one contact.
type Address struct {
	ID        string
	ContactID string
	Type      string
	Street1   string
	Street2   string
	City      string
	State     string
	Zip       string
}

type Contact struct {
	ID             string
	Title          string
	FirstName      string
	LastName       string
	DOB            *time.Time
	EmailAddresses []EmailAddress
	Addresses      []Address
}

func NewContact(id, title, firstName, lastName string, dob *time.Time, emails []EmailAddress, addresses []Address) (Contact, error) {
	if strings.TrimSpace(firstName) == "" {
		return Contact{}, ErrMissingFirstName
	}
	if strings.TrimSpace(lastName) == "" {
		return Contact{}, ErrMissingLastName
	}

	return Contact{
		ID:             id,
		Title:          title,
		FirstName:      firstName,
		LastName:       lastName,
		DOB:            dob,
		EmailAddresses: emails,
		Addresses:      addresses,
	}, nil
}
