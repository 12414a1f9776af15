package seed

import (
	"time"

	"github.com/google/uuid"

	domain "github.com/chrisospina/contact-manager/internal/domain/contact"
)

func date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

// SampleContacts builds the startup data set. Identifiers are generated per
// run; the content is stable.
func SampleContacts() []domain.Contact {
	type emailSample struct{ typ, email string }
	type addressSample struct{ typ, street1, street2, city, state, zip string }
	type contactSample struct {
		title, first, last string
		dob                *time.Time
		emails             []emailSample
		addresses          []addressSample
	}

	samples := []contactSample{
		{
			title: "Ms", first: "Amy", last: "Pond", dob: date(1989, 4, 26),
			emails: []emailSample{
				{"home", "amy.pond@example.com"},
				{"work", "a.pond@leadworth.example.com"},
			},
			addresses: []addressSample{
				{"home", "12 Rose Lane", "", "Leadworth", "NY", "10001"},
			},
		},
		{
			title: "Mr", first: "Bob", last: "Stone", dob: date(1975, 11, 2),
			emails: []emailSample{
				{"home", "bob.stone@example.com"},
			},
			addresses: []addressSample{
				{"home", "44 Granite Way", "Apt 3", "Boulder", "CO", "80301"},
				{"work", "900 Quarry Rd", "", "Boulder", "CO", "80302"},
			},
		},
		{
			title: "Dr", first: "Zoe", last: "Heriot", dob: nil,
			emails: []emailSample{
				{"work", "zoe.heriot@wheel.example.com"},
			},
		},
	}

	contacts := make([]domain.Contact, 0, len(samples))
	for _, sample := range samples {
		contactID := uuid.NewString()

		emails := make([]domain.EmailAddress, 0, len(sample.emails))
		for _, e := range sample.emails {
			emails = append(emails, domain.EmailAddress{
				ID:        uuid.NewString(),
				ContactID: contactID,
				Type:      e.typ,
				Email:     e.email,
			})
		}

		addresses := make([]domain.Address, 0, len(sample.addresses))
		for _, a := range sample.addresses {
			addresses = append(addresses, domain.Address{
				ID:        uuid.NewString(),
				ContactID: contactID,
				Type:      a.typ,
				Street1:   a.street1,
				Street2:   a.street2,
				City:      a.city,
				State:     a.state,
				Zip:       a.zip,
			})
		}

		contacts = append(contacts, domain.Contact{
			ID:             contactID,
			Title:          sample.title,
			FirstName:      sample.first,
			LastName:       sample.last,
			DOB:            sample.dob,
			EmailAddresses: emails,
			Addresses:      addresses,
		})
	}

	return contacts
}
