package contact_test

import (
	"context"
	"errors"
	"testing"
	"time"

	app "github.com/chrisospina/contact-manager/internal/application/contact"
	domain "github.com/chrisospina/contact-manager/internal/domain/contact"
)

func TestListContactsMapsRepositoryOrder(t *testing.T) {
	t.Parallel()

	dob := time.Date(1989, 4, 26, 0, 0, 0, 0, time.UTC)
	repo := newFakeContactRepo()
	repo.list = []domain.Contact{
		{ID: "11111111-1111-4111-8111-111111111111", FirstName: "Amy", LastName: "Pond", DOB: &dob},
		{ID: "22222222-2222-4222-8222-222222222222", FirstName: "Bob", LastName: "Stone"},
		{ID: "33333333-3333-4333-8333-333333333333", FirstName: "Zoe", LastName: "Heriot"},
	}

	uc := app.NewListContacts(repo)

	out, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(out.Contacts) != 3 {
		t.Fatalf("expected 3 contacts, got %d", len(out.Contacts))
	}
	if out.Contacts[0].FirstName != "Amy" || out.Contacts[1].FirstName != "Bob" || out.Contacts[2].FirstName != "Zoe" {
		t.Fatalf("repository order not preserved: %+v", out.Contacts)
	}
	if out.Contacts[0].DOB != "1989-04-26" {
		t.Fatalf("unexpected dob format: %s", out.Contacts[0].DOB)
	}
}

func TestListContactsRepositoryError(t *testing.T) {
	t.Parallel()

	repo := newFakeContactRepo()
	repo.listErr = errors.New("db down")
	uc := app.NewListContacts(repo)

	_, err := uc.Execute(context.Background())
	if !errors.Is(err, app.ErrListContacts) {
		t.Fatalf("expected ErrListContacts, got %v", err)
	}
}
