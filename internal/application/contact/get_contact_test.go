package contact_test

import (
	"context"
	"errors"
	"testing"

	app "github.com/chrisospina/contact-manager/internal/application/contact"
)

func TestGetContactSuccess(t *testing.T) {
	t.Parallel()

	uc := app.NewGetContact(seededRepo())

	out, err := uc.Execute(context.Background(), app.GetContactInput{ContactID: existingID})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.ID != existingID {
		t.Fatalf("unexpected id: %s", out.ID)
	}
	if len(out.EmailAddresses) != 2 {
		t.Fatalf("expected 2 emails, got %d", len(out.EmailAddresses))
	}
	if len(out.Addresses) != 1 {
		t.Fatalf("expected 1 address, got %d", len(out.Addresses))
	}
}

func TestGetContactInvalidID(t *testing.T) {
	t.Parallel()

	uc := app.NewGetContact(newFakeContactRepo())

	_, err := uc.Execute(context.Background(), app.GetContactInput{ContactID: "not-a-uuid"})
	if !errors.Is(err, app.ErrInvalidContactID) {
		t.Fatalf("expected ErrInvalidContactID, got %v", err)
	}
}

func TestGetContactNotFound(t *testing.T) {
	t.Parallel()

	uc := app.NewGetContact(newFakeContactRepo())

	_, err := uc.Execute(context.Background(), app.GetContactInput{ContactID: existingID})
	if !errors.Is(err, app.ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}

func TestGetContactRepositoryError(t *testing.T) {
	t.Parallel()

	repo := newFakeContactRepo()
	repo.getErr = errors.New("db down")
	uc := app.NewGetContact(repo)

	_, err := uc.Execute(context.Background(), app.GetContactInput{ContactID: existingID})
	if !errors.Is(err, app.ErrGetContact) {
		t.Fatalf("expected ErrGetContact, got %v", err)
	}
}
