package contact_test

import (
	"context"
	"errors"
	"testing"

	app "github.com/chrisospina/contact-manager/internal/application/contact"
)

func TestDeleteContactRemovesAggregate(t *testing.T) {
	t.Parallel()

	repo := seededRepo()
	notifier := &spyNotifier{}
	uc := app.NewDeleteContact(repo, notifier)

	if err := uc.Execute(context.Background(), app.DeleteContactInput{ContactID: existingID}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, ok := repo.contacts[existingID]; ok {
		t.Fatal("expected contact to be removed")
	}
	if notifier.signals != 1 {
		t.Fatalf("expected 1 broadcast, got %d", notifier.signals)
	}
}

func TestDeleteContactNotFound(t *testing.T) {
	t.Parallel()

	notifier := &spyNotifier{}
	uc := app.NewDeleteContact(newFakeContactRepo(), notifier)

	err := uc.Execute(context.Background(), app.DeleteContactInput{ContactID: existingID})
	if !errors.Is(err, app.ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
	if notifier.signals != 0 {
		t.Fatalf("expected no broadcast, got %d", notifier.signals)
	}
}

func TestDeleteContactInvalidID(t *testing.T) {
	t.Parallel()

	uc := app.NewDeleteContact(newFakeContactRepo(), &spyNotifier{})

	err := uc.Execute(context.Background(), app.DeleteContactInput{ContactID: "nope"})
	if !errors.Is(err, app.ErrInvalidContactID) {
		t.Fatalf("expected ErrInvalidContactID, got %v", err)
	}
}

func TestDeleteContactNoBroadcastOnCommitFailure(t *testing.T) {
	t.Parallel()

	repo := seededRepo()
	repo.deleteErr = errors.New("io failure")
	notifier := &spyNotifier{}
	uc := app.NewDeleteContact(repo, notifier)

	err := uc.Execute(context.Background(), app.DeleteContactInput{ContactID: existingID})
	if !errors.Is(err, app.ErrDeleteContact) {
		t.Fatalf("expected ErrDeleteContact, got %v", err)
	}
	if notifier.signals != 0 {
		t.Fatalf("expected no broadcast after failed commit, got %d", notifier.signals)
	}
}
