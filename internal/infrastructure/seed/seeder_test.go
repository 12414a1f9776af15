package seed_test

import (
	"context"
	"testing"

	domain "github.com/chrisospina/contact-manager/internal/domain/contact"
	"github.com/chrisospina/contact-manager/internal/infrastructure/seed"
	"github.com/chrisospina/contact-manager/internal/pkg/logger"
)

type recordingRepo struct {
	existing []domain.Contact
	created  []domain.Contact
}

func (r *recordingRepo) GetByID(ctx context.Context, contactID string) (*domain.Contact, error) {
	return nil, domain.ErrContactNotFound
}

func (r *recordingRepo) ListAll(ctx context.Context) ([]domain.Contact, error) {
	return r.existing, nil
}

func (r *recordingRepo) Create(ctx context.Context, aggregate *domain.Contact) error {
	r.created = append(r.created, *aggregate)
	return nil
}

func (r *recordingRepo) Replace(ctx context.Context, aggregate *domain.Contact) error {
	return nil
}

func (r *recordingRepo) Delete(ctx context.Context, contactID string) error {
	return nil
}

func mustLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	t.Cleanup(log.Sync)
	return log
}

func TestSampleContactsOwnership(t *testing.T) {
	t.Parallel()

	contacts := seed.SampleContacts()
	if len(contacts) == 0 {
		t.Fatal("expected sample contacts")
	}

	seen := make(map[string]bool)
	for _, c := range contacts {
		if c.ID == "" || seen[c.ID] {
			t.Fatalf("bad contact id: %q", c.ID)
		}
		seen[c.ID] = true
		for _, e := range c.EmailAddresses {
			if e.ContactID != c.ID {
				t.Fatalf("email %s not owned by contact %s", e.ID, c.ID)
			}
		}
		for _, a := range c.Addresses {
			if a.ContactID != c.ID {
				t.Fatalf("address %s not owned by contact %s", a.ID, c.ID)
			}
		}
	}
}

func TestSeedRepositoryPopulatesEmptyStore(t *testing.T) {
	repo := &recordingRepo{}

	if err := seed.SeedRepository(context.Background(), repo, mustLogger(t)); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(repo.created) != len(seed.SampleContacts()) {
		t.Fatalf("expected %d creates, got %d", len(seed.SampleContacts()), len(repo.created))
	}
}

func TestSeedRepositorySkipsNonEmptyStore(t *testing.T) {
	repo := &recordingRepo{existing: []domain.Contact{{ID: "x", FirstName: "Amy", LastName: "Pond"}}}

	if err := seed.SeedRepository(context.Background(), repo, mustLogger(t)); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatalf("expected no creates, got %d", len(repo.created))
	}
}
