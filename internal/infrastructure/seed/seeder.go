package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/chrisospina/contact-manager/internal/domain/contact"
	"github.com/chrisospina/contact-manager/internal/pkg/logger"
)

// PgxSeeder bulk-loads the sample contacts into a postgres database with
// COPY, one transaction for the whole set. It is a no-op when any contact
// already exists.
type PgxSeeder struct {
	pool *pgxpool.Pool
	log  *logger.Logger
}

func NewPgxSeeder(pool *pgxpool.Pool, log *logger.Logger) *PgxSeeder {
	return &PgxSeeder{pool: pool, log: log.With("component", "seeder")}
}

func (s *PgxSeeder) Run(ctx context.Context) error {
	var count int64
	if err := s.pool.QueryRow(ctx, "SELECT COUNT(*) FROM contacts").Scan(&count); err != nil {
		return fmt.Errorf("count contacts: %w", err)
	}
	if count > 0 {
		s.log.Debug("skipping seed; contacts already present", "count", count)
		return nil
	}

	contacts := SampleContacts()
	now := time.Now().UTC()

	contactRows := make([][]any, 0, len(contacts))
	emailRows := make([][]any, 0)
	addressRows := make([][]any, 0)
	for _, c := range contacts {
		contactRows = append(contactRows, []any{c.ID, c.Title, c.FirstName, c.LastName, c.DOB, now, now})
		for _, e := range c.EmailAddresses {
			emailRows = append(emailRows, []any{e.ID, e.ContactID, e.Type, e.Email, now, now})
		}
		for _, a := range c.Addresses {
			addressRows = append(addressRows, []any{a.ID, a.ContactID, a.Type, a.Street1, a.Street2, a.City, a.State, a.Zip, now, now})
		}
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"contacts"},
		[]string{"id", "title", "first_name", "last_name", "dob", "created_at", "updated_at"},
		pgx.CopyFromRows(contactRows),
	); err != nil {
		return fmt.Errorf("copy contacts: %w", err)
	}

	if len(emailRows) > 0 {
		if _, err := tx.CopyFrom(
			ctx,
			pgx.Identifier{"email_addresses"},
			[]string{"id", "contact_id", "type", "email", "created_at", "updated_at"},
			pgx.CopyFromRows(emailRows),
		); err != nil {
			return fmt.Errorf("copy email addresses: %w", err)
		}
	}

	if len(addressRows) > 0 {
		if _, err := tx.CopyFrom(
			ctx,
			pgx.Identifier{"addresses"},
			[]string{"id", "contact_id", "type", "street1", "street2", "city", "state", "zip", "created_at", "updated_at"},
			pgx.CopyFromRows(addressRows),
		); err != nil {
			return fmt.Errorf("copy addresses: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}

	s.log.Info("seeded contacts", "contacts", len(contactRows), "emails", len(emailRows), "addresses", len(addressRows))
	return nil
}

// SeedRepository is the fallback path for providers without a pgx pool (the
// in-memory sqlite database): one Create per sample contact.
func SeedRepository(ctx context.Context, repo domain.Repository, log *logger.Logger) error {
	existing, err := repo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("list contacts: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	contacts := SampleContacts()
	for i := range contacts {
		if err := repo.Create(ctx, &contacts[i]); err != nil {
			return fmt.Errorf("seed contact %s: %w", contacts[i].ID, err)
		}
	}

	log.Info("seeded contacts", "contacts", len(contacts))
	return nil
}
