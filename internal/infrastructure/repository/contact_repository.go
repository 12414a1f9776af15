package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/chrisospina/contact-manager/internal/domain/contact"
	"github.com/chrisospina/contact-manager/internal/infrastructure/db/models"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) GetByID(ctx context.Context, contactID string) (*domain.Contact, error) {
	var row models.Contact

	err := r.db.WithContext(ctx).
		Preload("EmailAddresses").
		Preload("Addresses").
		First(&row, "id = ?", contactID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrContactNotFound
		}
		return nil, fmt.Errorf("get contact by id: %w", err)
	}

	aggregate := toDomain(row)
	return &aggregate, nil
}

// ListAll returns every contact with children attached, ordered by first
// name ascending (byte-wise) with id as the tiebreak.
func (r *ContactRepository) ListAll(ctx context.Context) ([]domain.Contact, error) {
	var rows []models.Contact

	err := r.db.WithContext(ctx).
		Preload("EmailAddresses").
		Preload("Addresses").
		Order("first_name ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}

	aggregates := make([]domain.Contact, 0, len(rows))
	for _, row := range rows {
		aggregates = append(aggregates, toDomain(row))
	}

	return aggregates, nil
}

func (r *ContactRepository) Create(ctx context.Context, aggregate *domain.Contact) error {
	row := fromDomain(aggregate)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&row).Error
	})
	if err != nil {
		return fmt.Errorf("create contact: %w", err)
	}

	return nil
}

// Replace overwrites the scalar columns and swaps both child sets in a
// single transaction. The prior children are deleted outright; the new ones
// are inserted with the ids already assigned on the aggregate.
func (r *ContactRepository) Replace(ctx context.Context, aggregate *domain.Contact) error {
	row := fromDomain(aggregate)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Contact{}).
			Where("id = ?", row.ID).
			Updates(map[string]any{
				"title":      row.Title,
				"first_name": row.FirstName,
				"last_name":  row.LastName,
				"dob":        row.DOB,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrContactNotFound
		}

		if err := tx.Where("contact_id = ?", row.ID).Delete(&models.EmailAddress{}).Error; err != nil {
			return err
		}
		if err := tx.Where("contact_id = ?", row.ID).Delete(&models.Address{}).Error; err != nil {
			return err
		}

		if len(row.EmailAddresses) > 0 {
			if err := tx.Create(&row.EmailAddresses).Error; err != nil {
				return err
			}
		}
		if len(row.Addresses) > 0 {
			if err := tx.Create(&row.Addresses).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrContactNotFound) {
			return domain.ErrContactNotFound
		}
		return fmt.Errorf("replace contact: %w", err)
	}

	return nil
}

// Delete removes the contact and every owned child row, not only the ones a
// caller happened to load, so no orphans survive the aggregate.
func (r *ContactRepository) Delete(ctx context.Context, contactID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("contact_id = ?", contactID).Delete(&models.EmailAddress{}).Error; err != nil {
			return err
		}
		if err := tx.Where("contact_id = ?", contactID).Delete(&models.Address{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.Contact{}, "id = ?", contactID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrContactNotFound
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrContactNotFound) {
			return domain.ErrContactNotFound
		}
		return fmt.Errorf("delete contact: %w", err)
	}

	return nil
}

func toDomain(row models.Contact) domain.Contact {
	emails := make([]domain.EmailAddress, 0, len(row.EmailAddresses))
	for _, email := range row.EmailAddresses {
		emails = append(emails, domain.EmailAddress{
			ID:        email.ID,
			ContactID: email.ContactID,
			Type:      email.Type,
			Email:     email.Email,
		})
	}

	addresses := make([]domain.Address, 0, len(row.Addresses))
	for _, address := range row.Addresses {
		addresses = append(addresses, domain.Address{
			ID:        address.ID,
			ContactID: address.ContactID,
			Type:      address.Type,
			Street1:   address.Street1,
			Street2:   address.Street2,
			City:      address.City,
			State:     address.State,
			Zip:       address.Zip,
		})
	}

	return domain.Contact{
		ID:             row.ID,
		Title:          row.Title,
		FirstName:      row.FirstName,
		LastName:       row.LastName,
		DOB:            row.DOB,
		EmailAddresses: emails,
		Addresses:      addresses,
	}
}

func fromDomain(aggregate *domain.Contact) models.Contact {
	emails := make([]models.EmailAddress, 0, len(aggregate.EmailAddresses))
	for _, email := range aggregate.EmailAddresses {
		emails = append(emails, models.EmailAddress{
			ID:        email.ID,
			ContactID: email.ContactID,
			Type:      email.Type,
			Email:     email.Email,
		})
	}

	addresses := make([]models.Address, 0, len(aggregate.Addresses))
	for _, address := range aggregate.Addresses {
		addresses = append(addresses, models.Address{
			ID:        address.ID,
			ContactID: address.ContactID,
			Type:      address.Type,
			Street1:   address.Street1,
			Street2:   address.Street2,
			City:      address.City,
			State:     address.State,
			Zip:       address.Zip,
		})
	}

	return models.Contact{
		ID:             aggregate.ID,
		Title:          aggregate.Title,
		FirstName:      aggregate.FirstName,
		LastName:       aggregate.LastName,
		DOB:            aggregate.DOB,
		EmailAddresses: emails,
		Addresses:      addresses,
	}
}
