package models

import "time"

type Contact struct {
	ID             string `gorm:"type:uuid;primaryKey"`
	Title          string `gorm:"size:20"`
	FirstName      string `gorm:"size:120;not null;index"`
	LastName       string `gorm:"size:120;not null"`
	DOB            *time.Time
	EmailAddresses []EmailAddress `gorm:"foreignKey:ContactID"`
	Addresses      []Address      `gorm:"foreignKey:ContactID"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Contact) TableName() string {
	return "contacts"
}

type EmailAddress struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	ContactID string `gorm:"type:uuid;index;not null"`
	Type      string `gorm:"size:40;not null"`
	Email     string `gorm:"size:320;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (EmailAddress) TableName() string {
	return "email_addresses"
}

type Address struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	ContactID string `gorm:"type:uuid;index;not null"`
	Type      string `gorm:"size:40;not null"`
	Street1   string `gorm:"size:255;not null"`
	Street2   string `gorm:"size:255"`
	City      string `gorm:"size:120;not null"`
	State     string `gorm:"size:120;not null"`
	Zip       string `gorm:"size:20;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Address) TableName() string {
	return "addresses"
}
