package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactLead is a general inquiry, optionally tied to a listing.
type ContactLead struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	Email      string    `gorm:"not null" json:"email"`
	Phone      string    `gorm:"not null" json:"phone"`
	Message    string    `gorm:"type:text;not null" json:"message"`
	PropertyID *string   `gorm:"type:varchar(36);index" json:"property_id"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

func (ContactLead) TableName() string {
	return "contacts"
}

func (c *ContactLead) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// FinancingLead is a mortgage simulation request.
type FinancingLead struct {
	ID            string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Email         string    `gorm:"not null" json:"email"`
	Phone         string    `gorm:"not null" json:"phone"`
	PropertyValue float64   `gorm:"not null" json:"property_value"`
	DownPayment   float64   `gorm:"not null" json:"down_payment"`
	TermYears     int       `gorm:"not null" json:"term_years"`
	CreatedAt     time.Time `gorm:"index" json:"created_at"`
}

func (FinancingLead) TableName() string {
	return "financing"
}

func (f *FinancingLead) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// InsuranceLead is a home-insurance quote request.
type InsuranceLead struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Phone     string    `gorm:"not null" json:"phone"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (InsuranceLead) TableName() string {
	return "insurance"
}

func (i *InsuranceLead) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// ContactRequest is the payload accepted by POST /api/contacts.
type ContactRequest struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Message    string  `json:"message"`
	PropertyID *string `json:"property_id"`
}

// FinancingRequest is the payload accepted by POST /api/financing.
type FinancingRequest struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	PropertyValue float64 `json:"property_value"`
	DownPayment   float64 `json:"down_payment"`
	TermYears     int     `json:"term_years"`
}

// InsuranceRequest is the payload accepted by POST /api/insurance.
type InsuranceRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
