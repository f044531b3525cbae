package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PriceTypeSale = "sale"
	PriceTypeRent = "rent"
)

type Property struct {
	ID           string     `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Title        string     `gorm:"not null" json:"title"`
	Description  string     `gorm:"type:text" json:"description"`
	Location     string     `json:"location"`
	Address      string     `json:"address"`
	Area         float64    `json:"area"`
	Bedrooms     *int       `json:"bedrooms"`
	Bathrooms    *int       `json:"bathrooms"`
	Garage       *int       `json:"garage"`
	Price        float64    `gorm:"not null;index" json:"price"`
	PriceType    string     `gorm:"not null;default:'sale'" json:"price_type"`
	Condominium  *float64   `json:"condominium"`
	IPTU         *float64   `json:"iptu"`
	PriceDetail  *string    `json:"price_detail"`
	PropertyType string     `gorm:"index" json:"property_type"`
	Region       string     `gorm:"index" json:"region"`
	Features     StringList `gorm:"type:text" json:"features"`
	Images       StringList `gorm:"type:text" json:"images"`
	ContactPhone string     `json:"contact_phone"`
	ContactWhats string     `json:"contact_whatsapp"`
	Status       string     `gorm:"default:'active'" json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (Property) TableName() string {
	return "properties"
}

func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// PropertyRequest is the payload accepted by the admin create/update routes.
type PropertyRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
	Address      string   `json:"address"`
	Area         float64  `json:"area"`
	Bedrooms     *int     `json:"bedrooms"`
	Bathrooms    *int     `json:"bathrooms"`
	Garage       *int     `json:"garage"`
	Price        float64  `json:"price" binding:"required"`
	PriceType    string   `json:"price_type"`
	Condominium  *float64 `json:"condominium"`
	IPTU         *float64 `json:"iptu"`
	PriceDetail  *string  `json:"price_detail"`
	PropertyType string   `json:"property_type"`
	Region       string   `json:"region"`
	Features     []string `json:"features"`
	Images       []string `json:"images"`
	ContactPhone string   `json:"contact_phone"`
	ContactWhats string   `json:"contact_whatsapp"`
	Status       string   `json:"status"`
}

// ToProperty builds a new listing, applying the create-time defaults
// for price type and status.
func (r *PropertyRequest) ToProperty() *Property {
	property := r.ToPatch()
	if property.PriceType == "" {
		property.PriceType = PriceTypeSale
	}
	if property.Status == "" {
		property.Status = "active"
	}
	return property
}

// ToPatch builds an update patch with no defaulting: fields the request
// omits stay zero so a partial update never overwrites the stored
// price type or status.
func (r *PropertyRequest) ToPatch() *Property {
	return &Property{
		Title:        r.Title,
		Description:  r.Description,
		Location:     r.Location,
		Address:      r.Address,
		Area:         r.Area,
		Bedrooms:     r.Bedrooms,
		Bathrooms:    r.Bathrooms,
		Garage:       r.Garage,
		Price:        r.Price,
		PriceType:    r.PriceType,
		Condominium:  r.Condominium,
		IPTU:         r.IPTU,
		PriceDetail:  r.PriceDetail,
		PropertyType: r.PropertyType,
		Region:       r.Region,
		Features:     r.Features,
		Images:       r.Images,
		ContactPhone: r.ContactPhone,
		ContactWhats: r.ContactWhats,
		Status:       r.Status,
	}
}
