package database

import (
	"errors"
	"strconv"

	"gorm.io/gorm"
)

// BedroomsFourPlus matches any listing with four or more bedrooms,
// unlike the plain numeric values which match exactly.
const BedroomsFourPlus = "4+"

var ErrInvalidBedrooms = errors.New("invalid bedrooms filter")

// PropertyFilter is the optional search criteria for listings.
// Zero-valued fields add no predicate; the set fields are ANDed.
type PropertyFilter struct {
	Type     string
	Region   string
	MinPrice float64
	MaxPrice float64
	Bedrooms string
}

// IsEmpty reports whether no field is set.
func (f PropertyFilter) IsEmpty() bool {
	return f.Type == "" && f.Region == "" && f.MinPrice == 0 && f.MaxPrice == 0 && f.Bedrooms == ""
}

// Apply composes the filter's predicates onto the query. No predicate is
// attached when a field is absent, so an empty filter matches everything.
func (f PropertyFilter) Apply(query *gorm.DB) (*gorm.DB, error) {
	if f.Type != "" {
		query = query.Where("property_type = ?", f.Type)
	}
	if f.Region != "" {
		query = query.Where("region = ?", f.Region)
	}
	if f.MinPrice > 0 {
		query = query.Where("price >= ?", f.MinPrice)
	}
	if f.MaxPrice > 0 {
		query = query.Where("price <= ?", f.MaxPrice)
	}
	if f.Bedrooms != "" {
		if f.Bedrooms == BedroomsFourPlus {
			query = query.Where("bedrooms >= ?", 4)
		} else {
			bedrooms, err := strconv.Atoi(f.Bedrooms)
			if err != nil {
				return nil, ErrInvalidBedrooms
			}
			query = query.Where("bedrooms = ?", bedrooms)
		}
	}
	return query, nil
}
