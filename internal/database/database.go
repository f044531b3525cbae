package database

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"brasiliaimoveis/server/internal/models"
)

// ErrPropertyNotFound is returned by writes targeting a missing listing.
var ErrPropertyNotFound = errors.New("property not found")

type Database struct {
	db *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, err
	}

	return &Database{db: db}, nil
}

// NewTestDB opens a private in-memory database for tests. Each call gets
// its own database; cache=shared keeps it alive across pooled connections.
func NewTestDB() (*Database, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	return &Database{db: db}, nil
}

func (d *Database) GetDB() *gorm.DB {
	return d.db
}

func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetProperties returns every listing, newest first.
func (d *Database) GetProperties() ([]models.Property, error) {
	var properties []models.Property
	err := d.db.Order("created_at DESC").Find(&properties).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	return properties, nil
}

// SearchProperties returns the listings matching every predicate in the
// filter, newest first. An empty filter is equivalent to GetProperties.
func (d *Database) SearchProperties(filter PropertyFilter) ([]models.Property, error) {
	query, err := filter.Apply(d.db.Model(&models.Property{}))
	if err != nil {
		return nil, err
	}

	var properties []models.Property
	if err := query.Order("created_at DESC").Find(&properties).Error; err != nil {
		return nil, fmt.Errorf("failed to search properties: %w", err)
	}
	return properties, nil
}

// GetPropertyByID returns nil without error when no listing has the id.
func (d *Database) GetPropertyByID(id string) (*models.Property, error) {
	var property models.Property
	err := d.db.First(&property, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query property: %w", err)
	}
	return &property, nil
}

func (d *Database) CreateProperty(property *models.Property) error {
	if err := d.db.Create(property).Error; err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}
	return nil
}

// UpdateProperty applies the patch to the listing and returns the stored row.
func (d *Database) UpdateProperty(id string, patch *models.Property) (*models.Property, error) {
	result := d.db.Model(&models.Property{}).Where("id = ?", id).Updates(patch)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update property: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return d.GetPropertyByID(id)
}

func (d *Database) DeleteProperty(id string) error {
	result := d.db.Delete(&models.Property{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete property: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPropertyNotFound
	}
	return nil
}

func (d *Database) CreateContact(contact *models.ContactLead) error {
	if err := d.db.Create(contact).Error; err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}

func (d *Database) GetContacts() ([]models.ContactLead, error) {
	var contacts []models.ContactLead
	if err := d.db.Order("created_at DESC").Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	return contacts, nil
}

func (d *Database) CreateFinancing(lead *models.FinancingLead) error {
	if err := d.db.Create(lead).Error; err != nil {
		return fmt.Errorf("failed to create financing lead: %w", err)
	}
	return nil
}

func (d *Database) GetFinancing() ([]models.FinancingLead, error) {
	var leads []models.FinancingLead
	if err := d.db.Order("created_at DESC").Find(&leads).Error; err != nil {
		return nil, fmt.Errorf("failed to query financing leads: %w", err)
	}
	return leads, nil
}

func (d *Database) CreateInsurance(lead *models.InsuranceLead) error {
	if err := d.db.Create(lead).Error; err != nil {
		return fmt.Errorf("failed to create insurance lead: %w", err)
	}
	return nil
}

func (d *Database) GetInsurance() ([]models.InsuranceLead, error) {
	var leads []models.InsuranceLead
	if err := d.db.Order("created_at DESC").Find(&leads).Error; err != nil {
		return nil, fmt.Errorf("failed to query insurance leads: %w", err)
	}
	return leads, nil
}
