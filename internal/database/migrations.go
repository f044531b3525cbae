package database

import (
	"fmt"

	"brasiliaimoveis/server/internal/models"
)

func (d *Database) RunMigrations() error {
	err := d.db.AutoMigrate(
		&models.Property{},
		&models.ContactLead{},
		&models.FinancingLead{},
		&models.InsuranceLead{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
