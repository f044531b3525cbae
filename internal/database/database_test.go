package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brasiliaimoveis/server/internal/models"
)

func intPtr(v int) *int { return &v }

func setupTestDB(t *testing.T) *Database {
	db, err := NewTestDB()
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	return db
}

func seedProperties(t *testing.T, db *Database) []models.Property {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)
	properties := []models.Property{
		{
			Title:        "Apartamento na Asa Sul",
			PropertyType: "apartamento",
			Region:       "asa-sul",
			Price:        450000,
			Bedrooms:     intPtr(2),
			CreatedAt:    base,
		},
		{
			Title:        "Casa no Lago Sul",
			PropertyType: "casa",
			Region:       "lago-sul",
			Price:        2500000,
			Bedrooms:     intPtr(5),
			CreatedAt:    base.Add(time.Hour),
		},
		{
			Title:        "Cobertura na Asa Norte",
			PropertyType: "cobertura",
			Region:       "asa-norte",
			Price:        1200000,
			Bedrooms:     intPtr(4),
			CreatedAt:    base.Add(2 * time.Hour),
		},
		{
			Title:        "Kitnet na Asa Norte",
			PropertyType: "kitnet",
			Region:       "asa-norte",
			Price:        180000,
			Bedrooms:     intPtr(1),
			CreatedAt:    base.Add(3 * time.Hour),
		},
		{
			Title:        "Lote em Vicente Pires",
			PropertyType: "lote",
			Region:       "vicente-pires",
			Price:        600000,
			CreatedAt:    base.Add(4 * time.Hour),
		},
	}
	for i := range properties {
		require.NoError(t, db.CreateProperty(&properties[i]))
	}
	return properties
}

func TestGetPropertiesNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	seedProperties(t, db)

	properties, err := db.GetProperties()
	require.NoError(t, err)
	require.Len(t, properties, 5)

	assert.Equal(t, "Lote em Vicente Pires", properties[0].Title)
	assert.Equal(t, "Apartamento na Asa Sul", properties[4].Title)
	for i := 1; i < len(properties); i++ {
		assert.False(t, properties[i].CreatedAt.After(properties[i-1].CreatedAt))
	}
}

func TestSearchPropertiesEmptyFilter(t *testing.T) {
	db := setupTestDB(t)
	seedProperties(t, db)

	all, err := db.GetProperties()
	require.NoError(t, err)

	searched, err := db.SearchProperties(PropertyFilter{})
	require.NoError(t, err)

	require.Len(t, searched, len(all))
	for i := range all {
		assert.Equal(t, all[i].ID, searched[i].ID)
	}
}

func TestSearchPropertiesSingleFields(t *testing.T) {
	db := setupTestDB(t)
	seedProperties(t, db)

	tests := []struct {
		name     string
		filter   PropertyFilter
		expected []string
	}{
		{
			"by type",
			PropertyFilter{Type: "casa"},
			[]string{"Casa no Lago Sul"},
		},
		{
			"by region",
			PropertyFilter{Region: "asa-norte"},
			[]string{"Kitnet na Asa Norte", "Cobertura na Asa Norte"},
		},
		{
			"by min price",
			PropertyFilter{MinPrice: 1000000},
			[]string{"Cobertura na Asa Norte", "Casa no Lago Sul"},
		},
		{
			"by max price",
			PropertyFilter{MaxPrice: 450000},
			[]string{"Kitnet na Asa Norte", "Apartamento na Asa Sul"},
		},
		{
			"by exact bedrooms",
			PropertyFilter{Bedrooms: "2"},
			[]string{"Apartamento na Asa Sul"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			properties, err := db.SearchProperties(tt.filter)
			require.NoError(t, err)

			titles := make([]string, len(properties))
			for i, p := range properties {
				titles[i] = p.Title
			}
			assert.Equal(t, tt.expected, titles)
		})
	}
}

func TestSearchPropertiesCombinedFilters(t *testing.T) {
	db := setupTestDB(t)
	seedProperties(t, db)

	properties, err := db.SearchProperties(PropertyFilter{
		Region:   "asa-norte",
		MinPrice: 500000,
	})
	require.NoError(t, err)
	require.Len(t, properties, 1)
	assert.Equal(t, "Cobertura na Asa Norte", properties[0].Title)
}

func TestSearchPropertiesBedroomsFourPlus(t *testing.T) {
	db := setupTestDB(t)
	seedProperties(t, db)

	properties, err := db.SearchProperties(PropertyFilter{Bedrooms: BedroomsFourPlus})
	require.NoError(t, err)
	require.Len(t, properties, 2)

	for _, p := range properties {
		require.NotNil(t, p.Bedrooms)
		assert.GreaterOrEqual(t, *p.Bedrooms, 4)
	}
}

func TestSearchPropertiesInvalidBedrooms(t *testing.T) {
	db := setupTestDB(t)
	seedProperties(t, db)

	_, err := db.SearchProperties(PropertyFilter{Bedrooms: "muitos"})
	assert.ErrorIs(t, err, ErrInvalidBedrooms)
}

func TestGetPropertyByID(t *testing.T) {
	db := setupTestDB(t)
	seeded := seedProperties(t, db)

	property, err := db.GetPropertyByID(seeded[0].ID)
	require.NoError(t, err)
	require.NotNil(t, property)
	assert.Equal(t, seeded[0].Title, property.Title)

	// Missing listings return nil without error
	missing, err := db.GetPropertyByID("does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCreatePropertyGeneratesID(t *testing.T) {
	db := setupTestDB(t)

	property := &models.Property{
		Title:    "Apartamento no Sudoeste",
		Price:    700000,
		Features: models.StringList{"piscina", "academia"},
		Images:   models.StringList{"https://example.com/1.jpg"},
	}
	require.NoError(t, db.CreateProperty(property))
	assert.NotEmpty(t, property.ID)
	assert.False(t, property.CreatedAt.IsZero())

	stored, err := db.GetPropertyByID(property.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, models.StringList{"piscina", "academia"}, stored.Features)
	assert.Equal(t, models.StringList{"https://example.com/1.jpg"}, stored.Images)
}

func TestUpdateProperty(t *testing.T) {
	db := setupTestDB(t)
	seeded := seedProperties(t, db)

	updated, err := db.UpdateProperty(seeded[0].ID, &models.Property{
		Title: "Apartamento reformado na Asa Sul",
		Price: 480000,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Apartamento reformado na Asa Sul", updated.Title)
	assert.Equal(t, float64(480000), updated.Price)

	missing, err := db.UpdateProperty("does-not-exist", &models.Property{Title: "x"})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDeleteProperty(t *testing.T) {
	db := setupTestDB(t)
	seeded := seedProperties(t, db)

	require.NoError(t, db.DeleteProperty(seeded[0].ID))

	property, err := db.GetPropertyByID(seeded[0].ID)
	require.NoError(t, err)
	assert.Nil(t, property)

	assert.ErrorIs(t, db.DeleteProperty(seeded[0].ID), ErrPropertyNotFound)
}

func TestLeadRoundTrips(t *testing.T) {
	db := setupTestDB(t)

	contact := &models.ContactLead{
		Name:    "João Souza",
		Email:   "joao@example.com",
		Phone:   "61996455454",
		Message: "Tenho interesse",
	}
	require.NoError(t, db.CreateContact(contact))
	assert.NotEmpty(t, contact.ID)

	contacts, err := db.GetContacts()
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, contact.ID, contacts[0].ID)

	financing := &models.FinancingLead{
		Name:          "Maria Silva",
		Email:         "maria@example.com",
		Phone:         "6130455454",
		PropertyValue: 500000,
		DownPayment:   100000,
		TermYears:     20,
	}
	require.NoError(t, db.CreateFinancing(financing))

	leads, err := db.GetFinancing()
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, float64(500000), leads[0].PropertyValue)

	insurance := &models.InsuranceLead{
		Name:  "Ana Costa",
		Email: "ana@example.com",
		Phone: "6130455454",
	}
	require.NoError(t, db.CreateInsurance(insurance))

	insuranceLeads, err := db.GetInsurance()
	require.NoError(t, err)
	require.Len(t, insuranceLeads, 1)
	assert.Equal(t, insurance.ID, insuranceLeads[0].ID)
}
