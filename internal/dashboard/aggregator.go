// Package dashboard reduces the lead and listing collections into the
// counters shown on the admin panel.
package dashboard

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"brasiliaimoveis/server/internal/models"
)

// Fetcher is the slice of the store the aggregator reads from.
type Fetcher interface {
	GetProperties() ([]models.Property, error)
	GetFinancing() ([]models.FinancingLead, error)
	GetInsurance() ([]models.InsuranceLead, error)
}

type Aggregator struct {
	store  Fetcher
	logger *logrus.Logger
}

func NewAggregator(store Fetcher, logger *logrus.Logger) *Aggregator {
	return &Aggregator{
		store:  store,
		logger: logger,
	}
}

// Stats fetches the three collections concurrently and reduces them.
// The result is all-or-nothing: if any fetch fails the whole call fails
// and no partial stats are returned.
func (a *Aggregator) Stats(ctx context.Context) (*models.DashboardStats, error) {
	var (
		properties []models.Property
		financing  []models.FinancingLead
		insurance  []models.InsuranceLead
	)

	group, _ := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		properties, err = a.store.GetProperties()
		return err
	})
	group.Go(func() error {
		var err error
		financing, err = a.store.GetFinancing()
		return err
	})
	group.Go(func() error {
		var err error
		insurance, err = a.store.GetInsurance()
		return err
	})

	if err := group.Wait(); err != nil {
		a.logger.WithError(err).Error("Dashboard aggregation failed")
		return nil, err
	}

	now := time.Now()
	stats := &models.DashboardStats{}

	stats.Financing.Total = len(financing)
	for _, lead := range financing {
		stats.Financing.TotalValue += lead.PropertyValue
		if sameDay(lead.CreatedAt, now) {
			stats.Financing.Today++
		}
	}

	stats.Insurance.Total = len(insurance)
	for _, lead := range insurance {
		if sameDay(lead.CreatedAt, now) {
			stats.Insurance.Today++
		}
	}

	stats.Properties.Total = len(properties)
	for _, property := range properties {
		stats.Properties.TotalValue += property.Price
	}
	if len(properties) > 0 {
		stats.Properties.AveragePrice = stats.Properties.TotalValue / float64(len(properties))
	}

	return stats, nil
}

// sameDay compares calendar days in local time.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
