package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/petcarex/console/internal/api/dto"
	"github.com/petcarex/console/internal/gateway"
)

// PortalService assembles the customer portal view-models.
type PortalService struct {
	customers *gateway.CustomerClient
}

// NewPortalService builds the service.
func NewPortalService(customers *gateway.CustomerClient) *PortalService {
	return &PortalService{customers: customers}
}

// Overview loads the portal landing reads concurrently.
func (s *PortalService) Overview(ctx context.Context, customerID string) (*dto.PortalOverview, error) {
	var overview dto.PortalOverview

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.customers.Pets(ctx, customerID)
		if err != nil {
			return err
		}
		overview.Pets = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.customers.Packages(ctx)
		if err != nil {
			return err
		}
		overview.Packages = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.customers.Bookings(ctx, customerID)
		if err != nil {
			return err
		}
		overview.Bookings = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.customers.Purchases(ctx, customerID)
		if err != nil {
			return err
		}
		overview.Purchases = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &overview, nil
}
