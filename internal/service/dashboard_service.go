package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/petcarex/console/internal/api/dto"
	"github.com/petcarex/console/internal/gateway"
)

const topServicesMonths = 6

// DashboardService aggregates the company KPI reads for the dashboard.
type DashboardService struct {
	company *gateway.CompanyClient
}

// NewDashboardService builds the service.
func NewDashboardService(company *gateway.CompanyClient) *DashboardService {
	return &DashboardService{company: company}
}

// Overview issues the six company reads concurrently and waits for all of
// them before rendering. The first failure cancels the group's context, so
// results for a dead request are never applied.
func (s *DashboardService) Overview(ctx context.Context) (*dto.DashboardOverview, error) {
	var overview dto.DashboardOverview

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		total, err := s.company.RevenueTotal(ctx)
		if err != nil {
			return err
		}
		overview.TotalRevenue = *total
		return nil
	})
	g.Go(func() error {
		rows, err := s.company.RevenueByBranch(ctx)
		if err != nil {
			return err
		}
		overview.RevenueByBranch = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.company.TopServices(ctx, topServicesMonths)
		if err != nil {
			return err
		}
		overview.TopServices = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.company.MembershipStats(ctx)
		if err != nil {
			return err
		}
		overview.MembershipStats = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.company.CustomersByBranch(ctx)
		if err != nil {
			return err
		}
		overview.CustomersByBranch = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.company.PetStats(ctx)
		if err != nil {
			return err
		}
		overview.PetStats = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &overview, nil
}
