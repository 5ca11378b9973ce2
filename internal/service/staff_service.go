package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/petcarex/console/internal/api/dto"
	"github.com/petcarex/console/internal/gateway"
)

// StaffService assembles the staff console desk view-models.
type StaffService struct {
	staff *gateway.StaffClient
}

// NewStaffService builds the service.
func NewStaffService(staff *gateway.StaffClient) *StaffService {
	return &StaffService{staff: staff}
}

// SalesDesk loads the sales surface: inventory, the day's invoices and the
// daily revenue report, fetched concurrently.
func (s *StaffService) SalesDesk(ctx context.Context, date, branchCode string) (*dto.SalesDesk, error) {
	var desk dto.SalesDesk

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		inventory, err := s.staff.Inventory(ctx, branchCode)
		if err != nil {
			return err
		}
		desk.Inventory = inventory
		return nil
	})
	g.Go(func() error {
		rows, err := s.staff.SearchInvoices(ctx, date, date, branchCode, "")
		if err != nil {
			return err
		}
		desk.Invoices = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.staff.DailyRevenue(ctx, date, branchCode)
		if err != nil {
			return err
		}
		desk.Revenue = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &desk, nil
}

// ReceptionDesk loads the reception surface. The schedules load
// concurrently; the invoice lookup is explicitly sequenced after the
// bookings read because it needs the first booking's customer id.
func (s *StaffService) ReceptionDesk(ctx context.Context, date, branchCode string) (*dto.ReceptionDesk, error) {
	var desk dto.ReceptionDesk

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.staff.Bookings(gctx, date, branchCode)
		if err != nil {
			return err
		}
		desk.Bookings = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.staff.ExamSchedule(gctx, date, branchCode)
		if err != nil {
			return err
		}
		desk.Exams = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.staff.VaccinationSchedule(gctx, date, branchCode)
		if err != nil {
			return err
		}
		desk.Vaccinations = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(desk.Bookings) > 0 {
		if customerID, ok := desk.Bookings[0]["MaKH"].(string); ok && customerID != "" {
			rows, err := s.staff.SearchInvoices(ctx, date, date, branchCode, customerID)
			if err != nil {
				return nil, err
			}
			desk.FirstInvoices = rows
		}
	}
	return &desk, nil
}

// ClinicalDesk loads the clinical surface: examinations for the day plus the
// vaccine and medicine catalogs.
func (s *StaffService) ClinicalDesk(ctx context.Context, date, branchCode string) (*dto.ClinicalDesk, error) {
	var desk dto.ClinicalDesk

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.staff.ExamSchedule(ctx, date, branchCode)
		if err != nil {
			return err
		}
		desk.Exams = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.staff.Vaccines(ctx)
		if err != nil {
			return err
		}
		desk.Vaccines = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.staff.Medicines(ctx)
		if err != nil {
			return err
		}
		desk.Medicines = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &desk, nil
}
