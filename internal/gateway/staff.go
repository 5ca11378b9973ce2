package gateway

import (
	"context"
	"strconv"
)

// Row is a loosely-shaped upstream record. Staff and customer listings vary
// by report and are rendered as-is by the console, so they stay dynamic at
// this boundary.
type Row map[string]any

type itemsEnvelope struct {
	Items []Row `json:"items"`
}

// StaffClient covers the branch staff operations of the upstream API.
type StaffClient struct {
	c *Client
}

// NewStaffClient builds the client.
func NewStaffClient(c *Client) *StaffClient {
	return &StaffClient{c: c}
}

func (sc *StaffClient) getItems(ctx context.Context, path string, query map[string]string) ([]Row, error) {
	var out itemsEnvelope
	req := sc.c.R(ctx).SetResult(&out)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	resp, err := req.Get(path)
	if err := sc.c.check(resp, err); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// CreateInvoice opens a new invoice for a customer at the branch.
func (sc *StaffClient) CreateInvoice(ctx context.Context, invoiceID, customerID, method, staffID string) (Row, error) {
	var out Row
	resp, err := sc.c.R(ctx).
		SetQueryParams(map[string]string{
			"ma_hoa_don": invoiceID,
			"ma_kh":      customerID,
			"hinh_thuc":  method,
			"ma_nv":      staffID,
		}).
		SetResult(&out).
		Post("/staff/invoices")
	if err := sc.c.check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchInvoices lists invoices for a branch within a date range, optionally
// filtered by customer.
func (sc *StaffClient) SearchInvoices(ctx context.Context, fromDate, toDate, branchCode, customerID string) ([]Row, error) {
	query := map[string]string{
		"from_date": fromDate,
		"to_date":   toDate,
		"ma_cn":     branchCode,
	}
	if customerID != "" {
		query["ma_kh"] = customerID
	}
	return sc.getItems(ctx, "/staff/invoices", query)
}

// Vaccines lists the vaccine catalog.
func (sc *StaffClient) Vaccines(ctx context.Context) ([]Row, error) {
	return sc.getItems(ctx, "/staff/vaccines", nil)
}

// DailyRevenue reports a branch's revenue for one day.
func (sc *StaffClient) DailyRevenue(ctx context.Context, date, branchCode string) ([]Row, error) {
	return sc.getItems(ctx, "/staff/reports/revenue/daily", map[string]string{
		"date":  date,
		"ma_cn": branchCode,
	})
}

// VaccinationSchedule lists vaccination appointments for a branch on a date.
func (sc *StaffClient) VaccinationSchedule(ctx context.Context, date, branchCode string) ([]Row, error) {
	return sc.getItems(ctx, "/staff/schedule/vaccinations", map[string]string{
		"date":  date,
		"ma_cn": branchCode,
	})
}

// ExamSchedule lists examination appointments for a branch on a date.
func (sc *StaffClient) ExamSchedule(ctx context.Context, date, branchCode string) ([]Row, error) {
	return sc.getItems(ctx, "/staff/schedule/exams", map[string]string{
		"date":  date,
		"ma_cn": branchCode,
	})
}

// Inventory returns a branch's product and vaccine stock.
func (sc *StaffClient) Inventory(ctx context.Context, branchCode string) (Row, error) {
	var out Row
	resp, err := sc.c.R(ctx).
		SetQueryParam("ma_cn", branchCode).
		SetResult(&out).
		Get("/staff/inventory")
	if err := sc.c.check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// ImportProductStock records a stock import for a product at a branch.
func (sc *StaffClient) ImportProductStock(ctx context.Context, branchCode, productID string, quantity int) (Row, error) {
	var out Row
	resp, err := sc.c.R(ctx).
		SetQueryParams(map[string]string{
			"ma_cn":    branchCode,
			"ma_sp":    productID,
			"so_luong": strconv.Itoa(quantity),
		}).
		SetResult(&out).
		Post("/staff/inventory/products/import")
	if err := sc.c.check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// Bookings lists bookings for a branch on a date.
func (sc *StaffClient) Bookings(ctx context.Context, date, branchCode string) ([]Row, error) {
	return sc.getItems(ctx, "/staff/bookings", map[string]string{
		"date":  date,
		"ma_cn": branchCode,
	})
}

// StartExamination moves a booked examination into progress.
func (sc *StaffClient) StartExamination(ctx context.Context, sessionID, staffID string) (Row, error) {
	var out Row
	resp, err := sc.c.R(ctx).
		SetQueryParams(map[string]string{
			"ma_phien": sessionID,
			"ma_nv":    staffID,
		}).
		SetResult(&out).
		Post("/staff/examination/start")
	if err := sc.c.check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// CompleteExamination records the outcome of an examination.
func (sc *StaffClient) CompleteExamination(ctx context.Context, sessionID, diagnosis string) (Row, error) {
	var out Row
	resp, err := sc.c.R(ctx).
		SetQueryParams(map[string]string{
			"ma_phien":   sessionID,
			"chan_doan":  diagnosis,
		}).
		SetResult(&out).
		Post("/staff/examination/complete")
	if err := sc.c.check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// CompleteVaccination marks a vaccination session as done.
func (sc *StaffClient) CompleteVaccination(ctx context.Context, sessionID, vaccineID string) (Row, error) {
	var out Row
	resp, err := sc.c.R(ctx).
		SetQueryParams(map[string]string{
			"ma_phien": sessionID,
			"ma_vx":    vaccineID,
		}).
		SetResult(&out).
		Post("/staff/vaccination/complete")
	if err := sc.c.check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// Medicines lists the medicine catalog.
func (sc *StaffClient) Medicines(ctx context.Context) ([]Row, error) {
	return sc.getItems(ctx, "/staff/medicines", nil)
}
