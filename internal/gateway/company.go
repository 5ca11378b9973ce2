package gateway

import (
	"context"
	"strconv"
)

// Company KPI rows as the upstream reports them.
type (
	// TotalRevenue is the company-wide revenue figure.
	TotalRevenue struct {
		Total float64 `json:"TongDoanhThu"`
	}

	// BranchRevenue is revenue attributed to one branch.
	BranchRevenue struct {
		BranchCode string  `json:"MaCN"`
		Revenue    float64 `json:"DoanhThu"`
	}

	// TopService is a service ranked by usage.
	TopService struct {
		ServiceCode string `json:"MaDV"`
		ServiceName string `json:"TenDV"`
		Count       int64  `json:"SoLan"`
	}

	// MembershipStat counts customers per membership tier.
	MembershipStat struct {
		Tier  string `json:"Bac"`
		Count int64  `json:"SoLuong"`
	}

	// BranchCustomers counts distinct customers per branch.
	BranchCustomers struct {
		BranchCode string `json:"MaCN"`
		Count      int64  `json:"SoKhach"`
	}

	// PetStat counts pets per species.
	PetStat struct {
		Species string `json:"Loai"`
		Count   int64  `json:"SoLuong"`
	}
)

// CompanyClient reads company-wide KPIs from the upstream API.
type CompanyClient struct {
	c *Client
}

// NewCompanyClient builds the client.
func NewCompanyClient(c *Client) *CompanyClient {
	return &CompanyClient{c: c}
}

// RevenueTotal returns company-wide revenue.
func (cc *CompanyClient) RevenueTotal(ctx context.Context) (*TotalRevenue, error) {
	var out TotalRevenue
	resp, err := cc.c.R(ctx).SetResult(&out).Get("/company/revenue/total")
	if err := cc.c.check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// RevenueByBranch returns revenue per branch, highest first.
func (cc *CompanyClient) RevenueByBranch(ctx context.Context) ([]BranchRevenue, error) {
	var out struct {
		Items []BranchRevenue `json:"items"`
	}
	resp, err := cc.c.R(ctx).SetResult(&out).Get("/company/revenue/by-branch")
	if err := cc.c.check(resp, err); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// TopServices ranks services by usage over the trailing months window.
func (cc *CompanyClient) TopServices(ctx context.Context, months int) ([]TopService, error) {
	var out struct {
		Items []TopService `json:"items"`
	}
	resp, err := cc.c.R(ctx).
		SetQueryParam("months", strconv.Itoa(months)).
		SetResult(&out).
		Get("/company/services/top")
	if err := cc.c.check(resp, err); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// MembershipStats counts customers per membership tier.
func (cc *CompanyClient) MembershipStats(ctx context.Context) ([]MembershipStat, error) {
	var out struct {
		Items []MembershipStat `json:"items"`
	}
	resp, err := cc.c.R(ctx).SetResult(&out).Get("/company/memberships/stats")
	if err := cc.c.check(resp, err); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// CustomersByBranch counts distinct customers per branch.
func (cc *CompanyClient) CustomersByBranch(ctx context.Context) ([]BranchCustomers, error) {
	var out struct {
		Items []BranchCustomers `json:"items"`
	}
	resp, err := cc.c.R(ctx).SetResult(&out).Get("/company/customers/by-branch")
	if err := cc.c.check(resp, err); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// PetStats counts pets per species.
func (cc *CompanyClient) PetStats(ctx context.Context) ([]PetStat, error) {
	var out struct {
		Items []PetStat `json:"items"`
	}
	resp, err := cc.c.R(ctx).SetResult(&out).Get("/company/pets/stats")
	if err := cc.c.check(resp, err); err != nil {
		return nil, err
	}
	return out.Items, nil
}
