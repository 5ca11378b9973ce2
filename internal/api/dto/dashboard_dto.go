package dto

import "github.com/petcarex/console/internal/gateway"

// DashboardOverview bundles the six company KPI reads the dashboard renders
// in one screen.
type DashboardOverview struct {
	TotalRevenue      gateway.TotalRevenue      `json:"total_revenue"`
	RevenueByBranch   []gateway.BranchRevenue   `json:"revenue_by_branch"`
	TopServices       []gateway.TopService      `json:"top_services"`
	MembershipStats   []gateway.MembershipStat  `json:"membership_stats"`
	CustomersByBranch []gateway.BranchCustomers `json:"customers_by_branch"`
	PetStats          []gateway.PetStat         `json:"pet_stats"`
}
