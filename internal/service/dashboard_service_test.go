package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petcarex/console/internal/gateway"
)

func companyUpstream(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/company/revenue/total":
			respond(t, w, map[string]any{"TongDoanhThu": 98500000.0})
		case "/company/revenue/by-branch":
			respond(t, w, itemsBody(
				map[string]any{"MaCN": "CN01", "DoanhThu": 60000000.0},
				map[string]any{"MaCN": "CN02", "DoanhThu": 38500000.0},
			))
		case "/company/services/top":
			assert.Equal(t, "6", r.URL.Query().Get("months"))
			respond(t, w, itemsBody(map[string]any{"MaDV": "DV001", "TenDV": "Khám tổng quát", "SoLan": 120}))
		case "/company/memberships/stats":
			respond(t, w, itemsBody(map[string]any{"Bac": "Vàng", "SoLuong": 40}))
		case "/company/customers/by-branch":
			respond(t, w, itemsBody(map[string]any{"MaCN": "CN01", "SoKhach": 210}))
		case "/company/pets/stats":
			respond(t, w, itemsBody(map[string]any{"Loai": "Chó", "SoLuong": 300}))
		default:
			http.NotFound(w, r)
		}
	})
}

func TestDashboardOverview(t *testing.T) {
	svc := NewDashboardService(gateway.NewCompanyClient(newGatewayClient(t, companyUpstream(t))))

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 98500000.0, overview.TotalRevenue.Total)
	require.Len(t, overview.RevenueByBranch, 2)
	assert.Equal(t, "CN01", overview.RevenueByBranch[0].BranchCode)
	require.Len(t, overview.TopServices, 1)
	assert.Equal(t, int64(120), overview.TopServices[0].Count)
	assert.Len(t, overview.MembershipStats, 1)
	assert.Len(t, overview.CustomersByBranch, 1)
	assert.Len(t, overview.PetStats, 1)
}

func TestDashboardOverview_FailsWhenAnyReadFails(t *testing.T) {
	svc := NewDashboardService(gateway.NewCompanyClient(newGatewayClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/company/pets/stats" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		respond(t, w, itemsBody())
	}))))

	_, err := svc.Overview(context.Background())
	assert.Error(t, err)
}
