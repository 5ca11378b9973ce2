package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petcarex/console/internal/gateway"
)

func TestPortalOverview(t *testing.T) {
	svc := NewPortalService(gateway.NewCustomerClient(newGatewayClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/customer/pets":
			assert.Equal(t, "KH001", r.URL.Query().Get("ma_kh"))
			respond(t, w, itemsBody(map[string]any{"MaThuCung": "TC001", "Ten": "Mực"}))
		case "/customer/packages":
			respond(t, w, itemsBody(map[string]any{"MaGoi": "G001"}))
		case "/customer/me/bookings":
			respond(t, w, itemsBody())
		case "/customer/me/purchases":
			respond(t, w, itemsBody(map[string]any{"MaHD": "HD001"}))
		default:
			http.NotFound(w, r)
		}
	}))))

	overview, err := svc.Overview(context.Background(), "KH001")
	require.NoError(t, err)
	require.Len(t, overview.Pets, 1)
	assert.Equal(t, "TC001", overview.Pets[0]["MaThuCung"])
	assert.Len(t, overview.Packages, 1)
	assert.Empty(t, overview.Bookings)
	assert.Len(t, overview.Purchases, 1)
}
