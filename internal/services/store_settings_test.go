package services

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fomopos/pos-admin-panel-sub005/internal/api"
	"github.com/fomopos/pos-admin-panel-sub005/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testClient(t *testing.T, router *gin.Engine) *api.Client {
	t.Helper()
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return api.NewClient(srv.URL, srv.Client(), nil, nil, testLogger())
}

// unreachableClient points at a closed port so every call fails at the
// transport level.
func unreachableClient() *api.Client {
	return api.NewClient("http://127.0.0.1:1", &http.Client{}, nil, nil, testLogger())
}

func TestStoreSettingsService_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/v0/store/settings", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"data": gin.H{
				"store_info": gin.H{"name": "Corner Deli", "currency_code": "USD"},
			},
			"success": true,
		})
	})

	svc := NewStoreSettingsService(testClient(t, router), testLogger(), false)

	settings, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Corner Deli", settings.StoreInfo.Name)
}

func TestStoreSettingsService_Get_MockFallback(t *testing.T) {
	svc := NewStoreSettingsService(unreachableClient(), testLogger(), true)

	settings, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Demo Coffee House", settings.StoreInfo.Name)
}

func TestStoreSettingsService_Get_NoFallbackWhenDisabled(t *testing.T) {
	svc := NewStoreSettingsService(unreachableClient(), testLogger(), false)

	_, err := svc.Get(context.Background())
	require.Error(t, err)

	apiErr, ok := api.AsError(err)
	require.True(t, ok)
	assert.Equal(t, api.SlugNetwork, apiErr.Slug)
}

func TestStoreSettingsService_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var received models.UpdateStoreSettingsRequest
	router := gin.New()
	router.PUT("/v0/store/settings", func(c *gin.Context) {
		require.NoError(t, c.ShouldBindJSON(&received))
		c.JSON(http.StatusOK, gin.H{
			"store_info": received.StoreInfo,
			"policy":     received.Policy,
		})
	})

	svc := NewStoreSettingsService(testClient(t, router), testLogger(), false)

	req := models.UpdateStoreSettingsRequest{
		StoreInfo: models.StoreInfo{Name: "Corner Deli", CurrencyCode: "eur"},
		Policy:    models.OperationalPolicy{DefaultTaxRate: 19},
	}

	updated, err := svc.Update(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Corner Deli", updated.StoreInfo.Name)
	// validation normalized the currency before sending
	assert.Equal(t, "EUR", received.StoreInfo.CurrencyCode)
}

func TestStoreSettingsService_Update_RejectsInvalid(t *testing.T) {
	// The request must never reach the network, so an unreachable client is
	// enough here.
	svc := NewStoreSettingsService(unreachableClient(), testLogger(), false)

	req := models.UpdateStoreSettingsRequest{
		StoreInfo: models.StoreInfo{Name: "", CurrencyCode: "USD"},
	}

	_, err := svc.Update(context.Background(), req)
	assert.EqualError(t, err, "store name is required")
}

func TestStoreSettingsService_Update_NeverFallsBack(t *testing.T) {
	svc := NewStoreSettingsService(unreachableClient(), testLogger(), true)

	req := models.UpdateStoreSettingsRequest{
		StoreInfo: models.StoreInfo{Name: "Corner Deli", CurrencyCode: "USD"},
	}

	_, err := svc.Update(context.Background(), req)
	require.Error(t, err)
}

func TestStoreSettingsService_ReceiptTemplates_MockFallback(t *testing.T) {
	svc := NewStoreSettingsService(unreachableClient(), testLogger(), true)

	templates, err := svc.ReceiptTemplates(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, templates)
}
