package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fomopos/pos-admin-panel-sub005/internal/models"
)

func TestUserService_List_BuildsQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotQuery string
	router := gin.New()
	router.GET("/v0/users", func(c *gin.Context) {
		gotQuery = c.Request.URL.RawQuery
		c.JSON(http.StatusOK, []gin.H{
			{"id": "user-1", "username": "admin", "role": "admin"},
		})
	})

	svc := NewUserService(testClient(t, router), testLogger(), false)

	role := models.RoleCashier
	search := "jor"
	users, err := svc.List(context.Background(), models.UserListRequest{
		Page:     2,
		PageSize: 25,
		Role:     &role,
		Search:   &search,
	})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "page=2&page_size=25&role=cashier&search=jor", gotQuery)
}

func TestUserService_List_OmitsUnsetFilters(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotQuery string
	router := gin.New()
	router.GET("/v0/users", func(c *gin.Context) {
		gotQuery = c.Request.URL.RawQuery
		c.JSON(http.StatusOK, []gin.H{})
	})

	svc := NewUserService(testClient(t, router), testLogger(), false)

	_, err := svc.List(context.Background(), models.UserListRequest{})
	require.NoError(t, err)
	assert.Empty(t, gotQuery)
}

func TestUserService_Create_RejectsInvalid(t *testing.T) {
	svc := NewUserService(unreachableClient(), testLogger(), false)

	_, err := svc.Create(context.Background(), models.CreateUserRequest{
		Username: "jordan",
		Email:    "not-an-email",
		Role:     models.RoleCashier,
	})
	assert.EqualError(t, err, "email is not valid")
}

func TestTableService_Reservations_MockFallback(t *testing.T) {
	svc := NewTableService(unreachableClient(), testLogger(), true)

	reservations, err := svc.Reservations(context.Background(), "table-3")
	require.NoError(t, err)
	require.NotEmpty(t, reservations)
	assert.Equal(t, "table-3", reservations[0].TableID)
}

func TestReasonCodeService_List_FiltersByCategory(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotQuery string
	router := gin.New()
	router.GET("/v0/reason-codes", func(c *gin.Context) {
		gotQuery = c.Request.URL.RawQuery
		c.JSON(http.StatusOK, []gin.H{
			{"id": "rc-1", "code": "WASTE", "label": "Spoiled item", "category": "void"},
		})
	})

	svc := NewReasonCodeService(testClient(t, router), testLogger(), false)

	category := models.ReasonCategoryVoid
	codes, err := svc.List(context.Background(), &category)
	require.NoError(t, err)
	require.Len(t, codes, 1)
	assert.Equal(t, "category=void", gotQuery)
}

func TestReasonCodeService_List_NoFallbackWhenDisabled(t *testing.T) {
	svc := NewReasonCodeService(unreachableClient(), testLogger(), false)

	_, err := svc.List(context.Background(), nil)
	require.Error(t, err)
}
