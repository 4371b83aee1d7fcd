package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tamagotcho/tamagotcho-be/internal/api/v1/handlers"
	"github.com/tamagotcho/tamagotcho-be/internal/catalog"
	"github.com/tamagotcho/tamagotcho-be/internal/models"
	repomocks "github.com/tamagotcho/tamagotcho-be/internal/repository/mocks"
	"github.com/tamagotcho/tamagotcho-be/internal/utils/test_utils"
)

func setupWalletApp(t *testing.T) (*fiber.App, *repomocks.MockWalletRepository) {
	app := fiber.New()
	mockRepo := repomocks.NewMockWalletRepository(t)
	handler := handlers.NewWalletHandler(mockRepo)

	authed := app.Group("/api/v1/wallet", test_utils.MockJWTMiddleware(testUserID, testUsername))
	authed.Get("/", handler.GetWallet)
	authed.Get("/packages", handler.GetKoinPackages)

	return app, mockRepo
}

func TestWalletHandler_GetWallet(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		app, mockRepo := setupWalletApp(t)
		mockRepo.On("GetWalletByOwnerID", mock.Anything, testUserID).Return(&models.Wallet{
			ID: 1, OwnerID: testUserID, Balance: 42,
		}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/wallet/", nil)
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		data := body["data"].(map[string]interface{})
		assert.Equal(t, float64(42), data["balance"])
	})

	t.Run("Not Found", func(t *testing.T) {
		app, mockRepo := setupWalletApp(t)
		mockRepo.On("GetWalletByOwnerID", mock.Anything, testUserID).Return(nil, pgx.ErrNoRows).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/wallet/", nil)
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestWalletHandler_GetKoinPackages(t *testing.T) {
	app, _ := setupWalletApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/wallet/packages", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	data := body["data"].([]interface{})
	assert.Len(t, data, len(catalog.PricingTable))
}
