package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tamagotcho/tamagotcho-be/internal/api/v1/handlers"
	"github.com/tamagotcho/tamagotcho-be/internal/catalog"
	"github.com/tamagotcho/tamagotcho-be/internal/models"
	"github.com/tamagotcho/tamagotcho-be/internal/service"
	"github.com/tamagotcho/tamagotcho-be/internal/service/mocks"
	"github.com/tamagotcho/tamagotcho-be/internal/utils/test_utils"
)

func setupShopApp(t *testing.T) (*fiber.App, *mocks.MockShopService) {
	app := fiber.New()
	mockService := mocks.NewMockShopService(t)
	handler := handlers.NewShopHandler(mockService)

	authed := app.Group("/api/v1/shop", test_utils.MockJWTMiddleware(testUserID, testUsername))
	authed.Get("/catalog", handler.GetCatalog)
	authed.Get("/owned", handler.GetOwnedItems)
	authed.Post("/accessories/:itemId/purchase", handler.PurchaseAccessory)
	authed.Post("/backgrounds/:itemId/purchase", handler.PurchaseBackground)
	authed.Post("/boosts/:boostId/purchase", handler.PurchaseBoost)

	return app, mockService
}

func TestShopHandler_GetCatalog(t *testing.T) {
	app, _ := setupShopApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/shop/catalog", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	data := body["data"].(map[string]interface{})
	assert.Len(t, data["accessories"], len(catalog.AccessoryCatalog))
	assert.Len(t, data["backgrounds"], len(catalog.BackgroundCatalog))
	assert.Len(t, data["boosts"], len(catalog.XPBoostCatalog))
}

func TestShopHandler_GetOwnedItems(t *testing.T) {
	app, mockService := setupShopApp(t)

	mockService.On("GetOwnedItems", mock.Anything, testUserID, 5).Return(&models.OwnedItemsResult{
		Accessories: []string{"hat-red"},
		Backgrounds: []string{},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/shop/owned?monsterId=5", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	data := body["data"].(map[string]interface{})
	assert.Equal(t, []interface{}{"hat-red"}, data["accessories"])
}

func TestShopHandler_PurchaseAccessory(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(mockService *mocks.MockShopService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "Success With Monster Binding",
			body: `{"monster_id":5}`,
			setupMock: func(mockService *mocks.MockShopService) {
				mockService.On("PurchaseAccessory", mock.Anything, testUserID, 5, "hat-red").
					Return(&models.PurchaseResult{ItemID: "hat-red", Price: 150, Balance: 50}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Success Account-Wide",
			body: "",
			setupMock: func(mockService *mocks.MockShopService) {
				mockService.On("PurchaseAccessory", mock.Anything, testUserID, 0, "hat-red").
					Return(&models.PurchaseResult{ItemID: "hat-red", Price: 150, Balance: 50}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Insufficient Balance",
			body: `{"monster_id":5}`,
			setupMock: func(mockService *mocks.MockShopService) {
				mockService.On("PurchaseAccessory", mock.Anything, testUserID, 5, "hat-red").
					Return(nil, service.ErrInsufficientBalance).Once()
			},
			expectedStatus: http.StatusPaymentRequired,
			expectedCode:   "INSUFFICIENT_BALANCE",
		},
		{
			name: "Already Owned",
			body: `{"monster_id":5}`,
			setupMock: func(mockService *mocks.MockShopService) {
				mockService.On("PurchaseAccessory", mock.Anything, testUserID, 5, "hat-red").
					Return(nil, service.ErrAlreadyOwned).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "ALREADY_OWNED",
		},
		{
			name: "Item Not Found",
			body: `{"monster_id":5}`,
			setupMock: func(mockService *mocks.MockShopService) {
				mockService.On("PurchaseAccessory", mock.Anything, testUserID, 5, "hat-red").
					Return(nil, service.ErrItemNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "ITEM_NOT_FOUND",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app, mockService := setupShopApp(t)
			tc.setupMock(mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/shop/accessories/hat-red/purchase", bytes.NewReader([]byte(tc.body)))
			if tc.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}

			resp, err := app.Test(req, -1)
			assert.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode)

			var body map[string]interface{}
			assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			if tc.expectedCode != "" {
				assert.Equal(t, tc.expectedCode, body["code"])
			}
		})
	}
}

func TestShopHandler_PurchaseBoost(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		app, mockService := setupShopApp(t)
		mockService.On("PurchaseBoost", mock.Anything, testUserID, 5, "boost-large").
			Return(&models.BoostResult{Level: 3, XP: 50, MaxXP: 300, LeveledUp: true, Balance: 40}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/shop/boosts/boost-large/purchase", bytes.NewReader([]byte(`{"monster_id":5}`)))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		data := body["data"].(map[string]interface{})
		assert.Equal(t, true, data["leveled_up"])
		assert.Equal(t, float64(3), data["level"])
	})

	t.Run("Missing Monster Fails Validation", func(t *testing.T) {
		app, _ := setupShopApp(t)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/shop/boosts/boost-large/purchase", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
