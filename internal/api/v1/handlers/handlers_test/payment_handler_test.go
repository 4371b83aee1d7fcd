package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tamagotcho/tamagotcho-be/internal/api/v1/handlers"
	"github.com/tamagotcho/tamagotcho-be/internal/models"
	"github.com/tamagotcho/tamagotcho-be/internal/service"
	"github.com/tamagotcho/tamagotcho-be/internal/service/mocks"
	"github.com/tamagotcho/tamagotcho-be/internal/utils/test_utils"
)

func setupPaymentApp(t *testing.T) (*fiber.App, *mocks.MockPaymentService) {
	app := fiber.New()
	mockService := mocks.NewMockPaymentService(t)
	handler := handlers.NewPaymentHandler(mockService)

	app.Post("/api/v1/payments/webhook", handler.HandleWebhook)
	app.Post("/api/v1/payments/verify", test_utils.MockJWTMiddleware(testUserID, testUsername), handler.VerifyPayment)

	return app, mockService
}

func TestPaymentHandler_HandleWebhook(t *testing.T) {
	payload := []byte(`{"type":"checkout.session.completed"}`)

	t.Run("Accepted", func(t *testing.T) {
		app, mockService := setupPaymentApp(t)
		mockService.On("HandleWebhookEvent", mock.Anything, payload, "sig-header").Return(nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/webhook", bytes.NewReader(payload))
		req.Header.Set("Stripe-Signature", "sig-header")

		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Bad Signature", func(t *testing.T) {
		app, mockService := setupPaymentApp(t)
		verifyErr := fmt.Errorf("%w: bad signature", service.ErrWebhookVerification)
		mockService.On("HandleWebhookEvent", mock.Anything, payload, "bad-sig").Return(verifyErr).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/webhook", bytes.NewReader(payload))
		req.Header.Set("Stripe-Signature", "bad-sig")

		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "INVALID_SIGNATURE", body["code"])
	})
}

func TestPaymentHandler_VerifyPayment(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(mockService *mocks.MockPaymentService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "Credited",
			setupMock: func(mockService *mocks.MockPaymentService) {
				mockService.On("VerifyCheckout", mock.Anything, testUserID, "cs_test_1").
					Return(&models.VerifyPaymentResult{SessionID: "cs_test_1", Credited: true, Koins: 50, Balance: 60}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Already Credited",
			setupMock: func(mockService *mocks.MockPaymentService) {
				mockService.On("VerifyCheckout", mock.Anything, testUserID, "cs_test_1").
					Return(&models.VerifyPaymentResult{SessionID: "cs_test_1", Credited: false, Koins: 50}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Not Paid",
			setupMock: func(mockService *mocks.MockPaymentService) {
				mockService.On("VerifyCheckout", mock.Anything, testUserID, "cs_test_1").
					Return(nil, service.ErrPaymentNotCompleted).Once()
			},
			expectedStatus: http.StatusPaymentRequired,
			expectedCode:   "PAYMENT_NOT_COMPLETED",
		},
		{
			name: "Foreign Session",
			setupMock: func(mockService *mocks.MockPaymentService) {
				mockService.On("VerifyCheckout", mock.Anything, testUserID, "cs_test_1").
					Return(nil, service.ErrSessionOwnership).Once()
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   "SESSION_FORBIDDEN",
		},
		{
			name: "Session Not Found",
			setupMock: func(mockService *mocks.MockPaymentService) {
				mockService.On("VerifyCheckout", mock.Anything, testUserID, "cs_test_1").
					Return(nil, fmt.Errorf("%w: no such session", service.ErrSessionNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "SESSION_NOT_FOUND",
		},
		{
			name: "Internal Error",
			setupMock: func(mockService *mocks.MockPaymentService) {
				mockService.On("VerifyCheckout", mock.Anything, testUserID, "cs_test_1").
					Return(nil, errors.New("boom")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "INTERNAL_ERROR",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app, mockService := setupPaymentApp(t)
			tc.setupMock(mockService)

			bodyBytes, _ := json.Marshal(models.VerifyPaymentInput{SessionID: "cs_test_1"})
			req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/verify", bytes.NewReader(bodyBytes))
			req.Header.Set("Content-Type", "application/json")

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

	t.Run("Missing Session ID Fails Validation", func(t *testing.T) {
		app, _ := setupPaymentApp(t)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/verify", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
