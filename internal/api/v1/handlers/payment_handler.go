// internal/api/v1/handlers/payment_handler.go
package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	zlog "github.com/rs/zerolog/log"
	"github.com/tamagotcho/tamagotcho-be/internal/models"
	"github.com/tamagotcho/tamagotcho-be/internal/service"
	"github.com/tamagotcho/tamagotcho-be/internal/utils"
)

type PaymentHandler struct {
	PaymentService service.PaymentService
	Validate       *validator.Validate
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		PaymentService: paymentService,
		Validate:       validator.New(),
	}
}

// HandleWebhook godoc
// @Summary Payment Provider Webhook
// @Description Receives checkout events from the payment provider. Signature-verified; not for client use.
// @Tags Payments
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Webhook signature"
// @Success 200 {object} models.Response "Event accepted"
// @Failure 400 {object} models.Response "Signature verification failed"
// @Router /payments/webhook [post]
func (h *PaymentHandler) HandleWebhook(c *fiber.Ctx) error {
	payload := c.Body()
	signature := c.Get("Stripe-Signature")

	if err := h.PaymentService.HandleWebhookEvent(c.Context(), payload, signature); err != nil {
		if errors.Is(err, service.ErrWebhookVerification) {
			return c.Status(fiber.StatusBadRequest).JSON(models.Response{
				Success: false, Code: "INVALID_SIGNATURE", Message: "webhook signature verification failed",
			})
		}
		zlog.Error().Err(err).Msg("Handler: Error returned from PaymentService.HandleWebhookEvent")
		return c.Status(fiber.StatusInternalServerError).JSON(models.Response{
			Success: false, Code: "INTERNAL_ERROR", Message: "Failed to process webhook event",
		})
	}

	return c.Status(fiber.StatusOK).JSON(models.Response{
		Success: true,
		Message: "Event accepted",
	})
}

// VerifyPayment godoc
// @Summary Verify Checkout Session
// @Description Verifies a checkout session after the provider redirect and credits the wallet if the webhook has not already done so.
// @Tags Payments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param verify body models.VerifyPaymentInput true "Checkout session to verify"
// @Success 200 {object} models.Response{data=models.VerifyPaymentResult} "Session verified"
// @Failure 400 {object} models.Response{data=map[string]string} "Validation failed or invalid request body"
// @Failure 401 {object} models.Response "Unauthorized"
// @Failure 402 {object} models.Response "Payment not completed"
// @Failure 403 {object} models.Response "Session belongs to another user"
// @Failure 404 {object} models.Response "Session not found"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /payments/verify [post]
func (h *PaymentHandler) VerifyPayment(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromJWT(c)
	if err != nil {
		return err
	}

	input := new(models.VerifyPaymentInput)
	if err := c.BodyParser(input); err != nil {
		zlog.Warn().Err(err).Msg("Handler: Invalid request body during payment verification")
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{
			Success: false, Code: "BAD_REQUEST", Message: "Invalid request body",
		})
	}

	if err := h.Validate.Struct(input); err != nil {
		zlog.Warn().Err(err).Msg("Handler: Validation failed during payment verification")
		errorDetails := utils.FormatValidationErrors(err)
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{
			Success: false, Code: "VALIDATION_FAILED", Message: "Validation failed", Data: errorDetails,
		})
	}

	result, err := h.PaymentService.VerifyCheckout(c.Context(), userID, input.SessionID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			return c.Status(fiber.StatusNotFound).JSON(models.Response{
				Success: false, Code: "SESSION_NOT_FOUND", Message: "checkout session not found",
			})
		case errors.Is(err, service.ErrSessionOwnership):
			return c.Status(fiber.StatusForbidden).JSON(models.Response{
				Success: false, Code: "SESSION_FORBIDDEN", Message: "checkout session belongs to another user",
			})
		case errors.Is(err, service.ErrPaymentNotCompleted):
			return c.Status(fiber.StatusPaymentRequired).JSON(models.Response{
				Success: false, Code: "PAYMENT_NOT_COMPLETED", Message: service.ErrPaymentNotCompleted.Error(),
			})
		}
		zlog.Error().Err(err).Str("session_id", input.SessionID).Msg("Handler: Error returned from PaymentService.VerifyCheckout")
		return c.Status(fiber.StatusInternalServerError).JSON(models.Response{
			Success: false, Code: "INTERNAL_ERROR", Message: "Failed to verify payment",
		})
	}

	message := "Payment already credited"
	if result.Credited {
		message = "Payment verified and credited"
	}
	return c.Status(fiber.StatusOK).JSON(models.Response{
		Success: true,
		Message: message,
		Data:    result,
	})
}
