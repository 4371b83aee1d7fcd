// internal/api/v1/handlers/wallet_handler.go
package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	zlog "github.com/rs/zerolog/log"
	"github.com/tamagotcho/tamagotcho-be/internal/catalog"
	"github.com/tamagotcho/tamagotcho-be/internal/models"
	"github.com/tamagotcho/tamagotcho-be/internal/repository"
	"github.com/tamagotcho/tamagotcho-be/internal/utils"
)

// WalletHandler serves wallet reads directly off the repository. Reads have
// no business rules, so no service layer sits in between.
type WalletHandler struct {
	WalletRepo repository.WalletRepository
}

func NewWalletHandler(walletRepo repository.WalletRepository) *WalletHandler {
	return &WalletHandler{WalletRepo: walletRepo}
}

// GetWallet godoc
// @Summary Get Wallet
// @Description Returns the authenticated user's koin balance.
// @Tags Wallet
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.Response{data=models.Wallet} "Wallet retrieved successfully"
// @Failure 401 {object} models.Response "Unauthorized"
// @Failure 404 {object} models.Response "Wallet not found"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /wallet [get]
func (h *WalletHandler) GetWallet(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromJWT(c)
	if err != nil {
		return err
	}

	wallet, err := h.WalletRepo.GetWalletByOwnerID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(models.Response{
				Success: false, Code: "WALLET_NOT_FOUND", Message: "wallet not found",
			})
		}
		zlog.Error().Err(err).Int("user_id", userID).Msg("Handler: Error fetching wallet")
		return c.Status(fiber.StatusInternalServerError).JSON(models.Response{
			Success: false, Code: "INTERNAL_ERROR", Message: "Failed to retrieve wallet",
		})
	}

	return c.Status(fiber.StatusOK).JSON(models.Response{
		Success: true,
		Message: "Wallet retrieved successfully",
		Data:    wallet,
	})
}

// GetKoinPackages godoc
// @Summary Get Koin Packages
// @Description Lists the purchasable koin packages and their provider product ids.
// @Tags Wallet
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.Response{data=[]catalog.KoinPackage} "Packages retrieved successfully"
// @Failure 401 {object} models.Response "Unauthorized"
// @Router /wallet/packages [get]
func (h *WalletHandler) GetKoinPackages(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(models.Response{
		Success: true,
		Message: "Packages retrieved successfully",
		Data:    catalog.PricingTable,
	})
}
