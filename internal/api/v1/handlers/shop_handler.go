// internal/api/v1/handlers/shop_handler.go
package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	zlog "github.com/rs/zerolog/log"
	"github.com/tamagotcho/tamagotcho-be/internal/catalog"
	"github.com/tamagotcho/tamagotcho-be/internal/models"
	"github.com/tamagotcho/tamagotcho-be/internal/service"
	"github.com/tamagotcho/tamagotcho-be/internal/utils"
)

type ShopHandler struct {
	ShopService service.ShopService
	Validate    *validator.Validate
}

func NewShopHandler(shopService service.ShopService) *ShopHandler {
	return &ShopHandler{
		ShopService: shopService,
		Validate:    validator.New(),
	}
}

// respondShopError maps shop service errors to HTTP responses shared by the
// purchase endpoints.
func respondShopError(c *fiber.Ctx, err error, logMsg string) error {
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		return c.Status(fiber.StatusNotFound).JSON(models.Response{
			Success: false, Code: "ITEM_NOT_FOUND", Message: service.ErrItemNotFound.Error(),
		})
	case errors.Is(err, service.ErrMonsterNotFound):
		return c.Status(fiber.StatusNotFound).JSON(models.Response{
			Success: false, Code: "MONSTER_NOT_FOUND", Message: service.ErrMonsterNotFound.Error(),
		})
	case errors.Is(err, service.ErrAlreadyOwned):
		return c.Status(fiber.StatusConflict).JSON(models.Response{
			Success: false, Code: "ALREADY_OWNED", Message: service.ErrAlreadyOwned.Error(),
		})
	case errors.Is(err, service.ErrInsufficientBalance):
		return c.Status(fiber.StatusPaymentRequired).JSON(models.Response{
			Success: false, Code: "INSUFFICIENT_BALANCE", Message: service.ErrInsufficientBalance.Error(),
		})
	case errors.Is(err, service.ErrWalletNotFound):
		return c.Status(fiber.StatusNotFound).JSON(models.Response{
			Success: false, Code: "WALLET_NOT_FOUND", Message: service.ErrWalletNotFound.Error(),
		})
	}
	zlog.Error().Err(err).Msg(logMsg)
	return c.Status(fiber.StatusInternalServerError).JSON(models.Response{
		Success: false, Code: "INTERNAL_ERROR", Message: "Internal server error",
	})
}

// GetCatalog godoc
// @Summary Get Shop Catalog
// @Description Returns the full static shop catalog: accessories, backgrounds and XP boosts.
// @Tags Shop
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.Response{data=service.ShopCatalog} "Catalog retrieved successfully"
// @Failure 401 {object} models.Response "Unauthorized"
// @Router /shop/catalog [get]
func (h *ShopHandler) GetCatalog(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(models.Response{
		Success: true,
		Message: "Catalog retrieved successfully",
		Data: service.ShopCatalog{
			Accessories: catalog.AccessoryCatalog,
			Backgrounds: catalog.BackgroundCatalog,
			Boosts:      catalog.XPBoostCatalog,
		},
	})
}

// GetOwnedItems godoc
// @Summary Get Owned Items
// @Description Lists accessory and background unlocks usable with the given monster, including account-wide unlocks.
// @Tags Shop
// @Produce json
// @Security ApiKeyAuth
// @Param monsterId query int false "Monster ID (0 for account-wide unlocks only)"
// @Success 200 {object} models.Response{data=models.OwnedItemsResult} "Owned items retrieved successfully"
// @Failure 401 {object} models.Response "Unauthorized"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /shop/owned [get]
func (h *ShopHandler) GetOwnedItems(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromJWT(c)
	if err != nil {
		return err
	}
	monsterID := c.QueryInt("monsterId", 0)

	result, err := h.ShopService.GetOwnedItems(c.Context(), userID, monsterID)
	if err != nil {
		return respondShopError(c, err, "Handler: Error returned from ShopService.GetOwnedItems")
	}

	return c.Status(fiber.StatusOK).JSON(models.Response{
		Success: true,
		Message: "Owned items retrieved successfully",
		Data:    result,
	})
}

// parsePurchaseInput parses and validates the optional monster binding of an
// accessory or background purchase. An empty body means account-wide.
func (h *ShopHandler) parsePurchaseInput(c *fiber.Ctx) (*models.PurchaseItemInput, error) {
	input := new(models.PurchaseItemInput)
	if len(c.Body()) > 0 {
		if err := c.BodyParser(input); err != nil {
			return nil, err
		}
	}
	if err := h.Validate.Struct(input); err != nil {
		return nil, err
	}
	return input, nil
}

// PurchaseAccessory godoc
// @Summary Purchase Accessory
// @Description Unlocks an accessory for koins. Omit monster_id for an account-wide unlock.
// @Tags Shop
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param itemId path string true "Accessory ID"
// @Param purchase body models.PurchaseItemInput false "Optional monster binding"
// @Success 200 {object} models.Response{data=models.PurchaseResult} "Accessory purchased successfully"
// @Failure 400 {object} models.Response "Invalid request body"
// @Failure 401 {object} models.Response "Unauthorized"
// @Failure 402 {object} models.Response "Insufficient balance"
// @Failure 404 {object} models.Response "Item not found"
// @Failure 409 {object} models.Response "Already owned"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /shop/accessories/{itemId}/purchase [post]
func (h *ShopHandler) PurchaseAccessory(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromJWT(c)
	if err != nil {
		return err
	}
	itemID := c.Params("itemId")

	input, err := h.parsePurchaseInput(c)
	if err != nil {
		zlog.Warn().Err(err).Msg("Handler: Invalid request body during accessory purchase")
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{
			Success: false, Code: "BAD_REQUEST", Message: "Invalid request body",
		})
	}

	result, err := h.ShopService.PurchaseAccessory(c.Context(), userID, input.MonsterID, itemID)
	if err != nil {
		return respondShopError(c, err, "Handler: Error returned from ShopService.PurchaseAccessory")
	}

	return c.Status(fiber.StatusOK).JSON(models.Response{
		Success: true,
		Message: "Accessory purchased successfully",
		Data:    result,
	})
}

// PurchaseBackground godoc
// @Summary Purchase Background
// @Description Unlocks a background for koins. Omit monster_id for an account-wide unlock.
// @Tags Shop
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param itemId path string true "Background ID"
// @Param purchase body models.PurchaseItemInput false "Optional monster binding"
// @Success 200 {object} models.Response{data=models.PurchaseResult} "Background purchased successfully"
// @Failure 400 {object} models.Response "Invalid request body"
// @Failure 401 {object} models.Response "Unauthorized"
// @Failure 402 {object} models.Response "Insufficient balance"
// @Failure 404 {object} models.Response "Item not found"
// @Failure 409 {object} models.Response "Already owned"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /shop/backgrounds/{itemId}/purchase [post]
func (h *ShopHandler) PurchaseBackground(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromJWT(c)
	if err != nil {
		return err
	}
	itemID := c.Params("itemId")

	input, err := h.parsePurchaseInput(c)
	if err != nil {
		zlog.Warn().Err(err).Msg("Handler: Invalid request body during background purchase")
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{
			Success: false, Code: "BAD_REQUEST", Message: "Invalid request body",
		})
	}

	result, err := h.ShopService.PurchaseBackground(c.Context(), userID, input.MonsterID, itemID)
	if err != nil {
		return respondShopError(c, err, "Handler: Error returned from ShopService.PurchaseBackground")
	}

	return c.Status(fiber.StatusOK).JSON(models.Response{
		Success: true,
		Message: "Background purchased successfully",
		Data:    result,
	})
}

// PurchaseBoost godoc
// @Summary Purchase XP Boost
// @Description Debits the boost price and applies its XP to the monster immediately, rolling levels over as needed.
// @Tags Shop
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param boostId path string true "Boost ID"
// @Param purchase body models.PurchaseBoostInput true "Target monster"
// @Success 200 {object} models.Response{data=models.BoostResult} "Boost applied successfully"
// @Failure 400 {object} models.Response{data=map[string]string} "Validation failed or invalid request body"
// @Failure 401 {object} models.Response "Unauthorized"
// @Failure 402 {object} models.Response "Insufficient balance"
// @Failure 404 {object} models.Response "Boost or monster not found"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /shop/boosts/{boostId}/purchase [post]
func (h *ShopHandler) PurchaseBoost(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromJWT(c)
	if err != nil {
		return err
	}
	boostID := c.Params("boostId")

	input := new(models.PurchaseBoostInput)
	if err := c.BodyParser(input); err != nil {
		zlog.Warn().Err(err).Msg("Handler: Invalid request body during boost purchase")
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{
			Success: false, Code: "BAD_REQUEST", Message: "Invalid request body",
		})
	}

	if err := h.Validate.Struct(input); err != nil {
		zlog.Warn().Err(err).Msg("Handler: Validation failed during boost purchase")
		errorDetails := utils.FormatValidationErrors(err)
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{
			Success: false, Code: "VALIDATION_FAILED", Message: "Validation failed", Data: errorDetails,
		})
	}

	result, err := h.ShopService.PurchaseBoost(c.Context(), userID, input.MonsterID, boostID)
	if err != nil {
		return respondShopError(c, err, "Handler: Error returned from ShopService.PurchaseBoost")
	}

	return c.Status(fiber.StatusOK).JSON(models.Response{
		Success: true,
		Message: "Boost applied successfully",
		Data:    result,
	})
}
