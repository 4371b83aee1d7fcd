// internal/api/v1/handlers/monster_handler.go
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

type MonsterHandler struct {
	MonsterService service.MonsterService
	Validate       *validator.Validate
}

func NewMonsterHandler(monsterService service.MonsterService) *MonsterHandler {
	return &MonsterHandler{
		MonsterService: monsterService,
		Validate:       validator.New(),
	}
}

// respondMonsterError maps monster service errors to HTTP responses shared by
// every monster endpoint.
func respondMonsterError(c *fiber.Ctx, err error, logMsg string) error {
	if errors.Is(err, service.ErrMonsterNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(models.Response{
			Success: false, Code: "MONSTER_NOT_FOUND", Message: service.ErrMonsterNotFound.Error(),
		})
	}
	zlog.Error().Err(err).Msg(logMsg)
	return c.Status(fiber.StatusInternalServerError).JSON(models.Response{
		Success: false, Code: "INTERNAL_ERROR", Message: "Internal server error",
	})
}

// CreateMonster godoc
// @Summary Create Monster
// @Description Creates a monster for the authenticated user. Level, XP and visibility always start at their defaults.
// @Tags Monsters
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param monster body models.CreateMonsterInput true "Monster Details"
// @Success 201 {object} models.Response{data=models.Monster} "Monster created successfully"
// @Failure 400 {object} models.Response{data=map[string]string} "Validation failed or invalid request body"
// @Failure 401 {object} models.Response "Unauthorized"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /monsters [post]
func (h *MonsterHandler) CreateMonster(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromJWT(c)
	if err != nil {
		return err
	}

	input := new(models.CreateMonsterInput)
	if err := c.BodyParser(input); err != nil {
		zlog.Warn().Err(err).Msg("Handler: Invalid request body during monster creation")
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{
			Success: false, Code: "BAD_REQUEST", Message: "Invalid request body",
		})
	}

	if err := h.Validate.Struct(input); err != nil {
		zlog.Warn().Err(err).Msg("Handler: Validation failed during monster creation")
		errorDetails := utils.FormatValidationErrors(err)
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{
			Success: false, Code: "VALIDATION_FAILED", Message: "Validation failed", Data: errorDetails,
		})
	}

	monster, err := h.MonsterService.CreateMonster(c.Context(), userID, input)
	if err != nil {
		return respondMonsterError(c, err, "Handler: Error returned from MonsterService.CreateMonster")
	}

	return c.Status(fiber.StatusCreated).JSON(models.Response{
		Success: true,
		Message: "Monster created successfully",
		Data:    monster,
	})
}

// GetMonsters godoc
// @Summary List My Monsters
// @Description Lists the authenticated user's monsters with pagination.
// @Tags Monsters
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} utils.PaginatedResponseGeneric{data=[]models.Monster} "Monsters retrieved successfully"
// @Failure 401 {object} models.Response "Unauthorized"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /monsters [get]
func (h *MonsterHandler) GetMonsters(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromJWT(c)
	if err != nil {
		return err
	}

	pq := utils.ParsePaginationParams(c)
	monsters, total, err := h.MonsterService.GetMonsters(c.Context(), userID, pq.Page, pq.Limit)
	if err != nil {
		return respondMonsterError(c, err, "Handler: Error returned from MonsterService.GetMonsters")
	}

	meta := utils.BuildPaginationMeta(total, pq.Limit, pq.Page)
	return c.Status(fiber.StatusOK).JSON(utils.NewPaginatedResponse("Monsters retrieved successfully", monsters, meta))
}

// GetMonster godoc
// @Summary Get Monster
// @Description Retrieves one of the authenticated user's monsters.
// @Tags Monsters
// @Produce json
// @Security ApiKeyAuth
// @Param monsterId path int true "Monster ID"
// @Success 200 {object} models.Response{data=models.Monster} "Monster retrieved successfully"
// @Failure 400 {object} models.Response "Invalid monster ID"
// @Failure 401 {object} models.Response "Unauthorized"
// @Failure 404 {object} models.Response "Monster not found"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /monsters/{monsterId} [get]
func (h *MonsterHandler) GetMonster(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromJWT(c)
	if err != nil {
		return err
	}
	monsterID, err := utils.ExtractIDFromParam(c, "monsterId")
	if err != nil {
		return err
	}

	monster, err := h.MonsterService.GetMonster(c.Context(), userID, monsterID)
	if err != nil {
		return respondMonsterError(c, err, "Handler: Error returned from MonsterService.GetMonster")
	}

	return c.Status(fiber.StatusOK).JSON(models.Response{
		Success: true,
		Message: "Monster retrieved successfully",
		Data:    monster,
	})
}

// PerformAction godoc
// @Summary Perform Monster Action
// @Description Applies a mood-correcting action (feed, comfort, hug, wake). An action that does not match the monster's mood changes nothing.
// @Tags Monsters
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param monsterId path int true "Monster ID"
// @Param action body models.MonsterActionInput true "Action to perform"
// @Success 200 {object} models.Response{data=models.ActionResult} "Action processed"
// @Failure 400 {object} models.Response{data=map[string]string} "Validation failed or invalid request body"
// @Failure 401 {object} models.Response "Unauthorized"
// @Failure 404 {object} models.Response "Monster not found"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /monsters/{monsterId}/actions [post]
func (h *MonsterHandler) PerformAction(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromJWT(c)
	if err != nil {
		return err
	}
	monsterID, err := utils.ExtractIDFromParam(c, "monsterId")
	if err != nil {
		return err
	}

	input := new(models.MonsterActionInput)
	if err := c.BodyParser(input); err != nil {
		zlog.Warn().Err(err).Msg("Handler: Invalid request body during monster action")
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{
			Success: false, Code: "BAD_REQUEST", Message: "Invalid request body",
		})
	}

	if err := h.Validate.Struct(input); err != nil {
		zlog.Warn().Err(err).Msg("Handler: Validation failed during monster action")
		errorDetails := utils.FormatValidationErrors(err)
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{
			Success: false, Code: "VALIDATION_FAILED", Message: "Validation failed", Data: errorDetails,
		})
	}

	result, err := h.MonsterService.PerformAction(c.Context(), userID, monsterID, models.MonsterAction(input.Action))
	if err != nil {
		return respondMonsterError(c, err, "Handler: Error returned from MonsterService.PerformAction")
	}

	message := "Action had no effect"
	if result.Changed {
		message = "Action applied successfully"
	}
	return c.Status(fiber.StatusOK).JSON(models.Response{
		Success: true,
		Message: message,
		Data:    result,
	})
}

// SetVisibility godoc
// @Summary Set Monster Visibility
// @Description Publishes or hides a monster in the public gallery.
// @Tags Monsters
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param monsterId path int true "Monster ID"
// @Param visibility body models.SetVisibilityInput true "Visibility flag"
// @Success 200 {object} models.Response{data=models.Monster} "Visibility updated"
// @Failure 400 {object} models.Response{data=map[string]string} "Validation failed or invalid request body"
// @Failure 401 {object} models.Response "Unauthorized"
// @Failure 404 {object} models.Response "Monster not found"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /monsters/{monsterId}/visibility [patch]
func (h *MonsterHandler) SetVisibility(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromJWT(c)
	if err != nil {
		return err
	}
	monsterID, err := utils.ExtractIDFromParam(c, "monsterId")
	if err != nil {
		return err
	}

	input := new(models.SetVisibilityInput)
	if err := c.BodyParser(input); err != nil {
		zlog.Warn().Err(err).Msg("Handler: Invalid request body during visibility update")
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{
			Success: false, Code: "BAD_REQUEST", Message: "Invalid request body",
		})
	}

	if err := h.Validate.Struct(input); err != nil {
		zlog.Warn().Err(err).Msg("Handler: Validation failed during visibility update")
		errorDetails := utils.FormatValidationErrors(err)
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{
			Success: false, Code: "VALIDATION_FAILED", Message: "Validation failed", Data: errorDetails,
		})
	}

	monster, err := h.MonsterService.SetVisibility(c.Context(), userID, monsterID, *input.IsPublic)
	if err != nil {
		return respondMonsterError(c, err, "Handler: Error returned from MonsterService.SetVisibility")
	}

	return c.Status(fiber.StatusOK).JSON(models.Response{
		Success: true,
		Message: "Visibility updated successfully",
		Data:    monster,
	})
}
