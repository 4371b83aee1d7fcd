// internal/api/v1/handlers/quest_handler.go
package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	zlog "github.com/rs/zerolog/log"
	"github.com/tamagotcho/tamagotcho-be/internal/catalog"
	"github.com/tamagotcho/tamagotcho-be/internal/models"
	"github.com/tamagotcho/tamagotcho-be/internal/service"
	"github.com/tamagotcho/tamagotcho-be/internal/utils"
)

type QuestHandler struct {
	QuestService service.QuestService
}

func NewQuestHandler(questService service.QuestService) *QuestHandler {
	return &QuestHandler{QuestService: questService}
}

// questView merges an active quest's progress with its static catalog entry
// so clients get titles and rewards without a second lookup.
type questView struct {
	models.ActiveQuest
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Reward      int    `json:"reward"`
	Category    string `json:"category"`
}

func buildQuestViews(quests []models.ActiveQuest) []questView {
	views := make([]questView, 0, len(quests))
	for _, q := range quests {
		view := questView{ActiveQuest: q}
		if def, ok := catalog.GetQuestDefinition(q.QuestID); ok {
			view.Title = def.Title
			view.Description = def.Description
			view.Icon = def.Icon
			view.Reward = def.Reward
			view.Category = def.Category
		}
		views = append(views, view)
	}
	return views
}

// GetDailyQuests godoc
// @Summary Get Daily Quests
// @Description Returns today's three daily quests, regenerating them when the stored set is from a previous day.
// @Tags Quests
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.Response "Daily quests retrieved successfully"
// @Failure 401 {object} models.Response "Unauthorized"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /quests [get]
func (h *QuestHandler) GetDailyQuests(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromJWT(c)
	if err != nil {
		return err
	}

	quests, err := h.QuestService.GetDailyQuests(c.Context(), userID)
	if err != nil {
		zlog.Error().Err(err).Int("user_id", userID).Msg("Handler: Error returned from QuestService.GetDailyQuests")
		return c.Status(fiber.StatusInternalServerError).JSON(models.Response{
			Success: false, Code: "INTERNAL_ERROR", Message: "Failed to retrieve daily quests",
		})
	}

	return c.Status(fiber.StatusOK).JSON(models.Response{
		Success: true,
		Message: "Daily quests retrieved successfully",
		Data: fiber.Map{
			"quests":          buildQuestViews(quests.ActiveQuests),
			"last_reset_date": quests.LastResetDate,
		},
	})
}

// ClaimQuestReward godoc
// @Summary Claim Quest Reward
// @Description Credits the reward of a completed daily quest to the wallet. Each quest pays out once per day.
// @Tags Quests
// @Produce json
// @Security ApiKeyAuth
// @Param questId path string true "Quest ID"
// @Success 200 {object} models.Response{data=models.ClaimResult} "Reward claimed successfully"
// @Failure 401 {object} models.Response "Unauthorized"
// @Failure 404 {object} models.Response "Quest not found among today's quests"
// @Failure 409 {object} models.Response "Quest not completed or already claimed"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /quests/{questId}/claim [post]
func (h *QuestHandler) ClaimQuestReward(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromJWT(c)
	if err != nil {
		return err
	}
	questID := models.QuestID(c.Params("questId"))

	result, err := h.QuestService.ClaimQuestReward(c.Context(), userID, questID)
	if err != nil {
		if errors.Is(err, service.ErrQuestNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.Response{
				Success: false, Code: "QUEST_NOT_FOUND", Message: service.ErrQuestNotFound.Error(),
			})
		}
		if errors.Is(err, service.ErrQuestNotCompleted) {
			return c.Status(fiber.StatusConflict).JSON(models.Response{
				Success: false, Code: "QUEST_NOT_COMPLETED", Message: service.ErrQuestNotCompleted.Error(),
			})
		}
		if errors.Is(err, service.ErrQuestAlreadyClaimed) {
			return c.Status(fiber.StatusConflict).JSON(models.Response{
				Success: false, Code: "QUEST_ALREADY_CLAIMED", Message: service.ErrQuestAlreadyClaimed.Error(),
			})
		}
		zlog.Error().Err(err).Int("user_id", userID).Str("quest_id", string(questID)).Msg("Handler: Error returned from QuestService.ClaimQuestReward")
		return c.Status(fiber.StatusInternalServerError).JSON(models.Response{
			Success: false, Code: "INTERNAL_ERROR", Message: "Failed to claim quest reward",
		})
	}

	return c.Status(fiber.StatusOK).JSON(models.Response{
		Success: true,
		Message: "Reward claimed successfully",
		Data:    result,
	})
}
