package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tamagotcho/tamagotcho-be/internal/api/v1/handlers"
	"github.com/tamagotcho/tamagotcho-be/internal/models"
	"github.com/tamagotcho/tamagotcho-be/internal/service"
	"github.com/tamagotcho/tamagotcho-be/internal/service/mocks"
	"github.com/tamagotcho/tamagotcho-be/internal/utils/test_utils"
)

func setupQuestApp(t *testing.T) (*fiber.App, *mocks.MockQuestService) {
	app := fiber.New()
	mockService := mocks.NewMockQuestService(t)
	handler := handlers.NewQuestHandler(mockService)

	authed := app.Group("/api/v1/quests", test_utils.MockJWTMiddleware(testUserID, testUsername))
	authed.Get("/", handler.GetDailyQuests)
	authed.Post("/:questId/claim", handler.ClaimQuestReward)

	return app, mockService
}

func TestQuestHandler_GetDailyQuests(t *testing.T) {
	app, mockService := setupQuestApp(t)

	quests := &models.UserQuests{
		UserID: testUserID,
		ActiveQuests: []models.ActiveQuest{
			{QuestID: models.QuestFeedMonster5, Progress: 2, Target: 5},
			{QuestID: models.QuestBuyAccessory, Progress: 1, Target: 1, Completed: true},
			{QuestID: models.QuestMakeMonsterPublic, Progress: 0, Target: 1},
		},
		LastResetDate: time.Now().UTC(),
	}
	mockService.On("GetDailyQuests", mock.Anything, testUserID).Return(quests, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/quests/", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	data := body["data"].(map[string]interface{})
	views := data["quests"].([]interface{})
	assert.Len(t, views, 3)

	// Views are enriched with the static catalog entry.
	first := views[0].(map[string]interface{})
	assert.Equal(t, string(models.QuestFeedMonster5), first["quest_id"])
	assert.Equal(t, "Chef cuisinier", first["title"])
	assert.Equal(t, float64(20), first["reward"])
}

func TestQuestHandler_ClaimQuestReward(t *testing.T) {
	tests := []struct {
		name           string
		questID        models.QuestID
		setupMock      func(mockService *mocks.MockQuestService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:    "Success",
			questID: models.QuestFeedMonster5,
			setupMock: func(mockService *mocks.MockQuestService) {
				mockService.On("ClaimQuestReward", mock.Anything, testUserID, models.QuestFeedMonster5).
					Return(&models.ClaimResult{QuestID: models.QuestFeedMonster5, Reward: 20, Balance: 120}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "Not Completed",
			questID: models.QuestFeedMonster5,
			setupMock: func(mockService *mocks.MockQuestService) {
				mockService.On("ClaimQuestReward", mock.Anything, testUserID, models.QuestFeedMonster5).
					Return(nil, service.ErrQuestNotCompleted).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "QUEST_NOT_COMPLETED",
		},
		{
			name:    "Already Claimed",
			questID: models.QuestFeedMonster5,
			setupMock: func(mockService *mocks.MockQuestService) {
				mockService.On("ClaimQuestReward", mock.Anything, testUserID, models.QuestFeedMonster5).
					Return(nil, service.ErrQuestAlreadyClaimed).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "QUEST_ALREADY_CLAIMED",
		},
		{
			name:    "Unknown Quest",
			questID: models.QuestID("bogus"),
			setupMock: func(mockService *mocks.MockQuestService) {
				mockService.On("ClaimQuestReward", mock.Anything, testUserID, models.QuestID("bogus")).
					Return(nil, service.ErrQuestNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "QUEST_NOT_FOUND",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app, mockService := setupQuestApp(t)
			tc.setupMock(mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/quests/"+string(tc.questID)+"/claim", nil)
			resp, err := app.Test(req, -1)
			assert.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode)

			var body map[string]interface{}
			assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			if tc.expectedCode != "" {
				assert.Equal(t, tc.expectedCode, body["code"])
			} else {
				data := body["data"].(map[string]interface{})
				assert.Equal(t, float64(20), data["reward"])
				assert.Equal(t, float64(120), data["balance"])
			}
		})
	}
}
