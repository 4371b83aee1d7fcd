package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tamagotcho/tamagotcho-be/internal/api/v1/handlers"
	"github.com/tamagotcho/tamagotcho-be/internal/models"
	"github.com/tamagotcho/tamagotcho-be/internal/repository"
	"github.com/tamagotcho/tamagotcho-be/internal/service/mocks"
	"github.com/tamagotcho/tamagotcho-be/internal/utils/test_utils"
)

func setupGalleryApp(t *testing.T) (*fiber.App, *mocks.MockGalleryService) {
	app := fiber.New()
	mockService := mocks.NewMockGalleryService(t)
	handler := handlers.NewGalleryHandler(mockService)

	authed := app.Group("/api/v1/gallery", test_utils.MockJWTMiddleware(testUserID, testUsername))
	authed.Get("/", handler.ListPublicMonsters)
	authed.Get("/levels", handler.GetAvailableLevels)

	return app, mockService
}

func TestGalleryHandler_ListPublicMonsters(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		app, mockService := setupGalleryApp(t)

		expectedFilter := repository.GalleryFilter{Sort: "newest"}
		monsters := []models.PublicMonster{
			{ID: 1, Name: "Grumpel", Level: 2, State: models.MonsterStateHappy, OwnerName: "alice"},
		}
		mockService.On("ListPublicMonsters", mock.Anything, expectedFilter, 1, 10).Return(monsters, 1, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/gallery/", nil)
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		data := body["data"].([]interface{})
		assert.Len(t, data, 1)
		first := data[0].(map[string]interface{})
		assert.Equal(t, "alice", first["owner_name"])
	})

	t.Run("Filters Are Forwarded", func(t *testing.T) {
		app, mockService := setupGalleryApp(t)

		level := 3
		expectedFilter := repository.GalleryFilter{Level: &level, State: "happy", Sort: "oldest"}
		mockService.On("ListPublicMonsters", mock.Anything, expectedFilter, 2, 5).
			Return([]models.PublicMonster{}, 0, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/gallery/?page=2&limit=5&level=3&state=happy&sort=oldest", nil)
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestGalleryHandler_GetAvailableLevels(t *testing.T) {
	app, mockService := setupGalleryApp(t)
	mockService.On("AvailableLevels", mock.Anything).Return([]int{1, 2, 5}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/gallery/levels", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []interface{}{float64(1), float64(2), float64(5)}, body["data"])
}
