// internal/api/v1/handlers/gallery_handler.go
package handlers

import (
	"github.com/gofiber/fiber/v2"
	zlog "github.com/rs/zerolog/log"
	"github.com/tamagotcho/tamagotcho-be/internal/models"
	"github.com/tamagotcho/tamagotcho-be/internal/repository"
	"github.com/tamagotcho/tamagotcho-be/internal/service"
	"github.com/tamagotcho/tamagotcho-be/internal/utils"
)

type GalleryHandler struct {
	GalleryService service.GalleryService
}

func NewGalleryHandler(galleryService service.GalleryService) *GalleryHandler {
	return &GalleryHandler{GalleryService: galleryService}
}

// ListPublicMonsters godoc
// @Summary Browse Public Gallery
// @Description Lists public monsters with anonymized owners. Supports level and state filters and newest/oldest sorting.
// @Tags Gallery
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param level query int false "Filter by level"
// @Param state query string false "Filter by mood state"
// @Param sort query string false "Sort order: newest or oldest" default(newest)
// @Success 200 {object} utils.PaginatedResponseGeneric{data=[]models.PublicMonster} "Gallery retrieved successfully"
// @Failure 401 {object} models.Response "Unauthorized"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /gallery [get]
func (h *GalleryHandler) ListPublicMonsters(c *fiber.Ctx) error {
	pq := utils.ParsePaginationParams(c)

	filter := repository.GalleryFilter{
		State: c.Query("state"),
		Sort:  c.Query("sort", "newest"),
	}
	if levelStr := c.Query("level"); levelStr != "" {
		if level := c.QueryInt("level", 0); level > 0 {
			filter.Level = &level
		}
	}

	monsters, total, err := h.GalleryService.ListPublicMonsters(c.Context(), filter, pq.Page, pq.Limit)
	if err != nil {
		zlog.Error().Err(err).Msg("Handler: Error returned from GalleryService.ListPublicMonsters")
		return c.Status(fiber.StatusInternalServerError).JSON(models.Response{
			Success: false, Code: "INTERNAL_ERROR", Message: "Failed to retrieve gallery",
		})
	}

	meta := utils.BuildPaginationMeta(total, pq.Limit, pq.Page)
	return c.Status(fiber.StatusOK).JSON(utils.NewPaginatedResponse("Gallery retrieved successfully", monsters, meta))
}

// GetAvailableLevels godoc
// @Summary Get Gallery Levels
// @Description Lists the distinct levels present among public monsters, for filter dropdowns.
// @Tags Gallery
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.Response{data=[]int} "Levels retrieved successfully"
// @Failure 401 {object} models.Response "Unauthorized"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /gallery/levels [get]
func (h *GalleryHandler) GetAvailableLevels(c *fiber.Ctx) error {
	levels, err := h.GalleryService.AvailableLevels(c.Context())
	if err != nil {
		zlog.Error().Err(err).Msg("Handler: Error returned from GalleryService.AvailableLevels")
		return c.Status(fiber.StatusInternalServerError).JSON(models.Response{
			Success: false, Code: "INTERNAL_ERROR", Message: "Failed to retrieve gallery levels",
		})
	}

	return c.Status(fiber.StatusOK).JSON(models.Response{
		Success: true,
		Message: "Levels retrieved successfully",
		Data:    levels,
	})
}
