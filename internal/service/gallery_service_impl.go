// internal/service/gallery_service_impl.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	zlog "github.com/rs/zerolog/log"
	"github.com/tamagotcho/tamagotcho-be/internal/models"
	"github.com/tamagotcho/tamagotcho-be/internal/repository"
)

// galleryCacheTTL keeps gallery pages hot for a short window. The gallery is
// read-heavy and slightly stale data is harmless there.
const galleryCacheTTL = 30 * time.Second

type galleryServiceImpl struct {
	monsterRepo repository.MonsterRepository
	cache       *redis.Client
}

// NewGalleryService creates a new instance of GalleryService. cache may be
// nil, in which case every read goes to the database.
func NewGalleryService(monsterRepo repository.MonsterRepository, cache *redis.Client) GalleryService {
	return &galleryServiceImpl{
		monsterRepo: monsterRepo,
		cache:       cache,
	}
}

type galleryPage struct {
	Monsters []models.PublicMonster `json:"monsters"`
	Total    int                    `json:"total"`
}

func galleryCacheKey(filter repository.GalleryFilter, page, limit int) string {
	level := -1
	if filter.Level != nil {
		level = *filter.Level
	}
	return fmt.Sprintf("gallery:page:%d:%d:lvl=%d:state=%s:sort=%s", page, limit, level, filter.State, filter.Sort)
}

// ListPublicMonsters implements the gallery page read. Cache misses and cache
// errors both fall through to the database.
func (s *galleryServiceImpl) ListPublicMonsters(ctx context.Context, filter repository.GalleryFilter, page, limit int) ([]models.PublicMonster, int, error) {
	key := galleryCacheKey(filter, page, limit)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key).Result()
		if err == nil {
			var pageData galleryPage
			if err := json.Unmarshal([]byte(cached), &pageData); err == nil {
				return pageData.Monsters, pageData.Total, nil
			}
			zlog.Warn().Str("key", key).Msg("Service: Dropping malformed gallery cache entry")
			s.cache.Del(ctx, key)
		} else if err != redis.Nil {
			zlog.Warn().Err(err).Str("key", key).Msg("Service: Gallery cache read failed, falling back to database")
		}
	}

	offset := (page - 1) * limit
	monsters, total, err := s.monsterRepo.GetPublicMonsters(ctx, filter, limit, offset)
	if err != nil {
		zlog.Error().Err(err).Msg("Service: Error listing public monsters")
		return nil, 0, fmt.Errorf("internal server error: could not list public monsters")
	}

	if s.cache != nil {
		payload, err := json.Marshal(galleryPage{Monsters: monsters, Total: total})
		if err == nil {
			if err := s.cache.Set(ctx, key, payload, galleryCacheTTL).Err(); err != nil {
				zlog.Warn().Err(err).Str("key", key).Msg("Service: Gallery cache write failed")
			}
		}
	}

	return monsters, total, nil
}

// AvailableLevels implements the distinct-level listing used by gallery
// filters, cached under a single key.
func (s *galleryServiceImpl) AvailableLevels(ctx context.Context) ([]int, error) {
	const key = "gallery:levels"

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key).Result()
		if err == nil {
			var levels []int
			if err := json.Unmarshal([]byte(cached), &levels); err == nil {
				return levels, nil
			}
			s.cache.Del(ctx, key)
		} else if err != redis.Nil {
			zlog.Warn().Err(err).Str("key", key).Msg("Service: Gallery levels cache read failed, falling back to database")
		}
	}

	levels, err := s.monsterRepo.GetPublicLevels(ctx)
	if err != nil {
		zlog.Error().Err(err).Msg("Service: Error listing gallery levels")
		return nil, fmt.Errorf("internal server error: could not list gallery levels")
	}

	if s.cache != nil {
		if payload, err := json.Marshal(levels); err == nil {
			if err := s.cache.Set(ctx, key, payload, galleryCacheTTL).Err(); err != nil {
				zlog.Warn().Err(err).Str("key", key).Msg("Service: Gallery levels cache write failed")
			}
		}
	}

	return levels, nil
}
