// internal/service/monster_service_impl.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	zlog "github.com/rs/zerolog/log"
	"github.com/tamagotcho/tamagotcho-be/internal/catalog"
	"github.com/tamagotcho/tamagotcho-be/internal/models"
	"github.com/tamagotcho/tamagotcho-be/internal/repository"
)

// ErrMonsterNotFound is returned both when a monster does not exist and when
// it belongs to another user, so callers cannot probe for foreign ids.
var ErrMonsterNotFound = errors.New("monster not found")

type monsterServiceImpl struct {
	monsterRepo repository.MonsterRepository
	walletRepo  repository.WalletRepository
	questSvc    QuestService
}

// NewMonsterService creates a new instance of MonsterService.
func NewMonsterService(monsterRepo repository.MonsterRepository, walletRepo repository.WalletRepository, questSvc QuestService) MonsterService {
	return &monsterServiceImpl{
		monsterRepo: monsterRepo,
		walletRepo:  walletRepo,
		questSvc:    questSvc,
	}
}

// CreateMonster implements monster creation. Starting progression (level 1,
// 0/100 XP, private) is fixed server-side regardless of the input.
func (s *monsterServiceImpl) CreateMonster(ctx context.Context, ownerID int, input *models.CreateMonsterInput) (*models.Monster, error) {
	monster, err := s.monsterRepo.CreateMonster(ctx, ownerID, input)
	if err != nil {
		zlog.Error().Err(err).Int("owner_id", ownerID).Msg("Service: Error creating monster")
		return nil, fmt.Errorf("internal server error: could not create monster")
	}

	zlog.Info().Int("monster_id", monster.ID).Int("owner_id", ownerID).Str("name", monster.Name).Msg("Service: Monster created")
	return monster, nil
}

// GetMonsters implements the paginated listing of the caller's monsters.
func (s *monsterServiceImpl) GetMonsters(ctx context.Context, ownerID, page, limit int) ([]models.Monster, int, error) {
	monsters, total, err := s.monsterRepo.GetMonstersByOwnerID(ctx, ownerID, page, limit)
	if err != nil {
		zlog.Error().Err(err).Int("owner_id", ownerID).Msg("Service: Error listing monsters")
		return nil, 0, fmt.Errorf("internal server error: could not list monsters")
	}
	return monsters, total, nil
}

// getOwnedMonster fetches a monster and enforces ownership. Not-found and
// not-yours collapse into the same error.
func (s *monsterServiceImpl) getOwnedMonster(ctx context.Context, ownerID, monsterID int) (*models.Monster, error) {
	monster, err := s.monsterRepo.GetMonsterByID(ctx, monsterID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMonsterNotFound
		}
		zlog.Error().Err(err).Int("monster_id", monsterID).Msg("Service: Error fetching monster")
		return nil, fmt.Errorf("internal server error: could not retrieve monster")
	}
	if monster.OwnerID != ownerID {
		zlog.Warn().Int("monster_id", monsterID).Int("owner_id", monster.OwnerID).Int("caller_id", ownerID).Msg("Service: Ownership mismatch on monster access")
		return nil, ErrMonsterNotFound
	}
	return monster, nil
}

// GetMonster implements the single-monster read.
func (s *monsterServiceImpl) GetMonster(ctx context.Context, ownerID, monsterID int) (*models.Monster, error) {
	return s.getOwnedMonster(ctx, ownerID, monsterID)
}

// PerformAction implements mood-correcting actions. An action that does not
// match the monster's current mood changes nothing and is reported as such.
// A matching action sets the mood to happy, grants XP with level rollover,
// then pays a small koin reward and advances daily quests best-effort.
func (s *monsterServiceImpl) PerformAction(ctx context.Context, ownerID, monsterID int, action models.MonsterAction) (*models.ActionResult, error) {
	monster, err := s.getOwnedMonster(ctx, ownerID, monsterID)
	if err != nil {
		return nil, err
	}

	requiredState, ok := catalog.ActionMoodMap[action]
	if !ok {
		return nil, fmt.Errorf("unknown action %q", action)
	}

	if monster.State != requiredState {
		return &models.ActionResult{
			Changed: false,
			State:   monster.State,
			Level:   monster.Level,
			XP:      monster.XP,
			MaxXP:   monster.MaxXP,
		}, nil
	}

	monster.State = models.MonsterStateHappy
	leveledUp := ApplyXP(monster, catalog.ActionXPGain)

	if err := s.monsterRepo.UpdateMonsterProgress(ctx, monster); err != nil {
		zlog.Error().Err(err).Int("monster_id", monsterID).Msg("Service: Error persisting monster progress after action")
		return nil, fmt.Errorf("internal server error: could not update monster")
	}

	// Rewards and quest progress ride on top of the already-persisted state
	// change. Their failures are logged, never surfaced.
	koins := catalog.ActionKoinRewards[action]
	if koins > 0 {
		if _, err := s.walletRepo.Credit(ctx, ownerID, koins); err != nil {
			zlog.Error().Err(err).Int("owner_id", ownerID).Int("koins", koins).Msg("Service: Error crediting action reward")
			koins = 0
		}
	}

	if action == models.MonsterActionFeed {
		if err := s.questSvc.TrackAction(ctx, ownerID, models.QuestActionFeed, monsterID); err != nil {
			zlog.Error().Err(err).Int("owner_id", ownerID).Msg("Service: Error tracking feed quest")
		}
	}
	if err := s.questSvc.TrackAction(ctx, ownerID, models.QuestActionInteract, monsterID); err != nil {
		zlog.Error().Err(err).Int("owner_id", ownerID).Msg("Service: Error tracking interact quest")
	}
	if leveledUp {
		if err := s.questSvc.TrackAction(ctx, ownerID, models.QuestActionLevelUp, monsterID); err != nil {
			zlog.Error().Err(err).Int("owner_id", ownerID).Msg("Service: Error tracking level-up quest")
		}
	}

	zlog.Info().Int("monster_id", monsterID).Str("action", string(action)).Int("level", monster.Level).Int("xp", monster.XP).Bool("leveled_up", leveledUp).Msg("Service: Monster action applied")
	return &models.ActionResult{
		Changed:     true,
		State:       monster.State,
		Level:       monster.Level,
		XP:          monster.XP,
		MaxXP:       monster.MaxXP,
		LeveledUp:   leveledUp,
		KoinsEarned: koins,
	}, nil
}

// SetVisibility implements gallery publishing. Only a private-to-public flip
// advances the sharing quest; re-publishing an already public monster does
// not.
func (s *monsterServiceImpl) SetVisibility(ctx context.Context, ownerID, monsterID int, isPublic bool) (*models.Monster, error) {
	monster, err := s.getOwnedMonster(ctx, ownerID, monsterID)
	if err != nil {
		return nil, err
	}

	wasPublic := monster.IsPublic
	if wasPublic != isPublic {
		if err := s.monsterRepo.SetVisibility(ctx, monsterID, isPublic); err != nil {
			zlog.Error().Err(err).Int("monster_id", monsterID).Msg("Service: Error updating monster visibility")
			return nil, fmt.Errorf("internal server error: could not update visibility")
		}
		monster.IsPublic = isPublic
	}

	if !wasPublic && isPublic {
		if err := s.questSvc.TrackAction(ctx, ownerID, models.QuestActionMakePublic, monsterID); err != nil {
			zlog.Error().Err(err).Int("owner_id", ownerID).Msg("Service: Error tracking make-public quest")
		}
	}

	zlog.Info().Int("monster_id", monsterID).Bool("is_public", isPublic).Msg("Service: Monster visibility set")
	return monster, nil
}
