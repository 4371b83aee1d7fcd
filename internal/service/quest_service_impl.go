// internal/service/quest_service_impl.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	zlog "github.com/rs/zerolog/log"
	"github.com/tamagotcho/tamagotcho-be/internal/catalog"
	"github.com/tamagotcho/tamagotcho-be/internal/models"
	"github.com/tamagotcho/tamagotcho-be/internal/repository"
)

var (
	ErrQuestNotFound       = errors.New("quest not found among today's quests")
	ErrQuestNotCompleted   = errors.New("quest is not completed yet")
	ErrQuestAlreadyClaimed = errors.New("quest reward already claimed")
)

type questServiceImpl struct {
	pool       TxBeginner
	questsRepo repository.UserQuestsRepository
	walletRepo repository.WalletRepository
}

// NewQuestService creates a new instance of QuestService.
func NewQuestService(pool TxBeginner, questsRepo repository.UserQuestsRepository, walletRepo repository.WalletRepository) QuestService {
	return &questServiceImpl{
		pool:       pool,
		questsRepo: questsRepo,
		walletRepo: walletRepo,
	}
}

// generateDailyQuests draws a fresh random selection from the catalog with
// zeroed progress.
func generateDailyQuests(userID int) *models.UserQuests {
	questIDs := catalog.SelectRandomQuests(catalog.DailyQuestCount)
	activeQuests := make([]models.ActiveQuest, 0, len(questIDs))
	for _, questID := range questIDs {
		def := catalog.QuestCatalog[questID]
		activeQuests = append(activeQuests, models.ActiveQuest{
			QuestID:  questID,
			Progress: 0,
			Target:   def.Target,
		})
	}
	return &models.UserQuests{
		UserID:        userID,
		ActiveQuests:  activeQuests,
		LastResetDate: time.Now().UTC(),
	}
}

// GetDailyQuests implements the lazy daily regeneration: the stored document
// is returned as-is while its reset date is today (UTC), otherwise it is
// replaced by a fresh random set. Unclaimed rewards from a previous day are
// gone for good.
func (s *questServiceImpl) GetDailyQuests(ctx context.Context, userID int) (*models.UserQuests, error) {
	quests, err := s.questsRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			zlog.Error().Err(err).Int("user_id", userID).Msg("Service: Error fetching user quests")
			return nil, fmt.Errorf("internal server error: could not retrieve quests")
		}
		quests = nil
	}

	if quests != nil && catalog.IsToday(quests.LastResetDate) {
		return quests, nil
	}

	fresh := generateDailyQuests(userID)
	if err := s.questsRepo.Upsert(ctx, fresh); err != nil {
		zlog.Error().Err(err).Int("user_id", userID).Msg("Service: Error storing regenerated daily quests")
		return nil, fmt.Errorf("internal server error: could not reset daily quests")
	}

	zlog.Info().Int("user_id", userID).Msg("Service: Daily quests regenerated")
	return fresh, nil
}

// TrackAction implements quest progress tracking. Callers treat failures as
// best-effort: the triggering operation has already succeeded and must not be
// rolled back because quest bookkeeping failed. The document is read with a
// row lock, so two concurrent actions cannot lose an increment.
func (s *questServiceImpl) TrackAction(ctx context.Context, userID int, action models.QuestAction, monsterID int) (err error) {
	questID, ok := catalog.ActionQuestMap[action]
	if !ok {
		return nil
	}

	// Regenerate today's document first so the locked read below always
	// finds a row.
	if _, err = s.GetDailyQuests(ctx, userID); err != nil {
		return err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		zlog.Error().Err(err).Msg("Service: Failed to begin transaction for quest tracking")
		return fmt.Errorf("internal server error: could not start operation")
	}

	defer func() {
		if p := recover(); p != nil {
			zlog.Error().Msgf("Service: Panic recovered during quest tracking: %v", p)
			_ = tx.Rollback(ctx)
			panic(p)
		} else if err != nil {
			zlog.Warn().Err(err).Int("user_id", userID).Str("quest_id", string(questID)).Msg("Service: Rolling back transaction due to error during quest tracking")
			rbErr := tx.Rollback(ctx)
			if rbErr != nil {
				zlog.Error().Err(rbErr).Msg("Service: Failed to rollback transaction")
			}
		} else {
			err = tx.Commit(ctx)
			if err != nil {
				zlog.Error().Err(err).Int("user_id", userID).Str("quest_id", string(questID)).Msg("Service: Failed to commit transaction for quest tracking")
				err = fmt.Errorf("internal server error: could not save quest progress")
			}
		}
	}()

	quests, err := s.questsRepo.GetByUserIDForUpdateTx(ctx, tx, userID)
	if err != nil {
		zlog.Error().Err(err).Int("user_id", userID).Msg("Service: Error locking quests for tracking")
		err = fmt.Errorf("internal server error: could not retrieve quests")
		return err
	}

	// The day may have rolled over between the read above and the lock; the
	// stale set is not advanced, the next read regenerates it.
	if !catalog.IsToday(quests.LastResetDate) {
		return nil
	}

	for i := range quests.ActiveQuests {
		quest := &quests.ActiveQuests[i]
		if quest.QuestID != questID {
			continue
		}
		if quest.Completed {
			return nil
		}

		// Quests that ask for distinct monsters only count each monster
		// once.
		if questID == models.QuestInteract3Monsters && monsterID > 0 {
			for _, seen := range quest.MonsterIDs {
				if seen == monsterID {
					return nil
				}
			}
			quest.MonsterIDs = append(quest.MonsterIDs, monsterID)
		}

		quest.Progress++
		if quest.Progress >= quest.Target {
			quest.Progress = quest.Target
			quest.Completed = true
			now := time.Now().UTC()
			quest.CompletedAt = &now
			zlog.Info().Int("user_id", userID).Str("quest_id", string(questID)).Msg("Service: Daily quest completed")
		}

		if err = s.questsRepo.UpdateQuestsTx(ctx, tx, userID, quests.ActiveQuests); err != nil {
			zlog.Error().Err(err).Int("user_id", userID).Str("quest_id", string(questID)).Msg("Service: Error saving quest progress")
			err = fmt.Errorf("internal server error: could not save quest progress")
			return err
		}
		return nil
	}

	// The mapped quest is not part of today's selection.
	return nil
}

// ClaimQuestReward implements the claim flow. The quest document is read with
// a row lock and the claimed flag is set in the same transaction that credits
// the wallet, so a double claim pays out exactly once.
func (s *questServiceImpl) ClaimQuestReward(ctx context.Context, userID int, questID models.QuestID) (result *models.ClaimResult, err error) {
	def, ok := catalog.GetQuestDefinition(questID)
	if !ok {
		return nil, ErrQuestNotFound
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		zlog.Error().Err(err).Msg("Service: Failed to begin transaction for quest claim")
		return nil, fmt.Errorf("internal server error: could not start operation")
	}

	defer func() {
		if p := recover(); p != nil {
			zlog.Error().Msgf("Service: Panic recovered during quest claim: %v", p)
			_ = tx.Rollback(ctx)
			panic(p)
		} else if err != nil {
			zlog.Warn().Err(err).Int("user_id", userID).Str("quest_id", string(questID)).Msg("Service: Rolling back transaction due to error during quest claim")
			rbErr := tx.Rollback(ctx)
			if rbErr != nil {
				zlog.Error().Err(rbErr).Msg("Service: Failed to rollback transaction")
			}
		} else {
			err = tx.Commit(ctx)
			if err != nil {
				zlog.Error().Err(err).Int("user_id", userID).Str("quest_id", string(questID)).Msg("Service: Failed to commit transaction for quest claim")
				err = fmt.Errorf("internal server error: could not finalize operation")
				result = nil
			}
		}
	}()

	quests, err := s.questsRepo.GetByUserIDForUpdateTx(ctx, tx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = ErrQuestNotFound
			return nil, err
		}
		zlog.Error().Err(err).Int("user_id", userID).Msg("Service: Error fetching quests for claim")
		err = fmt.Errorf("internal server error: could not retrieve quests")
		return nil, err
	}

	// Quests from a previous day are no longer claimable.
	if !catalog.IsToday(quests.LastResetDate) {
		err = ErrQuestNotFound
		return nil, err
	}

	var claimed *models.ActiveQuest
	for i := range quests.ActiveQuests {
		if quests.ActiveQuests[i].QuestID == questID {
			claimed = &quests.ActiveQuests[i]
			break
		}
	}
	if claimed == nil {
		err = ErrQuestNotFound
		return nil, err
	}
	if !claimed.Completed {
		err = ErrQuestNotCompleted
		return nil, err
	}
	if claimed.Claimed {
		err = ErrQuestAlreadyClaimed
		return nil, err
	}

	newBalance, err := s.walletRepo.CreditTx(ctx, tx, userID, def.Reward)
	if err != nil {
		zlog.Error().Err(err).Int("user_id", userID).Str("quest_id", string(questID)).Msg("Service: Error crediting quest reward")
		err = fmt.Errorf("internal server error: could not credit reward")
		return nil, err
	}

	claimed.Claimed = true
	if err = s.questsRepo.UpdateQuestsTx(ctx, tx, userID, quests.ActiveQuests); err != nil {
		zlog.Error().Err(err).Int("user_id", userID).Str("quest_id", string(questID)).Msg("Service: Error marking quest claimed")
		err = fmt.Errorf("internal server error: could not record claim")
		return nil, err
	}

	zlog.Info().Int("user_id", userID).Str("quest_id", string(questID)).Int("reward", def.Reward).Int("new_balance", newBalance).Msg("Service: Quest reward claimed")
	return &models.ClaimResult{
		QuestID: questID,
		Reward:  def.Reward,
		Balance: newBalance,
	}, nil
}
