package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tamagotcho/tamagotcho-be/internal/catalog"
	"github.com/tamagotcho/tamagotcho-be/internal/models"
	repomocks "github.com/tamagotcho/tamagotcho-be/internal/repository/mocks"
	"github.com/tamagotcho/tamagotcho-be/internal/service"
	servicemocks "github.com/tamagotcho/tamagotcho-be/internal/service/mocks"
)

func todayQuests(userID int, quests ...models.ActiveQuest) *models.UserQuests {
	return &models.UserQuests{
		ID:            1,
		UserID:        userID,
		ActiveQuests:  quests,
		LastResetDate: time.Now().UTC(),
	}
}

func newQuestServiceMocks(t *testing.T) (*repomocks.MockUserQuestsRepository, *repomocks.MockWalletRepository, *servicemocks.MockTxBeginner, *repomocks.MockTx, service.QuestService) {
	questsRepo := repomocks.NewMockUserQuestsRepository(t)
	walletRepo := repomocks.NewMockWalletRepository(t)
	pool := servicemocks.NewMockTxBeginner(t)
	tx := repomocks.NewMockTx(t)
	svc := service.NewQuestService(pool, questsRepo, walletRepo)
	return questsRepo, walletRepo, pool, tx, svc
}

func TestQuestService_GetDailyQuests(t *testing.T) {
	ctx := context.Background()
	const userID = 7

	t.Run("returns stored quests from today unchanged", func(t *testing.T) {
		questsRepo, _, _, _, svc := newQuestServiceMocks(t)

		stored := todayQuests(userID, models.ActiveQuest{
			QuestID: models.QuestFeedMonster5, Progress: 2, Target: 5,
		})
		questsRepo.On("GetByUserID", mock.Anything, userID).Return(stored, nil).Once()

		got, err := svc.GetDailyQuests(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("generates three distinct quests when none stored", func(t *testing.T) {
		questsRepo, _, _, _, svc := newQuestServiceMocks(t)

		questsRepo.On("GetByUserID", mock.Anything, userID).Return(nil, pgx.ErrNoRows).Once()
		questsRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*models.UserQuests")).Return(nil).Once()

		got, err := svc.GetDailyQuests(ctx, userID)
		assert.NoError(t, err)
		assert.Len(t, got.ActiveQuests, catalog.DailyQuestCount)

		seen := map[models.QuestID]bool{}
		for _, q := range got.ActiveQuests {
			assert.False(t, seen[q.QuestID], "quest %s appears twice", q.QuestID)
			seen[q.QuestID] = true
			assert.Zero(t, q.Progress)
			assert.False(t, q.Completed)
			assert.False(t, q.Claimed)

			def, ok := catalog.GetQuestDefinition(q.QuestID)
			assert.True(t, ok)
			assert.Equal(t, def.Target, q.Target)
		}
	})

	t.Run("regenerates quests from a previous day", func(t *testing.T) {
		questsRepo, _, _, _, svc := newQuestServiceMocks(t)

		stale := &models.UserQuests{
			UserID: userID,
			ActiveQuests: []models.ActiveQuest{
				{QuestID: models.QuestFeedMonster5, Progress: 5, Target: 5, Completed: true},
			},
			LastResetDate: time.Now().UTC().AddDate(0, 0, -1),
		}
		questsRepo.On("GetByUserID", mock.Anything, userID).Return(stale, nil).Once()

		var saved *models.UserQuests
		questsRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*models.UserQuests")).
			Run(func(args mock.Arguments) {
				saved = args.Get(1).(*models.UserQuests)
			}).Return(nil).Once()

		got, err := svc.GetDailyQuests(ctx, userID)
		assert.NoError(t, err)
		assert.Len(t, got.ActiveQuests, catalog.DailyQuestCount)
		assert.True(t, catalog.IsToday(got.LastResetDate))
		assert.Equal(t, got, saved)
		for _, q := range got.ActiveQuests {
			assert.Zero(t, q.Progress)
		}
	})
}

func TestQuestService_TrackAction(t *testing.T) {
	ctx := context.Background()
	const userID = 7

	t.Run("advances progress and completes at target", func(t *testing.T) {
		questsRepo, _, pool, tx, svc := newQuestServiceMocks(t)

		stored := todayQuests(userID, models.ActiveQuest{
			QuestID: models.QuestFeedMonster5, Progress: 4, Target: 5,
		})
		questsRepo.On("GetByUserID", mock.Anything, userID).Return(stored, nil).Once()
		pool.On("Begin", mock.Anything).Return(tx, nil).Once()
		questsRepo.On("GetByUserIDForUpdateTx", mock.Anything, tx, userID).Return(stored, nil).Once()

		var saved []models.ActiveQuest
		questsRepo.On("UpdateQuestsTx", mock.Anything, tx, userID, mock.AnythingOfType("[]models.ActiveQuest")).
			Run(func(args mock.Arguments) {
				saved = args.Get(3).([]models.ActiveQuest)
			}).Return(nil).Once()
		tx.On("Commit", mock.Anything).Return(nil).Once()

		err := svc.TrackAction(ctx, userID, models.QuestActionFeed, 3)
		assert.NoError(t, err)

		quest := saved[0]
		assert.Equal(t, 5, quest.Progress)
		assert.True(t, quest.Completed)
		assert.NotNil(t, quest.CompletedAt)
		assert.False(t, quest.Claimed)
	})

	t.Run("progress never exceeds target", func(t *testing.T) {
		questsRepo, _, pool, tx, svc := newQuestServiceMocks(t)

		stored := todayQuests(userID, models.ActiveQuest{
			QuestID: models.QuestMakeMonsterPublic, Progress: 0, Target: 1,
		})
		questsRepo.On("GetByUserID", mock.Anything, userID).Return(stored, nil).Once()
		pool.On("Begin", mock.Anything).Return(tx, nil).Once()
		questsRepo.On("GetByUserIDForUpdateTx", mock.Anything, tx, userID).Return(stored, nil).Once()

		var saved []models.ActiveQuest
		questsRepo.On("UpdateQuestsTx", mock.Anything, tx, userID, mock.AnythingOfType("[]models.ActiveQuest")).
			Run(func(args mock.Arguments) {
				saved = args.Get(3).([]models.ActiveQuest)
			}).Return(nil).Once()
		tx.On("Commit", mock.Anything).Return(nil).Once()

		err := svc.TrackAction(ctx, userID, models.QuestActionMakePublic, 3)
		assert.NoError(t, err)
		assert.Equal(t, 1, saved[0].Progress)
		assert.True(t, saved[0].Completed)
	})

	t.Run("interact quest counts each monster once", func(t *testing.T) {
		questsRepo, _, pool, tx, svc := newQuestServiceMocks(t)

		stored := todayQuests(userID, models.ActiveQuest{
			QuestID: models.QuestInteract3Monsters, Progress: 1, Target: 3, MonsterIDs: []int{11},
		})
		questsRepo.On("GetByUserID", mock.Anything, userID).Return(stored, nil).Twice()
		pool.On("Begin", mock.Anything).Return(tx, nil).Twice()
		questsRepo.On("GetByUserIDForUpdateTx", mock.Anything, tx, userID).Return(stored, nil).Twice()
		tx.On("Commit", mock.Anything).Return(nil).Twice()

		// Same monster again: no progress, no save.
		err := svc.TrackAction(ctx, userID, models.QuestActionInteract, 11)
		assert.NoError(t, err)
		questsRepo.AssertNotCalled(t, "UpdateQuestsTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)

		// A new monster advances the quest.
		var saved []models.ActiveQuest
		questsRepo.On("UpdateQuestsTx", mock.Anything, tx, userID, mock.AnythingOfType("[]models.ActiveQuest")).
			Run(func(args mock.Arguments) {
				saved = args.Get(3).([]models.ActiveQuest)
			}).Return(nil).Once()

		err = svc.TrackAction(ctx, userID, models.QuestActionInteract, 22)
		assert.NoError(t, err)
		assert.Equal(t, 2, saved[0].Progress)
		assert.ElementsMatch(t, []int{11, 22}, saved[0].MonsterIDs)
	})

	t.Run("completed quest is not advanced again", func(t *testing.T) {
		questsRepo, _, pool, tx, svc := newQuestServiceMocks(t)

		stored := todayQuests(userID, models.ActiveQuest{
			QuestID: models.QuestFeedMonster5, Progress: 5, Target: 5, Completed: true,
		})
		questsRepo.On("GetByUserID", mock.Anything, userID).Return(stored, nil).Once()
		pool.On("Begin", mock.Anything).Return(tx, nil).Once()
		questsRepo.On("GetByUserIDForUpdateTx", mock.Anything, tx, userID).Return(stored, nil).Once()
		tx.On("Commit", mock.Anything).Return(nil).Once()

		err := svc.TrackAction(ctx, userID, models.QuestActionFeed, 3)
		assert.NoError(t, err)
		questsRepo.AssertNotCalled(t, "UpdateQuestsTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("action whose quest is not selected today is ignored", func(t *testing.T) {
		questsRepo, _, pool, tx, svc := newQuestServiceMocks(t)

		stored := todayQuests(userID, models.ActiveQuest{
			QuestID: models.QuestFeedMonster5, Progress: 0, Target: 5,
		})
		questsRepo.On("GetByUserID", mock.Anything, userID).Return(stored, nil).Once()
		pool.On("Begin", mock.Anything).Return(tx, nil).Once()
		questsRepo.On("GetByUserIDForUpdateTx", mock.Anything, tx, userID).Return(stored, nil).Once()
		tx.On("Commit", mock.Anything).Return(nil).Once()

		err := svc.TrackAction(ctx, userID, models.QuestActionBuyAccessory, 0)
		assert.NoError(t, err)
		questsRepo.AssertNotCalled(t, "UpdateQuestsTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestQuestService_ClaimQuestReward(t *testing.T) {
	ctx := context.Background()
	const userID = 7

	t.Run("unknown quest id", func(t *testing.T) {
		_, _, _, _, svc := newQuestServiceMocks(t)

		result, err := svc.ClaimQuestReward(ctx, userID, models.QuestID("no_such_quest"))
		assert.ErrorIs(t, err, service.ErrQuestNotFound)
		assert.Nil(t, result)
	})

	t.Run("incomplete quest cannot be claimed", func(t *testing.T) {
		questsRepo, walletRepo, pool, tx, svc := newQuestServiceMocks(t)

		stored := todayQuests(userID, models.ActiveQuest{
			QuestID: models.QuestFeedMonster5, Progress: 3, Target: 5,
		})
		pool.On("Begin", mock.Anything).Return(tx, nil).Once()
		questsRepo.On("GetByUserIDForUpdateTx", mock.Anything, tx, userID).Return(stored, nil).Once()
		tx.On("Rollback", mock.Anything).Return(nil).Once()

		result, err := svc.ClaimQuestReward(ctx, userID, models.QuestFeedMonster5)
		assert.ErrorIs(t, err, service.ErrQuestNotCompleted)
		assert.Nil(t, result)
		walletRepo.AssertNotCalled(t, "CreditTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("second claim pays out nothing", func(t *testing.T) {
		questsRepo, walletRepo, pool, tx, svc := newQuestServiceMocks(t)

		def, ok := catalog.GetQuestDefinition(models.QuestLevelUpMonster)
		assert.True(t, ok)

		pool.On("Begin", mock.Anything).Return(tx, nil).Twice()

		completed := todayQuests(userID, models.ActiveQuest{
			QuestID: models.QuestLevelUpMonster, Progress: 1, Target: 1, Completed: true,
		})
		questsRepo.On("GetByUserIDForUpdateTx", mock.Anything, tx, userID).Return(completed, nil).Once()
		walletRepo.On("CreditTx", mock.Anything, tx, userID, def.Reward).Return(def.Reward+10, nil).Once()

		var saved []models.ActiveQuest
		questsRepo.On("UpdateQuestsTx", mock.Anything, tx, userID, mock.AnythingOfType("[]models.ActiveQuest")).
			Run(func(args mock.Arguments) {
				saved = args.Get(3).([]models.ActiveQuest)
			}).Return(nil).Once()
		tx.On("Commit", mock.Anything).Return(nil).Once()

		result, err := svc.ClaimQuestReward(ctx, userID, models.QuestLevelUpMonster)
		assert.NoError(t, err)
		assert.Equal(t, def.Reward, result.Reward)
		assert.Equal(t, def.Reward+10, result.Balance)
		assert.True(t, saved[0].Claimed)

		// The second claim sees the claimed flag and rolls back.
		claimed := todayQuests(userID, models.ActiveQuest{
			QuestID: models.QuestLevelUpMonster, Progress: 1, Target: 1, Completed: true, Claimed: true,
		})
		questsRepo.On("GetByUserIDForUpdateTx", mock.Anything, tx, userID).Return(claimed, nil).Once()
		tx.On("Rollback", mock.Anything).Return(nil).Once()

		result, err = svc.ClaimQuestReward(ctx, userID, models.QuestLevelUpMonster)
		assert.ErrorIs(t, err, service.ErrQuestAlreadyClaimed)
		assert.Nil(t, result)
		walletRepo.AssertNumberOfCalls(t, "CreditTx", 1)
	})

	t.Run("yesterday's quests are no longer claimable", func(t *testing.T) {
		questsRepo, walletRepo, pool, tx, svc := newQuestServiceMocks(t)

		stale := &models.UserQuests{
			UserID: userID,
			ActiveQuests: []models.ActiveQuest{
				{QuestID: models.QuestFeedMonster5, Progress: 5, Target: 5, Completed: true},
			},
			LastResetDate: time.Now().UTC().AddDate(0, 0, -1),
		}
		pool.On("Begin", mock.Anything).Return(tx, nil).Once()
		questsRepo.On("GetByUserIDForUpdateTx", mock.Anything, tx, userID).Return(stale, nil).Once()
		tx.On("Rollback", mock.Anything).Return(nil).Once()

		result, err := svc.ClaimQuestReward(ctx, userID, models.QuestFeedMonster5)
		assert.ErrorIs(t, err, service.ErrQuestNotFound)
		assert.Nil(t, result)
		walletRepo.AssertNotCalled(t, "CreditTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
