package service_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tamagotcho/tamagotcho-be/internal/models"
	repomocks "github.com/tamagotcho/tamagotcho-be/internal/repository/mocks"
	"github.com/tamagotcho/tamagotcho-be/internal/service"
	servicemocks "github.com/tamagotcho/tamagotcho-be/internal/service/mocks"
)

func newMonsterServiceMocks(t *testing.T) (*repomocks.MockMonsterRepository, *repomocks.MockWalletRepository, *servicemocks.MockQuestService, service.MonsterService) {
	monsterRepo := repomocks.NewMockMonsterRepository(t)
	walletRepo := repomocks.NewMockWalletRepository(t)
	questSvc := servicemocks.NewMockQuestService(t)
	svc := service.NewMonsterService(monsterRepo, walletRepo, questSvc)
	return monsterRepo, walletRepo, questSvc, svc
}

func TestMonsterService_GetMonster_Ownership(t *testing.T) {
	ctx := context.Background()

	t.Run("foreign monster is reported as not found", func(t *testing.T) {
		monsterRepo, _, _, svc := newMonsterServiceMocks(t)
		monsterRepo.On("GetMonsterByID", mock.Anything, 5).Return(&models.Monster{
			ID: 5, OwnerID: 99,
		}, nil).Once()

		monster, err := svc.GetMonster(ctx, 1, 5)
		assert.ErrorIs(t, err, service.ErrMonsterNotFound)
		assert.Nil(t, monster)
	})

	t.Run("missing monster is not found", func(t *testing.T) {
		monsterRepo, _, _, svc := newMonsterServiceMocks(t)
		monsterRepo.On("GetMonsterByID", mock.Anything, 5).Return(nil, pgx.ErrNoRows).Once()

		monster, err := svc.GetMonster(ctx, 1, 5)
		assert.ErrorIs(t, err, service.ErrMonsterNotFound)
		assert.Nil(t, monster)
	})
}

func TestMonsterService_PerformAction(t *testing.T) {
	ctx := context.Background()
	const ownerID = 1
	const monsterID = 5

	t.Run("mismatched action changes nothing", func(t *testing.T) {
		monsterRepo, walletRepo, questSvc, svc := newMonsterServiceMocks(t)
		monsterRepo.On("GetMonsterByID", mock.Anything, monsterID).Return(&models.Monster{
			ID: monsterID, OwnerID: ownerID, State: models.MonsterStateSleepy,
			Level: 1, XP: 40, MaxXP: 100,
		}, nil).Once()

		result, err := svc.PerformAction(ctx, ownerID, monsterID, models.MonsterActionFeed)
		assert.NoError(t, err)
		assert.False(t, result.Changed)
		assert.Equal(t, models.MonsterStateSleepy, result.State)
		assert.Equal(t, 40, result.XP)
		assert.Zero(t, result.KoinsEarned)

		monsterRepo.AssertNotCalled(t, "UpdateMonsterProgress", mock.Anything, mock.Anything)
		walletRepo.AssertNotCalled(t, "Credit", mock.Anything, mock.Anything, mock.Anything)
		questSvc.AssertNotCalled(t, "TrackAction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("matching feed heals, grants xp, pays koins and tracks quests", func(t *testing.T) {
		monsterRepo, walletRepo, questSvc, svc := newMonsterServiceMocks(t)
		monsterRepo.On("GetMonsterByID", mock.Anything, monsterID).Return(&models.Monster{
			ID: monsterID, OwnerID: ownerID, State: models.MonsterStateHungry,
			Level: 1, XP: 40, MaxXP: 100,
		}, nil).Once()

		var updated *models.Monster
		monsterRepo.On("UpdateMonsterProgress", mock.Anything, mock.AnythingOfType("*models.Monster")).
			Run(func(args mock.Arguments) {
				updated = args.Get(1).(*models.Monster)
			}).Return(nil).Once()

		walletRepo.On("Credit", mock.Anything, ownerID, 2).Return(12, nil).Once()
		questSvc.On("TrackAction", mock.Anything, ownerID, models.QuestActionFeed, monsterID).Return(nil).Once()
		questSvc.On("TrackAction", mock.Anything, ownerID, models.QuestActionInteract, monsterID).Return(nil).Once()

		result, err := svc.PerformAction(ctx, ownerID, monsterID, models.MonsterActionFeed)
		assert.NoError(t, err)
		assert.True(t, result.Changed)
		assert.Equal(t, models.MonsterStateHappy, result.State)
		assert.Equal(t, 65, result.XP)
		assert.Equal(t, 1, result.Level)
		assert.False(t, result.LeveledUp)
		assert.Equal(t, 2, result.KoinsEarned)

		assert.Equal(t, models.MonsterStateHappy, updated.State)
		assert.Equal(t, 65, updated.XP)
	})

	t.Run("action xp crossing the threshold levels up and tracks level_up", func(t *testing.T) {
		monsterRepo, walletRepo, questSvc, svc := newMonsterServiceMocks(t)
		monsterRepo.On("GetMonsterByID", mock.Anything, monsterID).Return(&models.Monster{
			ID: monsterID, OwnerID: ownerID, State: models.MonsterStateSad,
			Level: 1, XP: 90, MaxXP: 100,
		}, nil).Once()
		monsterRepo.On("UpdateMonsterProgress", mock.Anything, mock.AnythingOfType("*models.Monster")).Return(nil).Once()

		walletRepo.On("Credit", mock.Anything, ownerID, 2).Return(14, nil).Once()
		questSvc.On("TrackAction", mock.Anything, ownerID, models.QuestActionInteract, monsterID).Return(nil).Once()
		questSvc.On("TrackAction", mock.Anything, ownerID, models.QuestActionLevelUp, monsterID).Return(nil).Once()

		result, err := svc.PerformAction(ctx, ownerID, monsterID, models.MonsterActionHug)
		assert.NoError(t, err)
		assert.True(t, result.Changed)
		assert.True(t, result.LeveledUp)
		assert.Equal(t, 2, result.Level)
		assert.Equal(t, 15, result.XP)
		assert.Equal(t, 200, result.MaxXP)
	})

	t.Run("reward credit failure does not fail the action", func(t *testing.T) {
		monsterRepo, walletRepo, questSvc, svc := newMonsterServiceMocks(t)
		monsterRepo.On("GetMonsterByID", mock.Anything, monsterID).Return(&models.Monster{
			ID: monsterID, OwnerID: ownerID, State: models.MonsterStateAngry,
			Level: 1, XP: 0, MaxXP: 100,
		}, nil).Once()
		monsterRepo.On("UpdateMonsterProgress", mock.Anything, mock.AnythingOfType("*models.Monster")).Return(nil).Once()

		walletRepo.On("Credit", mock.Anything, ownerID, 1).Return(0, assert.AnError).Once()
		questSvc.On("TrackAction", mock.Anything, ownerID, models.QuestActionInteract, monsterID).Return(nil).Once()

		result, err := svc.PerformAction(ctx, ownerID, monsterID, models.MonsterActionComfort)
		assert.NoError(t, err)
		assert.True(t, result.Changed)
		assert.Zero(t, result.KoinsEarned)
	})
}

func TestMonsterService_SetVisibility(t *testing.T) {
	ctx := context.Background()
	const ownerID = 1
	const monsterID = 5

	t.Run("private to public flip tracks the sharing quest", func(t *testing.T) {
		monsterRepo, _, questSvc, svc := newMonsterServiceMocks(t)
		monsterRepo.On("GetMonsterByID", mock.Anything, monsterID).Return(&models.Monster{
			ID: monsterID, OwnerID: ownerID, IsPublic: false,
		}, nil).Once()
		monsterRepo.On("SetVisibility", mock.Anything, monsterID, true).Return(nil).Once()
		questSvc.On("TrackAction", mock.Anything, ownerID, models.QuestActionMakePublic, monsterID).Return(nil).Once()

		monster, err := svc.SetVisibility(ctx, ownerID, monsterID, true)
		assert.NoError(t, err)
		assert.True(t, monster.IsPublic)
	})

	t.Run("re-publishing an already public monster tracks nothing", func(t *testing.T) {
		monsterRepo, _, questSvc, svc := newMonsterServiceMocks(t)
		monsterRepo.On("GetMonsterByID", mock.Anything, monsterID).Return(&models.Monster{
			ID: monsterID, OwnerID: ownerID, IsPublic: true,
		}, nil).Once()

		monster, err := svc.SetVisibility(ctx, ownerID, monsterID, true)
		assert.NoError(t, err)
		assert.True(t, monster.IsPublic)
		monsterRepo.AssertNotCalled(t, "SetVisibility", mock.Anything, mock.Anything, mock.Anything)
		questSvc.AssertNotCalled(t, "TrackAction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("hiding a public monster tracks nothing", func(t *testing.T) {
		monsterRepo, _, questSvc, svc := newMonsterServiceMocks(t)
		monsterRepo.On("GetMonsterByID", mock.Anything, monsterID).Return(&models.Monster{
			ID: monsterID, OwnerID: ownerID, IsPublic: true,
		}, nil).Once()
		monsterRepo.On("SetVisibility", mock.Anything, monsterID, false).Return(nil).Once()

		monster, err := svc.SetVisibility(ctx, ownerID, monsterID, false)
		assert.NoError(t, err)
		assert.False(t, monster.IsPublic)
		questSvc.AssertNotCalled(t, "TrackAction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
