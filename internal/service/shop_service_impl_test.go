package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tamagotcho/tamagotcho-be/internal/models"
	"github.com/tamagotcho/tamagotcho-be/internal/repository"
	repomocks "github.com/tamagotcho/tamagotcho-be/internal/repository/mocks"
	"github.com/tamagotcho/tamagotcho-be/internal/service"
	servicemocks "github.com/tamagotcho/tamagotcho-be/internal/service/mocks"
)

type shopServiceMocks struct {
	ownedItemRepo *repomocks.MockOwnedItemRepository
	walletRepo    *repomocks.MockWalletRepository
	monsterRepo   *repomocks.MockMonsterRepository
	questSvc      *servicemocks.MockQuestService
	pool          *servicemocks.MockTxBeginner
	tx            *repomocks.MockTx
}

func newShopServiceMocks(t *testing.T) (shopServiceMocks, service.ShopService) {
	m := shopServiceMocks{
		ownedItemRepo: repomocks.NewMockOwnedItemRepository(t),
		walletRepo:    repomocks.NewMockWalletRepository(t),
		monsterRepo:   repomocks.NewMockMonsterRepository(t),
		questSvc:      servicemocks.NewMockQuestService(t),
		pool:          servicemocks.NewMockTxBeginner(t),
		tx:            repomocks.NewMockTx(t),
	}
	svc := service.NewShopService(m.pool, m.ownedItemRepo, m.walletRepo, m.monsterRepo, m.questSvc)
	return m, svc
}

func TestShopService_PurchaseAccessory(t *testing.T) {
	ctx := context.Background()
	const userID = 7
	const monsterID = 5

	t.Run("commits and tracks the shopping quest", func(t *testing.T) {
		m, svc := newShopServiceMocks(t)

		m.pool.On("Begin", mock.Anything).Return(m.tx, nil).Once()
		m.ownedItemRepo.On("InsertTx", mock.Anything, m.tx, models.OwnedItemAccessory, mock.AnythingOfType("*models.OwnedItem")).Return(nil).Once()
		m.walletRepo.On("DebitTx", mock.Anything, m.tx, userID, 150).Return(50, nil).Once()
		m.tx.On("Commit", mock.Anything).Return(nil).Once()
		m.questSvc.On("TrackAction", mock.Anything, userID, models.QuestActionBuyAccessory, monsterID).Return(nil).Once()

		result, err := svc.PurchaseAccessory(ctx, userID, monsterID, "hat-red")
		assert.NoError(t, err)
		assert.Equal(t, "hat-red", result.ItemID)
		assert.Equal(t, 150, result.Price)
		assert.Equal(t, 50, result.Balance)
	})

	t.Run("insufficient balance rolls everything back", func(t *testing.T) {
		m, svc := newShopServiceMocks(t)

		m.pool.On("Begin", mock.Anything).Return(m.tx, nil).Once()
		m.ownedItemRepo.On("InsertTx", mock.Anything, m.tx, models.OwnedItemAccessory, mock.AnythingOfType("*models.OwnedItem")).Return(nil).Once()
		m.walletRepo.On("DebitTx", mock.Anything, m.tx, userID, 150).Return(0, repository.ErrInsufficientBalance).Once()
		m.tx.On("Rollback", mock.Anything).Return(nil).Once()

		result, err := svc.PurchaseAccessory(ctx, userID, monsterID, "hat-red")
		assert.ErrorIs(t, err, service.ErrInsufficientBalance)
		assert.Nil(t, result)
		m.tx.AssertNotCalled(t, "Commit", mock.Anything)
		m.questSvc.AssertNotCalled(t, "TrackAction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("duplicate purchase fails before any money moves", func(t *testing.T) {
		m, svc := newShopServiceMocks(t)

		m.pool.On("Begin", mock.Anything).Return(m.tx, nil).Once()
		m.ownedItemRepo.On("InsertTx", mock.Anything, m.tx, models.OwnedItemAccessory, mock.AnythingOfType("*models.OwnedItem")).Return(repository.ErrAlreadyOwned).Once()
		m.tx.On("Rollback", mock.Anything).Return(nil).Once()

		result, err := svc.PurchaseAccessory(ctx, userID, monsterID, "hat-red")
		assert.ErrorIs(t, err, service.ErrAlreadyOwned)
		assert.Nil(t, result)
		m.walletRepo.AssertNotCalled(t, "DebitTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		m.tx.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("unknown item never opens a transaction", func(t *testing.T) {
		m, svc := newShopServiceMocks(t)

		result, err := svc.PurchaseAccessory(ctx, userID, monsterID, "no-such-item")
		assert.ErrorIs(t, err, service.ErrItemNotFound)
		assert.Nil(t, result)
		m.pool.AssertNotCalled(t, "Begin", mock.Anything)
	})
}
