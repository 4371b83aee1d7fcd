// internal/service/shop_service_impl.go
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

var (
	ErrItemNotFound        = errors.New("shop item not found")
	ErrAlreadyOwned        = errors.New("item already owned")
	ErrInsufficientBalance = errors.New("insufficient koin balance")
	ErrWalletNotFound      = errors.New("wallet not found")
)

type shopServiceImpl struct {
	pool          TxBeginner
	ownedItemRepo repository.OwnedItemRepository
	walletRepo    repository.WalletRepository
	monsterRepo   repository.MonsterRepository
	questSvc      QuestService
}

// NewShopService creates a new instance of ShopService.
func NewShopService(pool TxBeginner, ownedItemRepo repository.OwnedItemRepository, walletRepo repository.WalletRepository, monsterRepo repository.MonsterRepository, questSvc QuestService) ShopService {
	return &shopServiceImpl{
		pool:          pool,
		ownedItemRepo: ownedItemRepo,
		walletRepo:    walletRepo,
		monsterRepo:   monsterRepo,
		questSvc:      questSvc,
	}
}

// GetOwnedItems implements the ownership listing for one monster, including
// account-wide unlocks.
func (s *shopServiceImpl) GetOwnedItems(ctx context.Context, userID, monsterID int) (*models.OwnedItemsResult, error) {
	accessories, err := s.ownedItemRepo.GetOwnedItemIDs(ctx, models.OwnedItemAccessory, userID, monsterID)
	if err != nil {
		zlog.Error().Err(err).Int("user_id", userID).Msg("Service: Error listing owned accessories")
		return nil, fmt.Errorf("internal server error: could not list owned items")
	}
	backgrounds, err := s.ownedItemRepo.GetOwnedItemIDs(ctx, models.OwnedItemBackground, userID, monsterID)
	if err != nil {
		zlog.Error().Err(err).Int("user_id", userID).Msg("Service: Error listing owned backgrounds")
		return nil, fmt.Errorf("internal server error: could not list owned items")
	}
	return &models.OwnedItemsResult{
		Accessories: accessories,
		Backgrounds: backgrounds,
	}, nil
}

// purchaseItem runs the shared unlock flow for accessories and backgrounds:
// insert the ownership row, then conditionally debit the wallet, in one
// transaction. The ownership insert goes first so a duplicate purchase fails
// before any money moves.
func (s *shopServiceImpl) purchaseItem(ctx context.Context, userID, monsterID int, kind models.OwnedItemKind, itemID string, price int) (result *models.PurchaseResult, err error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		zlog.Error().Err(err).Msg("Service: Failed to begin transaction for purchase")
		return nil, fmt.Errorf("internal server error: could not start operation")
	}

	defer func() {
		if p := recover(); p != nil {
			zlog.Error().Msgf("Service: Panic recovered during purchase: %v", p)
			_ = tx.Rollback(ctx)
			panic(p)
		} else if err != nil {
			zlog.Warn().Err(err).Int("user_id", userID).Str("item_id", itemID).Msg("Service: Rolling back transaction due to error during purchase")
			rbErr := tx.Rollback(ctx)
			if rbErr != nil {
				zlog.Error().Err(rbErr).Msg("Service: Failed to rollback transaction")
			}
		} else {
			err = tx.Commit(ctx)
			if err != nil {
				zlog.Error().Err(err).Int("user_id", userID).Str("item_id", itemID).Msg("Service: Failed to commit transaction for purchase")
				err = fmt.Errorf("internal server error: could not finalize operation")
				result = nil
			}
		}
	}()

	item := &models.OwnedItem{
		OwnerID:   userID,
		MonsterID: monsterID,
		ItemID:    itemID,
	}
	if err = s.ownedItemRepo.InsertTx(ctx, tx, kind, item); err != nil {
		if errors.Is(err, repository.ErrAlreadyOwned) {
			err = ErrAlreadyOwned
			return nil, err
		}
		zlog.Error().Err(err).Int("user_id", userID).Str("item_id", itemID).Msg("Service: Error recording item unlock")
		err = fmt.Errorf("internal server error: could not record purchase")
		return nil, err
	}

	newBalance, err := s.walletRepo.DebitTx(ctx, tx, userID, price)
	if err != nil {
		if errors.Is(err, repository.ErrInsufficientBalance) {
			err = ErrInsufficientBalance
			return nil, err
		}
		if errors.Is(err, pgx.ErrNoRows) {
			err = ErrWalletNotFound
			return nil, err
		}
		zlog.Error().Err(err).Int("user_id", userID).Int("price", price).Msg("Service: Error debiting wallet for purchase")
		err = fmt.Errorf("internal server error: could not debit wallet")
		return nil, err
	}

	zlog.Info().Int("user_id", userID).Str("item_id", itemID).Int("price", price).Int("new_balance", newBalance).Msg("Service: Shop item purchased")
	return &models.PurchaseResult{
		ItemID:  itemID,
		Price:   price,
		Balance: newBalance,
	}, nil
}

// PurchaseAccessory implements accessory purchase and advances the shopping
// quest best-effort.
func (s *shopServiceImpl) PurchaseAccessory(ctx context.Context, userID, monsterID int, itemID string) (*models.PurchaseResult, error) {
	accessory, ok := catalog.GetAccessory(itemID)
	if !ok {
		return nil, ErrItemNotFound
	}

	result, err := s.purchaseItem(ctx, userID, monsterID, models.OwnedItemAccessory, itemID, accessory.Price)
	if err != nil {
		return nil, err
	}

	if trackErr := s.questSvc.TrackAction(ctx, userID, models.QuestActionBuyAccessory, monsterID); trackErr != nil {
		zlog.Error().Err(trackErr).Int("user_id", userID).Msg("Service: Error tracking accessory quest")
	}
	return result, nil
}

// PurchaseBackground implements background purchase. Backgrounds do not
// advance any quest.
func (s *shopServiceImpl) PurchaseBackground(ctx context.Context, userID, monsterID int, itemID string) (*models.PurchaseResult, error) {
	background, ok := catalog.GetBackground(itemID)
	if !ok {
		return nil, ErrItemNotFound
	}
	return s.purchaseItem(ctx, userID, monsterID, models.OwnedItemBackground, itemID, background.Price)
}

// PurchaseBoost implements XP boost purchase and advances the level-up quest
// best-effort once the purchase has committed.
func (s *shopServiceImpl) PurchaseBoost(ctx context.Context, userID, monsterID int, boostID string) (*models.BoostResult, error) {
	boost, ok := catalog.GetXPBoost(boostID)
	if !ok {
		return nil, ErrItemNotFound
	}

	result, err := s.applyBoost(ctx, userID, monsterID, boostID, boost)
	if err != nil {
		return nil, err
	}

	if result.LeveledUp {
		if trackErr := s.questSvc.TrackAction(ctx, userID, models.QuestActionLevelUp, monsterID); trackErr != nil {
			zlog.Error().Err(trackErr).Int("user_id", userID).Msg("Service: Error tracking level-up quest after boost")
		}
	}
	return result, nil
}

// applyBoost debits the wallet and applies the boost XP in one transaction
// with the monster row locked, so concurrent boosts on the same monster
// serialize.
func (s *shopServiceImpl) applyBoost(ctx context.Context, userID, monsterID int, boostID string, boost catalog.XPBoostItem) (result *models.BoostResult, err error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		zlog.Error().Err(err).Msg("Service: Failed to begin transaction for boost purchase")
		return nil, fmt.Errorf("internal server error: could not start operation")
	}

	defer func() {
		if p := recover(); p != nil {
			zlog.Error().Msgf("Service: Panic recovered during boost purchase: %v", p)
			_ = tx.Rollback(ctx)
			panic(p)
		} else if err != nil {
			zlog.Warn().Err(err).Int("user_id", userID).Str("boost_id", boostID).Msg("Service: Rolling back transaction due to error during boost purchase")
			rbErr := tx.Rollback(ctx)
			if rbErr != nil {
				zlog.Error().Err(rbErr).Msg("Service: Failed to rollback transaction")
			}
		} else {
			err = tx.Commit(ctx)
			if err != nil {
				zlog.Error().Err(err).Int("user_id", userID).Str("boost_id", boostID).Msg("Service: Failed to commit transaction for boost purchase")
				err = fmt.Errorf("internal server error: could not finalize operation")
				result = nil
			}
		}
	}()

	monster, err := s.monsterRepo.GetMonsterByIDForUpdateTx(ctx, tx, monsterID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = ErrMonsterNotFound
			return nil, err
		}
		zlog.Error().Err(err).Int("monster_id", monsterID).Msg("Service: Error locking monster for boost")
		err = fmt.Errorf("internal server error: could not retrieve monster")
		return nil, err
	}
	if monster.OwnerID != userID {
		err = ErrMonsterNotFound
		return nil, err
	}

	newBalance, err := s.walletRepo.DebitTx(ctx, tx, userID, boost.Price)
	if err != nil {
		if errors.Is(err, repository.ErrInsufficientBalance) {
			err = ErrInsufficientBalance
			return nil, err
		}
		if errors.Is(err, pgx.ErrNoRows) {
			err = ErrWalletNotFound
			return nil, err
		}
		zlog.Error().Err(err).Int("user_id", userID).Int("price", boost.Price).Msg("Service: Error debiting wallet for boost")
		err = fmt.Errorf("internal server error: could not debit wallet")
		return nil, err
	}

	leveledUp := ApplyXP(monster, boost.XPAmount)
	if err = s.monsterRepo.UpdateMonsterProgressTx(ctx, tx, monster); err != nil {
		zlog.Error().Err(err).Int("monster_id", monsterID).Msg("Service: Error persisting boosted monster progress")
		err = fmt.Errorf("internal server error: could not update monster")
		return nil, err
	}

	result = &models.BoostResult{
		Level:     monster.Level,
		XP:        monster.XP,
		MaxXP:     monster.MaxXP,
		LeveledUp: leveledUp,
		Balance:   newBalance,
	}

	zlog.Info().Int("user_id", userID).Int("monster_id", monsterID).Str("boost_id", boostID).Int("level", monster.Level).Bool("leveled_up", leveledUp).Msg("Service: XP boost applied")
	return result, nil
}
