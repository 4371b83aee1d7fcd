// internal/repository/wallet_repo.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	zlog "github.com/rs/zerolog/log"
	"github.com/tamagotcho/tamagotcho-be/internal/models"
)

type walletRepo struct {
	db *pgxpool.Pool
}

// NewWalletRepository creates a new WalletRepository backed by PostgreSQL.
func NewWalletRepository(db *pgxpool.Pool) WalletRepository {
	return &walletRepo{db: db}
}

func (r *walletRepo) GetWalletByOwnerID(ctx context.Context, ownerID int) (*models.Wallet, error) {
	query := `SELECT id, owner_id, balance, created_at, updated_at
	          FROM wallets
	          WHERE owner_id = $1`
	wallet := &models.Wallet{}
	err := r.db.QueryRow(ctx, query, ownerID).Scan(
		&wallet.ID,
		&wallet.OwnerID,
		&wallet.Balance,
		&wallet.CreatedAt,
		&wallet.UpdatedAt,
	)
	if err != nil {
		zlog.Error().Err(err).Int("owner_id", ownerID).Msg("Error getting wallet by owner id")
		return nil, fmt.Errorf("error getting wallet for owner %d: %w", ownerID, err)
	}
	return wallet, nil
}

func (r *walletRepo) Credit(ctx context.Context, ownerID, amount int) (int, error) {
	// Single atomic increment; concurrent credits cannot lose updates.
	query := `UPDATE wallets SET balance = balance + $1 WHERE owner_id = $2 RETURNING balance`

	var newBalance int
	err := r.db.QueryRow(ctx, query, amount, ownerID).Scan(&newBalance)
	if err != nil {
		zlog.Error().Err(err).Int("owner_id", ownerID).Int("amount", amount).Msg("Error crediting wallet")
		return 0, fmt.Errorf("error crediting wallet for owner %d: %w", ownerID, err)
	}
	zlog.Info().Int("owner_id", ownerID).Int("amount", amount).Int("new_balance", newBalance).Msg("Wallet credited")
	return newBalance, nil
}

func (r *walletRepo) CreateWalletTx(ctx context.Context, tx pgx.Tx, ownerID int) error {
	query := `INSERT INTO wallets (owner_id, balance) VALUES ($1, 0)`

	_, err := tx.Exec(ctx, query, ownerID)
	if err != nil {
		zlog.Error().Err(err).Int("owner_id", ownerID).Msg("RepoTx: Error creating wallet")
		return fmt.Errorf("repoTx error creating wallet for owner %d: %w", ownerID, err)
	}
	return nil
}

func (r *walletRepo) CreditTx(ctx context.Context, tx pgx.Tx, ownerID, amount int) (int, error) {
	query := `UPDATE wallets SET balance = balance + $1 WHERE owner_id = $2 RETURNING balance`

	var newBalance int
	err := tx.QueryRow(ctx, query, amount, ownerID).Scan(&newBalance)
	if err != nil {
		zlog.Error().Err(err).Int("owner_id", ownerID).Int("amount", amount).Msg("RepoTx: Error crediting wallet")
		return 0, fmt.Errorf("repoTx error crediting wallet for owner %d: %w", ownerID, err)
	}
	return newBalance, nil
}

func (r *walletRepo) DebitTx(ctx context.Context, tx pgx.Tx, ownerID, amount int) (int, error) {
	// The balance condition is part of the UPDATE, so two concurrent debits
	// can never both succeed against a balance that covers only one.
	query := `UPDATE wallets SET balance = balance - $1
	          WHERE owner_id = $2 AND balance >= $1
	          RETURNING balance`

	var newBalance int
	err := tx.QueryRow(ctx, query, amount, ownerID).Scan(&newBalance)
	if err == nil {
		return newBalance, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		zlog.Error().Err(err).Int("owner_id", ownerID).Int("amount", amount).Msg("RepoTx: Error debiting wallet")
		return 0, fmt.Errorf("repoTx error debiting wallet for owner %d: %w", ownerID, err)
	}

	// Zero rows: either the wallet is missing or the balance is too low.
	var exists bool
	checkErr := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM wallets WHERE owner_id = $1)`, ownerID).Scan(&exists)
	if checkErr != nil {
		return 0, fmt.Errorf("repoTx error checking wallet existence for owner %d: %w", ownerID, checkErr)
	}
	if !exists {
		return 0, fmt.Errorf("wallet not found for owner %d: %w", ownerID, pgx.ErrNoRows)
	}

	zlog.Warn().Int("owner_id", ownerID).Int("amount", amount).Msg("RepoTx: Debit refused, insufficient balance")
	return 0, ErrInsufficientBalance
}
