// internal/repository/payment_repo.go
package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	zlog "github.com/rs/zerolog/log"
	"github.com/tamagotcho/tamagotcho-be/internal/models"
)

type paymentRepo struct {
	db *pgxpool.Pool
}

// NewPaymentRepository creates a new PaymentRepository backed by PostgreSQL.
func NewPaymentRepository(db *pgxpool.Pool) PaymentRepository {
	return &paymentRepo{db: db}
}

func (r *paymentRepo) InsertCreditTx(ctx context.Context, tx pgx.Tx, credit *models.PaymentCredit) (bool, error) {
	// The unique session_id makes crediting idempotent: a second insert for
	// the same checkout session hits the conflict and reports not-inserted,
	// and the caller skips the wallet credit in the same transaction.
	query := `INSERT INTO payment_credits (session_id, user_id, product_id, koins)
	          VALUES ($1, $2, $3, $4)
	          ON CONFLICT (session_id) DO NOTHING
	          RETURNING id`

	var id int
	err := tx.QueryRow(ctx, query, credit.SessionID, credit.UserID, credit.ProductID, credit.Koins).Scan(&id)
	if err != nil {
		if err == pgx.ErrNoRows {
			zlog.Info().Str("session_id", credit.SessionID).Msg("RepoTx: Checkout session already credited, skipping")
			return false, nil
		}
		zlog.Error().Err(err).Str("session_id", credit.SessionID).Msg("RepoTx: Error inserting payment credit")
		return false, fmt.Errorf("repoTx error inserting payment credit: %w", err)
	}
	credit.ID = id
	return true, nil
}
