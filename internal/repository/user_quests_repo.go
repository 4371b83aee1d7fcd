// internal/repository/user_quests_repo.go
package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	zlog "github.com/rs/zerolog/log"
	"github.com/tamagotcho/tamagotcho-be/internal/models"
)

type userQuestsRepo struct {
	db *pgxpool.Pool
}

// NewUserQuestsRepository creates a new UserQuestsRepository backed by
// PostgreSQL. The active quests are stored as a JSONB document, one row per
// user, mirroring the embedded shape they have over the wire.
func NewUserQuestsRepository(db *pgxpool.Pool) UserQuestsRepository {
	return &userQuestsRepo{db: db}
}

func scanUserQuests(row pgx.Row) (*models.UserQuests, error) {
	uq := &models.UserQuests{}
	var activeQuestsJSON []byte
	err := row.Scan(
		&uq.ID,
		&uq.UserID,
		&activeQuestsJSON,
		&uq.LastResetDate,
		&uq.CreatedAt,
		&uq.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(activeQuestsJSON, &uq.ActiveQuests); err != nil {
		return nil, fmt.Errorf("error decoding active quests: %w", err)
	}
	return uq, nil
}

func (r *userQuestsRepo) GetByUserID(ctx context.Context, userID int) (*models.UserQuests, error) {
	query := `SELECT id, user_id, active_quests, last_reset_date, created_at, updated_at
	          FROM user_quests
	          WHERE user_id = $1`
	uq, err := scanUserQuests(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		zlog.Debug().Err(err).Int("user_id", userID).Msg("Error getting user quests")
		return nil, fmt.Errorf("error getting quests for user %d: %w", userID, err)
	}
	return uq, nil
}

func (r *userQuestsRepo) Upsert(ctx context.Context, quests *models.UserQuests) error {
	activeQuestsJSON, err := json.Marshal(quests.ActiveQuests)
	if err != nil {
		return fmt.Errorf("error encoding active quests: %w", err)
	}

	query := `INSERT INTO user_quests (user_id, active_quests, last_reset_date)
	          VALUES ($1, $2, $3)
	          ON CONFLICT (user_id) DO UPDATE
	          SET active_quests = EXCLUDED.active_quests,
	              last_reset_date = EXCLUDED.last_reset_date`

	_, err = r.db.Exec(ctx, query, quests.UserID, activeQuestsJSON, quests.LastResetDate)
	if err != nil {
		zlog.Error().Err(err).Int("user_id", quests.UserID).Msg("Error upserting user quests")
		return fmt.Errorf("error upserting quests for user %d: %w", quests.UserID, err)
	}
	return nil
}

func (r *userQuestsRepo) GetByUserIDForUpdateTx(ctx context.Context, tx pgx.Tx, userID int) (*models.UserQuests, error) {
	query := `SELECT id, user_id, active_quests, last_reset_date, created_at, updated_at
	          FROM user_quests
	          WHERE user_id = $1
	          FOR UPDATE`
	uq, err := scanUserQuests(tx.QueryRow(ctx, query, userID))
	if err != nil {
		zlog.Debug().Err(err).Int("user_id", userID).Msg("RepoTx: Error getting user quests for update")
		return nil, fmt.Errorf("repoTx error getting quests for user %d: %w", userID, err)
	}
	return uq, nil
}

func (r *userQuestsRepo) UpdateQuestsTx(ctx context.Context, tx pgx.Tx, userID int, activeQuests []models.ActiveQuest) error {
	activeQuestsJSON, err := json.Marshal(activeQuests)
	if err != nil {
		return fmt.Errorf("error encoding active quests: %w", err)
	}

	query := `UPDATE user_quests SET active_quests = $1 WHERE user_id = $2`

	tag, err := tx.Exec(ctx, query, activeQuestsJSON, userID)
	if err != nil {
		zlog.Error().Err(err).Int("user_id", userID).Msg("RepoTx: Error updating user quests")
		return fmt.Errorf("repoTx error updating quests for user %d: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
