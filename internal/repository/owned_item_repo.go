// internal/repository/owned_item_repo.go
package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	zlog "github.com/rs/zerolog/log"
	"github.com/tamagotcho/tamagotcho-be/internal/models"
)

type ownedItemRepo struct {
	db *pgxpool.Pool
}

// NewOwnedItemRepository creates a new OwnedItemRepository backed by
// PostgreSQL. Accessory and background unlocks live in twin tables picked by
// kind.
func NewOwnedItemRepository(db *pgxpool.Pool) OwnedItemRepository {
	return &ownedItemRepo{db: db}
}

// tableForKind maps an item kind to its table. Kinds are a closed enum, so
// string concatenation into SQL below is safe.
func tableForKind(kind models.OwnedItemKind) (string, error) {
	switch kind {
	case models.OwnedItemAccessory:
		return "owned_accessories", nil
	case models.OwnedItemBackground:
		return "owned_backgrounds", nil
	default:
		return "", fmt.Errorf("unknown owned item kind %q", kind)
	}
}

func (r *ownedItemRepo) GetOwnedItemIDs(ctx context.Context, kind models.OwnedItemKind, ownerID, monsterID int) ([]string, error) {
	table, err := tableForKind(kind)
	if err != nil {
		return nil, err
	}

	// monster_id = 0 rows are account-wide unlocks and always included.
	query := `SELECT item_id FROM ` + table + `
	          WHERE owner_id = $1 AND (monster_id = $2 OR monster_id = 0)
	          ORDER BY item_id ASC`

	rows, err := r.db.Query(ctx, query, ownerID, monsterID)
	if err != nil {
		zlog.Error().Err(err).Str("kind", string(kind)).Int("owner_id", ownerID).Msg("Error querying owned items")
		return nil, fmt.Errorf("error getting owned %s items: %w", kind, err)
	}
	defer rows.Close()

	itemIDs := []string{}
	for rows.Next() {
		var itemID string
		if err := rows.Scan(&itemID); err != nil {
			return nil, fmt.Errorf("error scanning owned item row: %w", err)
		}
		itemIDs = append(itemIDs, itemID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating owned item rows: %w", err)
	}

	return itemIDs, nil
}

func (r *ownedItemRepo) InsertTx(ctx context.Context, tx pgx.Tx, kind models.OwnedItemKind, item *models.OwnedItem) error {
	table, err := tableForKind(kind)
	if err != nil {
		return err
	}

	query := `INSERT INTO ` + table + ` (owner_id, monster_id, item_id) VALUES ($1, $2, $3)`

	_, err = tx.Exec(ctx, query, item.OwnerID, item.MonsterID, item.ItemID)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			zlog.Warn().Str("kind", string(kind)).Int("owner_id", item.OwnerID).Str("item_id", item.ItemID).Msg("RepoTx: Duplicate unlock refused")
			return ErrAlreadyOwned
		}
		zlog.Error().Err(err).Str("kind", string(kind)).Int("owner_id", item.OwnerID).Str("item_id", item.ItemID).Msg("RepoTx: Error inserting owned item")
		return fmt.Errorf("repoTx error inserting owned %s item: %w", kind, err)
	}
	return nil
}
