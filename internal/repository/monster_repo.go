// internal/repository/monster_repo.go
package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	zlog "github.com/rs/zerolog/log"
	"github.com/tamagotcho/tamagotcho-be/internal/models"
)

type monsterRepo struct {
	db *pgxpool.Pool
}

// NewMonsterRepository creates a new MonsterRepository backed by PostgreSQL.
func NewMonsterRepository(db *pgxpool.Pool) MonsterRepository {
	return &monsterRepo{db: db}
}

const monsterColumns = `id, owner_id, name, traits, state, level, xp, max_xp, is_public, created_at, updated_at`

func scanMonster(row pgx.Row) (*models.Monster, error) {
	m := &models.Monster{}
	err := row.Scan(
		&m.ID,
		&m.OwnerID,
		&m.Name,
		&m.Traits,
		&m.State,
		&m.Level,
		&m.XP,
		&m.MaxXP,
		&m.IsPublic,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *monsterRepo) CreateMonster(ctx context.Context, ownerID int, input *models.CreateMonsterInput) (*models.Monster, error) {
	// Level, XP and visibility are server-fixed at creation; clients only
	// choose name, traits and the starting mood.
	query := `INSERT INTO monsters (owner_id, name, traits, state, level, xp, max_xp, is_public)
	          VALUES ($1, $2, $3, $4, 1, 0, 100, false)
	          RETURNING ` + monsterColumns

	monster, err := scanMonster(r.db.QueryRow(ctx, query, ownerID, input.Name, input.Traits, input.State))
	if err != nil {
		zlog.Error().Err(err).Int("owner_id", ownerID).Str("name", input.Name).Msg("Error creating monster")
		return nil, fmt.Errorf("error creating monster: %w", err)
	}
	zlog.Info().Int("monster_id", monster.ID).Int("owner_id", ownerID).Msg("Monster created successfully")
	return monster, nil
}

func (r *monsterRepo) GetMonsterByID(ctx context.Context, id int) (*models.Monster, error) {
	query := `SELECT ` + monsterColumns + ` FROM monsters WHERE id = $1`
	monster, err := scanMonster(r.db.QueryRow(ctx, query, id))
	if err != nil {
		zlog.Error().Err(err).Int("monster_id", id).Msg("Error getting monster by id")
		return nil, fmt.Errorf("error getting monster by id %d: %w", id, err)
	}
	return monster, nil
}

func (r *monsterRepo) GetMonstersByOwnerID(ctx context.Context, ownerID, page, limit int) (monsters []models.Monster, totalCount int, err error) {
	countQuery := `SELECT COUNT(*) FROM monsters WHERE owner_id = $1`
	err = r.db.QueryRow(ctx, countQuery, ownerID).Scan(&totalCount)
	if err != nil {
		zlog.Error().Err(err).Int("owner_id", ownerID).Msg("Error counting monsters")
		err = fmt.Errorf("error counting monsters: %w", err)
		return
	}

	monsters = []models.Monster{}
	if totalCount == 0 {
		return
	}

	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + monsterColumns + `
	          FROM monsters
	          WHERE owner_id = $1
	          ORDER BY id ASC
	          LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, ownerID, limit, offset)
	if err != nil {
		zlog.Error().Err(err).Int("owner_id", ownerID).Msg("Error querying monsters")
		err = fmt.Errorf("error getting monsters: %w", err)
		return
	}
	defer rows.Close()

	for rows.Next() {
		var m models.Monster
		scanErr := rows.Scan(
			&m.ID, &m.OwnerID, &m.Name, &m.Traits, &m.State,
			&m.Level, &m.XP, &m.MaxXP, &m.IsPublic, &m.CreatedAt, &m.UpdatedAt,
		)
		if scanErr != nil {
			zlog.Warn().Err(scanErr).Msg("Error scanning monster row")
			err = fmt.Errorf("error scanning monster row: %w", scanErr)
			return
		}
		monsters = append(monsters, m)
	}

	if err = rows.Err(); err != nil {
		zlog.Error().Err(err).Msg("Error iterating monster rows")
		err = fmt.Errorf("error iterating monster rows: %w", err)
		return
	}

	return monsters, totalCount, nil
}

func (r *monsterRepo) UpdateMonsterProgress(ctx context.Context, monster *models.Monster) error {
	query := `UPDATE monsters SET state = $1, level = $2, xp = $3, max_xp = $4
	          WHERE id = $5`

	tag, err := r.db.Exec(ctx, query, monster.State, monster.Level, monster.XP, monster.MaxXP, monster.ID)
	if err != nil {
		zlog.Error().Err(err).Int("monster_id", monster.ID).Msg("Error updating monster progress")
		return fmt.Errorf("error updating monster progress: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *monsterRepo) SetVisibility(ctx context.Context, id int, isPublic bool) error {
	query := `UPDATE monsters SET is_public = $1 WHERE id = $2`

	tag, err := r.db.Exec(ctx, query, isPublic, id)
	if err != nil {
		zlog.Error().Err(err).Int("monster_id", id).Msg("Error updating monster visibility")
		return fmt.Errorf("error updating monster visibility: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *monsterRepo) GetPublicMonsters(ctx context.Context, filter GalleryFilter, limit, offset int) (monsters []models.PublicMonster, totalCount int, err error) {
	// Filters are appended as numbered placeholders so level and state can
	// each be present or absent independently.
	where := `WHERE m.is_public = true`
	args := []interface{}{}
	argPos := 1

	if filter.Level != nil {
		where += fmt.Sprintf(" AND m.level = $%d", argPos)
		args = append(args, *filter.Level)
		argPos++
	}
	if filter.State != "" {
		where += fmt.Sprintf(" AND m.state = $%d", argPos)
		args = append(args, filter.State)
		argPos++
	}

	countQuery := `SELECT COUNT(*) FROM monsters m ` + where
	err = r.db.QueryRow(ctx, countQuery, args...).Scan(&totalCount)
	if err != nil {
		zlog.Error().Err(err).Msg("Error counting public monsters")
		err = fmt.Errorf("error counting public monsters: %w", err)
		return
	}

	monsters = []models.PublicMonster{}
	if totalCount == 0 {
		return
	}

	orderBy := `ORDER BY m.created_at DESC, m.id DESC`
	if filter.Sort == "oldest" {
		orderBy = `ORDER BY m.created_at ASC, m.id ASC`
	}

	query := fmt.Sprintf(`SELECT m.id, m.name, m.level, m.state, m.traits, u.username, m.created_at
	          FROM monsters m
	          JOIN users u ON m.owner_id = u.id
	          %s
	          %s
	          LIMIT $%d OFFSET $%d`, where, orderBy, argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zlog.Error().Err(err).Msg("Error querying public monsters")
		err = fmt.Errorf("error getting public monsters: %w", err)
		return
	}
	defer rows.Close()

	for rows.Next() {
		var pm models.PublicMonster
		scanErr := rows.Scan(&pm.ID, &pm.Name, &pm.Level, &pm.State, &pm.Traits, &pm.OwnerName, &pm.CreatedAt)
		if scanErr != nil {
			zlog.Warn().Err(scanErr).Msg("Error scanning public monster row")
			err = fmt.Errorf("error scanning public monster row: %w", scanErr)
			return
		}
		monsters = append(monsters, pm)
	}

	if err = rows.Err(); err != nil {
		zlog.Error().Err(err).Msg("Error iterating public monster rows")
		err = fmt.Errorf("error iterating public monster rows: %w", err)
		return
	}

	return monsters, totalCount, nil
}

func (r *monsterRepo) GetPublicLevels(ctx context.Context) ([]int, error) {
	query := `SELECT DISTINCT level FROM monsters WHERE is_public = true ORDER BY level ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zlog.Error().Err(err).Msg("Error querying public monster levels")
		return nil, fmt.Errorf("error getting public monster levels: %w", err)
	}
	defer rows.Close()

	levels := []int{}
	for rows.Next() {
		var level int
		if err := rows.Scan(&level); err != nil {
			return nil, fmt.Errorf("error scanning level row: %w", err)
		}
		levels = append(levels, level)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating level rows: %w", err)
	}

	return levels, nil
}

func (r *monsterRepo) GetMonsterByIDForUpdateTx(ctx context.Context, tx pgx.Tx, id int) (*models.Monster, error) {
	query := `SELECT ` + monsterColumns + ` FROM monsters WHERE id = $1 FOR UPDATE`
	monster, err := scanMonster(tx.QueryRow(ctx, query, id))
	if err != nil {
		zlog.Error().Err(err).Int("monster_id", id).Msg("RepoTx: Error getting monster for update")
		return nil, fmt.Errorf("repoTx error getting monster %d for update: %w", id, err)
	}
	return monster, nil
}

func (r *monsterRepo) UpdateMonsterProgressTx(ctx context.Context, tx pgx.Tx, monster *models.Monster) error {
	query := `UPDATE monsters SET state = $1, level = $2, xp = $3, max_xp = $4
	          WHERE id = $5`

	tag, err := tx.Exec(ctx, query, monster.State, monster.Level, monster.XP, monster.MaxXP, monster.ID)
	if err != nil {
		zlog.Error().Err(err).Int("monster_id", monster.ID).Msg("RepoTx: Error updating monster progress")
		return fmt.Errorf("repoTx error updating monster progress: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
