// internal/repository/user_repo.go
package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	zlog "github.com/rs/zerolog/log"
	"github.com/tamagotcho/tamagotcho-be/internal/models"
)

type userRepo struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository backed by PostgreSQL.
func NewUserRepository(db *pgxpool.Pool) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT id, username, password, email, created_at, updated_at
	          FROM users
	          WHERE username = $1`
	user := &models.User{}
	err := r.db.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&user.Email,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		zlog.Error().Err(err).Str("username", username).Msg("Error getting user by username")
		return nil, fmt.Errorf("error getting user by username %s: %w", username, err)
	}
	return user, nil
}

func (r *userRepo) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	query := `SELECT id, username, password, email, created_at, updated_at
	          FROM users
	          WHERE id = $1`
	user := &models.User{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&user.Email,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		zlog.Error().Err(err).Int("user_id", id).Msg("Error getting user by id")
		return nil, fmt.Errorf("error getting user by id %d: %w", id, err)
	}
	return user, nil
}

func (r *userRepo) CreateUserTx(ctx context.Context, tx pgx.Tx, input *models.RegisterUserInput, hashedPassword string) (int, error) {
	query := `INSERT INTO users (username, password, email)
	          VALUES ($1, $2, $3) RETURNING id`
	var userID int
	err := tx.QueryRow(ctx, query,
		input.Username,
		hashedPassword,
		input.Email,
	).Scan(&userID)

	if err != nil {
		zlog.Error().Err(err).Str("username", input.Username).Msg("RepoTx: Error creating user")
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			msg := "username already taken"
			if strings.Contains(pgErr.ConstraintName, "email") {
				msg = "email already taken"
			}
			zlog.Warn().Err(err).Str("username", input.Username).Msg("RepoTx: " + msg)
			return 0, fmt.Errorf(msg+": %w", err)
		}
		return 0, fmt.Errorf("repoTx error creating user: %w", err)
	}
	return userID, nil
}
