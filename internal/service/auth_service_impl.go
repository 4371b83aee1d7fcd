// internal/service/auth_service_impl.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	zlog "github.com/rs/zerolog/log"
	"github.com/tamagotcho/tamagotcho-be/internal/models"
	"github.com/tamagotcho/tamagotcho-be/internal/repository"
	"github.com/tamagotcho/tamagotcho-be/internal/utils"
)

var (
	ErrInvalidCredentials    = errors.New("invalid username or password")
	ErrRegistrationFailed    = errors.New("failed to register user")
	ErrLoginFailed           = errors.New("failed to login")
	ErrUsernameOrEmailExists = errors.New("username or email already exists")
)

type authServiceImpl struct {
	pool       TxBeginner
	userRepo   repository.UserRepository
	walletRepo repository.WalletRepository
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(pool TxBeginner, userRepo repository.UserRepository, walletRepo repository.WalletRepository) AuthService {
	return &authServiceImpl{
		pool:       pool,
		userRepo:   userRepo,
		walletRepo: walletRepo,
	}
}

// RegisterUser implements the registration logic. The user row and their
// empty wallet are created in one transaction, so every existing user has a
// wallet.
func (s *authServiceImpl) RegisterUser(ctx context.Context, input *models.RegisterUserInput) (userID int, err error) {
	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		zlog.Error().Err(err).Msg("Service: Failed to hash password during registration")
		return 0, fmt.Errorf("%w: password processing error", ErrRegistrationFailed)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		zlog.Error().Err(err).Msg("Service: Failed to begin transaction for registration")
		return 0, fmt.Errorf("%w: could not start operation", ErrRegistrationFailed)
	}

	defer func() {
		if p := recover(); p != nil {
			zlog.Error().Msgf("Service: Panic recovered during registration: %v", p)
			_ = tx.Rollback(ctx)
			panic(p)
		} else if err != nil {
			zlog.Warn().Err(err).Str("username", input.Username).Msg("Service: Rolling back transaction due to error during registration")
			rbErr := tx.Rollback(ctx)
			if rbErr != nil {
				zlog.Error().Err(rbErr).Msg("Service: Failed to rollback transaction")
			}
		} else {
			err = tx.Commit(ctx)
			if err != nil {
				zlog.Error().Err(err).Str("username", input.Username).Msg("Service: Failed to commit transaction for registration")
				err = fmt.Errorf("%w: could not finalize operation", ErrRegistrationFailed)
			}
		}
	}()

	userID, err = s.userRepo.CreateUserTx(ctx, tx, input, hashedPassword)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			zlog.Warn().Str("username", input.Username).Str("email", input.Email).Msg("Service: Username or email conflict during registration")
			err = ErrUsernameOrEmailExists
			return 0, err
		}
		if strings.Contains(err.Error(), "already taken") {
			err = ErrUsernameOrEmailExists
			return 0, err
		}
		zlog.Error().Err(err).Str("username", input.Username).Msg("Service: Error creating user in repository")
		err = fmt.Errorf("%w: database error", ErrRegistrationFailed)
		return 0, err
	}

	err = s.walletRepo.CreateWalletTx(ctx, tx, userID)
	if err != nil {
		zlog.Error().Err(err).Int("user_id", userID).Msg("Service: Error creating wallet during registration")
		err = fmt.Errorf("%w: database error", ErrRegistrationFailed)
		return 0, err
	}

	zlog.Info().Int("userID", userID).Str("username", input.Username).Msg("Service: User registered successfully")
	return userID, nil
}

// LoginUser implements the login logic.
func (s *authServiceImpl) LoginUser(ctx context.Context, input *models.LoginUserInput) (string, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			zlog.Info().Str("username", input.Username).Msg("Service: User not found during login attempt")
			return "", ErrInvalidCredentials
		}
		zlog.Error().Err(err).Str("username", input.Username).Msg("Service: Error fetching user during login")
		return "", fmt.Errorf("%w: database error retrieving user", ErrLoginFailed)
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		zlog.Info().Str("username", input.Username).Msg("Service: Invalid password provided during login attempt")
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, user.Username)
	if err != nil {
		zlog.Error().Err(err).Str("username", input.Username).Msg("Service: Error generating JWT")
		return "", fmt.Errorf("%w: token generation error", ErrLoginFailed)
	}

	zlog.Info().Str("username", input.Username).Msg("Service: User logged in successfully")
	return token, nil
}
