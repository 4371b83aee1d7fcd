// internal/repository/repository.go
package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/tamagotcho/tamagotcho-be/internal/models"
)

// This file defines the interfaces of the data access layer. Handlers and
// services depend on these contracts, never on the concrete pgx
// implementations, which keeps the business logic testable with mocks.

// Sentinel errors surfaced by repositories. Services translate them into
// their own error vocabulary where needed.
var (
	// ErrInsufficientBalance is returned by WalletRepository.DebitTx when the
	// wallet exists but does not hold enough koins.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrAlreadyOwned is returned by OwnedItemRepository.InsertTx when the
	// (owner, monster, item) row already exists.
	ErrAlreadyOwned = errors.New("item already owned")
)

// ====================================================================================
// User Repository
// ====================================================================================

// UserRepository: contract for user account data.
type UserRepository interface {
	// GetUserByUsername finds a user by username. Returns pgx.ErrNoRows
	// (wrapped) when no such user exists.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUserByID finds a user by id.
	GetUserByID(ctx context.Context, id int) (*models.User, error)

	// --- Transactional methods ---

	// CreateUserTx inserts a new user inside a transaction and returns the
	// new user id. Registration creates the user and their wallet together.
	CreateUserTx(ctx context.Context, tx pgx.Tx, input *models.RegisterUserInput, hashedPassword string) (int, error)
}

// ====================================================================================
// Monster Repository
// ====================================================================================

// GalleryFilter narrows the public-monster listing. Zero values mean "no
// filter". Sort is "newest" or "oldest".
type GalleryFilter struct {
	Level *int
	State string
	Sort  string
}

// MonsterRepository: contract for monster data.
type MonsterRepository interface {
	// CreateMonster inserts a new monster and returns it with server-assigned
	// fields populated.
	CreateMonster(ctx context.Context, ownerID int, input *models.CreateMonsterInput) (*models.Monster, error)

	// GetMonsterByID finds a monster by id. Ownership checks belong to the
	// service layer.
	GetMonsterByID(ctx context.Context, id int) (*models.Monster, error)

	// GetMonstersByOwnerID lists a user's monsters with pagination.
	GetMonstersByOwnerID(ctx context.Context, ownerID, page, limit int) ([]models.Monster, int, error)

	// UpdateMonsterProgress persists state, level, xp and max_xp after an
	// action resolved.
	UpdateMonsterProgress(ctx context.Context, monster *models.Monster) error

	// SetVisibility flips the is_public flag.
	SetVisibility(ctx context.Context, id int, isPublic bool) error

	// GetPublicMonsters lists public monsters for the gallery, filtered and
	// paginated, with the owner reduced to a display name.
	GetPublicMonsters(ctx context.Context, filter GalleryFilter, limit, offset int) ([]models.PublicMonster, int, error)

	// GetPublicLevels returns the distinct levels present among public
	// monsters, ascending.
	GetPublicLevels(ctx context.Context) ([]int, error)

	// --- Transactional methods ---

	// GetMonsterByIDForUpdateTx reads a monster with a row lock, for the XP
	// boost purchase path.
	GetMonsterByIDForUpdateTx(ctx context.Context, tx pgx.Tx, id int) (*models.Monster, error)

	// UpdateMonsterProgressTx persists progression fields inside a
	// transaction.
	UpdateMonsterProgressTx(ctx context.Context, tx pgx.Tx, monster *models.Monster) error
}

// ====================================================================================
// Wallet Repository
// ====================================================================================

// WalletRepository: contract for the koin wallet ledger. All balance changes
// are single atomic UPDATEs; there is no read-modify-write anywhere.
type WalletRepository interface {
	// GetWalletByOwnerID reads a user's wallet.
	GetWalletByOwnerID(ctx context.Context, ownerID int) (*models.Wallet, error)

	// Credit adds amount koins and returns the new balance. Returns
	// pgx.ErrNoRows (wrapped) when the wallet does not exist.
	Credit(ctx context.Context, ownerID, amount int) (int, error)

	// --- Transactional methods ---

	// CreateWalletTx creates an empty wallet for a new user.
	CreateWalletTx(ctx context.Context, tx pgx.Tx, ownerID int) error

	// CreditTx adds amount koins inside a transaction and returns the new
	// balance.
	CreditTx(ctx context.Context, tx pgx.Tx, ownerID, amount int) (int, error)

	// DebitTx removes amount koins only when the balance covers it. Returns
	// ErrInsufficientBalance when it does not, pgx.ErrNoRows (wrapped) when
	// the wallet is missing, and the new balance on success.
	DebitTx(ctx context.Context, tx pgx.Tx, ownerID, amount int) (int, error)
}

// ====================================================================================
// User Quests Repository
// ====================================================================================

// UserQuestsRepository: contract for the per-user daily quest document. The
// three active quests live in a JSONB column, one row per user.
type UserQuestsRepository interface {
	// GetByUserID reads a user's quest document. Returns pgx.ErrNoRows
	// (wrapped) when the user has never had quests generated.
	GetByUserID(ctx context.Context, userID int) (*models.UserQuests, error)

	// Upsert inserts or replaces the quest document (active quests and reset
	// date) for a user.
	Upsert(ctx context.Context, quests *models.UserQuests) error

	// --- Transactional methods ---

	// GetByUserIDForUpdateTx reads the quest document with a row lock so a
	// claim can check and mark it atomically.
	GetByUserIDForUpdateTx(ctx context.Context, tx pgx.Tx, userID int) (*models.UserQuests, error)

	// UpdateQuestsTx replaces the active quests inside a transaction.
	UpdateQuestsTx(ctx context.Context, tx pgx.Tx, userID int, activeQuests []models.ActiveQuest) error
}

// ====================================================================================
// Owned Item Repository
// ====================================================================================

// OwnedItemRepository: contract for permanent shop unlocks. Accessories and
// backgrounds share the same shape in two tables selected by kind.
type OwnedItemRepository interface {
	// GetOwnedItemIDs lists the item ids a user owns, either bound to the
	// given monster or account-wide (monster_id = 0).
	GetOwnedItemIDs(ctx context.Context, kind models.OwnedItemKind, ownerID, monsterID int) ([]string, error)

	// --- Transactional methods ---

	// InsertTx records a new unlock. Returns ErrAlreadyOwned on a duplicate
	// (owner, monster, item).
	InsertTx(ctx context.Context, tx pgx.Tx, kind models.OwnedItemKind, item *models.OwnedItem) error
}

// ====================================================================================
// Payment Repository
// ====================================================================================

// PaymentRepository: contract for the payment dedup ledger.
type PaymentRepository interface {
	// --- Transactional methods ---

	// InsertCreditTx records a checkout session credit. Returns false without
	// error when the session id was already recorded, which callers treat as
	// "already credited, do nothing".
	InsertCreditTx(ctx context.Context, tx pgx.Tx, credit *models.PaymentCredit) (bool, error)
}
