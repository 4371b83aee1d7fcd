// internal/service/service.go
package service

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/tamagotcho/tamagotcho-be/internal/catalog"
	"github.com/tamagotcho/tamagotcho-be/internal/models"
	"github.com/tamagotcho/tamagotcho-be/internal/repository"
)

// Service layer interfaces define the business logic operations.
// Handlers depend on these interfaces, not directly on repositories.

// TxBeginner is the slice of pgxpool.Pool the transactional services need.
// Tests substitute it to drive the transaction paths without a database.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// AuthService defines account registration and login.
type AuthService interface {
	// RegisterUser creates a user account and its empty wallet atomically.
	// Returns the new user id.
	RegisterUser(ctx context.Context, input *models.RegisterUserInput) (int, error)

	// LoginUser verifies credentials and returns a signed JWT.
	LoginUser(ctx context.Context, input *models.LoginUserInput) (string, error)
}

// MonsterService defines monster lifecycle, mood actions and progression.
type MonsterService interface {
	// CreateMonster creates a monster for the owner with server-fixed
	// starting progression.
	CreateMonster(ctx context.Context, ownerID int, input *models.CreateMonsterInput) (*models.Monster, error)

	// GetMonsters lists the owner's monsters with pagination.
	GetMonsters(ctx context.Context, ownerID, page, limit int) ([]models.Monster, int, error)

	// GetMonster returns one monster, enforcing ownership.
	GetMonster(ctx context.Context, ownerID, monsterID int) (*models.Monster, error)

	// PerformAction applies a corrective action to a monster. An action that
	// does not match the monster's mood is a successful no-op. A matching
	// action sets the mood to happy, grants XP (with level rollover), pays a
	// small koin reward and advances the daily quests, the last two
	// best-effort.
	PerformAction(ctx context.Context, ownerID, monsterID int, action models.MonsterAction) (*models.ActionResult, error)

	// SetVisibility publishes or hides a monster in the gallery. A false→true
	// flip advances the make-public daily quest.
	SetVisibility(ctx context.Context, ownerID, monsterID int, isPublic bool) (*models.Monster, error)
}

// QuestService defines the daily quest lifecycle: lazy regeneration, action
// tracking and reward claims.
type QuestService interface {
	// GetDailyQuests returns today's quests for the user, regenerating a
	// fresh random set when the stored ones are from a previous UTC day.
	GetDailyQuests(ctx context.Context, userID int) (*models.UserQuests, error)

	// TrackAction advances the quest mapped to the action, if that quest is
	// among today's and not yet completed. monsterID deduplicates quests
	// that require distinct monsters. Unmapped actions are ignored.
	TrackAction(ctx context.Context, userID int, action models.QuestAction, monsterID int) error

	// ClaimQuestReward credits the quest reward exactly once per quest per
	// day. The claim check and the wallet credit happen in one transaction.
	ClaimQuestReward(ctx context.Context, userID int, questID models.QuestID) (*models.ClaimResult, error)
}

// ShopService defines catalog reads and purchases. Every purchase debits the
// wallet and records the unlock (or applies the boost) in one transaction.
type ShopService interface {
	// GetOwnedItems lists the accessory and background unlocks usable with
	// the given monster (including account-wide unlocks).
	GetOwnedItems(ctx context.Context, userID, monsterID int) (*models.OwnedItemsResult, error)

	// PurchaseAccessory unlocks an accessory. monsterID may be 0 for an
	// account-wide unlock.
	PurchaseAccessory(ctx context.Context, userID, monsterID int, itemID string) (*models.PurchaseResult, error)

	// PurchaseBackground unlocks a background. monsterID may be 0 for an
	// account-wide unlock.
	PurchaseBackground(ctx context.Context, userID, monsterID int, itemID string) (*models.PurchaseResult, error)

	// PurchaseBoost debits the boost price and applies its XP to the
	// monster, rolling levels over as needed, atomically.
	PurchaseBoost(ctx context.Context, userID, monsterID int, boostID string) (*models.BoostResult, error)
}

// PaymentService defines the koin purchase flows: asynchronous webhook
// crediting and synchronous post-checkout verification. Both are idempotent
// per checkout session.
type PaymentService interface {
	// HandleWebhookEvent verifies the provider signature and credits the
	// wallet for completed checkout sessions. Irrelevant or malformed events
	// are logged and swallowed so the provider does not retry forever.
	HandleWebhookEvent(ctx context.Context, payload []byte, signature string) error

	// VerifyCheckout retrieves a checkout session, requires it to be paid
	// and owned by the caller, and credits the wallet if the webhook has not
	// already done so.
	VerifyCheckout(ctx context.Context, userID int, sessionID string) (*models.VerifyPaymentResult, error)
}

// GalleryService defines the public monster gallery reads.
type GalleryService interface {
	// ListPublicMonsters returns a filtered page of public monsters with
	// anonymized owners. Served from cache when possible.
	ListPublicMonsters(ctx context.Context, filter repository.GalleryFilter, page, limit int) ([]models.PublicMonster, int, error)

	// AvailableLevels returns the distinct levels present in the gallery,
	// for filter dropdowns.
	AvailableLevels(ctx context.Context) ([]int, error)
}

// CheckoutSession is the provider-neutral view of a checkout session, with
// the crediting metadata already extracted.
type CheckoutSession struct {
	ID            string
	PaymentStatus string
	UserID        int
	ProductID     string
}

// CheckoutEvent is a verified provider webhook event. Session is non-nil
// only for completed checkout sessions; other event types carry just Type.
type CheckoutEvent struct {
	Type    string
	Session *CheckoutSession
}

// CheckoutProvider abstracts the payment provider so payment logic is
// testable without network calls.
type CheckoutProvider interface {
	// VerifyWebhook checks the event signature and decodes the event.
	VerifyWebhook(payload []byte, signature string) (*CheckoutEvent, error)

	// GetSession retrieves a checkout session by id.
	GetSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
}

// ShopCatalog bundles the three shop sections for the catalog endpoint.
type ShopCatalog struct {
	Accessories []catalog.AccessoryItem  `json:"accessories"`
	Backgrounds []catalog.BackgroundItem `json:"backgrounds"`
	Boosts      []catalog.XPBoostItem    `json:"boosts"`
}
