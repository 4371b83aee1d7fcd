package models

import (
	"time"
)

type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username" validate:"required,min=3,max=100"`
	Password  string    `json:"-"`
	Email     string    `json:"email" validate:"required,email"`
	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// MonsterState is the current mood of a monster. A monster in a "wrong" mood
// can be brought back to happy by the one action that corrects that mood.
type MonsterState string

const (
	MonsterStateHappy  MonsterState = "happy"
	MonsterStateSad    MonsterState = "sad"
	MonsterStateAngry  MonsterState = "angry"
	MonsterStateHungry MonsterState = "hungry"
	MonsterStateSleepy MonsterState = "sleepy"
)

// MonsterAction is a user interaction with a monster.
type MonsterAction string

const (
	MonsterActionFeed    MonsterAction = "feed"
	MonsterActionComfort MonsterAction = "comfort"
	MonsterActionHug     MonsterAction = "hug"
	MonsterActionWake    MonsterAction = "wake"
)

type Monster struct {
	ID       int          `json:"id"`
	OwnerID  int          `json:"owner_id"`
	Name     string       `json:"name" validate:"required,min=1,max=100"`
	Traits   string       `json:"traits"` // serialized trait blob, opaque to the server
	State    MonsterState `json:"state"`
	Level    int          `json:"level"`
	XP       int          `json:"xp"`
	MaxXP    int          `json:"max_xp"`
	IsPublic bool         `json:"is_public"`

	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// PublicMonster is the anonymized gallery projection of a public monster.
type PublicMonster struct {
	ID        int          `json:"id"`
	Name      string       `json:"name"`
	Level     int          `json:"level"`
	State     MonsterState `json:"state"`
	Traits    string       `json:"traits"`
	OwnerName string       `json:"owner_name"`
	CreatedAt time.Time    `json:"created_at,omitzero"`
}

type Wallet struct {
	ID        int       `json:"id"`
	OwnerID   int       `json:"owner_id"`
	Balance   int       `json:"balance"` // koins, never negative at rest
	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// QuestID references an entry of the static quest catalog.
type QuestID string

const (
	QuestFeedMonster5      QuestID = "feed_monster_5"
	QuestLevelUpMonster    QuestID = "level_up_monster"
	QuestInteract3Monsters QuestID = "interact_3_monsters"
	QuestBuyAccessory      QuestID = "buy_accessory"
	QuestMakeMonsterPublic QuestID = "make_monster_public"
)

// QuestAction is a trackable user action that may advance a daily quest.
type QuestAction string

const (
	QuestActionFeed         QuestAction = "feed"
	QuestActionLevelUp      QuestAction = "level_up"
	QuestActionInteract     QuestAction = "interact"
	QuestActionBuyAccessory QuestAction = "buy_accessory"
	QuestActionMakePublic   QuestAction = "make_public"
)

// ActiveQuest is one of the three daily quests embedded in a UserQuests
// document. Once claimed it is immutable until the next daily regeneration.
type ActiveQuest struct {
	QuestID     QuestID    `json:"quest_id"`
	Progress    int        `json:"progress"`
	Target      int        `json:"target"`
	Completed   bool       `json:"completed"`
	Claimed     bool       `json:"claimed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// MonsterIDs records which monsters already counted toward quests that
	// require distinct monsters (interact_3_monsters). Empty for the rest.
	MonsterIDs []int `json:"monster_ids,omitempty"`
}

type UserQuests struct {
	ID            int           `json:"id"`
	UserID        int           `json:"user_id"`
	ActiveQuests  []ActiveQuest `json:"active_quests"`
	LastResetDate time.Time     `json:"last_reset_date"`
	CreatedAt     time.Time     `json:"created_at,omitzero"`
	UpdatedAt     time.Time     `json:"updated_at,omitzero"`
}

// OwnedItemKind distinguishes the two shop ownership tables.
type OwnedItemKind string

const (
	OwnedItemAccessory  OwnedItemKind = "accessory"
	OwnedItemBackground OwnedItemKind = "background"
)

// OwnedItem is a permanent shop unlock: (owner, optional monster, item).
// Equip state is client-side and not persisted here.
type OwnedItem struct {
	ID        int       `json:"id"`
	OwnerID   int       `json:"owner_id"`
	MonsterID int       `json:"monster_id,omitzero"` // 0 = account-wide unlock
	ItemID    string    `json:"item_id"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// PaymentCredit is the dedup ledger for payment-provider credits. One row per
// checkout session; the unique session id guards against double crediting
// when both the webhook and the manual verification path fire.
type PaymentCredit struct {
	ID        int       `json:"id"`
	SessionID string    `json:"session_id"`
	UserID    int       `json:"user_id"`
	ProductID string    `json:"product_id"`
	Koins     int       `json:"koins"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// --- Input structs ---

type RegisterUserInput struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=6"`
	Email    string `json:"email" validate:"required,email"`
}

type LoginUserInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CreateMonsterInput struct {
	Name   string `json:"name" validate:"required,min=1,max=100"`
	Traits string `json:"traits" validate:"required"`
	State  string `json:"state" validate:"required,oneof=happy sad angry hungry sleepy"`
}

type MonsterActionInput struct {
	Action string `json:"action" validate:"required,oneof=feed comfort hug wake"`
}

type SetVisibilityInput struct {
	IsPublic *bool `json:"is_public" validate:"required"`
}

type PurchaseItemInput struct {
	MonsterID int `json:"monster_id" validate:"omitempty,gt=0"`
}

type PurchaseBoostInput struct {
	MonsterID int `json:"monster_id" validate:"required,gt=0"`
}

type VerifyPaymentInput struct {
	SessionID string `json:"session_id" validate:"required"`
}

// --- Result structs ---

// ActionResult reports what a monster action actually did. Changed is false
// when the action did not match the monster's mood (a no-op, not an error).
type ActionResult struct {
	Changed     bool         `json:"changed"`
	State       MonsterState `json:"state"`
	Level       int          `json:"level"`
	XP          int          `json:"xp"`
	MaxXP       int          `json:"max_xp"`
	LeveledUp   bool         `json:"leveled_up"`
	KoinsEarned int          `json:"koins_earned"`
}

// ClaimResult reports a successful quest claim.
type ClaimResult struct {
	QuestID QuestID `json:"quest_id"`
	Reward  int     `json:"reward"`
	Balance int     `json:"balance"`
}

// BoostResult reports the effect of an XP boost purchase.
type BoostResult struct {
	Level     int  `json:"level"`
	XP        int  `json:"xp"`
	MaxXP     int  `json:"max_xp"`
	LeveledUp bool `json:"leveled_up"`
	Balance   int  `json:"balance"`
}

// PurchaseResult reports a successful accessory or background purchase.
type PurchaseResult struct {
	ItemID  string `json:"item_id"`
	Price   int    `json:"price"`
	Balance int    `json:"balance"`
}

// OwnedItemsResult lists the shop unlocks relevant to one monster.
type OwnedItemsResult struct {
	Accessories []string `json:"accessories"`
	Backgrounds []string `json:"backgrounds"`
}

// VerifyPaymentResult reports the outcome of a manual checkout verification.
// Credited is false when the session had already been credited before.
type VerifyPaymentResult struct {
	SessionID string `json:"session_id"`
	Credited  bool   `json:"credited"`
	Koins     int    `json:"koins"`
	Balance   int    `json:"balance,omitempty"`
}

// Response is the standard API envelope. Code carries a stable
// machine-readable error identifier on failures.
type Response struct {
	Success bool        `json:"success"`
	Code    string      `json:"code,omitempty"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}
