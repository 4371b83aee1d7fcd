// internal/catalog/quests.go
package catalog

import (
	"math/rand"
	"time"

	"github.com/tamagotcho/tamagotcho-be/internal/models"
)

// QuestDefinition is a static daily-quest entry: what to do, how many times,
// and how many koins a completed quest pays out.
type QuestDefinition struct {
	ID          models.QuestID `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Icon        string         `json:"icon"`
	Reward      int            `json:"reward"`
	Target      int            `json:"target"`
	Category    string         `json:"category"`
}

// DailyQuestCount is how many quests each user gets per calendar day.
const DailyQuestCount = 3

// QuestCatalog is the full set of quests a daily selection draws from.
var QuestCatalog = map[models.QuestID]QuestDefinition{
	models.QuestFeedMonster5: {
		ID:          models.QuestFeedMonster5,
		Title:       "Chef cuisinier",
		Description: "Feed your monster 5 times today",
		Icon:        "🍕",
		Reward:      20,
		Target:      5,
		Category:    "interaction",
	},
	models.QuestLevelUpMonster: {
		ID:          models.QuestLevelUpMonster,
		Title:       "Evolution",
		Description: "Level up a monster once",
		Icon:        "⭐",
		Reward:      50,
		Target:      1,
		Category:    "progression",
	},
	models.QuestInteract3Monsters: {
		ID:          models.QuestInteract3Monsters,
		Title:       "Socialisation",
		Description: "Interact with 3 different monsters",
		Icon:        "💖",
		Reward:      30,
		Target:      3,
		Category:    "interaction",
	},
	models.QuestBuyAccessory: {
		ID:          models.QuestBuyAccessory,
		Title:       "Shopping",
		Description: "Buy an accessory from the shop",
		Icon:        "🛍️",
		Reward:      40,
		Target:      1,
		Category:    "shop",
	},
	models.QuestMakeMonsterPublic: {
		ID:          models.QuestMakeMonsterPublic,
		Title:       "Partage",
		Description: "Make a monster public",
		Icon:        "🌐",
		Reward:      15,
		Target:      1,
		Category:    "social",
	},
}

// ActionQuestMap is the fixed table from trackable actions to the quest each
// one advances.
var ActionQuestMap = map[models.QuestAction]models.QuestID{
	models.QuestActionFeed:         models.QuestFeedMonster5,
	models.QuestActionLevelUp:      models.QuestLevelUpMonster,
	models.QuestActionInteract:     models.QuestInteract3Monsters,
	models.QuestActionBuyAccessory: models.QuestBuyAccessory,
	models.QuestActionMakePublic:   models.QuestMakeMonsterPublic,
}

// GetQuestDefinition looks up a quest by id.
func GetQuestDefinition(id models.QuestID) (QuestDefinition, bool) {
	def, ok := QuestCatalog[id]
	return def, ok
}

// AllQuestIDs returns every quest id in the catalog. Order is not stable
// across calls; callers that need determinism must sort.
func AllQuestIDs() []models.QuestID {
	ids := make([]models.QuestID, 0, len(QuestCatalog))
	for id := range QuestCatalog {
		ids = append(ids, id)
	}
	return ids
}

// SelectRandomQuests draws count distinct quest ids uniformly at random from
// the catalog (without replacement). count is capped at the catalog size.
func SelectRandomQuests(count int) []models.QuestID {
	ids := AllQuestIDs()
	rand.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
	if count > len(ids) {
		count = len(ids)
	}
	return ids[:count]
}

// IsToday reports whether t falls on the current UTC calendar day.
func IsToday(t time.Time) bool {
	now := time.Now().UTC()
	t = t.UTC()
	return t.Year() == now.Year() && t.Month() == now.Month() && t.Day() == now.Day()
}
