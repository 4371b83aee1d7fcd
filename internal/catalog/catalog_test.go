package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tamagotcho/tamagotcho-be/internal/models"
)

func TestSelectRandomQuests(t *testing.T) {
	for i := 0; i < 20; i++ {
		selected := SelectRandomQuests(DailyQuestCount)
		assert.Len(t, selected, DailyQuestCount)

		seen := map[models.QuestID]bool{}
		for _, id := range selected {
			assert.False(t, seen[id], "quest %s selected twice", id)
			seen[id] = true
			_, ok := GetQuestDefinition(id)
			assert.True(t, ok, "selected quest %s has no definition", id)
		}
	}
}

func TestSelectRandomQuests_CountLargerThanCatalog(t *testing.T) {
	selected := SelectRandomQuests(len(QuestCatalog) + 5)
	assert.Len(t, selected, len(QuestCatalog))
}

func TestIsToday(t *testing.T) {
	now := time.Now().UTC()
	assert.True(t, IsToday(now))
	assert.False(t, IsToday(now.AddDate(0, 0, -1)))
	assert.False(t, IsToday(now.AddDate(0, 0, 1)))
}

func TestActionQuestMapCoversCatalog(t *testing.T) {
	for _, questID := range ActionQuestMap {
		_, ok := GetQuestDefinition(questID)
		assert.True(t, ok, "mapped quest %s has no definition", questID)
	}
}

func TestActionMaps(t *testing.T) {
	assert.Equal(t, models.MonsterStateHungry, ActionMoodMap[models.MonsterActionFeed])
	assert.Equal(t, models.MonsterStateAngry, ActionMoodMap[models.MonsterActionComfort])
	assert.Equal(t, models.MonsterStateSad, ActionMoodMap[models.MonsterActionHug])
	assert.Equal(t, models.MonsterStateSleepy, ActionMoodMap[models.MonsterActionWake])

	for action := range ActionMoodMap {
		assert.Greater(t, ActionKoinRewards[action], 0, "action %s has no koin reward", action)
	}
}

func TestShopLookups(t *testing.T) {
	accessory, ok := GetAccessory("hat-red")
	assert.True(t, ok)
	assert.Equal(t, 150, accessory.Price)

	background, ok := GetBackground("bg-forest")
	assert.True(t, ok)
	assert.Equal(t, 250, background.Price)

	boost, ok := GetXPBoost("boost-small")
	assert.True(t, ok)
	assert.Equal(t, 50, boost.XPAmount)

	_, ok = GetAccessory("no-such-item")
	assert.False(t, ok)
}

func TestKoinsForProduct(t *testing.T) {
	koins, ok := KoinsForProduct("prod_TJrJHiNKtOkEXR")
	assert.True(t, ok)
	assert.Equal(t, 50, koins)

	_, ok = KoinsForProduct("prod_unknown")
	assert.False(t, ok)
}
