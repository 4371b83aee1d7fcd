// internal/service/progression.go
package service

import "github.com/tamagotcho/tamagotcho-be/internal/models"

// ApplyXP adds XP to a monster and rolls over levels while the XP meets the
// threshold. Each level-up subtracts the old threshold from the XP and sets
// the new threshold to level*100, so overflow XP carries into the next level.
// Both action XP and purchased boosts go through here.
//
// Returns true when at least one level-up happened.
func ApplyXP(monster *models.Monster, amount int) (leveledUp bool) {
	if amount <= 0 {
		return false
	}

	monster.XP += amount
	for monster.XP >= monster.MaxXP {
		monster.XP -= monster.MaxXP
		monster.Level++
		monster.MaxXP = monster.Level * 100
		leveledUp = true
	}
	return leveledUp
}
