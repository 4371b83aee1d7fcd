// internal/catalog/rewards.go
package catalog

import "github.com/tamagotcho/tamagotcho-be/internal/models"

// ActionXPGain is the XP granted by a corrective action that matched the
// monster's mood.
const ActionXPGain = 25

// ActionKoinRewards is the koin micro-reward paid out for each successful
// corrective action.
var ActionKoinRewards = map[models.MonsterAction]int{
	models.MonsterActionFeed:    2,
	models.MonsterActionComfort: 1,
	models.MonsterActionHug:     2,
	models.MonsterActionWake:    1,
}

// ActionMoodMap pairs each action with the one mood it corrects. An action
// performed on a monster in any other mood is a no-op.
var ActionMoodMap = map[models.MonsterAction]models.MonsterState{
	models.MonsterActionFeed:    models.MonsterStateHungry,
	models.MonsterActionComfort: models.MonsterStateAngry,
	models.MonsterActionHug:     models.MonsterStateSad,
	models.MonsterActionWake:    models.MonsterStateSleepy,
}
