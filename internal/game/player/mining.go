package player

import (
	"github.com/louisbranch/textcraft/internal/game/economy"
	"github.com/louisbranch/textcraft/internal/game/item"
)

// Event identifies what happened to the player during a mining step.
type Event int

const (
	EventNone Event = iota
	EventDescend
	EventHunger
	EventHazard
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "None"
	case EventDescend:
		return "Descend"
	case EventHunger:
		return "Hunger"
	case EventHazard:
		return "Hazard"
	default:
		return "Unknown"
	}
}

// MiningEvent is one row of the step table. Rows are tried in order, each
// against its own d100 roll; the first that lands at or under Chance fires
// and the rest are skipped.
type MiningEvent struct {
	Event   Event
	Chance  int
	Descend bool
	Damage  int
}

// MiningEvents is the step table.
var MiningEvents = []MiningEvent{
	{Event: EventDescend, Chance: economy.DescendChance, Descend: true},
	{Event: EventHunger, Chance: economy.HungerChance, Damage: economy.HungerDamage},
	{Event: EventHazard, Chance: economy.HazardChance, Damage: economy.HazardDamage},
}

// OreOdds are the percent weights of each collectible kind for one tool level.
type OreOdds struct {
	Iron    int
	Gold    int
	Diamond int
}

// OreTable maps tool level to kind weights. Level 3 leaves no weight for
// diamonds.
var OreTable = map[int]OreOdds{
	1: {Iron: 57, Gold: 28, Diamond: 15},
	2: {Iron: 54, Gold: 36, Diamond: 10},
	3: {Iron: 60, Gold: 40, Diamond: 0},
}

// OddsFor returns the weights for toolLevel, using level 1 for unknown levels.
func OddsFor(toolLevel int) OreOdds {
	if odds, ok := OreTable[toolLevel]; ok {
		return odds
	}
	return OreTable[economy.ToolLevelMin]
}

func (o OreOdds) weights() []int {
	return []int{o.Iron, o.Gold, o.Diamond}
}

var oreKinds = []item.Collectible{item.IronOre, item.GoldOre, item.Diamond}

// StepResult reports the outcome of one mining step.
type StepResult struct {
	Event        Event
	DepthBefore  int
	DepthAfter   int
	HealthBefore int
	HealthAfter  int
	// Mined lists the items stored in the bag.
	Mined []item.Collectible
	// Dropped lists items found while the bag was full.
	Dropped []item.Collectible
}

// Damage returns the health lost during the step.
func (r StepResult) Damage() int {
	return r.HealthBefore - r.HealthAfter
}
