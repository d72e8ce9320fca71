// Package economy holds the static price, yield and cost tables.
package economy

const (
	// StartingMoney is the balance of a newly registered account.
	StartingMoney = 100

	ToolLevelMin = 1
	ToolLevelMax = 3

	// Tool upgrade cost is ToolLevel*ToolUpgradeCostPerLevel + ToolUpgradeBaseCost,
	// evaluated at the current level.
	ToolUpgradeBaseCost     = 100
	ToolUpgradeCostPerLevel = 200

	HealthMax = 100

	// DepthStart is the depth at the top of every expedition.
	DepthStart = 1

	CollectibleCapacity = 20
	ConsumableCapacity  = 6

	// OreAttempts is the number of Bernoulli trials in each mining stage.
	OreAttempts = 2
	// OreAttemptChance is the percent chance that one trial yields an item.
	OreAttemptChance = 50
)

// Sell prices per collectible, in currency.
const (
	IronOrePrice = 20
	GoldOrePrice = 50
	DiamondPrice = 120
)

// Shop prices per consumable, in currency.
const (
	ApplePrice   = 30
	ChickenPrice = 70
	BeefPrice    = 90
)

// Health restored per consumable.
const (
	AppleHeal   = 10
	ChickenHeal = 30
	BeefHeal    = 40
)

// Mining step event chances in percent, each rolled independently in order.
const (
	DescendChance = 40
	HungerChance  = 20
	HazardChance  = 10

	HungerDamage = 10
	HazardDamage = 30
)

// ToolUpgradeCost returns the price of raising toolLevel by one.
func ToolUpgradeCost(toolLevel int) int {
	return toolLevel*ToolUpgradeCostPerLevel + ToolUpgradeBaseCost
}
