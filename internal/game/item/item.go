// Package item defines the closed catalogs of collectible and consumable
// kinds, their display labels and their stable record tokens.
//
// Tokens are the strings written to record stores and match the display
// labels. The two catalogs never share a token, so both kinds can live in one
// record.
package item

import "github.com/louisbranch/textcraft/internal/game/economy"

// Collectible is an ore or gem kind obtained while mining.
// The zero value marks an empty slot.
type Collectible int

const (
	NoCollectible Collectible = iota
	IronOre
	GoldOre
	Diamond
)

// Consumable is a food kind that restores health.
// The zero value marks an empty slot.
type Consumable int

const (
	NoConsumable Consumable = iota
	Apple
	Chicken
	Beef
)

var collectibleTokens = map[Collectible]string{
	IronOre: "Iron Ore",
	GoldOre: "Gold Ore",
	Diamond: "Diamond",
}

var consumableTokens = map[Consumable]string{
	Apple:   "Apple",
	Chicken: "Chicken",
	Beef:    "Beef",
}

// Collectibles lists every collectible kind in catalog order.
func Collectibles() []Collectible {
	return []Collectible{IronOre, GoldOre, Diamond}
}

// Consumables lists every consumable kind in catalog order.
func Consumables() []Consumable {
	return []Consumable{Apple, Chicken, Beef}
}

// Valid reports whether c is a catalog kind.
func (c Collectible) Valid() bool {
	_, ok := collectibleTokens[c]
	return ok
}

// Token returns the record token, or "" for an empty or unknown kind.
func (c Collectible) Token() string {
	return collectibleTokens[c]
}

// Label returns the display label.
func (c Collectible) Label() string {
	if !c.Valid() {
		return "Empty"
	}
	return collectibleTokens[c]
}

func (c Collectible) String() string {
	return c.Label()
}

// Price returns the shop sell price.
func (c Collectible) Price() int {
	switch c {
	case IronOre:
		return economy.IronOrePrice
	case GoldOre:
		return economy.GoldOrePrice
	case Diamond:
		return economy.DiamondPrice
	default:
		return 0
	}
}

// ParseCollectible maps a record token back to its kind.
func ParseCollectible(token string) (Collectible, bool) {
	for kind, t := range collectibleTokens {
		if t == token {
			return kind, true
		}
	}
	return NoCollectible, false
}

// Valid reports whether c is a catalog kind.
func (c Consumable) Valid() bool {
	_, ok := consumableTokens[c]
	return ok
}

// Token returns the record token, or "" for an empty or unknown kind.
func (c Consumable) Token() string {
	return consumableTokens[c]
}

// Label returns the display label.
func (c Consumable) Label() string {
	if !c.Valid() {
		return "Empty"
	}
	return consumableTokens[c]
}

func (c Consumable) String() string {
	return c.Label()
}

// Price returns the shop buy price.
func (c Consumable) Price() int {
	switch c {
	case Apple:
		return economy.ApplePrice
	case Chicken:
		return economy.ChickenPrice
	case Beef:
		return economy.BeefPrice
	default:
		return 0
	}
}

// Heal returns the health restored by eating c.
func (c Consumable) Heal() int {
	switch c {
	case Apple:
		return economy.AppleHeal
	case Chicken:
		return economy.ChickenHeal
	case Beef:
		return economy.BeefHeal
	default:
		return 0
	}
}

// ParseConsumable maps a record token back to its kind.
func ParseConsumable(token string) (Consumable, bool) {
	for kind, t := range consumableTokens {
		if t == token {
			return kind, true
		}
	}
	return NoConsumable, false
}
