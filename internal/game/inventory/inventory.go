// Package inventory implements fixed-capacity slotted storage for
// collectibles and consumables.
//
// Items always go into the first empty slot in index order. Inserting into a
// full container is a silent no-op; callers that need feedback check the
// boolean result or the free-slot queries first.
package inventory

import (
	"github.com/louisbranch/textcraft/internal/game/economy"
	"github.com/louisbranch/textcraft/internal/game/item"
	domainerrors "github.com/louisbranch/textcraft/internal/platform/errors"
)

// ErrConsumablesFull indicates there is no empty consumable slot.
var ErrConsumablesFull = domainerrors.New(domainerrors.CodeConsumablesFull, "consumable slots are full")

// Inventory holds the collectible and consumable slots of one account.
// The zero value is an empty inventory.
type Inventory struct {
	Collectibles [economy.CollectibleCapacity]item.Collectible
	Consumables  [economy.ConsumableCapacity]item.Consumable
}

// New returns an empty inventory.
func New() Inventory {
	return Inventory{}
}

// InsertCollectible places kind in the first empty collectible slot.
// It reports false, leaving the inventory unchanged, when every slot is taken.
func (inv *Inventory) InsertCollectible(kind item.Collectible) bool {
	if !kind.Valid() {
		return false
	}
	for i := range inv.Collectibles {
		if inv.Collectibles[i] == item.NoCollectible {
			inv.Collectibles[i] = kind
			return true
		}
	}
	return false
}

// InsertConsumable places kind in the first empty consumable slot.
// It reports false, leaving the inventory unchanged, when every slot is taken.
func (inv *Inventory) InsertConsumable(kind item.Consumable) bool {
	if !kind.Valid() {
		return false
	}
	for i := range inv.Consumables {
		if inv.Consumables[i] == item.NoConsumable {
			inv.Consumables[i] = kind
			return true
		}
	}
	return false
}

// HasFreeCollectibleSlot reports whether any collectible slot is empty.
func (inv *Inventory) HasFreeCollectibleSlot() bool {
	for _, c := range inv.Collectibles {
		if c == item.NoCollectible {
			return true
		}
	}
	return false
}

// HasFreeConsumableSlot reports whether any consumable slot is empty.
func (inv *Inventory) HasFreeConsumableSlot() bool {
	for _, c := range inv.Consumables {
		if c == item.NoConsumable {
			return true
		}
	}
	return false
}

// ConsumableAt returns the consumable in the 1-based display slot.
func (inv *Inventory) ConsumableAt(displayIndex int) (item.Consumable, bool) {
	if displayIndex < 1 || displayIndex > len(inv.Consumables) {
		return item.NoConsumable, false
	}
	kind := inv.Consumables[displayIndex-1]
	return kind, kind != item.NoConsumable
}

// ConsumeAt empties the 1-based display slot and returns what it held.
// Out-of-range or empty slots are left alone and report false.
func (inv *Inventory) ConsumeAt(displayIndex int) (item.Consumable, bool) {
	kind, ok := inv.ConsumableAt(displayIndex)
	if !ok {
		return item.NoConsumable, false
	}
	inv.Consumables[displayIndex-1] = item.NoConsumable
	return kind, true
}

// ClearCollectibles empties every collectible slot.
func (inv *Inventory) ClearCollectibles() {
	inv.Collectibles = [economy.CollectibleCapacity]item.Collectible{}
}

// CountCollectibles tallies occupied collectible slots per kind.
func (inv *Inventory) CountCollectibles() map[item.Collectible]int {
	counts := make(map[item.Collectible]int, len(item.Collectibles()))
	for _, c := range inv.Collectibles {
		if c != item.NoCollectible {
			counts[c]++
		}
	}
	return counts
}

// CollectibleValue returns what every held collectible sells for.
func (inv *Inventory) CollectibleValue() int {
	total := 0
	for kind, n := range inv.CountCollectibles() {
		total += n * kind.Price()
	}
	return total
}

// CollectibleTokens returns the record tokens of occupied collectible slots
// in slot order. Empty slots produce nothing, so positions do not survive.
func (inv *Inventory) CollectibleTokens() []string {
	tokens := make([]string, 0, len(inv.Collectibles))
	for _, c := range inv.Collectibles {
		if c != item.NoCollectible {
			tokens = append(tokens, c.Token())
		}
	}
	return tokens
}

// ConsumableTokens returns the record tokens of occupied consumable slots.
func (inv *Inventory) ConsumableTokens() []string {
	tokens := make([]string, 0, len(inv.Consumables))
	for _, c := range inv.Consumables {
		if c != item.NoConsumable {
			tokens = append(tokens, c.Token())
		}
	}
	return tokens
}

// InsertToken inserts the item named by a record token of either catalog.
// Unknown tokens and full containers report false.
func (inv *Inventory) InsertToken(token string) bool {
	if kind, ok := item.ParseConsumable(token); ok {
		return inv.InsertConsumable(kind)
	}
	if kind, ok := item.ParseCollectible(token); ok {
		return inv.InsertCollectible(kind)
	}
	return false
}
