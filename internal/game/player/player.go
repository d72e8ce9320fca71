// Package player implements the session entity: one account and its
// inventory plus transient health and depth, with every gameplay mutation
// and the probabilistic mining model.
//
// Health and depth are never persisted. Health starts at full when the
// session is created; depth returns to the surface at the start of each
// expedition.
package player

import (
	"github.com/louisbranch/textcraft/internal/core/dice"
	"github.com/louisbranch/textcraft/internal/game/account"
	"github.com/louisbranch/textcraft/internal/game/economy"
	"github.com/louisbranch/textcraft/internal/game/inventory"
	"github.com/louisbranch/textcraft/internal/game/item"
	domainerrors "github.com/louisbranch/textcraft/internal/platform/errors"
	"github.com/louisbranch/textcraft/internal/random"
)

// ErrToolMaxed indicates the tool cannot be upgraded further.
var ErrToolMaxed = domainerrors.New(domainerrors.CodeToolMaxed, "tool is at max level")

// Session is the live state of one player.
type Session struct {
	Account   account.Account
	Inventory inventory.Inventory

	health int
	depth  int
	rng    random.Source
}

// New creates a session at full health on the surface. A nil rng uses the
// process-wide generator.
func New(acct account.Account, inv inventory.Inventory, rng random.Source) *Session {
	if rng == nil {
		rng = random.Global()
	}
	return &Session{
		Account:   acct,
		Inventory: inv,
		health:    economy.HealthMax,
		depth:     economy.DepthStart,
		rng:       rng,
	}
}

// Username returns the account name.
func (s *Session) Username() string {
	return s.Account.Username
}

// Health returns the current health.
func (s *Session) Health() int {
	return s.health
}

// Depth returns the current expedition depth.
func (s *Session) Depth() int {
	return s.depth
}

// Spend deducts amount from the account.
func (s *Session) Spend(amount int) error {
	return s.Account.Spend(amount)
}

// ApplyDamage decreases health to a floor of zero.
func (s *Session) ApplyDamage(amount int) (before, after int) {
	before = s.health
	if amount > 0 {
		s.health = max(s.health-amount, 0)
	}
	return before, s.health
}

// Heal increases health up to the maximum.
func (s *Session) Heal(amount int) (before, after int) {
	before = s.health
	if amount > 0 {
		s.health = min(s.health+amount, economy.HealthMax)
	}
	return before, s.health
}

// IsAlive reports whether the player has any health left.
func (s *Session) IsAlive() bool {
	return s.health > 0
}

// BeginExpedition returns to the top of the mine. Health carries over.
func (s *Session) BeginExpedition() {
	s.depth = economy.DepthStart
}

// Descend moves one level deeper. Callers check IsAlive first.
func (s *Session) Descend() {
	s.depth++
}

// MiningStep rolls the event table, then runs one ore-mining stage.
func (s *Session) MiningStep() StepResult {
	result := StepResult{
		Event:        EventNone,
		DepthBefore:  s.depth,
		HealthBefore: s.health,
	}

	for _, row := range MiningEvents {
		if !dice.Chance(s.rng, row.Chance) {
			continue
		}
		result.Event = row.Event
		if row.Descend {
			s.Descend()
		}
		if row.Damage > 0 {
			s.ApplyDamage(row.Damage)
		}
		break
	}

	result.Mined, result.Dropped = s.mineOre()
	result.DepthAfter = s.depth
	result.HealthAfter = s.health
	return result
}

func (s *Session) mineOre() (mined, dropped []item.Collectible) {
	weights := OddsFor(s.Account.ToolLevel).weights()
	for i := 0; i < economy.OreAttempts; i++ {
		if !dice.Chance(s.rng, economy.OreAttemptChance) {
			continue
		}
		kind := oreKinds[dice.Pick(s.rng, weights)]
		if s.Inventory.InsertCollectible(kind) {
			mined = append(mined, kind)
		} else {
			dropped = append(dropped, kind)
		}
	}
	return mined, dropped
}

// CanEat reports whether the 1-based food slot holds something.
func (s *Session) CanEat(displayIndex int) bool {
	_, ok := s.Inventory.ConsumableAt(displayIndex)
	return ok
}

// Eat consumes the food in the 1-based slot and heals by its value. It
// returns the food eaten and the health actually restored.
func (s *Session) Eat(displayIndex int) (kind item.Consumable, healed int, ok bool) {
	if !s.CanEat(displayIndex) {
		return item.NoConsumable, 0, false
	}
	kind, _ = s.Inventory.ConsumeAt(displayIndex)
	before, after := s.Heal(kind.Heal())
	return kind, after - before, true
}

// Sale summarises a sell-all at the shop.
type Sale struct {
	Counts map[item.Collectible]int
	Total  int
}

// SellCollectibles credits the value of every collectible and empties the
// collectible slots.
func (s *Session) SellCollectibles() Sale {
	sale := Sale{Counts: s.Inventory.CountCollectibles()}
	for kind, n := range sale.Counts {
		sale.Total += n * kind.Price()
	}
	s.Account.Credit(sale.Total)
	s.Inventory.ClearCollectibles()
	return sale
}

// BuyConsumable purchases one unit of kind. The food bag is checked before
// any money changes hands.
func (s *Session) BuyConsumable(kind item.Consumable) (price int, err error) {
	if !kind.Valid() {
		return 0, domainerrors.New(domainerrors.CodeInvalidAmount, "unknown consumable")
	}
	if !s.Inventory.HasFreeConsumableSlot() {
		return 0, inventory.ErrConsumablesFull
	}
	price = kind.Price()
	if err := s.Spend(price); err != nil {
		return 0, err
	}
	s.Inventory.InsertConsumable(kind)
	return price, nil
}

// ToolUpgradeCost returns the price of the next tool level.
func (s *Session) ToolUpgradeCost() int {
	return economy.ToolUpgradeCost(s.Account.ToolLevel)
}

// IsToolMaxed reports whether the tool is at its highest level.
func (s *Session) IsToolMaxed() bool {
	return s.Account.ToolMaxed()
}

// UpgradeTool raises the tool level without charging for it.
func (s *Session) UpgradeTool() bool {
	return s.Account.UpgradeTool()
}

// PurchaseToolUpgrade charges ToolUpgradeCost and upgrades the tool.
func (s *Session) PurchaseToolUpgrade() (cost int, err error) {
	if s.IsToolMaxed() {
		return 0, ErrToolMaxed
	}
	cost = s.ToolUpgradeCost()
	if err := s.Spend(cost); err != nil {
		return 0, err
	}
	s.UpgradeTool()
	return cost, nil
}
