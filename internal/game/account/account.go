// Package account holds the persistent identity and progression record of a
// player: username, currency balance and tool level.
package account

import (
	"strconv"

	"github.com/louisbranch/textcraft/internal/game/economy"
	domainerrors "github.com/louisbranch/textcraft/internal/platform/errors"
)

var (
	ErrInsufficientFunds = domainerrors.New(domainerrors.CodeInsufficientFunds, "insufficient funds")
	ErrInvalidAmount     = domainerrors.New(domainerrors.CodeInvalidAmount, "amount must be non-negative")
)

// Account is a pure value holder. Username validation happens at the
// registration boundary.
type Account struct {
	Username  string
	Money     int
	ToolLevel int
}

// New creates an account with the starting balance and tool level.
func New(username string) Account {
	return Account{
		Username:  username,
		Money:     economy.StartingMoney,
		ToolLevel: economy.ToolLevelMin,
	}
}

// Spend deducts amount when the balance covers it. On failure the balance is
// untouched.
func (a *Account) Spend(amount int) error {
	if amount < 0 {
		return ErrInvalidAmount
	}
	if amount > a.Money {
		return domainerrors.WithMetadata(domainerrors.CodeInsufficientFunds, "insufficient funds", map[string]string{
			"Balance": strconv.Itoa(a.Money),
			"Amount":  strconv.Itoa(amount),
		})
	}
	a.Money -= amount
	return nil
}

// Credit adds amount to the balance. Negative amounts are ignored.
func (a *Account) Credit(amount int) {
	if amount <= 0 {
		return
	}
	a.Money += amount
}

// UpgradeTool raises the tool level by one below the cap and reports whether
// it changed.
func (a *Account) UpgradeTool() bool {
	if a.ToolLevel >= economy.ToolLevelMax {
		return false
	}
	a.ToolLevel++
	return true
}

// ToolMaxed reports whether the tool is at its highest level.
func (a *Account) ToolMaxed() bool {
	return a.ToolLevel >= economy.ToolLevelMax
}
