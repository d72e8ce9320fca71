package flatfile

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/louisbranch/textcraft/internal/game/account"
	"github.com/louisbranch/textcraft/internal/game/economy"
	"github.com/louisbranch/textcraft/internal/game/inventory"
)

const (
	accountSeparator   = ","
	inventorySeparator = ";"
)

// FormatAccount renders one account line, newline included.
func FormatAccount(a account.Account) string {
	return a.Username + accountSeparator +
		strconv.Itoa(a.Money) + accountSeparator +
		strconv.Itoa(a.ToolLevel) + "\n"
}

// ParseAccount decodes one account line. Lines without exactly three fields
// are rejected. Unparseable or negative money becomes 0; an unparseable tool
// level becomes the minimum and out-of-range levels are clamped.
func ParseAccount(line string) (account.Account, bool) {
	fields := strings.Split(strings.TrimRight(line, "\r\n"), accountSeparator)
	if len(fields) != 3 {
		return account.Account{}, false
	}
	username := strings.TrimSpace(fields[0])
	if username == "" {
		return account.Account{}, false
	}

	money, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil || money < 0 {
		money = 0
	}
	level, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		level = economy.ToolLevelMin
	}
	level = min(max(level, economy.ToolLevelMin), economy.ToolLevelMax)

	return account.Account{Username: username, Money: money, ToolLevel: level}, true
}

// FormatInventory renders one inventory line. Only collectibles are written.
func FormatInventory(username string, inv inventory.Inventory) string {
	var b strings.Builder
	b.WriteString(username)
	b.WriteString(inventorySeparator)
	for _, token := range inv.CollectibleTokens() {
		b.WriteString(token)
		b.WriteString(inventorySeparator)
	}
	b.WriteString("\n")
	return b.String()
}

// ParseInventory decodes one inventory line. The first field names the
// owner and is skipped. Tokens of either catalog are accepted; unknown
// tokens and items beyond capacity are ignored.
func ParseInventory(line string) inventory.Inventory {
	inv := inventory.New()
	fields := strings.Split(strings.TrimRight(line, "\r\n"), inventorySeparator)
	for _, token := range fields[1:] {
		if token == "" {
			continue
		}
		inv.InsertToken(token)
	}
	return inv
}

// FindInventory returns the inventory on the first line that starts with
// username. Matching is by prefix, so "bob" also matches a "bobby" line that
// appears first. No match yields an empty inventory and false.
func FindInventory(r io.Reader, username string) (inventory.Inventory, bool, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, username) {
			continue
		}
		return ParseInventory(line), true, nil
	}
	if err := scanner.Err(); err != nil {
		return inventory.New(), false, err
	}
	return inventory.New(), false, nil
}
