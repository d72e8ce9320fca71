package flatfile

import (
	"strings"
	"testing"

	"github.com/louisbranch/textcraft/internal/game/account"
	"github.com/louisbranch/textcraft/internal/game/inventory"
	"github.com/louisbranch/textcraft/internal/game/item"
)

func TestParseAccount(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   account.Account
		wantOK bool
	}{
		{name: "well formed", line: "steve,250,2", want: account.Account{Username: "steve", Money: 250, ToolLevel: 2}, wantOK: true},
		{name: "crlf", line: "steve,250,2\r\n", want: account.Account{Username: "steve", Money: 250, ToolLevel: 2}, wantOK: true},
		{name: "bad money", line: "steve,lots,2", want: account.Account{Username: "steve", Money: 0, ToolLevel: 2}, wantOK: true},
		{name: "negative money", line: "steve,-40,2", want: account.Account{Username: "steve", Money: 0, ToolLevel: 2}, wantOK: true},
		{name: "bad level", line: "steve,10,x", want: account.Account{Username: "steve", Money: 10, ToolLevel: 1}, wantOK: true},
		{name: "level too high", line: "steve,10,9", want: account.Account{Username: "steve", Money: 10, ToolLevel: 3}, wantOK: true},
		{name: "level too low", line: "steve,10,0", want: account.Account{Username: "steve", Money: 10, ToolLevel: 1}, wantOK: true},
		{name: "too few fields", line: "steve,10"},
		{name: "too many fields", line: "steve,10,1,4"},
		{name: "empty line", line: ""},
		{name: "empty username", line: ",10,1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAccount(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Fatalf("ParseAccount() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFormatAccount(t *testing.T) {
	got := FormatAccount(account.Account{Username: "alex", Money: 1234, ToolLevel: 3})
	if got != "alex,1234,3\n" {
		t.Fatalf("FormatAccount() = %q", got)
	}
	back, ok := ParseAccount(got)
	if !ok || back.Money != 1234 || back.ToolLevel != 3 {
		t.Fatalf("round trip = %+v, %v", back, ok)
	}
}

func TestFormatInventoryWritesCollectiblesOnly(t *testing.T) {
	inv := inventory.New()
	inv.InsertCollectible(item.IronOre)
	inv.InsertCollectible(item.Diamond)
	inv.InsertConsumable(item.Apple)

	got := FormatInventory("alex", inv)
	if got != "alex;Iron Ore;Diamond;\n" {
		t.Fatalf("FormatInventory() = %q", got)
	}
	if empty := FormatInventory("bob", inventory.New()); empty != "bob;\n" {
		t.Fatalf("empty inventory = %q", empty)
	}
}

func TestParseInventory(t *testing.T) {
	inv := ParseInventory("alex;Iron Ore;Apple;Gold Ore;Rubble;Beef;\n")
	if got := inv.CollectibleTokens(); strings.Join(got, "|") != "Iron Ore|Gold Ore" {
		t.Fatalf("collectibles = %v", got)
	}
	if got := inv.ConsumableTokens(); strings.Join(got, "|") != "Apple|Beef" {
		t.Fatalf("consumables = %v", got)
	}
}

func TestParseInventorySkipsOwnerField(t *testing.T) {
	inv := ParseInventory("Diamond;Iron Ore;")
	if got := inv.CollectibleTokens(); len(got) != 1 || got[0] != "Iron Ore" {
		t.Fatalf("collectibles = %v, want [Iron Ore]", got)
	}
}

func TestParseInventoryCapsAtCapacity(t *testing.T) {
	line := "alex;" + strings.Repeat("Iron Ore;", 25)
	inv := ParseInventory(line)
	if got := len(inv.CollectibleTokens()); got != len(inv.Collectibles) {
		t.Fatalf("collectibles = %d, want %d", got, len(inv.Collectibles))
	}
}

func TestFindInventory(t *testing.T) {
	file := "bobby;Diamond;\nbob;Iron Ore;\nalex;Gold Ore;\n"

	inv, ok, err := FindInventory(strings.NewReader(file), "alex")
	if err != nil || !ok {
		t.Fatalf("find alex: ok=%v err=%v", ok, err)
	}
	if got := inv.CollectibleTokens(); len(got) != 1 || got[0] != "Gold Ore" {
		t.Fatalf("alex collectibles = %v", got)
	}

	// Prefix matching returns the first line that starts with the name.
	inv, ok, _ = FindInventory(strings.NewReader(file), "bob")
	if !ok {
		t.Fatal("expected bob to match")
	}
	if got := inv.CollectibleTokens(); len(got) != 1 || got[0] != "Diamond" {
		t.Fatalf("bob collectibles = %v", got)
	}

	inv, ok, err = FindInventory(strings.NewReader(file), "steve")
	if err != nil || ok {
		t.Fatalf("find steve: ok=%v err=%v", ok, err)
	}
	if len(inv.CollectibleTokens()) != 0 {
		t.Fatal("expected empty inventory")
	}
}
