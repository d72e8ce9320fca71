package menu

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/louisbranch/textcraft/internal/game/account"
	"github.com/louisbranch/textcraft/internal/game/inventory"
	"github.com/louisbranch/textcraft/internal/game/item"
	"github.com/louisbranch/textcraft/internal/game/roster"
	domainerrors "github.com/louisbranch/textcraft/internal/platform/errors"
	"github.com/louisbranch/textcraft/internal/random"
)

type fakeSaver struct {
	saves int
	last  []roster.Record
	err   error
}

func (f *fakeSaver) Save(_ context.Context, records []roster.Record) error {
	if f.err != nil {
		return f.err
	}
	f.saves++
	f.last = records
	return nil
}

type harness struct {
	roster *roster.Roster
	store  *fakeSaver
	out    *bytes.Buffer
	loop   *Loop
}

func newHarness(t *testing.T, input string, records []roster.Record, draws ...int) *harness {
	t.Helper()
	h := &harness{
		roster: roster.New(records, random.NewSequence(draws...)),
		store:  &fakeSaver{},
		out:    &bytes.Buffer{},
	}
	h.loop = New(h.roster, h.store, strings.NewReader(input), h.out, Options{RunID: "test-run"})
	return h
}

func (h *harness) run(t *testing.T) {
	t.Helper()
	if err := h.loop.Run(context.Background()); err != nil {
		t.Fatalf("run: %v\noutput:\n%s", err, h.out.String())
	}
}

func (h *harness) expectOutput(t *testing.T, fragments ...string) {
	t.Helper()
	for _, f := range fragments {
		if !strings.Contains(h.out.String(), f) {
			t.Fatalf("output missing %q:\n%s", f, h.out.String())
		}
	}
}

func recordFor(username string, money, level int, inv inventory.Inventory) roster.Record {
	return roster.Record{
		Account:   account.Account{Username: username, Money: money, ToolLevel: level},
		Inventory: inv,
	}
}

func TestRegisterThenExit(t *testing.T) {
	h := newHarness(t, "2\nsteve\n\n3\n", nil)
	h.run(t)

	h.expectOutput(t, "Welcome to Textcraft!", "Made an account with username: steve")
	if h.store.saves != 1 {
		t.Fatalf("saves = %d, want 1", h.store.saves)
	}
	if len(h.store.last) != 1 || h.store.last[0].Account.Money != 100 {
		t.Fatalf("saved records = %+v", h.store.last)
	}
}

func TestRegisterRepromptsUntilValid(t *testing.T) {
	h := newHarness(t, "2\nbad name\n\nsteve\n\n", nil)
	h.run(t)

	h.expectOutput(t, "Username must be alphanumeric.", "Made an account with username: steve")
	if h.store.saves != 2 {
		t.Fatalf("saves = %d, want 2 (cycle and end of input)", h.store.saves)
	}
}

func TestRegisterRejectsTakenName(t *testing.T) {
	h := newHarness(t, "2\nsteve\nalex\n\n3\n", []roster.Record{recordFor("steve", 100, 1, inventory.New())})
	h.run(t)

	h.expectOutput(t, "Username steve is already taken.", "Made an account with username: alex")
	if h.roster.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", h.roster.Len())
	}
}

func TestLoginWithoutAccounts(t *testing.T) {
	h := newHarness(t, "1\n\n3\n", nil)
	h.run(t)
	h.expectOutput(t, "No account found!")
}

func TestLoginListsRichestFirst(t *testing.T) {
	h := newHarness(t, "1\n0\n3\n", []roster.Record{
		recordFor("poor", 5, 1, inventory.New()),
		recordFor("rich", 2500, 1, inventory.New()),
	})
	h.run(t)

	h.expectOutput(t, "1. rich, Money: 2,500\n2. poor, Money: 5\n")
	sessions := h.roster.Sessions()
	if sessions[0].Username() != "poor" {
		t.Fatal("expected roster order to be unchanged")
	}
}

func TestBuyFoodAndUpgrade(t *testing.T) {
	input := strings.Join([]string{
		"1", "1", // login as steve
		"2", "2", // shop, buy
		"1",      // apple
		"4", "",  // upgrade pickaxe
		"5",      // return
		"3", "3", "0",
		"3",
	}, "\n") + "\n"
	h := newHarness(t, input, []roster.Record{recordFor("steve", 1000, 1, inventory.New())})
	h.run(t)

	h.expectOutput(t, "Money: 1,000", "4. Upgrade Pickaxe - $300", "Buying Apple at 30$", "Upgraded pickaxe level!")
	s, _ := h.roster.Find("steve")
	if s.Account.Money != 670 || s.Account.ToolLevel != 2 {
		t.Fatalf("account = %+v", s.Account)
	}
	if s.Inventory.Consumables[0] != item.Apple {
		t.Fatalf("consumables = %v", s.Inventory.Consumables)
	}
	if h.store.saves != 1 || h.store.last[0].Account.ToolLevel != 2 {
		t.Fatalf("saves = %d, last = %+v", h.store.saves, h.store.last)
	}
}

func TestBuyWithoutMoney(t *testing.T) {
	input := "1\n1\n2\n2\n3\n\n5\n3\n3\n0\n3\n"
	h := newHarness(t, input, []roster.Record{recordFor("steve", 10, 1, inventory.New())})
	h.run(t)

	h.expectOutput(t, "Error: Not enough money!")
	s, _ := h.roster.Find("steve")
	if s.Account.Money != 10 || s.Inventory.Consumables[0] != item.NoConsumable {
		t.Fatalf("state changed: %+v %v", s.Account, s.Inventory.Consumables)
	}
}

func TestBuyMenuHidesUpgradeAtMaxLevel(t *testing.T) {
	input := "1\n1\n2\n2\n4\n3\n3\n0\n3\n"
	h := newHarness(t, input, []roster.Record{recordFor("steve", 1000, 3, inventory.New())})
	h.run(t)

	if strings.Contains(h.out.String(), "Upgrade Pickaxe") {
		t.Fatal("expected upgrade to be hidden")
	}
	h.expectOutput(t, "4. Return")
	s, _ := h.roster.Find("steve")
	if s.Account.Money != 1000 {
		t.Fatalf("Money = %d, want 1000", s.Account.Money)
	}
}

func TestSellAll(t *testing.T) {
	inv := inventory.New()
	inv.InsertCollectible(item.IronOre)
	inv.InsertCollectible(item.Diamond)
	inv.InsertCollectible(item.IronOre)
	input := "1\n1\n2\n1\n1\n2\n3\n3\n0\n3\n"
	h := newHarness(t, input, []roster.Record{recordFor("steve", 100, 1, inv)})
	h.run(t)

	h.expectOutput(t,
		"- Iron ores: 2 @ 20$ per piece",
		"- Gold ores: 0 @ 50$ per piece",
		"- Diamonds: 1 @ 120$ per piece",
		"Sold everything for 160$.",
	)
	s, _ := h.roster.Find("steve")
	if s.Account.Money != 260 || s.Inventory.CountCollectibles()[item.IronOre] != 0 {
		t.Fatalf("account = %+v", s.Account)
	}
}

func TestMiningDescendsAndMines(t *testing.T) {
	input := "1\n1\n1\n1\n3\n3\n0\n3\n"
	h := newHarness(t, input, []roster.Record{recordFor("steve", 100, 1, inventory.New())}, 0, 0, 0, 99)
	h.run(t)

	h.expectOutput(t,
		"You're on depth: 1",
		"You successfully dug deeper!",
		"You mined Iron Ore!",
		"You're on depth: 2",
		"1. Iron Ore\n2. Empty",
	)
}

func TestMiningRefusedWhenExhaustedThenEat(t *testing.T) {
	inv := inventory.New()
	inv.InsertConsumable(item.Beef)
	h := newHarness(t, "1\n1\n1\n1\n2\n1\n\n0\n\n3\n3\n0\n3\n", []roster.Record{recordFor("steve", 100, 1, inv)})
	s, _ := h.roster.Find("steve")
	s.ApplyDamage(100)
	h.run(t)

	h.expectOutput(t, "You don't have enough health!", "You ate Beef and regenerated 40 health! (40/100)")
	if s.Health() != 40 {
		t.Fatalf("Health() = %d, want 40", s.Health())
	}
}

func TestEatInvalidSlot(t *testing.T) {
	h := newHarness(t, "1\n1\n1\n2\n4\n\n0\n\n3\n3\n0\n3\n", []roster.Record{recordFor("steve", 100, 1, inventory.New())})
	h.run(t)
	h.expectOutput(t, "Please choose a valid food!")
}

func TestEndOfInputInsideSubmenuSaves(t *testing.T) {
	h := newHarness(t, "1\n1\n2\n2\n1\n", []roster.Record{recordFor("steve", 100, 1, inventory.New())})
	h.run(t)

	if h.store.saves != 1 {
		t.Fatalf("saves = %d, want 1", h.store.saves)
	}
	if h.store.last[0].Inventory.Consumables[0] != item.Apple {
		t.Fatalf("expected purchase to be saved, got %+v", h.store.last[0].Inventory)
	}
}

func TestSaveFailureStopsLoop(t *testing.T) {
	h := newHarness(t, "9\n3\n", nil)
	h.store.err = errors.New("disk full")

	err := h.loop.Run(context.Background())
	if domainerrors.CodeOf(err) != domainerrors.CodeStorage {
		t.Fatalf("expected storage error, got %v", err)
	}
}

func TestRunHonorsCanceledContext(t *testing.T) {
	h := newHarness(t, "3\n", nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := h.loop.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected canceled, got %v", err)
	}
	if h.out.Len() != 0 {
		t.Fatalf("expected no output, got %q", h.out.String())
	}
}

func TestRunRecordsSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	store := &fakeSaver{}
	loop := New(roster.New(nil, nil), store, strings.NewReader("9\n3\n"), &bytes.Buffer{}, Options{
		RunID:  "run-1",
		Tracer: tp.Tracer("test"),
	})
	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	spans := recorder.Ended()
	var names []string
	for _, span := range spans {
		names = append(names, span.Name())
	}
	want := []string{"menu.cycle", "store.save", "menu.cycle"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Fatalf("spans = %v, want %v", names, want)
	}
}

func TestRunStopsWaitingWhenCanceled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	loop := New(roster.New(nil, nil), &fakeSaver{}, pr, &bytes.Buffer{}, Options{})
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- loop.Run(ctx) }()
	cancel()

	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected canceled, got %v", err)
	}
}
