package menu

import (
	"context"
	"errors"

	"github.com/louisbranch/textcraft/internal/game/inventory"
	"github.com/louisbranch/textcraft/internal/game/item"
	"github.com/louisbranch/textcraft/internal/game/player"
	domainerrors "github.com/louisbranch/textcraft/internal/platform/errors"
)

// collectibleLabels are the plural names on the sell screen.
var collectibleLabels = map[item.Collectible]string{
	item.IronOre: "Iron ores",
	item.GoldOre: "Gold ores",
	item.Diamond: "Diamonds",
}

func (l *Loop) shop(ctx context.Context, s *player.Session) error {
	for {
		l.println("Welcome to the shop!")
		l.printf("Money: %d\n", s.Account.Money)
		l.println("1. Sell ores")
		l.println("2. Buy items")
		l.println("3. Back")
		choice, err := l.choose(ctx)
		if err != nil {
			return err
		}
		switch choice {
		case 1:
			err = l.sell(ctx, s)
		case 2:
			err = l.buy(ctx, s)
		case 3:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (l *Loop) sell(ctx context.Context, s *player.Session) error {
	for {
		counts := s.Inventory.CountCollectibles()
		l.printf("Your money: %d\n", s.Account.Money)
		l.println("Your ores:")
		for _, kind := range item.Collectibles() {
			l.printf("- %s: %d @ %d$ per piece\n", collectibleLabels[kind], counts[kind], kind.Price())
		}
		l.println("1. Sell all")
		l.println("2. Back")
		choice, err := l.choose(ctx)
		if err != nil {
			return err
		}
		if choice != 1 {
			return nil
		}
		sale := s.SellCollectibles()
		l.printf("Sold everything for %d$.\n", sale.Total)
	}
}

func (l *Loop) buy(ctx context.Context, s *player.Session) error {
	for {
		l.println("Your food bag:")
		l.listConsumables(s)
		l.printf("Your money: %d\n", s.Account.Money)
		l.println("=====================")
		for i, kind := range item.Consumables() {
			l.printf("%d. Buy %s - $%d\n", i+1, kind.Label(), kind.Price())
		}
		canUpgrade := !s.IsToolMaxed()
		upgradeChoice := 0
		returnChoice := len(item.Consumables()) + 1
		if canUpgrade {
			upgradeChoice = returnChoice
			returnChoice++
			l.printf("%d. Upgrade Pickaxe - $%d\n", upgradeChoice, s.ToolUpgradeCost())
		}
		l.printf("%d. Return\n", returnChoice)

		choice, err := l.choose(ctx)
		if err != nil {
			return err
		}

		switch {
		case canUpgrade && choice == upgradeChoice:
			if _, err := s.PurchaseToolUpgrade(); err != nil {
				l.println(domainerrors.UserMessage(err))
			} else {
				l.println("Upgraded pickaxe level!")
			}
			if err := l.waitForEnter(ctx); err != nil {
				return err
			}
		case choice >= 1 && choice <= len(item.Consumables()):
			kind := item.Consumables()[choice-1]
			price, err := s.BuyConsumable(kind)
			if errors.Is(err, inventory.ErrConsumablesFull) {
				l.println(domainerrors.UserMessage(err))
				continue
			}
			if err != nil {
				l.println(domainerrors.UserMessage(err))
				if err := l.waitForEnter(ctx); err != nil {
					return err
				}
				continue
			}
			l.printf("Buying %s at %d$\n", kind.Label(), price)
		case choice == returnChoice, choice == len(item.Consumables())+2:
			return nil
		}
	}
}
