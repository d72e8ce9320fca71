package menu

import (
	"context"

	"github.com/louisbranch/textcraft/internal/game/economy"
	"github.com/louisbranch/textcraft/internal/game/player"
)

func (l *Loop) play(ctx context.Context, s *player.Session) error {
	for {
		l.printf("Welcome, %s!\n", s.Username())
		l.println("1. Go mining")
		l.println("2. Go shopping")
		l.println("3. Back")
		choice, err := l.choose(ctx)
		if err != nil {
			return err
		}
		switch choice {
		case 1:
			err = l.mine(ctx, s)
		case 2:
			err = l.shop(ctx, s)
		case 3:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (l *Loop) mine(ctx context.Context, s *player.Session) error {
	s.BeginExpedition()
	for {
		l.println("Your inventory:")
		for i, c := range s.Inventory.Collectibles {
			l.printf("%d. %s\n", i+1, c.Label())
		}
		l.printf("You're on depth: %d\n", s.Depth())
		l.printf("Health: %d\n", s.Health())
		l.println("What to do?")
		l.println("1. Go Deeper")
		l.println("2. Eat Food")
		l.println("3. Return")
		choice, err := l.choose(ctx)
		if err != nil {
			return err
		}
		switch choice {
		case 1:
			if !s.IsAlive() {
				l.println("You don't have enough health!")
				continue
			}
			l.report(s.MiningStep())
		case 2:
			if err := l.eat(ctx, s); err != nil {
				return err
			}
		case 3:
			return nil
		}
	}
}

func (l *Loop) report(step player.StepResult) {
	switch step.Event {
	case player.EventDescend:
		l.println("You successfully dug deeper!")
	case player.EventHunger:
		l.printf("You got hungry and lost %d health.\n", step.Damage())
	case player.EventHazard:
		l.printf("A creeper exploded! You lost %d health.\n", step.Damage())
	}
	for _, kind := range step.Mined {
		l.printf("You mined %s!\n", kind.Label())
	}
	for _, kind := range step.Dropped {
		l.printf("Your bag is full, you left %s behind.\n", kind.Label())
	}
	if step.HealthAfter == 0 && step.HealthBefore > 0 {
		l.println("You passed out! Eat something before digging again.")
	}
}

func (l *Loop) eat(ctx context.Context, s *player.Session) error {
	for {
		l.println("Your food sack:")
		l.listConsumables(s)
		l.print("Enter the index of the food you want to eat (0 to cancel): ")
		choice, err := l.readChoice(ctx)
		if err != nil {
			return err
		}
		if choice == 0 {
			return l.waitForEnter(ctx)
		}
		if kind, healed, ok := s.Eat(choice); ok {
			l.printf("You ate %s and regenerated %d health! (%d/%d)\n", kind.Label(), healed, s.Health(), economy.HealthMax)
		} else {
			l.println("Please choose a valid food!")
		}
		if err := l.waitForEnter(ctx); err != nil {
			return err
		}
	}
}

func (l *Loop) listConsumables(s *player.Session) {
	for i, c := range s.Inventory.Consumables {
		l.printf("%d. %s\n", i+1, c.Label())
	}
}
