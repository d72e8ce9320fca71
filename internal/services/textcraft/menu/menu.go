package menu

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/louisbranch/textcraft/internal/game/roster"
	domainerrors "github.com/louisbranch/textcraft/internal/platform/errors"
)

const tracerName = "github.com/louisbranch/textcraft/internal/services/textcraft/menu"

const prompt = ">> "

// Saver persists the roster after each top-level cycle.
type Saver interface {
	Save(ctx context.Context, records []roster.Record) error
}

// Options tune a Loop. The zero value is usable.
type Options struct {
	// Locale selects digit grouping for money.
	Locale language.Tag
	// RunID tags spans and log lines of this process.
	RunID string
	// Tracer overrides the global tracer.
	Tracer trace.Tracer
	// Logger receives save diagnostics; nil drops them.
	Logger *log.Logger
}

// Loop is one interactive session over a reader and a writer.
type Loop struct {
	roster *roster.Roster
	store  Saver
	in     *bufio.Scanner
	lines  chan inputLine
	done   chan struct{}
	out    *message.Printer
	w      io.Writer
	tracer trace.Tracer
	runID  string
	logger *log.Logger
}

// New builds a loop over r. A nil store skips saving.
func New(r *roster.Roster, store Saver, in io.Reader, out io.Writer, opts Options) *Loop {
	locale := opts.Locale
	if locale == language.Und {
		locale = DefaultLocale()
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}
	return &Loop{
		roster: r,
		store:  store,
		in:     bufio.NewScanner(in),
		done:   make(chan struct{}),
		out:    Printer(locale),
		w:      out,
		tracer: tracer,
		runID:  opts.RunID,
		logger: opts.Logger,
	}
}

// Run shows the main menu until the player exits, input ends or ctx is
// done. An interrupted cycle is saved before ctx's error is returned. Save
// failures end the loop with an error. Run may be called once.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		exit, err := l.cycle(ctx)
		if exit {
			return nil
		}
		if errors.Is(err, io.EOF) {
			return l.save(ctx)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			if err := l.save(context.WithoutCancel(ctx)); err != nil {
				return err
			}
			return ctxErr
		}
		if err != nil {
			return err
		}
		if err := l.save(ctx); err != nil {
			return err
		}
	}
}

func (l *Loop) cycle(ctx context.Context) (exit bool, err error) {
	ctx, span := l.tracer.Start(ctx, "menu.cycle", trace.WithAttributes(
		attribute.String("textcraft.run_id", l.runID),
	))
	defer span.End()

	l.println("Welcome to Textcraft!")
	l.println("1. Continue")
	l.println("2. New Game")
	l.println("3. Exit")
	choice, err := l.choose(ctx)
	if err != nil {
		return false, err
	}
	span.SetAttributes(attribute.Int("textcraft.choice", choice))

	switch choice {
	case 1:
		return false, l.login(ctx)
	case 2:
		return false, l.register(ctx)
	case 3:
		return true, nil
	}
	return false, nil
}

func (l *Loop) save(ctx context.Context) error {
	if l.store == nil {
		return nil
	}
	records := l.roster.Records()
	ctx, span := l.tracer.Start(ctx, "store.save", trace.WithAttributes(
		attribute.String("textcraft.run_id", l.runID),
		attribute.Int("textcraft.players", len(records)),
	))
	defer span.End()

	if err := l.store.Save(ctx, records); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "save failed")
		return domainerrors.Wrap(domainerrors.CodeStorage, "save roster", err)
	}
	if l.logger != nil {
		l.logger.Printf("run %s: saved %d players", l.runID, len(records))
	}
	return nil
}

func (l *Loop) register(ctx context.Context) error {
	l.println("Creating a new account:")
	for {
		l.print("Enter your username (Must be alphanumeric): ")
		line, err := l.readLine(ctx)
		if err != nil {
			return err
		}
		s, err := l.roster.Register(line)
		if err != nil {
			l.println(domainerrors.UserMessage(err))
			continue
		}
		l.printf("Made an account with username: %s\n", s.Username())
		return l.waitForEnter(ctx)
	}
}

func (l *Loop) login(ctx context.Context) error {
	if l.roster.Len() == 0 {
		l.println("No account found!")
		return l.waitForEnter(ctx)
	}
	for {
		l.println("Choose an account! (0 to return)")
		ranked := l.roster.Ranked()
		for i, s := range ranked {
			l.printf("%d. %s, Money: %d\n", i+1, s.Username(), s.Account.Money)
		}
		choice, err := l.choose(ctx)
		if err != nil {
			return err
		}
		if choice == 0 {
			return nil
		}
		if choice < 1 || choice > len(ranked) {
			continue
		}
		if err := l.play(ctx, ranked[choice-1]); err != nil {
			return err
		}
	}
}

type inputLine struct {
	text string
	err  error
}

// readLine returns the next trimmed input line, or io.EOF when input ends.
// A blocked read gives up when ctx is done.
func (l *Loop) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if l.lines == nil {
		l.lines = make(chan inputLine)
		go l.scan()
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case next, ok := <-l.lines:
		if !ok {
			return "", io.EOF
		}
		if next.err != nil {
			return "", next.err
		}
		return strings.TrimSpace(next.text), nil
	}
}

func (l *Loop) scan() {
	defer close(l.lines)
	for l.in.Scan() {
		select {
		case l.lines <- inputLine{text: l.in.Text()}:
		case <-l.done:
			return
		}
	}
	if err := l.in.Err(); err != nil {
		select {
		case l.lines <- inputLine{err: err}:
		case <-l.done:
		}
	}
}

// choose prompts and parses a menu number.
func (l *Loop) choose(ctx context.Context) (int, error) {
	l.print(prompt)
	return l.readChoice(ctx)
}

// readChoice parses the next line as a number. Non-numeric input is -1.
func (l *Loop) readChoice(ctx context.Context) (int, error) {
	line, err := l.readLine(ctx)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return -1, nil
	}
	return n, nil
}

func (l *Loop) waitForEnter(ctx context.Context) error {
	l.println("Press Enter to continue...")
	_, err := l.readLine(ctx)
	return err
}

func (l *Loop) print(s string) {
	io.WriteString(l.w, s)
}

func (l *Loop) println(s string) {
	io.WriteString(l.w, s+"\n")
}

func (l *Loop) printf(format string, args ...any) {
	l.out.Fprintf(l.w, format, args...)
}
