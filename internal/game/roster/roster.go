// Package roster keeps every player session of the process in registration
// order and provides username validation and money ranking.
package roster

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/louisbranch/textcraft/internal/game/account"
	"github.com/louisbranch/textcraft/internal/game/inventory"
	"github.com/louisbranch/textcraft/internal/game/player"
	domainerrors "github.com/louisbranch/textcraft/internal/platform/errors"
	"github.com/louisbranch/textcraft/internal/random"
)

var (
	ErrUsernameInvalid = domainerrors.New(domainerrors.CodeUsernameInvalid, "username must be non-empty and alphanumeric")
	ErrUsernameTaken   = domainerrors.New(domainerrors.CodeUsernameTaken, "username already exists")
)

// Record is the persisted half of a session.
type Record struct {
	Account   account.Account
	Inventory inventory.Inventory
}

// Roster owns the sessions of one process.
type Roster struct {
	sessions []*player.Session
	rng      random.Source
}

// New hydrates a roster from stored records. Every session draws from rng.
func New(records []Record, rng random.Source) *Roster {
	r := &Roster{rng: rng}
	for _, rec := range records {
		r.sessions = append(r.sessions, player.New(rec.Account, rec.Inventory, rng))
	}
	return r
}

// ValidateUsername trims and NFC-normalises raw and checks that it is a
// non-empty run of letters and digits.
func ValidateUsername(raw string) (string, error) {
	name := norm.NFC.String(strings.TrimSpace(raw))
	if name == "" {
		return "", ErrUsernameInvalid
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return "", ErrUsernameInvalid
		}
	}
	return name, nil
}

// Register creates a fresh account for raw and appends its session.
func (r *Roster) Register(raw string) (*player.Session, error) {
	name, err := ValidateUsername(raw)
	if err != nil {
		return nil, err
	}
	if _, ok := r.Find(name); ok {
		return nil, domainerrors.WithMetadata(domainerrors.CodeUsernameTaken, "username already exists", map[string]string{
			"Username": name,
		})
	}
	s := player.New(account.New(name), inventory.New(), r.rng)
	r.sessions = append(r.sessions, s)
	return s, nil
}

// Find returns the session with exactly this username.
func (r *Roster) Find(username string) (*player.Session, bool) {
	for _, s := range r.sessions {
		if s.Username() == username {
			return s, true
		}
	}
	return nil, false
}

// Len returns the number of sessions.
func (r *Roster) Len() int {
	return len(r.sessions)
}

// Sessions returns the sessions in registration order.
func (r *Roster) Sessions() []*player.Session {
	return append([]*player.Session(nil), r.sessions...)
}

// Ranked returns the sessions ordered by money, richest first. Ties keep
// registration order. The roster itself is not reordered.
func (r *Roster) Ranked() []*player.Session {
	ranked := r.Sessions()
	SortByMoney(ranked)
	return ranked
}

// SortByMoney stable-sorts sessions by balance, highest first.
func SortByMoney(sessions []*player.Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].Account.Money > sessions[j].Account.Money
	})
}

// Records flattens every session back to its persisted half, in
// registration order.
func (r *Roster) Records() []Record {
	records := make([]Record, 0, len(r.sessions))
	for _, s := range r.sessions {
		records = append(records, Record{Account: s.Account, Inventory: s.Inventory})
	}
	return records
}
