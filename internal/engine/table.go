package engine

import (
	randv2 "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/holdem-engine/internal/bots"
	"github.com/lox/holdem-engine/internal/harness"
	"github.com/lox/holdem-engine/internal/randutil"
	"github.com/lox/holdem-engine/internal/state"
)

// Table is a persistent tournament table: it owns every seat's bot and
// chip stack and is played one hand at a time via PlayHand. Button position,
// stacks, and hand history all carry over between hands.
type Table struct {
	players []*player
	bots    []bots.Bot

	button         int
	roundNumber    int
	blindsSchedule []state.BlindLevel

	rng        *randv2.Rand
	supervisor *harness.Supervisor
	logger     *log.Logger

	history []*state.HandRecord
}

// Option configures a Table at construction time.
type Option func(*Table)

// WithBlindsSchedule sets the round -> blind level lookup. Rounds beyond the
// last entry repeat the last entry's blinds.
func WithBlindsSchedule(schedule []state.BlindLevel) Option {
	return func(t *Table) { t.blindsSchedule = schedule }
}

// WithSupervisor sets the bot-call supervisor (deadline/memory enforcement).
// Without this option every bot call runs unsupervised, in-process.
func WithSupervisor(s *harness.Supervisor) Option {
	return func(t *Table) { t.supervisor = s }
}

// WithLogger sets the in-process debug trace logger.
func WithLogger(l *log.Logger) Option {
	return func(t *Table) { t.logger = l }
}

// NewTable creates a table seeded deterministically from seed, with one seat
// per bot in bots, each starting with startingStack chips.
func NewTable(seed int64, seatBots []bots.Bot, startingStack int, opts ...Option) *Table {
	t := &Table{
		bots: seatBots,
		rng:  randutil.New(seed),
		blindsSchedule: []state.BlindLevel{
			{Round: 0, SmallBlind: 10, BigBlind: 20},
		},
		logger: log.New(nopWriter{}),
	}
	for i := range seatBots {
		t.players = append(t.players, &player{
			Seat:  i,
			Name:  seatNameOf(i),
			Stack: startingStack,
		})
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func seatNameOf(i int) string {
	return "seat-" + itoa(i)
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	digits := [20]byte{}
	pos := len(digits)
	for i > 0 {
		pos--
		digits[pos] = byte('0' + i%10)
		i /= 10
	}
	return string(digits[pos:])
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

// blindsForRound returns the small/big blind for the given round number,
// clamping to the last configured level once the schedule runs out.
func (t *Table) blindsForRound(round int) (sb, bb int) {
	level := t.blindsSchedule[0]
	for _, l := range t.blindsSchedule {
		if l.Round > round {
			break
		}
		level = l
	}
	return level.SmallBlind, level.BigBlind
}

// activeSeats returns the seats still in the tournament (not busted), in
// seat order.
func (t *Table) activeSeats() []*player {
	var active []*player
	for _, p := range t.players {
		if !p.Busted {
			active = append(active, p)
		}
	}
	return active
}

// ValidateChipConservation confirms total chips across stacks and
// current-street bets still equal the original tournament total. Pot
// amounts are not counted, so the check only holds between hands, when
// there is no live pot.
func (t *Table) ValidateChipConservation(expectedTotal int) error {
	total := 0
	for _, p := range t.players {
		total += p.Stack + p.CurrentBet
	}
	if total != expectedTotal {
		return &InvariantError{Msg: "chip total drifted from expected tournament total"}
	}
	return nil
}

// TotalChips sums every seat's stack plus its current-street bet. Between
// hands that is every chip at the table; during a hand, chips committed on
// earlier streets are not counted.
func (t *Table) TotalChips() int {
	total := 0
	for _, p := range t.players {
		total += p.Stack + p.CurrentBet
	}
	return total
}

// History returns every hand played so far, oldest first.
func (t *Table) History() []*state.HandRecord {
	return t.history
}

// Close calls Close on every seat's bot, in seat order, collecting the first
// error encountered (if any) while still attempting every seat.
func (t *Table) Close() error {
	var first error
	for _, b := range t.bots {
		if err := b.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
