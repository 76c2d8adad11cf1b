package session

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/arcanaland/blackjack/internal/deck"
	"github.com/arcanaland/blackjack/internal/event"
	"github.com/arcanaland/blackjack/internal/outcome"
	"github.com/arcanaland/blackjack/internal/round"
)

// Prompter is the console side of a session: it supplies player decisions
// and asks whether to play a hand. played is the number of hands so far.
type Prompter interface {
	round.IntentSource
	PlayAgain(played int) (bool, error)
}

// Tally counts round outcomes
type Tally struct {
	Wins   int
	Losses int
	Draws  int
}

// Played returns the number of rounds counted
func (t Tally) Played() int {
	return t.Wins + t.Losses + t.Draws
}

// Record adds one outcome
func (t *Tally) Record(o outcome.Outcome) {
	switch o {
	case outcome.Win:
		t.Wins++
	case outcome.Loss:
		t.Losses++
	default:
		t.Draws++
	}
}

// Session plays rounds against one deck until the player stops
type Session struct {
	deck  *deck.Deck
	emit  event.Sink
	log   *slog.Logger
	tally Tally
}

// New creates a session drawing from d
func New(d *deck.Deck, emit event.Sink, logger *slog.Logger) *Session {
	if emit == nil {
		emit = event.Discard
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{deck: d, emit: emit, log: logger}
}

// Run repeats rounds while p.PlayAgain reports true and returns the tally.
// A SessionSummary is emitted whenever Run returns without error.
func (s *Session) Run(p Prompter) (Tally, error) {
	for {
		again, err := p.PlayAgain(s.tally.Played())
		if err != nil {
			return s.tally, fmt.Errorf("asking to play: %w", err)
		}
		if !again {
			break
		}

		r := round.New(s.deck,
			round.WithSink(s.emit),
			round.WithLogger(s.log),
			round.WithNumber(s.tally.Played()+1),
		)
		res, err := r.Play(p)
		if err != nil {
			return s.tally, err
		}
		s.tally.Record(res.Outcome)
		s.log.Debug("tally", "wins", s.tally.Wins, "losses", s.tally.Losses, "draws", s.tally.Draws)
	}

	s.emit(event.SessionSummary{
		Played: s.tally.Played(),
		Wins:   s.tally.Wins,
		Losses: s.tally.Losses,
		Draws:  s.tally.Draws,
	})
	return s.tally, nil
}

// Tally returns the running tally
func (s *Session) Tally() Tally {
	return s.tally
}
