package round

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/arcanaland/blackjack/internal/advisor"
	"github.com/arcanaland/blackjack/internal/deck"
	"github.com/arcanaland/blackjack/internal/event"
	"github.com/arcanaland/blackjack/internal/hand"
	"github.com/arcanaland/blackjack/internal/outcome"
)

// DealerStand is the score at which the dealer stops drawing
const DealerStand = 17

var (
	ErrAlreadyDealt  = errors.New("round already dealt")
	ErrNotPlayerTurn = errors.New("not the player's turn")
	ErrUnknownIntent = errors.New("unknown intent")
)

// State is the position of a round in its lifecycle
type State int

const (
	Dealing State = iota
	PlayerTurn
	DealerTurn
	Resolved
)

func (s State) String() string {
	switch s {
	case Dealing:
		return "dealing"
	case PlayerTurn:
		return "player turn"
	case DealerTurn:
		return "dealer turn"
	case Resolved:
		return "resolved"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Intent is the player's decision during their turn
type Intent int

const (
	Hit Intent = iota + 1
	Stand
)

func (i Intent) String() string {
	switch i {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	default:
		return fmt.Sprintf("Intent(%d)", int(i))
	}
}

// IntentSource supplies the player's decisions. NextIntent blocks until a
// valid decision is available.
type IntentSource interface {
	NextIntent() (Intent, error)
}

// Result is the resolved outcome of a round
type Result struct {
	Outcome     outcome.Outcome
	Reason      outcome.Reason
	PlayerScore int
	DealerScore int
}

// Round plays one hand of blackjack. It owns both hands for its lifetime and
// draws from a deck shared with later rounds.
type Round struct {
	id     uuid.UUID
	number int
	deck   *deck.Deck
	player *hand.Hand
	dealer *hand.Hand
	state  State
	result Result

	revealed   bool
	playerSoft bool
	dealerSoft bool

	emit event.Sink
	log  *slog.Logger
}

// Option configures a Round
type Option func(*Round)

// WithSink routes events to s
func WithSink(s event.Sink) Option {
	return func(r *Round) { r.emit = s }
}

// WithLogger sets the debug logger
func WithLogger(l *slog.Logger) Option {
	return func(r *Round) { r.log = l }
}

// WithNumber sets the round number reported in RoundStarted
func WithNumber(n int) Option {
	return func(r *Round) { r.number = n }
}

// New creates a round in the Dealing state
func New(d *deck.Deck, opts ...Option) *Round {
	r := &Round{
		id:     uuid.New(),
		number: 1,
		deck:   d,
		player: hand.New(),
		dealer: hand.New(),
		emit:   event.Discard,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.With("round", r.id.String())
	return r
}

// State returns the current state
func (r *Round) State() State {
	return r.state
}

// Result returns the outcome once the round is resolved
func (r *Round) Result() (Result, bool) {
	return r.result, r.state == Resolved
}

// Player returns the player's totals
func (r *Round) Player() hand.Totals {
	return r.player.Totals()
}

// Dealer returns the dealer's totals, hidden card included
func (r *Round) Dealer() hand.Totals {
	return r.dealer.Totals()
}

// PlayerHand returns a copy of the player's cards
func (r *Round) PlayerHand() *hand.Hand {
	return hand.New(r.player.Cards()...)
}

// DealerHand returns a copy of the dealer's cards
func (r *Round) DealerHand() *hand.Hand {
	return hand.New(r.dealer.Cards()...)
}

// Deal gives two cards each, alternating player and dealer with the
// dealer's second card face down. A natural on either side resolves the
// round immediately.
func (r *Round) Deal() error {
	if r.state != Dealing {
		return ErrAlreadyDealt
	}
	r.emit(event.RoundStarted{Number: r.number})
	r.log.Debug("dealing")

	r.draw(event.Player, event.Visible)
	r.draw(event.Dealer, event.Visible)
	r.draw(event.Player, event.Visible)
	r.draw(event.Dealer, event.Hidden)
	r.updateTotals(event.Player)

	if r.player.IsBlackjack() || r.dealer.IsBlackjack() {
		r.resolve()
		return nil
	}

	r.transition(PlayerTurn)
	r.advise(true)
	return nil
}

// Hit draws a card for the player. A bust resolves the round without a
// dealer turn; reaching 21 hands over to the dealer.
func (r *Round) Hit() error {
	if r.state != PlayerTurn {
		return ErrNotPlayerTurn
	}

	r.draw(event.Player, event.Visible)
	r.updateTotals(event.Player)
	r.advise(false)

	switch score := r.player.Score(); {
	case score > hand.Blackjack:
		r.resolve()
	case score == hand.Blackjack:
		r.dealerTurn()
	}
	return nil
}

// Stand ends the player's turn
func (r *Round) Stand() error {
	if r.state != PlayerTurn {
		return ErrNotPlayerTurn
	}
	r.dealerTurn()
	return nil
}

// Apply dispatches an intent to Hit or Stand
func (r *Round) Apply(i Intent) error {
	switch i {
	case Hit:
		return r.Hit()
	case Stand:
		return r.Stand()
	default:
		return fmt.Errorf("%w: %d", ErrUnknownIntent, int(i))
	}
}

// Play runs the round to completion, asking src for each player decision
func (r *Round) Play(src IntentSource) (Result, error) {
	if r.state == Dealing {
		if err := r.Deal(); err != nil {
			return Result{}, err
		}
	}

	for r.state == PlayerTurn {
		intent, err := src.NextIntent()
		if err != nil {
			return Result{}, fmt.Errorf("reading player intent: %w", err)
		}
		r.log.Debug("player intent", "intent", intent.String())
		if err := r.Apply(intent); err != nil {
			return Result{}, err
		}
	}

	return r.result, nil
}

func (r *Round) dealerTurn() {
	r.transition(DealerTurn)
	r.reveal()
	r.updateTotals(event.Dealer)

	for r.dealer.Score() < DealerStand {
		r.draw(event.Dealer, event.Visible)
		r.updateTotals(event.Dealer)
	}
	r.resolve()
}

func (r *Round) resolve() {
	r.reveal()

	o, reason := outcome.Decide(r.player, r.dealer)
	r.result = Result{
		Outcome:     o,
		Reason:      reason,
		PlayerScore: r.player.Score(),
		DealerScore: r.dealer.Score(),
	}
	r.transition(Resolved)
	r.log.Debug("round resolved",
		"outcome", o.String(),
		"reason", reason.String(),
		"player", r.result.PlayerScore,
		"dealer", r.result.DealerScore,
	)

	r.emit(event.RoundResolved{
		Outcome:     o,
		Reason:      reason,
		PlayerScore: r.result.PlayerScore,
		DealerScore: r.result.DealerScore,
	})
}

func (r *Round) draw(holder event.Holder, v event.Visibility) {
	c, reshuffled := r.deck.Draw()

	h := r.player
	if holder == event.Dealer {
		h = r.dealer
	}
	h.Add(c)
	r.log.Debug("card dealt", "holder", holder.String(), "card", c.String(), "hidden", v == event.Hidden)

	r.emit(event.CardDealt{Holder: holder, Card: c, Visibility: v, Hand: h.Cards()})
	if reshuffled {
		r.log.Debug("deck reshuffled")
		r.emit(event.DeckReshuffled{})
	}
}

func (r *Round) reveal() {
	if r.revealed {
		return
	}
	r.revealed = true
	cards := r.dealer.Cards()
	r.emit(event.HoleCardRevealed{Card: cards[1], Hand: cards})
}

// updateTotals recomputes a hand's totals and reports them together with
// whether the soft total was in use before this update
func (r *Round) updateTotals(holder event.Holder) {
	h, soft := r.player, &r.playerSoft
	if holder == event.Dealer {
		h, soft = r.dealer, &r.dealerSoft
	}

	t := h.Totals()
	e := event.TotalsUpdated{
		Holder:       holder,
		Soft:         t.Soft,
		Hard:         t.Hard,
		Aces:         t.Aces,
		Score:        t.Score(),
		SoftWasInUse: *soft,
		SoftInUse:    t.SoftInUse(),
	}
	*soft = e.SoftInUse
	r.emit(e)
}

func (r *Round) advise(initial bool) {
	ps, ds := r.player.Score(), r.dealer.Score()
	upcard := r.dealer.First()

	if initial {
		if c, ok := advisor.Observe(ps, ds, upcard); ok {
			r.emit(event.AdvisorObservation{Category: c})
		}
	}

	a := advisor.Advise(ps, ds, upcard)
	if a.Action == advisor.None {
		return
	}
	r.log.Debug("advice", "action", a.Action.String(), "category", a.Category.String(), "player", ps)
	r.emit(event.AdvisorRecommendation{Advice: a})
}

func (r *Round) transition(s State) {
	r.log.Debug("state change", "from", r.state.String(), "to", s.String())
	r.state = s
}
