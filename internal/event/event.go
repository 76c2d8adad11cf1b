// Package event holds the values the game core emits for the console layer
// to render. The core never formats text itself.
package event

import (
	"github.com/arcanaland/blackjack/internal/advisor"
	"github.com/arcanaland/blackjack/internal/card"
	"github.com/arcanaland/blackjack/internal/outcome"
)

// Holder identifies whose hand an event concerns
type Holder int

const (
	Player Holder = iota
	Dealer
)

func (h Holder) String() string {
	if h == Dealer {
		return "dealer"
	}
	return "player"
}

// Visibility tells whether a dealt card is face up
type Visibility int

const (
	Visible Visibility = iota
	Hidden
)

// Event is implemented by every event type in this package
type Event interface {
	event()
}

// Sink receives events in the order they happen
type Sink func(Event)

// Discard drops every event
func Discard(Event) {}

// RoundStarted opens a new round
type RoundStarted struct {
	Number int
}

// CardDealt reports a card going into a hand
type CardDealt struct {
	Holder     Holder
	Card       card.Card
	Visibility Visibility
	Hand       []card.Card
}

// HoleCardRevealed reports the dealer turning over the hidden card
type HoleCardRevealed struct {
	Card card.Card
	Hand []card.Card
}

// DeckReshuffled reports that the deck pointer reset and the deck was shuffled
type DeckReshuffled struct{}

// TotalsUpdated carries the recomputed totals after a card was added.
// SoftWasInUse and SoftInUse let the renderer note an Ace being re-counted
// as 1 without recomputing anything.
type TotalsUpdated struct {
	Holder       Holder
	Soft         int
	Hard         int
	Aces         int
	Score        int
	SoftWasInUse bool
	SoftInUse    bool
}

// AceRecounted reports the transition from soft total to hard total
func (e TotalsUpdated) AceRecounted() bool {
	return e.SoftWasInUse && !e.SoftInUse
}

// AdvisorObservation reports the dealer upcard category
type AdvisorObservation struct {
	Category advisor.Category
}

// AdvisorRecommendation reports advice for the next decision
type AdvisorRecommendation struct {
	Advice advisor.Advice
}

// RoundResolved reports the result of a round
type RoundResolved struct {
	Outcome     outcome.Outcome
	Reason      outcome.Reason
	PlayerScore int
	DealerScore int
}

// SessionSummary reports the final tallies. Played is zero when the user
// declined the first hand.
type SessionSummary struct {
	Played int
	Wins   int
	Losses int
	Draws  int
}

func (RoundStarted) event()          {}
func (CardDealt) event()             {}
func (HoleCardRevealed) event()      {}
func (DeckReshuffled) event()        {}
func (TotalsUpdated) event()         {}
func (AdvisorObservation) event()    {}
func (AdvisorRecommendation) event() {}
func (RoundResolved) event()         {}
func (SessionSummary) event()        {}
