package hand

import (
	"fmt"

	"github.com/arcanaland/blackjack/internal/card"
)

// MaxCards bounds the number of cards a hand may hold
const MaxCards = 12

// Hand is the ordered set of cards held by the player or the dealer
type Hand struct {
	cards []card.Card
}

// New returns a hand holding the given cards
func New(cards ...card.Card) *Hand {
	h := &Hand{}
	for _, c := range cards {
		h.Add(c)
	}
	return h
}

// Add appends a card. Exceeding MaxCards is a programming error.
func (h *Hand) Add(c card.Card) {
	if len(h.cards) >= MaxCards {
		panic(fmt.Sprintf("hand: cannot hold more than %d cards", MaxCards))
	}
	h.cards = append(h.cards, c)
}

// Cards returns a copy of the cards in deal order
func (h *Hand) Cards() []card.Card {
	out := make([]card.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Len returns the number of cards held
func (h *Hand) Len() int {
	return len(h.cards)
}

// First returns the first card dealt; for the dealer this is the upcard
func (h *Hand) First() card.Card {
	if len(h.cards) == 0 {
		panic("hand: no cards dealt")
	}
	return h.cards[0]
}

// Totals recomputes the soft and hard totals
func (h *Hand) Totals() Totals {
	return ComputeTotals(h.cards)
}

// Score recomputes the effective score
func (h *Hand) Score() int {
	return h.Totals().Score()
}

// IsBlackjack reports a natural: exactly two cards totalling 21
func (h *Hand) IsBlackjack() bool {
	return len(h.cards) == 2 && h.Score() == Blackjack
}

// IsBust reports an effective score over 21
func (h *Hand) IsBust() bool {
	return h.Score() > Blackjack
}
