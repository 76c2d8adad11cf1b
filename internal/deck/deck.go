package deck

import (
	"fmt"
	"math/rand/v2"

	"github.com/arcanaland/blackjack/internal/card"
)

// Size is the number of cards in a single deck
const Size = 52

// Source performs the in-place permutation used by Shuffle.
// *rand.Rand from math/rand and math/rand/v2 both satisfy it.
type Source interface {
	Shuffle(n int, swap func(i, j int))
}

// NewSource returns a seeded shuffle source. A zero seed draws one from the
// runtime's entropy-seeded generator.
func NewSource(seed uint64) Source {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// Deck represents the shoe: 52 cards dealt from the end of the undealt region
type Deck struct {
	cards []card.Card
	drawn int
	src   Source
}

// New returns a freshly ordered deck: four suits of Ace through King
func New(src Source) *Deck {
	cards := make([]card.Card, 0, Size)
	for _, suit := range card.Suits {
		for _, rank := range card.Ranks {
			cards = append(cards, card.New(rank, suit))
		}
	}
	return &Deck{cards: cards, src: src}
}

// FromCards builds a deck in the given order. The cards must be exactly the
// 52 distinct rank/suit pairs.
func FromCards(cards []card.Card, src Source) (*Deck, error) {
	if len(cards) != Size {
		return nil, fmt.Errorf("deck must have %d cards, got %d", Size, len(cards))
	}

	seen := make(map[card.Card]bool, Size)
	for _, c := range cards {
		c = card.New(c.Rank, c.Suit)
		if seen[c] {
			return nil, fmt.Errorf("duplicate card: %s", c)
		}
		seen[c] = true
	}

	d := &Deck{cards: make([]card.Card, Size), src: src}
	for i, c := range cards {
		d.cards[i] = card.New(c.Rank, c.Suit)
	}
	return d, nil
}

// Shuffle permutes the whole deck in place
func (d *Deck) Shuffle() {
	d.src.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw returns the next card, counted from the end of the undealt region.
// When the drawn count reaches Size-1 the deck is reshuffled and the count
// reset; reshuffled reports that this happened. The returned card is a copy,
// so hands are unaffected by later reshuffles.
func (d *Deck) Draw() (c card.Card, reshuffled bool) {
	if d.drawn >= Size-1 {
		panic(fmt.Sprintf("deck: drawn count %d past reshuffle point", d.drawn))
	}

	c = d.cards[Size-d.drawn-1]
	d.drawn++

	if d.drawn == Size-1 {
		d.Shuffle()
		d.drawn = 0
		reshuffled = true
	}
	return c, reshuffled
}

// Drawn returns how many cards have been dealt since the last reshuffle
func (d *Deck) Drawn() int {
	return d.drawn
}

// Cards returns a copy of the deck in its current order
func (d *Deck) Cards() []card.Card {
	out := make([]card.Card, len(d.cards))
	copy(out, d.cards)
	return out
}
