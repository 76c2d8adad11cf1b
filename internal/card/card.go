package card

import "fmt"

// Suit identifies one of the four French suits
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Suits lists the suits in deck order
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

// Rank is the card rank, 1 (Ace) through 13 (King)
type Rank int

const (
	Ace   Rank = 1
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// Ranks lists the ranks in deck order
var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

// Card represents a playing card
type Card struct {
	Rank  Rank // 1-13, 1 is Ace
	Suit  Suit // Spades, Hearts, Diamonds, Clubs
	Value int  // Blackjack point value, Ace counts 11
}

// New creates a card with its point value assigned from the rank
func New(rank Rank, suit Suit) Card {
	if !rank.Valid() {
		panic(fmt.Sprintf("card: invalid rank %d", rank))
	}
	if !suit.Valid() {
		panic(fmt.Sprintf("card: invalid suit %d", suit))
	}
	return Card{Rank: rank, Suit: suit, Value: rank.Value()}
}

// IsAce reports whether the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// String returns the short description used by the deck listing (e.g. AS, 10H)
func (c Card) String() string {
	return c.Rank.String() + c.Suit.Letter()
}

// Valid reports whether the rank is between Ace and King
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// Value returns the point value of the rank: Ace 11, face cards 10
func (r Rank) Value() int {
	switch {
	case r == Ace:
		return 11
	case r >= Ten:
		return 10
	default:
		return int(r)
	}
}

func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return fmt.Sprintf("%d", int(r))
	}
}

// Valid reports whether the suit is one of the four known suits
func (s Suit) Valid() bool {
	return s >= Spades && s <= Clubs
}

// Letter returns the ASCII suit letter
func (s Suit) Letter() string {
	switch s {
	case Spades:
		return "S"
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	case Clubs:
		return "C"
	default:
		return "?"
	}
}

// Symbol returns the Unicode suit symbol
func (s Suit) Symbol() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "•"
	}
}

// IsRed reports whether the suit is printed in red
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}
