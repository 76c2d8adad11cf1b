package hand

import "github.com/arcanaland/blackjack/internal/card"

// Blackjack is the target total
const Blackjack = 21

// Totals holds the soft and hard totals of a set of cards
type Totals struct {
	Soft int // one Ace counted as 11 when that stays at or under 21
	Hard int // every Ace counted as 1
	Aces int
}

// ComputeTotals derives the totals from the card ranks. Card values are not
// consulted, so an Ace is never patched in place.
func ComputeTotals(cards []card.Card) Totals {
	var t Totals
	for _, c := range cards {
		switch {
		case c.Rank == card.Ace:
			t.Aces++
			t.Hard++
		case c.Rank >= card.Ten:
			t.Hard += 10
		default:
			t.Hard += int(c.Rank)
		}
	}

	t.Soft = t.Hard
	if t.Aces > 0 && t.Hard+10 <= Blackjack {
		t.Soft += 10
	}
	return t
}

// EffectiveScore picks the soft total unless it busts
func EffectiveScore(soft, hard int) int {
	if soft <= Blackjack {
		return soft
	}
	return hard
}

// Score returns the effective score
func (t Totals) Score() int {
	return EffectiveScore(t.Soft, t.Hard)
}

// SoftInUse reports whether an Ace is currently counted as 11
func (t Totals) SoftInUse() bool {
	return t.Aces > 0 && t.Soft <= Blackjack && t.Soft != t.Hard
}
