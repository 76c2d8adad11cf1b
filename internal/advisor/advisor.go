// Package advisor recommends hitting or standing from the dealer's upcard.
//
// The upcard is sorted into one of three categories and each category has a
// target score: below it the player should hit, at or above it the player
// should stand. A 7 through King or an Ace is good for the dealer (target
// 17), a 4, 5 or 6 is bad for the dealer (target 12) and a 2 or 3 is fair
// (target 13).
package advisor

import (
	"fmt"

	"github.com/arcanaland/blackjack/internal/card"
	"github.com/arcanaland/blackjack/internal/hand"
)

// Category classifies the dealer's upcard
type Category int

const (
	Fair Category = iota
	Bad
	Good
)

func (c Category) String() string {
	switch c {
	case Fair:
		return "fair"
	case Bad:
		return "bad"
	case Good:
		return "good"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Target returns the score the player should reach before standing
func (c Category) Target() int {
	switch c {
	case Bad:
		return 12
	case Fair:
		return 13
	default:
		return 17
	}
}

// Action is the recommended play
type Action int

const (
	None Action = iota
	Hit
	Stand
)

func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	default:
		return "none"
	}
}

const (
	badCardRank  = card.Four
	goodCardRank = card.Seven
)

// Categorize sorts the upcard by rank. An Ace falls through to Good.
func Categorize(upcard card.Card) Category {
	r := upcard.Rank
	switch {
	case card.Ace < r && r < badCardRank:
		return Fair
	case badCardRank <= r && r < goodCardRank:
		return Bad
	default:
		return Good
	}
}

// Recommend maps a player score and upcard category to an action
func Recommend(playerScore int, c Category) Action {
	if playerScore < c.Target() {
		return Hit
	}
	return Stand
}

// Advice is a recommendation together with what it was derived from
type Advice struct {
	Action   Action
	Category Category
	Target   int
}

// Rationale explains the advice in the form printed after the action
func (a Advice) Rationale() string {
	switch a.Action {
	case Hit:
		return fmt.Sprintf("until your score is at least %d", a.Target)
	case Stand:
		return fmt.Sprintf("since your score is %d or above", a.Target)
	default:
		return ""
	}
}

// Suppressed reports whether no advice applies: either side already has 21
// or the player is bust
func Suppressed(playerScore, dealerScore int) bool {
	return playerScore == hand.Blackjack || dealerScore == hand.Blackjack || playerScore > hand.Blackjack
}

// Advise returns the advice for the current scores. The zero Action (None)
// is returned when advice is suppressed.
func Advise(playerScore, dealerScore int, upcard card.Card) Advice {
	c := Categorize(upcard)
	a := Advice{Category: c, Target: c.Target()}
	if Suppressed(playerScore, dealerScore) {
		return a
	}
	a.Action = Recommend(playerScore, c)
	return a
}

// Observe returns the upcard category shown before the first decision, and
// false when neither side can act on it
func Observe(playerScore, dealerScore int, upcard card.Card) (Category, bool) {
	if Suppressed(playerScore, dealerScore) {
		return 0, false
	}
	return Categorize(upcard), true
}
