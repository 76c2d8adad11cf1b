package outcome

import (
	"fmt"

	"github.com/arcanaland/blackjack/internal/hand"
)

// Outcome is the result of a round from the player's side
type Outcome int

const (
	Draw Outcome = iota
	Win
	Loss
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Loss:
		return "loss"
	case Draw:
		return "draw"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Reason names the rule that decided the outcome
type Reason int

const (
	BothBlackjack Reason = iota
	DealerBlackjack
	PlayerBust
	DealerBust
	PlayerBlackjack
	PlayerTwentyOne
	HigherScore
	LowerScore
	EqualScore
)

func (r Reason) String() string {
	switch r {
	case BothBlackjack:
		return "both blackjack"
	case DealerBlackjack:
		return "dealer blackjack"
	case PlayerBust:
		return "player bust"
	case DealerBust:
		return "dealer bust"
	case PlayerBlackjack:
		return "player blackjack"
	case PlayerTwentyOne:
		return "player twenty-one"
	case HigherScore:
		return "higher score"
	case LowerScore:
		return "lower score"
	case EqualScore:
		return "equal score"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// Decide applies the resolution rules in order, first match wins:
// both naturals draw, a dealer natural loses, a player bust loses, a dealer
// bust wins, a player natural wins, a multi-card 21 against a dealer without
// 21 wins, and otherwise the higher score wins.
func Decide(player, dealer *hand.Hand) (Outcome, Reason) {
	ps, ds := player.Score(), dealer.Score()

	switch {
	case player.IsBlackjack() && dealer.IsBlackjack():
		return Draw, BothBlackjack
	case dealer.IsBlackjack():
		return Loss, DealerBlackjack
	case ps > hand.Blackjack:
		return Loss, PlayerBust
	case ds > hand.Blackjack:
		return Win, DealerBust
	case player.IsBlackjack():
		return Win, PlayerBlackjack
	case ps == hand.Blackjack && player.Len() > 2 && ds != hand.Blackjack:
		return Win, PlayerTwentyOne
	case ps > ds:
		return Win, HigherScore
	case ps < ds:
		return Loss, LowerScore
	default:
		return Draw, EqualScore
	}
}
