package outcome

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arcanaland/blackjack/internal/card"
	"github.com/arcanaland/blackjack/internal/hand"
)

func h(ranks ...card.Rank) *hand.Hand {
	out := hand.New()
	for i, r := range ranks {
		out.Add(card.New(r, card.Suits[i%4]))
	}
	return out
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name    string
		player  *hand.Hand
		dealer  *hand.Hand
		outcome Outcome
		reason  Reason
	}{
		{"both naturals", h(card.Ace, card.King), h(card.Queen, card.Ace), Draw, BothBlackjack},
		{"dealer natural", h(card.Ten, card.Nine), h(card.Ace, card.Jack), Loss, DealerBlackjack},
		{"dealer natural beats player 21", h(card.Seven, card.Seven, card.Seven), h(card.Ace, card.Jack), Loss, DealerBlackjack},
		{"player bust", h(card.Ten, card.Six, card.King), h(card.Ten, card.Seven), Loss, PlayerBust},
		{"player bust before dealer bust", h(card.Ten, card.Six, card.King), h(card.Ten, card.Six, card.Nine), Loss, PlayerBust},
		{"dealer bust", h(card.Ten, card.Six), h(card.Ten, card.Six, card.Nine), Win, DealerBust},
		{"player natural", h(card.Ace, card.King), h(card.Ten, card.Seven), Win, PlayerBlackjack},
		{"player natural against dealer 21", h(card.Ace, card.King), h(card.Seven, card.Seven, card.Seven), Win, PlayerBlackjack},
		{"player multi-card 21", h(card.Five, card.Six, card.Ten), h(card.Ten, card.Eight), Win, PlayerTwentyOne},
		{"both multi-card 21", h(card.Five, card.Six, card.Ten), h(card.Seven, card.Seven, card.Seven), Draw, EqualScore},
		{"higher", h(card.Ten, card.Nine), h(card.Ten, card.Eight), Win, HigherScore},
		{"lower", h(card.Ten, card.Two), h(card.Ten, card.Seven), Loss, LowerScore},
		{"equal", h(card.Ten, card.Eight), h(card.Nine, card.Nine), Draw, EqualScore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, r := Decide(tt.player, tt.dealer)
			assert.Equal(t, tt.outcome, o)
			assert.Equal(t, tt.reason, r)
		})
	}
}
