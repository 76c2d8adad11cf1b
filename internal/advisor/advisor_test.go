package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arcanaland/blackjack/internal/card"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		rank card.Rank
		want Category
	}{
		{card.Ace, Good},
		{card.Two, Fair},
		{card.Three, Fair},
		{card.Four, Bad},
		{card.Five, Bad},
		{card.Six, Bad},
		{card.Seven, Good},
		{card.Ten, Good},
		{card.Jack, Good},
		{card.King, Good},
	}

	for _, tt := range tests {
		t.Run(tt.rank.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(card.New(tt.rank, card.Hearts)))
		})
	}
}

func TestRecommend_Boundaries(t *testing.T) {
	tests := []struct {
		category Category
		score    int
		want     Action
	}{
		{Good, 16, Hit},
		{Good, 17, Stand},
		{Bad, 11, Hit},
		{Bad, 12, Stand},
		{Fair, 12, Hit},
		{Fair, 13, Stand},
	}

	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Recommend(tt.score, tt.category))
		})
	}
}

func TestAdvise_Suppressed(t *testing.T) {
	seven := card.New(card.Seven, card.Clubs)

	assert.Equal(t, None, Advise(21, 15, seven).Action, "player has 21")
	assert.Equal(t, None, Advise(15, 21, seven).Action, "dealer has 21")
	assert.Equal(t, None, Advise(24, 15, seven).Action, "player bust")
	assert.Equal(t, Hit, Advise(15, 18, seven).Action)
}

func TestAdvise_Idempotent(t *testing.T) {
	five := card.New(card.Five, card.Diamonds)
	first := Advise(11, 16, five)
	second := Advise(11, 16, five)

	assert.Equal(t, first, second)
	assert.Equal(t, Advice{Action: Hit, Category: Bad, Target: 12}, first)
}

func TestAdvice_Rationale(t *testing.T) {
	assert.Equal(t, "until your score is at least 17", Advice{Action: Hit, Category: Good, Target: 17}.Rationale())
	assert.Equal(t, "since your score is 13 or above", Advice{Action: Stand, Category: Fair, Target: 13}.Rationale())
	assert.Empty(t, Advice{}.Rationale())
}

func TestObserve(t *testing.T) {
	c, ok := Observe(14, 10, card.New(card.Two, card.Spades))
	assert.True(t, ok)
	assert.Equal(t, Fair, c)

	_, ok = Observe(21, 10, card.New(card.Two, card.Spades))
	assert.False(t, ok)
}
