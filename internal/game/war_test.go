package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warroom/war-server/internal/models"
)

func TestStandardDeckComplete(t *testing.T) {
	deck := StandardDeck()
	require.Len(t, deck, DeckSize)

	seen := make(map[models.Card]bool, DeckSize)
	for _, c := range deck {
		assert.False(t, seen[c], "duplicate card %v", c)
		seen[c] = true
		assert.True(t, c.Rank.Valid())
	}

	for _, s := range models.Suits() {
		for _, r := range models.Ranks() {
			assert.True(t, seen[models.Card{Suit: s, Rank: r}], "missing %s %s", s, r)
		}
	}
}

func TestResolveExamples(t *testing.T) {
	jack := models.Card{Suit: models.Club, Rank: models.Jack}

	assert.Equal(t, models.ResultWin,
		Resolve(jack, models.Card{Suit: models.Club, Rank: models.Ten}))
	assert.Equal(t, models.ResultLoss,
		Resolve(jack, models.Card{Suit: models.Club, Rank: models.Ace}))
	assert.Equal(t, models.ResultTie,
		Resolve(jack, models.Card{Suit: models.Club, Rank: models.Jack}))
}

func TestResolveAntisymmetric(t *testing.T) {
	for _, a := range models.Ranks() {
		for _, b := range models.Ranks() {
			ca := models.Card{Suit: models.Heart, Rank: a}
			cb := models.Card{Suit: models.Spade, Rank: b}
			assert.Equal(t, -Resolve(ca, cb), Resolve(cb, ca),
				"resolve(%s,%s) should negate resolve(%s,%s)", a, b, b, a)
		}
	}
}

func TestResolveSelfIsTie(t *testing.T) {
	for _, r := range models.Ranks() {
		c := models.Card{Suit: models.Diamond, Rank: r}
		assert.Equal(t, models.ResultTie, Resolve(c, c))
	}
}

func TestDealerDealsDistinctCards(t *testing.T) {
	d := NewDealer()
	for i := 0; i < 100; i++ {
		player, dealer := d.Deal()
		assert.NotEqual(t, player, dealer)
		assert.True(t, player.Rank.Valid())
		assert.True(t, dealer.Rank.Valid())
	}
}
