package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/warroom/war-server/internal/models"
)

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

// StandardDeck returns the 52 unique suit/rank combinations in a fixed order:
// suits in deck order, ranks ascending within each suit.
func StandardDeck() []models.Card {
	deck := make([]models.Card, 0, DeckSize)
	for _, s := range models.Suits() {
		for _, r := range models.Ranks() {
			deck = append(deck, models.Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// Dealer deals war rounds. Each round draws from a freshly shuffled copy of
// the standard deck, so the player and dealer cards are always distinct.
type Dealer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewDealer() *Dealer {
	return &Dealer{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Deal draws one card for the player and one for the dealer.
func (d *Dealer) Deal() (player, dealer models.Card) {
	d.mu.Lock()
	defer d.mu.Unlock()

	deck := StandardDeck()
	d.rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck[0], deck[1]
}
