package models

// Suit is one of the four french suits, stored as a small integer.
type Suit int

const (
	Club Suit = iota
	Diamond
	Heart
	Spade
)

var suitNames = [...]string{"club", "diamond", "heart", "spade"}

func (s Suit) String() string {
	if s < Club || s > Spade {
		return "unknown"
	}
	return suitNames[s]
}

// Suits returns every suit in deck order.
func Suits() []Suit {
	return []Suit{Club, Diamond, Heart, Spade}
}

// Rank is a card's face label, stored lowercase ("two" .. "ace").
type Rank string

const (
	Two   Rank = "two"
	Three Rank = "three"
	Four  Rank = "four"
	Five  Rank = "five"
	Six   Rank = "six"
	Seven Rank = "seven"
	Eight Rank = "eight"
	Nine  Rank = "nine"
	Ten   Rank = "ten"
	Jack  Rank = "jack"
	Queen Rank = "queen"
	King  Rank = "king"
	Ace   Rank = "ace"
)

// rankValues maps each rank label to its war strength.
var rankValues = map[Rank]int{
	Two:   2,
	Three: 3,
	Four:  4,
	Five:  5,
	Six:   6,
	Seven: 7,
	Eight: 8,
	Nine:  9,
	Ten:   10,
	Jack:  11,
	Queen: 12,
	King:  13,
	Ace:   14,
}

// Ranks returns every rank in ascending strength order.
func Ranks() []Rank {
	return []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
}

// Valid reports whether r is one of the thirteen known labels.
func (r Rank) Valid() bool {
	_, ok := rankValues[r]
	return ok
}

// Value returns the numeric war strength of the rank (2 for two up to 14 for
// ace), or 0 for labels outside the table.
func (r Rank) Value() int {
	return rankValues[r]
}

// Card is one of the 52 suit/rank combinations. Card rows are seeded once at
// startup and read-only afterwards.
type Card struct {
	ID   int64 `json:"id"`
	Suit Suit  `json:"suit"`
	Rank Rank  `json:"rank"`
}

// Label renders the card for history rows, e.g. "jack of spades".
func (c Card) Label() string {
	return string(c.Rank) + " of " + c.Suit.String() + "s"
}
