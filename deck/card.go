package deck

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Suit constants (0-3 standard suits, 4 reserved for jokers)
const (
	Clubs    = 0 // ♣ (black)
	Diamonds = 1 // ♦ (red)
	Hearts   = 2 // ♥ (red)
	Spades   = 3 // ♠ (black)
	JokerSuit = 4
)

// Rank constants. Ranks run 2-14 with the ace high; rank 0 is the joker.
const (
	JokerRank = 0
	Jack      = 11
	Queen     = 12
	King      = 13
	Ace       = 14
)

// Card represents a playing card with suit and rank.
// Rank 0 paired with JokerSuit is a joker; jokers order below every
// other card and win rounds through the auto-win rule, not ordering.
type Card struct {
	suit uint8 // 0-3: clubs, diamonds, hearts, spades; 4: joker
	rank uint8 // 2-14: deuce through ace (0 = joker)
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - suit: 0-3 (Clubs, Diamonds, Hearts, Spades)
//   - rank: 2-14 (2-10 = face value, Jack=11, Queen=12, King=13, Ace=14)
//
// Returns the Card or an error if suit or rank is invalid. Use NewJoker
// for joker cards.
func NewCard(suit uint8, rank uint8) (Card, error) {
	if suit > Spades || rank < 2 || rank > Ace {
		return Card{}, fmt.Errorf("invalid card %d, %d", suit, rank)
	}

	return Card{
		suit: suit,
		rank: rank,
	}, nil
}

// NewJoker creates a joker card.
func NewJoker() Card {
	return Card{suit: JokerSuit, rank: JokerRank}
}

// Suit returns the suit value of the Card.
func (c Card) Suit() uint8 {
	return c.suit
}

// Rank returns the rank value of the Card (0 for jokers).
func (c Card) Rank() uint8 {
	return c.rank
}

// IsJoker reports whether the card is a joker.
func (c Card) IsJoker() bool {
	return c.rank == JokerRank || c.suit == JokerSuit
}

// Less orders cards by rank only. Suits never break ties and jokers
// compare below everything.
func (c Card) Less(other Card) bool {
	return c.rank < other.rank
}

// String returns a human-readable representation of the Card using suit
// symbols (♣, ♦, ♥, ♠) and rank abbreviations (A, J, Q, K, or number).
func (c Card) String() string {
	if c.IsJoker() {
		return pterm.LightMagenta("Joker")
	}

	var suit string
	switch c.suit {
	case Clubs:
		suit = pterm.Black("♣")
	case Diamonds:
		suit = pterm.LightRed("♦")
	case Hearts:
		suit = pterm.LightRed("♥")
	case Spades:
		suit = pterm.Black("♠")
	default:
		suit = "?"
	}

	return c.rankLabel() + suit
}

// Label returns the long uncolored card name, e.g. "Queen of Hearts".
func (c Card) Label() string {
	if c.IsJoker() {
		return "Joker"
	}

	var suit string
	switch c.suit {
	case Clubs:
		suit = "Clubs"
	case Diamonds:
		suit = "Diamonds"
	case Hearts:
		suit = "Hearts"
	case Spades:
		suit = "Spades"
	}

	var rankStr string
	switch c.rank {
	case Jack:
		rankStr = "Jack"
	case Queen:
		rankStr = "Queen"
	case King:
		rankStr = "King"
	case Ace:
		rankStr = "Ace"
	default:
		rankStr = fmt.Sprintf("%d", c.rank)
	}
	return rankStr + " of " + suit
}

// ScanLabel returns the compact label the card scanner understands,
// e.g. "4H" or "QS". Jokers have no scan label.
func (c Card) ScanLabel() string {
	if c.IsJoker() {
		return ""
	}

	suit := [...]string{"C", "D", "H", "S"}[c.suit]
	return c.rankLabel() + suit
}

func (c Card) rankLabel() string {
	switch c.rank {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return fmt.Sprintf("%d", c.rank)
	}
}
