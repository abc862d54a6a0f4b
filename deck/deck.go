// Package deck implements the mutable card deck for a higher/lower run:
// construction with a configurable joker count, in-place shuffling,
// dealing, and immutable composition snapshots consumed by the card
// counter and any other deck observers.
package deck

import (
	"errors"
	"math/rand"
)

// ErrEmptyDeck is returned by Deal when no cards remain. Callers treat
// it as "deck cycle complete", not as a failure.
var ErrEmptyDeck = errors.New("deck: no cards remaining")

// Deck is an ordered, mutable sequence of cards. A Deck is owned by a
// single game session and rebuilt at the start of every deck cycle.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New builds an unshuffled standard 52-card deck plus jokers extra
// joker cards. Shuffle must be called before the first Deal of a cycle.
func New(jokers int, rng *rand.Rand) *Deck {
	cards := make([]Card, 0, 52+jokers)
	for suit := uint8(Clubs); suit <= Spades; suit++ {
		for rank := uint8(2); rank <= Ace; rank++ {
			card, _ := NewCard(suit, rank)
			cards = append(cards, card)
		}
	}
	for i := 0; i < jokers; i++ {
		cards = append(cards, NewJoker())
	}
	return &Deck{cards: cards, rng: rng}
}

// Shuffle randomizes the deck order in place (Fisher-Yates).
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes and returns the top card. It returns ErrEmptyDeck when
// the deck is exhausted.
func (d *Deck) Deal() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, nil
}

// Len returns the number of cards not yet dealt.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Remaining returns a copy of the undealt cards, top card last.
func (d *Deck) Remaining() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Snapshot returns the count-by-rank composition of the undealt cards.
func (d *Deck) Snapshot() Composition {
	var comp Composition
	for _, card := range d.cards {
		if card.IsJoker() {
			comp.Jokers++
		} else {
			comp.RankCounts[card.Rank()]++
		}
		comp.Total++
	}
	return comp
}

// Composition is an immutable count-by-rank view of a deck. Index i of
// RankCounts holds the number of undealt cards of rank i; jokers are
// counted separately.
type Composition struct {
	RankCounts [Ace + 1]int
	Jokers     int
	Total      int
}

// Higher returns how many undealt non-joker cards rank strictly above rank.
func (c Composition) Higher(rank uint8) int {
	n := 0
	for r := int(rank) + 1; r <= Ace; r++ {
		n += c.RankCounts[r]
	}
	return n
}

// Lower returns how many undealt non-joker cards rank strictly below rank.
func (c Composition) Lower(rank uint8) int {
	n := 0
	for r := 0; r < int(rank); r++ {
		n += c.RankCounts[r]
	}
	return n
}

// Equal returns how many undealt non-joker cards share the given rank.
func (c Composition) Equal(rank uint8) int {
	if int(rank) >= len(c.RankCounts) {
		return 0
	}
	return c.RankCounts[rank]
}
