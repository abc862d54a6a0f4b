package deck

// WinOdds holds the win probability for each prediction plus the joker
// probability. The joker share is folded into both directions because a
// dealt joker wins regardless of the call.
type WinOdds struct {
	Higher float64
	Lower  float64
	Joker  float64
}

// Counter is the card-counting deck observer. It tracks the remaining
// composition and answers exact win odds for the current face-up card.
// Register it on a Watcher before the first deal of a cycle.
type Counter struct {
	comp Composition
}

// DeckUpdated implements Observer.
func (c *Counter) DeckUpdated(comp Composition) {
	c.comp = comp
}

// Remaining returns the composition the counter last observed.
func (c *Counter) Remaining() Composition {
	return c.comp
}

// Odds computes win probabilities against the current card. A joker
// current card still orders by its raw rank (0), so everything remaining
// counts as higher. The result is undefined when no cards remain; the
// engine checks the deck before asking.
func (c *Counter) Odds(current Card) WinOdds {
	if c.comp.Total == 0 {
		return WinOdds{}
	}

	total := float64(c.comp.Total)
	joker := float64(c.comp.Jokers) / total
	higher := float64(c.comp.Higher(current.Rank()))/total + joker
	lower := float64(c.comp.Lower(current.Rank()))/total + joker
	return WinOdds{Higher: higher, Lower: lower, Joker: joker}
}
