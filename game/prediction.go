package game

import (
	"errors"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Prediction is the player's call for the next card.
type Prediction string

const (
	Higher Prediction = "higher"
	Lower  Prediction = "lower"
)

// ErrInvalidPrediction is returned when input matches neither direction.
var ErrInvalidPrediction = errors.New("invalid prediction, use higher (h) or lower (l)")

var predictionAliases = map[string]Prediction{
	"h":      Higher,
	"hi":     Higher,
	"high":   Higher,
	"higher": Higher,
	"l":      Lower,
	"lo":     Lower,
	"low":    Lower,
	"lower":  Lower,
}

// fuzzyTargets are the words a near-miss input is matched against.
var fuzzyTargets = []string{"high", "higher", "low", "lower"}

// ParsePrediction turns raw player input into a Prediction. Exact
// aliases match first; otherwise a Levenshtein distance of one against
// the full words forgives a typo ("highr", "lowe").
func ParsePrediction(raw string) (Prediction, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if p, ok := predictionAliases[normalized]; ok {
		return p, nil
	}
	for _, target := range fuzzyTargets {
		if fuzzy.LevenshteinDistance(normalized, target) <= 1 {
			return predictionAliases[target], nil
		}
	}
	return "", ErrInvalidPrediction
}
