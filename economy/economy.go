// Package economy maps upgrade levels to effective stakes and payouts.
// It is a pure calculation layer: the round engine decides when money
// actually moves and what counts as game over.
package economy

import "math"

// DefaultHouseEdge is the fraction shaved off the nominal payout
// multiplier. Overridable through configuration.
const DefaultHouseEdge = 0.06

// Model computes stakes and payouts for the current upgrade levels.
type Model struct {
	HouseEdge float64
}

// Stake returns the effective bet: baseBet * 2^betLevel.
func (m Model) Stake(baseBet int64, betLevel int) int64 {
	return baseBet << betLevel
}

// RawMultiplier returns the nominal payout multiplier: 2^oddsLevel.
func (m Model) RawMultiplier(oddsLevel int) int64 {
	return 1 << oddsLevel
}

// PayoutMultiplier returns the nominal multiplier reduced by the house
// edge.
func (m Model) PayoutMultiplier(oddsLevel int) float64 {
	return float64(m.RawMultiplier(oddsLevel)) * (1 - m.HouseEdge)
}

// WinPayout returns the credits paid for a winning round: the effective
// stake times the edge-adjusted multiplier times any active mission
// bonus.
func (m Model) WinPayout(stake int64, oddsLevel int, missionBonus int) int64 {
	if missionBonus < 1 {
		missionBonus = 1
	}
	return int64(math.Round(float64(stake) * m.PayoutMultiplier(oddsLevel) * float64(missionBonus)))
}
