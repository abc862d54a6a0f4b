// Package mission implements the side mission catalog and the
// per-instance lifecycle: offered -> active -> completed, failed or
// skipped. At most one mission instance exists at a time; the engine
// owns that instance and drives it once per resolved round.
package mission

import (
	"fmt"
	"math/rand"
)

// Kind identifies a side mission definition.
type Kind string

const (
	DoubleOrNothing   Kind = "double_or_nothing"
	BigMoney          Kind = "big_money"
	LuckySeven        Kind = "lucky_seven"
	GoneBlind         Kind = "gone_blind"
	ReversePsychology Kind = "reverse_psychology"
)

// Status is the lifecycle state of a mission instance.
type Status string

const (
	StatusOffered   Status = "offered"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusSkipped   Status = "skipped"
)

// Definition is the static description of a side mission. Rounds and
// WinsRequired are mutually exclusive triggers: duration-based missions
// set Rounds, streak-based missions set WinsRequired.
type Definition struct {
	Kind             Kind
	Title            string
	Description      []string
	Rounds           int
	WinsRequired     int
	BonusMultiplier  int
	ReverseLogic     bool
	BlindRounds      int
	SkipPenaltyRatio float64 // 0 means skipping is free
}

// Catalog holds every side mission the scheduler can offer.
var Catalog = []Definition{
	{
		Kind:  DoubleOrNothing,
		Title: "DOUBLE OR NOTHING",
		Description: []string{
			"Win 3 rounds in a row to double your balance.",
			"Fail and you just carry on as normal.",
		},
		WinsRequired: 3,
	},
	{
		Kind:            BigMoney,
		Title:           "BIG MONEY",
		Description:     []string{"Your next win pays 5x."},
		Rounds:          1,
		BonusMultiplier: 5,
	},
	{
		Kind:  LuckySeven,
		Title: "LUCKY SEVEN",
		Description: []string{
			"Next 7 rounds pay triple.",
			"First loss ends the bonus early.",
		},
		Rounds:          7,
		BonusMultiplier: 3,
	},
	{
		Kind:  GoneBlind,
		Title: "GONE BLIND",
		Description: []string{
			"Next 3 rounds you play blind.",
			"Pay 10% of balance to skip.",
		},
		Rounds:           3,
		BlindRounds:      3,
		SkipPenaltyRatio: 0.10,
	},
	{
		Kind:  ReversePsychology,
		Title: "REVERSE PSYCHOLOGY",
		Description: []string{
			"Next 3 rounds you must guess wrong to win.",
			"Equal still loses.",
		},
		Rounds:       3,
		ReverseLogic: true,
	},
}

// Picker selects missions from the catalog.
type Picker struct {
	rng *rand.Rand
}

// NewPicker returns a Picker backed by the given RNG.
func NewPicker(rng *rand.Rand) Picker {
	return Picker{rng: rng}
}

// Random returns a uniformly chosen definition from the catalog.
func (p Picker) Random() Definition {
	return Catalog[p.rng.Intn(len(Catalog))]
}

// State tracks a single mission instance through its lifecycle.
type State struct {
	Definition Definition
	Status     Status
	RoundsLeft int
	WinsInRow  int
}

// Offer creates a mission instance in the offered state.
func Offer(def Definition) *State {
	rounds := def.Rounds
	if rounds == 0 {
		rounds = def.WinsRequired
	}
	return &State{Definition: def, Status: StatusOffered, RoundsLeft: rounds}
}

// Accept activates an offered mission.
func (s *State) Accept() error {
	if s.Status != StatusOffered {
		return fmt.Errorf("mission %s: cannot accept from %s", s.Definition.Kind, s.Status)
	}
	s.Status = StatusActive
	return nil
}

// Skip declines an offered mission. The caller applies any skip penalty.
func (s *State) Skip() error {
	if s.Status != StatusOffered {
		return fmt.Errorf("mission %s: cannot skip from %s", s.Definition.Kind, s.Status)
	}
	s.Status = StatusSkipped
	return nil
}

// Active reports whether the mission is currently running.
func (s *State) Active() bool {
	return s.Status == StatusActive
}

// Blind reports whether the current round should hide the card and odds.
func (s *State) Blind() bool {
	return s.Active() && s.Definition.BlindRounds > 0 && s.RoundsLeft > 0
}

// Reverse reports whether win/loss classification is inverted this round.
func (s *State) Reverse() bool {
	return s.Active() && s.Definition.ReverseLogic && s.RoundsLeft > 0
}

// Bonus returns the payout bonus multiplier while the mission runs,
// or 1 when it grants none.
func (s *State) Bonus() int {
	if !s.Active() || s.Definition.BonusMultiplier < 1 {
		return 1
	}
	return s.Definition.BonusMultiplier
}

// Outcome describes the effect of advancing a mission by one round.
type Outcome struct {
	Resolved      bool // the mission left the active state
	Completed     bool
	DoubleBalance bool // completion reward for DOUBLE OR NOTHING
}

// Advance moves an active mission forward by one resolved round. The
// win flag is the mission-adjusted round outcome (reverse missions
// already inverted).
func (s *State) Advance(win bool) (Outcome, error) {
	if !s.Active() {
		return Outcome{}, fmt.Errorf("mission %s: cannot advance from %s", s.Definition.Kind, s.Status)
	}

	switch s.Definition.Kind {
	case DoubleOrNothing:
		if !win {
			return s.fail(), nil
		}
		s.WinsInRow++
		if s.WinsInRow >= s.Definition.WinsRequired {
			out := s.complete()
			out.DoubleBalance = true
			return out, nil
		}
	case BigMoney:
		if win {
			return s.complete(), nil
		}
		return s.fail(), nil
	case LuckySeven, ReversePsychology:
		if !win {
			return s.fail(), nil
		}
		s.RoundsLeft--
		if s.RoundsLeft <= 0 {
			return s.complete(), nil
		}
	case GoneBlind:
		s.RoundsLeft--
		if s.RoundsLeft <= 0 {
			return s.complete(), nil
		}
	}
	return Outcome{}, nil
}

func (s *State) complete() Outcome {
	s.Status = StatusCompleted
	return Outcome{Resolved: true, Completed: true}
}

func (s *State) fail() Outcome {
	s.Status = StatusFailed
	return Outcome{Resolved: true}
}
