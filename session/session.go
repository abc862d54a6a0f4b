// Package session holds the single mutable aggregate for a run: the
// bankroll, upgrade levels, feature toggles, streaks and achievement
// state. The round engine is the only writer; every other component
// either reads it or receives explicit mutation requests.
//
// The JSON form is the compatibility contract: missing keys fill with
// defaults on load, and keys this build does not recognize survive a
// load/save round trip untouched.
package session

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Fresh-run defaults. Starting bankroll and bet are configurable at run
// creation; these also back-fill saves that predate a field.
const (
	DefaultBalance = 5000
	DefaultBaseBet = 200
)

// VisualSettings holds the CLI rendering toggles.
type VisualSettings struct {
	ShowCardArt bool `json:"show_card_art"`
	Typewriter  bool `json:"typewriter"`
}

// Upgrades holds the purchased upgrade levels. Levels only ever grow;
// a new run resets them by constructing a fresh session.
type Upgrades struct {
	OddsLevel  int  `json:"odds_level"`
	BetLevel   int  `json:"bet_level"`
	AICounter  bool `json:"ai_counter"`
	JokerLevel int  `json:"joker_level"`
}

// OddsMultiplier returns the payout multiplier from odds upgrades.
func (u Upgrades) OddsMultiplier() int64 {
	return 1 << u.OddsLevel
}

// BetMultiplier returns the stake multiplier from bet upgrades.
func (u Upgrades) BetMultiplier() int64 {
	return 1 << u.BetLevel
}

// JokerMultiplier returns the joker-count multiplier from joker upgrades.
func (u Upgrades) JokerMultiplier() int {
	return 1 << u.JokerLevel
}

// Session is the serializable state of a run.
type Session struct {
	RunID               string
	Balance             int64
	TotalCredits        int64
	BaseBet             int64
	DecksCompleted      int
	WinStreak           int
	MaxWinStreak        int
	Upgrades            Upgrades
	Visual              VisualSettings
	SideMissionsEnabled bool
	CalibrationEnabled  bool
	Achievements        map[string]bool
	VisitedShop         bool
	VisitedSettings     bool
	MissionsCompleted   int
	LongShotWins        int

	// Keys from newer or older builds, preserved verbatim.
	extra map[string]json.RawMessage
}

// New creates a fresh session with the given starting bankroll and
// base bet.
func New(balance, baseBet int64) *Session {
	return &Session{
		RunID:               uuid.NewString(),
		Balance:             balance,
		TotalCredits:        balance,
		BaseBet:             baseBet,
		Visual:              VisualSettings{ShowCardArt: true, Typewriter: true},
		SideMissionsEnabled: true,
		CalibrationEnabled:  true,
		Achievements:        DefaultAchievements(),
	}
}

// MarshalJSON flattens the session into the persisted form, carrying
// along any unrecognized keys from the load.
func (s *Session) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(s.extra)+17)
	for k, v := range s.extra {
		out[k] = v
	}

	put := func(key string, value any) error {
		raw, err := json.Marshal(value)
		if err != nil {
			return err
		}
		out[key] = raw
		return nil
	}

	fields := []struct {
		key   string
		value any
	}{
		{"run_id", s.RunID},
		{"balance", s.Balance},
		{"total_credits", s.TotalCredits},
		{"base_bet", s.BaseBet},
		{"decks_completed", s.DecksCompleted},
		{"win_streak", s.WinStreak},
		{"max_win_streak", s.MaxWinStreak},
		{"upgrades", s.Upgrades},
		{"visual", s.Visual},
		{"side_missions_enabled", s.SideMissionsEnabled},
		{"calibration_enabled", s.CalibrationEnabled},
		{"achievements", s.Achievements},
		{"visited_shop", s.VisitedShop},
		{"visited_settings", s.VisitedSettings},
		{"missions_completed", s.MissionsCompleted},
		{"long_shot_wins", s.LongShotWins},
	}
	for _, f := range fields {
		if err := put(f.key, f.value); err != nil {
			return nil, err
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON restores a session from its persisted form. Missing
// keys default; unrecognized keys are retained for the next save.
func (s *Session) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	restored := Session{
		Balance:             DefaultBalance,
		TotalCredits:        DefaultBalance,
		BaseBet:             DefaultBaseBet,
		Visual:              VisualSettings{ShowCardArt: true, Typewriter: true},
		SideMissionsEnabled: true,
		CalibrationEnabled:  true,
	}

	take := func(key string, dst any) error {
		val, ok := raw[key]
		if !ok {
			return nil
		}
		delete(raw, key)
		return json.Unmarshal(val, dst)
	}

	var stored map[string]bool
	steps := []struct {
		key string
		dst any
	}{
		{"run_id", &restored.RunID},
		{"balance", &restored.Balance},
		{"total_credits", &restored.TotalCredits},
		{"base_bet", &restored.BaseBet},
		{"decks_completed", &restored.DecksCompleted},
		{"win_streak", &restored.WinStreak},
		{"max_win_streak", &restored.MaxWinStreak},
		{"upgrades", &restored.Upgrades},
		{"visual", &restored.Visual},
		{"side_missions_enabled", &restored.SideMissionsEnabled},
		{"calibration_enabled", &restored.CalibrationEnabled},
		{"achievements", &stored},
		{"visited_shop", &restored.VisitedShop},
		{"visited_settings", &restored.VisitedSettings},
		{"missions_completed", &restored.MissionsCompleted},
		{"long_shot_wins", &restored.LongShotWins},
	}
	for _, step := range steps {
		if err := take(step.key, step.dst); err != nil {
			return err
		}
	}

	restored.Achievements = MergeAchievements(stored)
	if restored.RunID == "" {
		restored.RunID = uuid.NewString()
	}
	if len(raw) > 0 {
		restored.extra = raw
	}

	*s = restored
	return nil
}
