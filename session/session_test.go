package session

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"
)

func TestNew_Defaults(t *testing.T) {
	s := New(5000, 200)
	if s.RunID == "" {
		t.Fatal("expected a run id")
	}
	if s.Balance != 5000 || s.TotalCredits != 5000 || s.BaseBet != 200 {
		t.Fatalf("unexpected bankroll defaults: %+v", s)
	}
	if !s.SideMissionsEnabled || !s.CalibrationEnabled {
		t.Fatal("feature toggles default on")
	}
	if !s.Visual.ShowCardArt || !s.Visual.Typewriter {
		t.Fatal("visual toggles default on")
	}
	for _, a := range Catalog {
		if unlocked, ok := s.Achievements[a.Key]; !ok || unlocked {
			t.Fatalf("expected %s present and locked", a.Key)
		}
	}
}

func TestRoundTrip_PreservesState(t *testing.T) {
	s := New(1000, 50)
	s.Upgrades.OddsLevel = 3
	s.Upgrades.AICounter = true
	s.WinStreak = 4
	s.MaxWinStreak = 9
	s.DecksCompleted = 2
	s.Achievements["first_deck"] = true
	s.VisitedShop = true

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var loaded Session
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(s, &loaded) {
		t.Fatalf("round trip changed state:\n%+v\n%+v", s, &loaded)
	}
}

func TestRoundTrip_PreservesUnknownKeys(t *testing.T) {
	payload := []byte(`{
		"run_id": "abc",
		"balance": 700,
		"prestige_tier": 4,
		"achievements": {"first_deck": true, "retired_badge": true}
	}`)

	var s Session
	if err := json.Unmarshal(payload, &s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Balance != 700 {
		t.Fatalf("expected balance 700, got %d", s.Balance)
	}
	if !s.Achievements["retired_badge"] {
		t.Fatal("unknown achievement key must be preserved")
	}

	out, err := json.Marshal(&s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Contains(out, []byte(`"prestige_tier":4`)) {
		t.Fatalf("unknown top-level key dropped: %s", out)
	}
	if !bytes.Contains(out, []byte(`"retired_badge":true`)) {
		t.Fatalf("unknown achievement key dropped: %s", out)
	}

	// Stability: a second round trip reproduces the same bytes.
	var again Session
	if err := json.Unmarshal(out, &again); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out2, err := json.Marshal(&again)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(out, out2) {
		t.Fatalf("round trip not stable:\n%s\n%s", out, out2)
	}
}

func TestUnmarshal_MissingKeysDefault(t *testing.T) {
	var s Session
	if err := json.Unmarshal([]byte(`{"balance": 42}`), &s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Balance != 42 {
		t.Fatalf("expected balance 42, got %d", s.Balance)
	}
	if s.BaseBet != DefaultBaseBet {
		t.Fatalf("expected default base bet, got %d", s.BaseBet)
	}
	if s.RunID == "" {
		t.Fatal("expected a generated run id")
	}
	if !s.SideMissionsEnabled || !s.CalibrationEnabled {
		t.Fatal("missing toggles must default on")
	}
	for _, a := range Catalog {
		if _, ok := s.Achievements[a.Key]; !ok {
			t.Fatalf("expected default achievement key %s", a.Key)
		}
	}
}

func TestUpgrades_Multipliers(t *testing.T) {
	u := Upgrades{OddsLevel: 3, BetLevel: 2, JokerLevel: 1}
	if u.OddsMultiplier() != 8 {
		t.Fatalf("expected odds multiplier 8, got %d", u.OddsMultiplier())
	}
	if u.BetMultiplier() != 4 {
		t.Fatalf("expected bet multiplier 4, got %d", u.BetMultiplier())
	}
	if u.JokerMultiplier() != 2 {
		t.Fatalf("expected joker multiplier 2, got %d", u.JokerMultiplier())
	}
}
