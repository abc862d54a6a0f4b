package mission

import (
	"math/rand"
	"testing"
)

func definition(kind Kind) Definition {
	for _, def := range Catalog {
		if def.Kind == kind {
			return def
		}
	}
	panic("unknown kind " + kind)
}

func TestOffer_StartsOffered(t *testing.T) {
	state := Offer(definition(LuckySeven))
	if state.Status != StatusOffered {
		t.Fatalf("expected offered, got %s", state.Status)
	}
	if state.RoundsLeft != 7 {
		t.Fatalf("expected 7 rounds, got %d", state.RoundsLeft)
	}
	if state.Active() || state.Blind() || state.Reverse() {
		t.Fatal("an offered mission must not influence rounds yet")
	}
}

func TestOffer_StreakMissionUsesWinsRequired(t *testing.T) {
	state := Offer(definition(DoubleOrNothing))
	if state.RoundsLeft != 3 {
		t.Fatalf("expected 3 rounds from wins_required, got %d", state.RoundsLeft)
	}
}

func TestAdvance_RequiresActive(t *testing.T) {
	state := Offer(definition(BigMoney))
	if _, err := state.Advance(true); err == nil {
		t.Fatal("expected error advancing an offered mission")
	}

	if err := state.Accept(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := state.Advance(true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Resolved || !out.Completed {
		t.Fatalf("expected BIG MONEY to complete on a win, got %+v", out)
	}
	if state.Status != StatusCompleted {
		t.Fatalf("expected completed, got %s", state.Status)
	}
}

func TestSkip_OnlyFromOffered(t *testing.T) {
	state := Offer(definition(GoneBlind))
	if err := state.Accept(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := state.Skip(); err == nil {
		t.Fatal("expected error skipping an active mission")
	}

	fresh := Offer(definition(GoneBlind))
	if err := fresh.Skip(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fresh.Status != StatusSkipped {
		t.Fatalf("expected skipped, got %s", fresh.Status)
	}
}

func TestDoubleOrNothing_CompletesOnStreak(t *testing.T) {
	state := Offer(definition(DoubleOrNothing))
	if err := state.Accept(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 2; i++ {
		out, err := state.Advance(true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Resolved {
			t.Fatalf("resolved after %d wins", i+1)
		}
	}

	out, err := state.Advance(true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Completed || !out.DoubleBalance {
		t.Fatalf("expected completion with balance doubling, got %+v", out)
	}
}

func TestDoubleOrNothing_FailsOnLoss(t *testing.T) {
	state := Offer(definition(DoubleOrNothing))
	if err := state.Accept(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := state.Advance(true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := state.Advance(false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Resolved || out.Completed {
		t.Fatalf("expected failure, got %+v", out)
	}
	if state.Status != StatusFailed {
		t.Fatalf("expected failed, got %s", state.Status)
	}
}

func TestLuckySeven_FirstLossEndsBonus(t *testing.T) {
	state := Offer(definition(LuckySeven))
	if err := state.Accept(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Bonus() != 3 {
		t.Fatalf("expected 3x bonus, got %d", state.Bonus())
	}

	if _, err := state.Advance(true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := state.Advance(false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Resolved || out.Completed {
		t.Fatalf("expected early failure, got %+v", out)
	}
}

func TestGoneBlind_DurationCompletesRegardlessOfOutcome(t *testing.T) {
	state := Offer(definition(GoneBlind))
	if err := state.Accept(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !state.Blind() {
		t.Fatal("expected blind rounds while active")
	}

	wins := []bool{false, false, true}
	var out Outcome
	var err error
	for _, win := range wins {
		out, err = state.Advance(win)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if !out.Completed {
		t.Fatalf("expected duration mission to complete, got %+v", out)
	}
	if state.Blind() {
		t.Fatal("resolved mission must not stay blind")
	}
}

func TestReversePsychology_Flags(t *testing.T) {
	state := Offer(definition(ReversePsychology))
	if err := state.Accept(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !state.Reverse() {
		t.Fatal("expected reverse logic while active")
	}
	if state.Blind() {
		t.Fatal("reverse mission is not blind")
	}
	if state.Bonus() != 1 {
		t.Fatalf("expected no bonus, got %d", state.Bonus())
	}
}

func TestPicker_DrawsFromCatalog(t *testing.T) {
	picker := NewPicker(rand.New(rand.NewSource(7)))
	seen := make(map[Kind]bool)
	for i := 0; i < 200; i++ {
		seen[picker.Random().Kind] = true
	}
	if len(seen) != len(Catalog) {
		t.Fatalf("expected all %d kinds over 200 draws, got %d", len(Catalog), len(seen))
	}
}
