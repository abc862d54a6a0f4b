package game

import "testing"

func TestInterpret_CommandWords(t *testing.T) {
	interp := NewInterpreter()
	cases := map[string]CommandKind{
		"shop":         CommandShop,
		"store":        CommandShop,
		"  Settings ":  CommandSettings,
		"achievements": CommandAchievements,
		"achieve":      CommandAchievements,
		"SAVE":         CommandSave,
		"exit":         CommandExit,
		"quit":         CommandExit,
		"help":         CommandHelp,
	}
	for raw, want := range cases {
		if got := interp.Interpret(raw); got != want {
			t.Fatalf("expected %v for %q, got %v", want, raw, got)
		}
	}
}

func TestInterpret_GameplayInputPassesThrough(t *testing.T) {
	interp := NewInterpreter()
	for _, raw := range []string{"h", "lower", "", "shoppe", "y"} {
		if got := interp.Interpret(raw); got != CommandNone {
			t.Fatalf("expected CommandNone for %q, got %v", raw, got)
		}
	}
}
