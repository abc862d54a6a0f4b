package game

import (
	"math"
	"strconv"
	"strings"
)

// showIntroStory plays the opening sequence for a fresh run.
func (e *Engine) showIntroStory() {
	for _, line := range []string{
		"The year is 2087. The Grand Casino's vault holds more credits",
		"than most city-states see in a decade.",
		"You are a ghost in their system, patched into a rigged",
		"higher/lower table through a cracked maintenance uplink.",
		"Every correct call siphons credits. Every wrong call burns",
		"your stake and raises the heat.",
		"Drain the vault before security traces the line.",
	} {
		e.io.ShowMessage(line, false)
	}
	e.io.ShowMessage("", true)
	e.io.ShowMessage("> UPLINK ESTABLISHED.", false)
}

func (e *Engine) showRules() {
	e.io.ShowMessage("", true)
	e.io.ShowMessage("=== TABLE RULES ===", true)
	for _, line := range []string{
		"Call whether the next card is higher or lower than the current one.",
		"A correct call pays out; a wrong call burns your stake.",
		"A tie always loses. Jokers are an automatic win.",
		"Type 'shop', 'settings', 'achievements', 'save', 'help' or 'exit' at any prompt.",
	} {
		e.io.ShowMessage("- "+line, true)
	}
}

func (e *Engine) showHelp() {
	e.io.ShowMessage("Commands:", true)
	for _, line := range []string{
		"h / l      call higher or lower",
		"shop       open the black market",
		"settings   visual and gameplay toggles",
		"achievements   classified record",
		"save       write the session to disk",
		"exit       save and disconnect",
	} {
		e.io.ShowMessage("  "+line, true)
	}
}

// showReshuffleSequence plays between deck cycles.
func (e *Engine) showReshuffleSequence() {
	for _, line := range []string{
		"",
		"> DECK BUFFER EXHAUSTED.",
		"> FLUSHING TABLE STATE...",
		"> INJECTING FRESH SHUFFLE SEED...",
		"> NEW DECK ONLINE.",
	} {
		e.io.ShowMessage(line, false)
	}
}

// showFinalExtraction plays the victory cut scene.
func (e *Engine) showFinalExtraction() {
	for _, line := range []string{
		"",
		"> EXTRACTION THRESHOLD REACHED.",
		"> ROUTING CREDITS THROUGH SEVENTEEN SHELL ACCOUNTS...",
		"> WIPING ACCESS LOGS...",
		"> UPLINK SEVERED.",
		"",
		"The vault is dry. Somewhere, an auditor is about to have",
		"a very bad morning. You were never here.",
		"",
		"Total extracted: " + formatCredits(e.sess.TotalCredits),
		"",
		"=== VAULT DRAINED ===",
	} {
		e.io.ShowMessage(line, false)
	}
}

// formatCredits renders an amount with thousands separators, e.g.
// "1,250,000 cr".
func formatCredits(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if negative {
		return "-" + b.String() + " cr"
	}
	return b.String() + " cr"
}

// formatPercent renders a probability as "54.9%".
func formatPercent(p float64) string {
	return strconv.FormatFloat(p*100, 'f', 1, 64) + "%"
}

func normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// outsourcingFee is 10% of balance, at least one credit.
func outsourcingFee(balance int64) int64 {
	return maxInt64(1, int64(math.Round(float64(balance)*0.10)))
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
