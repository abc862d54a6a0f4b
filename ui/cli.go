// Package ui renders the game on a terminal with pterm and reads
// player input. It implements the engine's IO and Scanner boundaries.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"drainvault/deck"
	"drainvault/session"
)

const typewriterDelay = 12 * time.Millisecond

// CLI is the pterm-backed terminal frontend.
type CLI struct {
	showCardArt bool
	typewriter  bool
}

// NewCLI returns a CLI with card art and the typewriter effect on.
func NewCLI() *CLI {
	return &CLI{showCardArt: true, typewriter: true}
}

// ApplyVisualSettings reconfigures the rendering toggles.
func (c *CLI) ApplyVisualSettings(v session.VisualSettings) {
	c.showCardArt = v.ShowCardArt
	c.typewriter = v.Typewriter
}

// ShowMessage prints one line, typed out rune by rune unless the
// typewriter effect is off or the caller asked for instant output.
func (c *CLI) ShowMessage(text string, instant bool) {
	if instant || !c.typewriter {
		pterm.Println(text)
		return
	}
	for _, r := range text {
		pterm.Print(string(r))
		time.Sleep(typewriterDelay)
	}
	pterm.Println()
}

// DisplayCard renders a card, boxed when card art is enabled.
func (c *CLI) DisplayCard(card deck.Card) {
	if !c.showCardArt {
		pterm.Println(card.String())
		return
	}
	pterm.DefaultBox.
		WithHorizontalString("─").
		WithVerticalString("│").
		Println("  " + card.String() + "  ")
}

// GetInput prompts the player and returns the raw line. A failed read
// returns the empty string; the engine re-prompts on invalid input.
func (c *CLI) GetInput(prompt string) string {
	result, err := pterm.DefaultInteractiveTextInput.Show(prompt)
	if err != nil {
		return ""
	}
	return result
}

// ClearScreen wipes the terminal and homes the cursor.
func (c *CLI) ClearScreen() {
	pterm.Print("\033[H\033[2J")
}

// ManualScanner satisfies the calibration scan by asking the operator
// to present the physical card and type its code.
type ManualScanner struct{}

// ScanCard reads card codes until the target is matched. Typing 'q'
// abandons the scan (empty result, nil error); a failed read reports
// the scanner as unavailable.
func (ManualScanner) ScanCard(targetLabel string) (string, error) {
	for {
		raw, err := pterm.DefaultInteractiveTextInput.
			Show("Scan input (card code like QH, 'q' to abort)")
		if err != nil {
			return "", fmt.Errorf("read scanner input: %w", err)
		}
		code := strings.ToUpper(strings.TrimSpace(raw))
		if code == "Q" {
			return "", nil
		}
		if code == targetLabel {
			return code, nil
		}
		pterm.Println("Mismatch. That is not the requested card.")
	}
}
