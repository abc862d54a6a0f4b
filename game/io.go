package game

import (
	"drainvault/deck"
	"drainvault/session"
)

// IO is the boundary the engine talks to the terminal through. All
// calls block; GetInput is the only one that returns data.
type IO interface {
	// ShowMessage prints a line. With instant set, any typewriter
	// effect is bypassed.
	ShowMessage(text string, instant bool)
	// DisplayCard renders the current or dealt card.
	DisplayCard(c deck.Card)
	// GetInput prompts the player and returns the raw line.
	GetInput(prompt string) string
	// ClearScreen wipes the terminal.
	ClearScreen()
	// ApplyVisualSettings reconfigures rendering toggles.
	ApplyVisualSettings(v session.VisualSettings)
}

// Scanner is the card calibration capability. ScanCard blocks until the
// target card is recognized, the operator abandons the scan (empty
// label, nil error) or the capability fails (error). A failing scanner
// degrades the calibration flow; it never aborts the round loop.
type Scanner interface {
	ScanCard(targetLabel string) (string, error)
}
