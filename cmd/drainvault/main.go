package main

import (
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"drainvault/config"
	"drainvault/game"
	"drainvault/save"
	"drainvault/session"
	"drainvault/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	// Route slog through the default PTerm logger so log lines share the
	// terminal styling.
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)
	level, _ := cfg.SlogLevel()
	pterm.DefaultLogger.Level = ptermLevel(level)

	tunables, err := cfg.LoadTunables()
	if err != nil {
		logger.Error("invalid tunables", "error", err.Error())
		os.Exit(1)
	}

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Drain", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("Vault", pterm.FgDarkGray.ToStyle()),
	).Render()

	cli := ui.NewCLI()
	saves := save.NewManager(cfg.SavePath)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		sess, resume := loadOrCreate(logger, saves, tunables)
		engine := game.New(game.Params{
			IO:       cli,
			Scanner:  ui.ManualScanner{},
			Saves:    saves,
			Session:  sess,
			Tunables: tunables,
			Logger:   logger,
			RNG:      rng,
			Resume:   resume,
		})
		engine.Run()

		pterm.Println()
		again, _ := pterm.DefaultInteractiveConfirm.
			WithDefaultText("Run it again?").
			WithDefaultValue(false).
			Show()
		if !again {
			pterm.Println("Stay low.")
			return
		}
	}
}

// loadOrCreate resumes a viable saved session or builds a fresh one.
// A fresh run after a finished save keeps the player's visual and
// gameplay toggles.
func loadOrCreate(logger *slog.Logger, saves *save.Manager, tunables config.Tunables) (*session.Session, bool) {
	stored, err := saves.Load()
	if err != nil {
		logger.Warn("could not load the save file, starting fresh", "error", err.Error())
		stored = nil
	}

	if stored != nil && stored.Balance > 0 && stored.TotalCredits < tunables.VictoryThreshold {
		resume, _ := pterm.DefaultInteractiveConfirm.
			WithDefaultText("Saved session found. Resume it?").
			WithDefaultValue(true).
			Show()
		if resume {
			return stored, true
		}
	}

	sess := session.New(tunables.StartingBalance, tunables.BaseBet)
	if stored != nil {
		sess.Visual = stored.Visual
		sess.SideMissionsEnabled = stored.SideMissionsEnabled
		sess.CalibrationEnabled = stored.CalibrationEnabled
	}
	return sess, false
}

func ptermLevel(level slog.Level) pterm.LogLevel {
	switch level {
	case slog.LevelDebug:
		return pterm.LogLevelDebug
	case slog.LevelWarn:
		return pterm.LogLevelWarn
	case slog.LevelError:
		return pterm.LogLevelError
	default:
		return pterm.LogLevelInfo
	}
}
