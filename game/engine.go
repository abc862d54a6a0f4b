// Package game implements the round engine: a synchronous state
// machine that deals higher/lower rounds, applies the economy model,
// schedules side missions, evaluates achievements and checkpoints the
// session. The terminal, the card scanner and persistence are reached
// only through the boundary interfaces in io.go.
package game

import (
	"errors"
	"log/slog"
	"math"
	"math/rand"

	"drainvault/config"
	"drainvault/deck"
	"drainvault/economy"
	"drainvault/mission"
	"drainvault/save"
	"drainvault/session"
)

// State is the engine's current phase.
type State string

const (
	StateStartup      State = "startup"
	StateDealing      State = "dealing"
	StateShopping     State = "shopping"
	StateSettings     State = "settings"
	StateAchievements State = "achievements"
	StateTerminated   State = "terminated"
)

// Params wires an Engine. All fields are required except Resume.
type Params struct {
	IO       IO
	Scanner  Scanner
	Saves    *save.Manager
	Session  *session.Session
	Tunables config.Tunables
	Logger   *slog.Logger
	RNG      *rand.Rand
	Resume   bool
}

// Engine runs one complete game session. It is the sole mutator of the
// session aggregate; one round executes at a time and every external
// wait is a blocking call on a boundary interface.
type Engine struct {
	io       IO
	scanner  Scanner
	saves    *save.Manager
	sess     *session.Session
	tunables config.Tunables
	log      *slog.Logger
	rng      *rand.Rand
	resume   bool

	state   State
	deck    *deck.Deck
	current deck.Card
	hasCard bool
	watcher deck.Watcher
	counter deck.Counter
	economy economy.Model
	picker  mission.Picker
	interp  *Interpreter

	active  *mission.State
	pending *mission.State
	rounds  int
}

// New constructs an Engine and subscribes the card counter to deck
// changes.
func New(p Params) *Engine {
	e := &Engine{
		io:       p.IO,
		scanner:  p.Scanner,
		saves:    p.Saves,
		sess:     p.Session,
		tunables: p.Tunables,
		log:      p.Logger,
		rng:      p.RNG,
		resume:   p.Resume,
		state:    StateStartup,
		economy:  economy.Model{HouseEdge: p.Tunables.HouseEdge},
		picker:   mission.NewPicker(p.RNG),
		interp:   NewInterpreter(),
	}
	e.watcher.Attach(&e.counter)
	return e
}

// State returns the engine's current phase.
func (e *Engine) State() State {
	return e.state
}

// Run drives the state machine until termination, then performs final
// persistence.
func (e *Engine) Run() {
	e.io.ApplyVisualSettings(e.sess.Visual)
	for e.state != StateTerminated {
		switch e.state {
		case StateStartup:
			e.handleStartup()
		case StateDealing:
			e.handleDealing()
		case StateShopping:
			e.openShop()
			e.unlockNew()
			e.state = StateDealing
		case StateSettings:
			e.openSettings()
			e.checkpoint()
			e.state = StateDealing
		case StateAchievements:
			e.openAchievements()
			e.state = StateDealing
		}
	}
	e.checkpoint()
}

func (e *Engine) handleStartup() {
	e.io.ClearScreen()
	if e.resume {
		e.io.ShowMessage("> SESSION RESTORED.", true)
	} else {
		e.showIntroStory()
	}
	e.showRules()
	e.unlockNew()
	e.primeNewDeck(true)
	e.state = StateDealing
}

func (e *Engine) handleDealing() {
	for e.state == StateDealing {
		if e.sess.Balance <= 0 {
			e.io.ShowMessage("[SYSTEM] Balance depleted. Better luck next time.", true)
			e.state = StateTerminated
			return
		}
		if e.sess.Balance < e.stake() {
			e.io.ShowMessage("[SYSTEM] Funds depleted. Mission terminated.", false)
			e.io.ShowMessage("We will get 'em next time...", false)
			e.state = StateTerminated
			return
		}
		if e.pending != nil && e.active == nil {
			e.offerSideMission()
			if e.state != StateDealing {
				return
			}
		}
		if e.deck == nil || e.deck.Len() == 0 {
			e.primeNewDeck(false)
			e.hasCard = false
		}
		if !e.hasCard {
			e.current = e.dealStartingCard()
			e.hasCard = true
		}
		e.runRound()
	}
}

// runRound resolves a single higher/lower round: prompt, deal,
// classify, pay out, advance missions and achievements, checkpoint.
func (e *Engine) runRound() {
	blind := e.active != nil && e.active.Blind()
	reverse := e.active != nil && e.active.Reverse()

	e.io.ShowMessage("", true)
	e.io.ShowMessage("==============================================", true)
	e.io.ShowMessage(
		"Balance: "+formatCredits(e.sess.Balance)+" | Extracted: "+formatCredits(e.sess.TotalCredits), true)
	if e.active != nil {
		e.io.ShowMessage("Side mission: "+e.active.Definition.Title, true)
	}
	e.io.ShowMessage("----------------------------------------------", true)
	if blind {
		e.io.ShowMessage("Current card: [HIDDEN]", true)
	} else {
		e.io.ShowMessage("Current card:", true)
		e.io.DisplayCard(e.current)
	}

	odds := e.counter.Odds(e.current)
	stake := e.stake()
	e.displayOdds(odds, stake, blind)

	pred, ok := e.promptPrediction()
	if !ok {
		return
	}

	winProb := winProbability(odds, pred, reverse)
	next, err := e.dealCard()
	if err != nil {
		// Exhaustion is recovered locally: restart the round on a
		// fresh cycle without touching session state.
		e.primeNewDeck(false)
		e.hasCard = false
		return
	}
	e.io.ShowMessage("Next card:", true)
	e.io.DisplayCard(next)

	var win bool
	if next.IsJoker() {
		e.io.ShowMessage("Joker breach! Auto-win.", true)
		win = true
	} else {
		win = classifyOutcome(e.current, next, pred, reverse)
	}

	if win {
		payout := e.economy.WinPayout(stake, e.sess.Upgrades.OddsLevel, e.missionBonus())
		e.sess.Balance += payout
		e.sess.TotalCredits += payout
		e.io.ShowMessage("WIN +"+formatCredits(payout)+" | Balance: "+formatCredits(e.sess.Balance), true)
	} else {
		e.sess.Balance -= stake
		e.io.ShowMessage("LOSS -"+formatCredits(stake)+" | Balance: "+formatCredits(e.sess.Balance), true)
	}

	e.advanceMission(win)
	e.afterRound(win, winProb)
	e.checkpoint()

	if e.checkVictory() {
		return
	}
	if e.sess.Balance <= 0 {
		e.io.ShowMessage("[SYSTEM] Balance depleted. Better luck next time.", true)
		e.state = StateTerminated
		return
	}

	if next.IsJoker() {
		// The next face-up card must not be a joker.
		e.hasCard = false
	} else {
		e.current = next
	}
}

// promptPrediction reads input until it yields a prediction. Commands
// intercept the prompt first; a state-changing command aborts the round
// without consuming a card.
func (e *Engine) promptPrediction() (Prediction, bool) {
	for {
		raw := e.io.GetInput("Higher or lower? [H/L] > ")
		if kind := e.interp.Interpret(raw); kind != CommandNone {
			if e.applyCommand(kind) {
				return "", false
			}
			continue
		}

		pred, err := ParsePrediction(raw)
		if err != nil {
			e.io.ShowMessage(err.Error(), true)
			continue
		}
		return pred, true
	}
}

// applyCommand executes an intercepted command. It reports whether the
// command interrupted the round by changing state.
func (e *Engine) applyCommand(kind CommandKind) bool {
	res := e.executeCommand(kind)
	if res.ShouldExit {
		e.state = StateTerminated
		return true
	}
	if res.NextState != "" {
		e.state = res.NextState
		return true
	}
	return false
}

func (e *Engine) executeCommand(kind CommandKind) CommandResult {
	switch kind {
	case CommandShop:
		e.io.ShowMessage("[SHOP] Routing to the black market...", true)
		return CommandResult{Handled: true, NextState: StateShopping}
	case CommandSettings:
		e.io.ShowMessage("[SETTINGS] Opening visual controls...", true)
		return CommandResult{Handled: true, NextState: StateSettings}
	case CommandAchievements:
		e.io.ShowMessage("[ACHIEVEMENTS] Pulling classified record...", true)
		return CommandResult{Handled: true, NextState: StateAchievements}
	case CommandSave:
		e.checkpoint()
		e.io.ShowMessage("[SAVE] Session written to disk.", true)
		return CommandResult{Handled: true}
	case CommandExit:
		e.checkpoint()
		e.io.ShowMessage("[EXIT] Session saved. Disconnecting...", true)
		return CommandResult{Handled: true, ShouldExit: true}
	case CommandHelp:
		e.showHelp()
		return CommandResult{Handled: true}
	}
	return CommandResult{}
}

func (e *Engine) displayOdds(odds deck.WinOdds, stake int64, blind bool) {
	if blind {
		e.io.ShowMessage("Blind round active. Odds are classified.", true)
		e.io.ShowMessage("Stake: "+formatCredits(stake), true)
		return
	}
	if !e.sess.Upgrades.AICounter {
		e.io.ShowMessage("Odds: [LOCKED] Install the AI Card Counter to reveal.", true)
		e.io.ShowMessage("Stake: "+formatCredits(stake)+" | Payout: [LOCKED]", true)
		return
	}

	e.io.ShowMessage("AI Counter:", true)
	e.showOddsLine("Higher", odds.Higher)
	e.showOddsLine("Lower", odds.Lower)
	if odds.Joker > 0 {
		e.showOddsLine("Joker auto-win", odds.Joker)
	}
	payout := e.economy.WinPayout(stake, e.sess.Upgrades.OddsLevel, e.missionBonus())
	e.io.ShowMessage("Stake: "+formatCredits(stake)+" | Payout on win: "+formatCredits(payout), true)
}

func (e *Engine) showOddsLine(label string, probability float64) {
	if probability <= 0 {
		e.io.ShowMessage(label+": N/A", true)
		return
	}
	e.io.ShowMessage(label+": "+formatPercent(probability), true)
}

// classifyOutcome applies the comparison rule: equal ranks lose, and a
// reverse mission inverts the direction match but never turns a push
// into a win.
func classifyOutcome(current, next deck.Card, pred Prediction, reverse bool) bool {
	if next.Rank() == current.Rank() {
		return false
	}
	correct := next.Rank() > current.Rank()
	if pred == Lower {
		correct = !correct
	}
	if reverse {
		correct = !correct
	}
	return correct
}

// winProbability is the chance the mission-adjusted outcome is a win.
func winProbability(odds deck.WinOdds, pred Prediction, reverse bool) float64 {
	higher := pred == Higher
	if reverse {
		higher = !higher
	}
	if higher {
		return odds.Higher
	}
	return odds.Lower
}

func (e *Engine) stake() int64 {
	return e.economy.Stake(e.sess.BaseBet, e.sess.Upgrades.BetLevel)
}

func (e *Engine) missionBonus() int {
	if e.active == nil {
		return 1
	}
	return e.active.Bonus()
}

func (e *Engine) dealCard() (deck.Card, error) {
	card, err := e.deck.Deal()
	if err != nil {
		if !errors.Is(err, deck.ErrEmptyDeck) {
			e.log.Error("deal failed", "error", err)
		}
		return deck.Card{}, err
	}
	e.watcher.Notify(e.deck.Snapshot())
	return card, nil
}

// dealStartingCard deals the face-up card for a cycle, cycling jokers
// back via a fresh deal so the round always starts on a ranked card.
func (e *Engine) dealStartingCard() deck.Card {
	for {
		if e.deck == nil || e.deck.Len() == 0 {
			e.primeNewDeck(false)
		}
		card, err := e.dealCard()
		if err != nil {
			e.primeNewDeck(false)
			continue
		}
		if !card.IsJoker() {
			return card
		}
		e.io.ShowMessage("Joker intercepted. Cycling buffer...", true)
	}
}

// primeNewDeck starts a deck cycle: rebuild, shuffle, notify observers
// and run calibration. Non-initial cycles also record the completed
// deck.
func (e *Engine) primeNewDeck(initial bool) {
	if !initial {
		e.showReshuffleSequence()
		e.sess.DecksCompleted++
		e.unlockNew()
	}
	jokers := e.tunables.BaseJokers * e.sess.Upgrades.JokerMultiplier()
	e.deck = deck.New(jokers, e.rng)
	e.deck.Shuffle()
	e.watcher.Notify(e.deck.Snapshot())
	e.runCalibration()
	if !initial {
		e.remindOptionalMenus()
	}
}

// runCalibration asks for a physical card scan once per deck cycle, or
// a 10% outsourcing fee. A failing scanner degrades to the fee path
// message and never aborts the cycle.
func (e *Engine) runCalibration() {
	if !e.sess.CalibrationEnabled {
		return
	}
	e.checkpoint()

	target, ok := e.calibrationTarget()
	if !ok {
		return
	}
	e.io.ShowMessage("[CALIBRATION] Recalibration required for this deck.", true)
	e.io.ShowMessage("[CALIBRATION] Target card: "+target.Label(), true)

	for {
		choice := normalize(e.io.GetInput("Scan card or pay to outsource [scan/pay] > "))
		switch choice {
		case "scan", "s":
			e.io.ShowMessage("Please show the requested card to the camera.", true)
			e.io.ShowMessage("Launching scanner... Press 'q' to quit.", true)
			detected, err := e.scanner.ScanCard(target.ScanLabel())
			if err != nil {
				e.io.ShowMessage("Calibration skipped: cannot reach the scanner.", true)
				e.log.Warn("scanner unavailable", "error", err)
				return
			}
			if detected != "" {
				e.io.ShowMessage("Calibration locked on: "+detected, true)
				return
			}
			e.io.ShowMessage("Scanner closed. Try again or pay to outsource.", true)
		case "pay", "p", "outsource":
			fee := outsourcingFee(e.sess.Balance)
			e.sess.Balance = maxInt64(0, e.sess.Balance-fee)
			e.io.ShowMessage("Outsourced calibration. Fee deducted: "+formatCredits(fee)+".", true)
			return
		default:
			e.io.ShowMessage("Type 'scan' or 'pay' to continue.", true)
		}
	}
}

func (e *Engine) calibrationTarget() (deck.Card, bool) {
	var candidates []deck.Card
	for _, card := range e.deck.Remaining() {
		if !card.IsJoker() {
			candidates = append(candidates, card)
		}
	}
	if len(candidates) == 0 {
		return deck.Card{}, false
	}
	return candidates[e.rng.Intn(len(candidates))], true
}

// afterRound updates counters, achievements and mission scheduling
// once a round's payout has been committed.
func (e *Engine) afterRound(win bool, winProb float64) {
	e.rounds++
	if win {
		e.sess.WinStreak++
		if e.sess.WinStreak > e.sess.MaxWinStreak {
			e.sess.MaxWinStreak = e.sess.WinStreak
		}
		if winProb > 0 && winProb < 0.10 {
			e.sess.LongShotWins++
		}
	} else {
		e.sess.WinStreak = 0
	}
	e.unlockNew()
	e.maybeScheduleMission()
}

func (e *Engine) maybeScheduleMission() {
	if !e.sess.SideMissionsEnabled {
		return
	}
	if e.active != nil || e.pending != nil {
		return
	}
	if e.rounds == 0 || e.rounds%e.tunables.MissionInterval != 0 {
		return
	}
	e.pending = mission.Offer(e.picker.Random())
}

// offerSideMission presents the queued mission. Commands re-queue the
// offer; accepting activates it, skipping applies any penalty.
func (e *Engine) offerSideMission() {
	if e.pending == nil {
		return
	}
	if !e.sess.SideMissionsEnabled {
		e.pending = nil
		return
	}
	offer := e.pending
	def := offer.Definition

	e.io.ShowMessage("", true)
	e.io.ShowMessage("=== SIDE MISSION ===", true)
	e.io.ShowMessage(def.Title, true)
	for _, line := range def.Description {
		e.io.ShowMessage("- "+line, true)
	}
	if def.SkipPenaltyRatio > 0 {
		e.io.ShowMessage("Skip penalty: "+formatPercent(def.SkipPenaltyRatio)+" of balance.", true)
	} else {
		e.io.ShowMessage("Skip this mission to forfeit the bonus.", true)
	}

	for {
		raw := normalize(e.io.GetInput("Accept mission? [Y/skip] > "))
		if kind := e.interp.Interpret(raw); kind != CommandNone {
			if e.applyCommand(kind) {
				return // offer stays pending for the next prompt
			}
			continue
		}
		switch raw {
		case "", "y", "yes", "accept":
			if err := offer.Accept(); err != nil {
				e.log.Error("mission accept failed", "error", err)
				e.pending = nil
				return
			}
			e.active = offer
			e.pending = nil
			e.io.ShowMessage("Mission accepted.", true)
			return
		case "skip", "s", "n", "no":
			if err := offer.Skip(); err != nil {
				e.log.Error("mission skip failed", "error", err)
			}
			e.applySkipPenalty(def)
			e.pending = nil
			return
		default:
			e.io.ShowMessage("Type 'y' to accept or 'skip' to skip.", true)
		}
	}
}

func (e *Engine) applySkipPenalty(def mission.Definition) {
	if def.SkipPenaltyRatio <= 0 {
		e.io.ShowMessage("Mission skipped. Bonus forfeited.", true)
		return
	}
	fee := maxInt64(1, int64(math.Round(float64(e.sess.Balance)*def.SkipPenaltyRatio)))
	e.sess.Balance = maxInt64(0, e.sess.Balance-fee)
	e.io.ShowMessage("Skip fee paid: "+formatCredits(fee)+". Mission aborted.", true)
}

// advanceMission moves the active mission forward with the
// mission-adjusted outcome and applies completion rewards.
func (e *Engine) advanceMission(win bool) {
	if e.active == nil {
		return
	}
	out, err := e.active.Advance(win)
	if err != nil {
		e.log.Error("mission advance failed", "error", err)
		e.active = nil
		return
	}
	if !out.Resolved {
		return
	}

	if out.Completed {
		e.sess.MissionsCompleted++
		if out.DoubleBalance {
			before := e.sess.Balance
			e.sess.Balance *= 2
			e.sess.TotalCredits += before
			e.io.ShowMessage("Double or Nothing success! Balance doubled to "+formatCredits(e.sess.Balance)+".", true)
		}
		e.io.ShowMessage("Side mission complete.", true)
	} else {
		e.io.ShowMessage("Side mission ended.", true)
	}
	e.active = nil
	e.unlockNew()
}

// checkVictory triggers the final extraction when the lifetime total
// reaches the configured threshold.
func (e *Engine) checkVictory() bool {
	if e.sess.TotalCredits < e.tunables.VictoryThreshold {
		return false
	}
	e.showFinalExtraction()
	e.state = StateTerminated
	return true
}

// unlockNew surfaces any achievements the last event satisfied.
func (e *Engine) unlockNew() {
	keys := e.sess.EvaluateAchievements()
	if len(keys) == 0 {
		return
	}
	for _, key := range keys {
		e.io.ShowMessage("[ACHIEVEMENT UNLOCKED] "+session.AchievementName(key), true)
	}
	e.checkpoint()
}

// checkpoint persists the session. Failures warn and continue; losing
// a checkpoint must not kill a run.
func (e *Engine) checkpoint() {
	if err := e.saves.Save(e.sess); err != nil {
		e.log.Warn("checkpoint failed", "error", err)
		e.io.ShowMessage("[WARN] Could not save the session.", true)
	}
}

func (e *Engine) remindOptionalMenus() {
	if !e.sess.VisitedShop || !e.sess.VisitedSettings {
		e.io.ShowMessage("Reminder: type 'shop' or 'settings' to upgrade your rig.", true)
	}
}
