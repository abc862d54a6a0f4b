package game

import "strings"

// CommandKind tags the recognized meta commands a player can type at
// any gameplay prompt. The engine switches on the tag; commands carry
// no behavior of their own.
type CommandKind int

const (
	CommandNone CommandKind = iota
	CommandShop
	CommandSettings
	CommandAchievements
	CommandSave
	CommandExit
	CommandHelp
)

// CommandResult reports how an intercepted command changed the engine:
// whether input was consumed, the state to transition into (empty for
// none) and whether the run should terminate.
type CommandResult struct {
	Handled   bool
	NextState State
	ShouldExit bool
}

// Interpreter maps command words to their tags.
type Interpreter struct {
	commands map[string]CommandKind
}

// NewInterpreter returns an Interpreter with the default command set.
func NewInterpreter() *Interpreter {
	return &Interpreter{commands: map[string]CommandKind{
		"shop":         CommandShop,
		"store":        CommandShop,
		"settings":     CommandSettings,
		"achievements": CommandAchievements,
		"achieve":      CommandAchievements,
		"save":         CommandSave,
		"exit":         CommandExit,
		"quit":         CommandExit,
		"help":         CommandHelp,
	}}
}

// Interpret returns the command tag for raw input, or CommandNone when
// the input is gameplay data.
func (i *Interpreter) Interpret(raw string) CommandKind {
	return i.commands[strings.ToLower(strings.TrimSpace(raw))]
}
