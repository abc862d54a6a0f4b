package game

import (
	"sort"

	"drainvault/session"
)

// openAchievements prints the classified record: the full catalog with
// status, then any unlocked entries carried in from other versions of
// the save file.
func (e *Engine) openAchievements() {
	e.io.ShowMessage("", true)
	e.io.ShowMessage("=== CLASSIFIED RECORD ===", true)

	known := make(map[string]bool, len(session.Catalog))
	for _, a := range session.Catalog {
		known[a.Key] = true
		status := "LOCKED"
		if e.sess.Achievements[a.Key] {
			status = "UNLOCKED"
		}
		e.io.ShowMessage("["+status+"] "+a.Name+" - "+a.Description, true)
	}

	var foreign []string
	for key, unlocked := range e.sess.Achievements {
		if unlocked && !known[key] {
			foreign = append(foreign, key)
		}
	}
	sort.Strings(foreign)
	for _, key := range foreign {
		e.io.ShowMessage("[UNLOCKED] "+session.AchievementName(key), true)
	}

	e.io.GetInput("Press enter to return > ")
}
