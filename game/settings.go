package game

// openSettings runs the toggle menu. Visual changes apply immediately;
// gameplay toggles take effect on the next relevant event.
func (e *Engine) openSettings() {
	e.sess.VisitedSettings = true
	for {
		e.io.ShowMessage("", true)
		e.io.ShowMessage("=== SETTINGS ===", true)
		e.io.ShowMessage("1. Card art:      "+onOff(e.sess.Visual.ShowCardArt), true)
		e.io.ShowMessage("2. Typewriter:    "+onOff(e.sess.Visual.Typewriter), true)
		e.io.ShowMessage("3. Side missions: "+onOff(e.sess.SideMissionsEnabled), true)
		e.io.ShowMessage("4. Calibration:   "+onOff(e.sess.CalibrationEnabled), true)

		choice := normalize(e.io.GetInput("Toggle which setting? [1-4/back] > "))
		switch choice {
		case "back", "b", "exit", "":
			return
		case "1", "art":
			e.sess.Visual.ShowCardArt = !e.sess.Visual.ShowCardArt
			e.io.ApplyVisualSettings(e.sess.Visual)
		case "2", "typewriter":
			e.sess.Visual.Typewriter = !e.sess.Visual.Typewriter
			e.io.ApplyVisualSettings(e.sess.Visual)
		case "3", "missions":
			e.sess.SideMissionsEnabled = !e.sess.SideMissionsEnabled
			if !e.sess.SideMissionsEnabled {
				e.pending = nil
			}
		case "4", "calibration":
			e.sess.CalibrationEnabled = !e.sess.CalibrationEnabled
		default:
			e.io.ShowMessage("Pick 1-4 or 'back'.", true)
		}
	}
}

func onOff(enabled bool) string {
	if enabled {
		return "ON"
	}
	return "OFF"
}
