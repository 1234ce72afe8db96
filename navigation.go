package main

// handleNudge moves the selected element with the arrow keys.
func (m *model) handleNudge(key string) bool {
	speed := m.getMoveSpeed(key)
	switch key {
	case "left", "shift+left":
		m.editor.Nudge(-speed, 0)
	case "right", "shift+right":
		m.editor.Nudge(speed, 0)
	case "up", "shift+up":
		m.editor.Nudge(0, -speed)
	case "down", "shift+down":
		m.editor.Nudge(0, speed)
	default:
		return false
	}
	return true
}

func (m *model) getMoveSpeed(key string) float64 {
	switch key {
	case "shift+left", "shift+right", "shift+up", "shift+down":
		return gridSpacing
	default:
		return 1
	}
}
