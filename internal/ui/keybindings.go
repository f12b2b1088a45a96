package ui

import tea "github.com/charmbracelet/bubbletea"

// --- Key Constants ---

func isKey(msg tea.KeyMsg, keys ...string) bool {
	for _, k := range keys {
		if msg.String() == k {
			return true
		}
	}
	return false
}

func isForceQuit(msg tea.KeyMsg) bool {
	return isKey(msg, "ctrl+c")
}

// isQuit only applies outside the search input, where q is just a letter.
func isQuit(msg tea.KeyMsg) bool {
	return isKey(msg, "q")
}

func isBack(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeyEsc {
		return true
	}
	return isKey(msg, "esc", "escape", "ctrl+[")
}

func isClearLine(msg tea.KeyMsg) bool {
	return isKey(msg, "ctrl+u")
}

func isNextZone(msg tea.KeyMsg) bool {
	return isKey(msg, "tab")
}

func isPrevZone(msg tea.KeyMsg) bool {
	return isKey(msg, "shift+tab")
}

func isUp(msg tea.KeyMsg, vim bool) bool {
	if vim {
		return isKey(msg, "up", "k")
	}
	return isKey(msg, "up")
}

func isDown(msg tea.KeyMsg, vim bool) bool {
	if vim {
		return isKey(msg, "down", "j")
	}
	return isKey(msg, "down")
}

func isLeft(msg tea.KeyMsg) bool {
	return isKey(msg, "left", "h")
}

func isRight(msg tea.KeyMsg) bool {
	return isKey(msg, "right", "l")
}

func isEnter(msg tea.KeyMsg) bool {
	return isKey(msg, "enter", "return")
}

func isSpace(msg tea.KeyMsg) bool {
	return isKey(msg, " ")
}
