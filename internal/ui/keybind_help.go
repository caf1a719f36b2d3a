package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

func newHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	h.Styles.ShortSeparator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	return h
}

// RenderKeybindHelp produces the transient help view shown after SPC.
// Displays SPC-prefixed bindings in a compact bar format, filtered by mode.
// When keyHandler is in leader mode with a buffer (e.g. "SPC l"), shows next-level hints.
func RenderKeybindHelp(keyHandler *KeyHandler, mode AppMode) string {
	if keyHandler == nil {
		return ""
	}
	bindings := NewKeyMap(keyHandler.Registry, keyHandler, mode).ShortHelp()
	if len(bindings) == 0 {
		return ""
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1).
		MarginTop(1)

	prefix := strings.Join(keyHandler.Buffer, " ")
	if prefix == "" {
		prefix = "SPC"
	}
	content := Styles.Hint.Render(prefix) + " " + newHelpModel().ShortHelpView(bindings)
	return boxStyle.Render(content)
}

// RenderStatusLine lists the single-key bindings of mode.
func RenderStatusLine(reg *KeybindRegistry, mode AppMode, width int) string {
	if reg == nil {
		return ""
	}
	h := newHelpModel()
	h.Width = width
	return Styles.Hint.Render("SPC: commands") + "  " + h.ShortHelpView(hintBindings(reg.KeyHints(mode)))
}
