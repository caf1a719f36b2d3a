package ui

import (
	"strings"
)

// Letters are the initials offered by the letter bar, in display order.
var Letters = strings.Split("abcdefghijklmnopqrstuvwxyz", "")

// LetterBar is the A–Z strip above the cards. It tracks a cursor; the
// active letter comes from the controller state at render time.
type LetterBar struct {
	cursor int
}

// NewLetterBar creates a bar with the cursor on A.
func NewLetterBar() *LetterBar {
	return &LetterBar{}
}

// Move moves the cursor by delta, wrapping at both ends.
func (b *LetterBar) Move(delta int) {
	n := len(Letters)
	b.cursor = ((b.cursor+delta)%n + n) % n
}

// Current returns the letter under the cursor.
func (b *LetterBar) Current() string {
	return Letters[b.cursor]
}

// SetCursor moves the cursor onto letter, ignoring case. Unknown letters
// leave the cursor where it is.
func (b *LetterBar) SetCursor(letter string) {
	for i, l := range Letters {
		if strings.EqualFold(l, letter) {
			b.cursor = i
			return
		}
	}
}

// View renders the bar. active is highlighted; the cursor is only shown
// while the bar has focus.
func (b *LetterBar) View(active string, focused bool) string {
	parts := make([]string, len(Letters))
	for i, l := range Letters {
		label := strings.ToUpper(l)
		style := Styles.Letter
		switch {
		case active != "" && strings.EqualFold(l, active):
			style = Styles.LetterActive
		case focused && i == b.cursor:
			style = Styles.LetterCursor
		}
		if focused && i == b.cursor {
			style = style.Underline(true)
		}
		parts[i] = style.Render(label)
	}
	return strings.Join(parts, " ")
}
