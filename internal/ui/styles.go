package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for selected items, borders
	ColorDanger    = "196" // Red - for warnings, errors
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorDim       = "243" // Darker gray - for very dim text
	ColorWarning   = "208" // Orange - for warning details
)

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	// Title styles
	Title        lipgloss.Style // Bold accent color - for main titles
	TitleWarning lipgloss.Style // Bold danger color - for warning titles

	// Box styles
	Box       lipgloss.Style // Modal box with rounded border
	BoxDanger lipgloss.Style // Warning box (danger border)

	// Card styles
	Card         lipgloss.Style // Unselected card
	CardSelected lipgloss.Style // Selected card (highlight border)
	CardTerm     lipgloss.Style // Term heading on the front face
	CardLabel    lipgloss.Style // Field labels ("Tema", "Exemplo", "Fonte")

	// Letter bar
	Letter       lipgloss.Style
	LetterCursor lipgloss.Style // Letter under the bar cursor
	LetterActive lipgloss.Style // Letter currently filtering the cards

	// Text styles
	Normal  lipgloss.Style // Normal text (text color)
	Hint    lipgloss.Style // Help/hint text (muted color)
	Status  lipgloss.Style // Status indicators (accent color)
	Empty   lipgloss.Style // Empty state text (muted, italic)
	Label   lipgloss.Style // Modal label/content (default)
	Details lipgloss.Style // Warning details (warning color)
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDim)).
		Padding(0, 1),
	CardSelected: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	CardTerm: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	CardLabel: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Letter: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	LetterCursor: lipgloss.NewStyle().
		Underline(true).
		Foreground(lipgloss.Color(ColorText)),
	LetterActive: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Label: lipgloss.NewStyle(),
	Details: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
}
