package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"glossary/internal/glossary"
	"glossary/internal/ui/textutil"
)

// CardList shows the cards the controller last displayed, or its notice.
// Cards start on their front face; f flips the selected one.
type CardList struct {
	Cards    []glossary.Card
	Notice   string
	selected int
	flipped  map[int64]bool
	viewport viewport.Model
	// offsets[i] is the first content line of card i.
	offsets []int
}

// NewCardList creates an empty card list.
func NewCardList() *CardList {
	return &CardList{
		flipped:  make(map[int64]bool),
		viewport: viewport.New(80, 20),
	}
}

// SetCards replaces the content with cards, resetting faces and keeping the
// selection in range.
func (c *CardList) SetCards(cards []glossary.Card) {
	c.Cards = cards
	c.Notice = ""
	c.flipped = make(map[int64]bool)
	c.selected = min(c.selected, max(len(cards)-1, 0))
	c.refresh()
}

// SetNotice replaces the content with a message and no cards.
func (c *CardList) SetNotice(text string) {
	c.Cards = nil
	c.Notice = text
	c.flipped = make(map[int64]bool)
	c.selected = 0
	c.refresh()
}

// SetSize sets the visible area.
func (c *CardList) SetSize(width, height int) {
	c.viewport.Width = width
	c.viewport.Height = max(height, 1)
	c.refresh()
}

// Selected returns the selected card.
func (c *CardList) Selected() (glossary.Card, bool) {
	if c.selected < 0 || c.selected >= len(c.Cards) {
		return glossary.Card{}, false
	}
	return c.Cards[c.selected], true
}

// Move moves the selection by delta, clamped to the list.
func (c *CardList) Move(delta int) {
	if len(c.Cards) == 0 {
		return
	}
	c.selected = min(max(c.selected+delta, 0), len(c.Cards)-1)
	c.refresh()
}

// Flip turns the selected card over.
func (c *CardList) Flip() {
	card, ok := c.Selected()
	if !ok {
		return
	}
	c.flipped[card.ID] = !c.flipped[card.ID]
	c.refresh()
}

// IsFlipped reports whether the card with id shows its back face.
func (c *CardList) IsFlipped(id int64) bool {
	return c.flipped[id]
}

// View renders the visible part of the list.
func (c *CardList) View() string {
	return c.viewport.View()
}

func (c *CardList) refresh() {
	if c.Notice != "" || len(c.Cards) == 0 {
		c.offsets = nil
		c.viewport.SetContent(Styles.Empty.Render(c.Notice))
		c.viewport.GotoTop()
		return
	}

	width := max(c.viewport.Width-2, 20)
	var b strings.Builder
	c.offsets = make([]int, len(c.Cards))
	line := 0
	for i, card := range c.Cards {
		c.offsets[i] = line
		rendered := c.renderCard(card, i == c.selected, width)
		b.WriteString(rendered)
		b.WriteString("\n")
		line += lipgloss.Height(rendered)
	}
	c.viewport.SetContent(strings.TrimSuffix(b.String(), "\n"))
	c.scrollToSelected(line)
}

// scrollToSelected keeps the selected card inside the viewport.
func (c *CardList) scrollToSelected(total int) {
	start := c.offsets[c.selected]
	end := total
	if c.selected+1 < len(c.offsets) {
		end = c.offsets[c.selected+1]
	}
	switch {
	case start < c.viewport.YOffset:
		c.viewport.SetYOffset(start)
	case end > c.viewport.YOffset+c.viewport.Height:
		c.viewport.SetYOffset(max(end-c.viewport.Height, start))
	}
}

func (c *CardList) renderCard(card glossary.Card, selected bool, width int) string {
	style := Styles.Card
	if selected {
		style = Styles.CardSelected
	}
	inner := width - style.GetHorizontalFrameSize()

	var body string
	if c.flipped[card.ID] {
		body = renderBack(card, inner)
	} else {
		body = renderFront(card, inner)
	}
	return style.Width(width - style.GetHorizontalBorderSize()).Render(body)
}

func renderFront(card glossary.Card, width int) string {
	lines := []string{
		Styles.CardTerm.Render(textutil.Truncate(card.Term, width)),
		lipgloss.NewStyle().Width(width).Render(card.Definition),
		Styles.CardLabel.Render("Tema: ") + card.Theme,
		Styles.Hint.Render("f: flip  e: edit  d: delete"),
	}
	return strings.Join(lines, "\n")
}

func renderBack(card glossary.Card, width int) string {
	lines := []string{Styles.CardLabel.Render("Exemplo:")}
	for _, l := range card.ExampleLines {
		lines = append(lines, lipgloss.NewStyle().Width(width).Render(l))
	}
	source := card.SourceText
	if card.SourceURL != "" {
		source = termenv.Hyperlink(card.SourceURL, card.SourceText)
	}
	lines = append(lines,
		Styles.CardLabel.Render("Fonte: ")+source,
		Styles.Hint.Render("f: flip back"),
	)
	return strings.Join(lines, "\n")
}
