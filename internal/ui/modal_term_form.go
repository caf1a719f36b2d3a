package ui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"glossary/internal/glossary"
)

// Form fields in tab order.
const (
	fieldTerm = iota
	fieldDefinition
	fieldTheme
	fieldExample
	fieldSource
)

var fieldLabels = [...]string{
	fieldTerm:       "Term",
	fieldDefinition: "Definition",
	fieldTheme:      "Theme",
	fieldExample:    "Example",
	fieldSource:     "Source",
}

const formWidth = 56

// TermFormModal edits the five term fields. It never saves by itself:
// ctrl+s emits SubmitFormMsg and esc emits CloseFormMsg.
type TermFormModal struct {
	Editing bool
	inputs  map[int]*textinput.Model
	example textarea.Model
	focus   *FocusRing[int]
}

// Ensure TermFormModal implements View.
var _ View = (*TermFormModal)(nil)

// NewTermFormModal creates a form showing f. editing only changes the title.
func NewTermFormModal(f glossary.Form, editing bool) *TermFormModal {
	m := &TermFormModal{
		Editing: editing,
		inputs:  make(map[int]*textinput.Model),
		focus:   NewFocusRing(fieldTerm, fieldDefinition, fieldTheme, fieldExample, fieldSource),
	}
	values := map[int]string{
		fieldTerm:       f.Term,
		fieldDefinition: f.Definition,
		fieldTheme:      f.Theme,
		fieldSource:     f.Source,
	}
	for field, v := range values {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Width = formWidth
		ti.Placeholder = fieldLabels[field]
		ti.SetValue(v)
		m.inputs[field] = &ti
	}
	m.example = textarea.New()
	m.example.ShowLineNumbers = false
	m.example.Placeholder = "One example per line"
	m.example.SetWidth(formWidth)
	m.example.SetHeight(4)
	m.example.CharLimit = 0
	m.example.SetValue(f.Example)

	m.focus.OnChange = func(from, to int) { m.applyFocus() }
	m.applyFocus()
	return m
}

// Form returns the current field values.
func (m *TermFormModal) Form() glossary.Form {
	return glossary.Form{
		Term:       m.inputs[fieldTerm].Value(),
		Definition: m.inputs[fieldDefinition].Value(),
		Theme:      m.inputs[fieldTheme].Value(),
		Example:    m.example.Value(),
		Source:     m.inputs[fieldSource].Value(),
	}
}

// Focused returns the field that receives typing.
func (m *TermFormModal) Focused() int {
	return m.focus.Current
}

func (m *TermFormModal) applyFocus() {
	for field, ti := range m.inputs {
		if field == m.focus.Current {
			ti.Focus()
		} else {
			ti.Blur()
		}
	}
	if m.focus.Current == fieldExample {
		m.example.Focus()
	} else {
		m.example.Blur()
	}
}

// Init implements View.
func (m *TermFormModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *TermFormModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return CloseFormMsg{} }
		case "ctrl+s":
			f := m.Form()
			return m, func() tea.Msg { return SubmitFormMsg{Form: f} }
		case "tab":
			m.focus.Next()
			return m, nil
		case "shift+tab":
			m.focus.Prev()
			return m, nil
		case "enter":
			// The example field takes newlines; elsewhere enter advances.
			if m.focus.Current != fieldExample {
				m.focus.Next()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	if m.focus.Current == fieldExample {
		m.example, cmd = m.example.Update(msg)
		return m, cmd
	}
	ti := m.inputs[m.focus.Current]
	*ti, cmd = ti.Update(msg)
	return m, cmd
}

// View implements View.
func (m *TermFormModal) View() string {
	title := "Add term"
	if m.Editing {
		title = "Edit term"
	}
	content := Styles.Title.Render(title) + "\n"
	for _, field := range m.focus.Order {
		label := Styles.Hint.Render(fieldLabels[field])
		if field == m.focus.Current {
			label = Styles.Status.Render(fieldLabels[field])
		}
		content += "\n" + label + "\n"
		if field == fieldExample {
			content += m.example.View() + "\n"
		} else {
			content += m.inputs[field].View() + "\n"
		}
	}
	content += "\n" + Styles.Hint.Render("Tab: next field  Ctrl+S: save  Esc: cancel")
	return Styles.Box.Render(content)
}
