package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"glossary/internal/glossary"
)

// chromeHeight is the number of lines around the card list: title, search,
// letter bar, blank separators and the status line.
const chromeHeight = 7

// AppModel is the root model. It owns the screen; the glossary.Controller
// owns the view state and reaches the screen through a ChannelSink.
type AppModel struct {
	Mode       AppMode
	Zones      *FocusRing[AppMode]
	Search     textinput.Model
	Letters    *LetterBar
	Cards      *CardList
	Overlays   OverlayStack
	KeyHandler *KeyHandler

	ctx     context.Context
	ctrl    *glossary.Controller
	sink    *ChannelSink
	log     logrus.FieldLogger
	spinner spinner.Model
	pending int
	// submitting is set while a Submit is in flight; the form stays open
	// until the controller closes it.
	submitting bool
	width      int
	height     int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model for a controller created over sink.
func NewAppModel(ctx context.Context, ctrl *glossary.Controller, sink *ChannelSink, log logrus.FieldLogger) *AppModel {
	if log == nil {
		log = logrus.StandardLogger()
	}
	search := textinput.New()
	search.Prompt = "Search: "
	search.Placeholder = "term or definition"
	search.Width = 40

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Status

	a := &AppModel{
		Mode:       ModeCards,
		Zones:      NewFocusRing(zoneOrder...),
		Search:     search,
		Letters:    NewLetterBar(),
		Cards:      NewCardList(),
		KeyHandler: NewKeyHandler(NewKeybindRegistry()),
		ctx:        ctx,
		ctrl:       ctrl,
		sink:       sink,
		log:        log,
		spinner:    s,
	}
	a.Zones.SetFocus(ModeCards)
	registerKeybinds(a.KeyHandler.Registry)
	return a
}

// registerKeybinds binds keys to app messages.
func registerKeybinds(reg *KeybindRegistry) {
	send := func(msg tea.Msg) tea.Cmd { return func() tea.Msg { return msg } }
	cards := []AppMode{ModeCards}
	letters := []AppMode{ModeLetters}
	browse := []AppMode{ModeCards, ModeLetters}

	reg.BindWithDescForMode("q", tea.Quit, "quit", browse)
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDescForMode("/", send(FocusSearchMsg{}), "search", browse)
	reg.BindWithDesc("tab", send(CycleZoneMsg{Delta: 1}), "")
	reg.BindWithDesc("shift+tab", send(CycleZoneMsg{Delta: -1}), "")
	reg.BindWithDescForMode("a", send(ShowCreateTermMsg{}), "add", browse)

	reg.BindWithDescForMode("j", send(MoveSelectionMsg{Delta: 1}), "down", cards)
	reg.BindWithDescForMode("down", send(MoveSelectionMsg{Delta: 1}), "", cards)
	reg.BindWithDescForMode("k", send(MoveSelectionMsg{Delta: -1}), "up", cards)
	reg.BindWithDescForMode("up", send(MoveSelectionMsg{Delta: -1}), "", cards)
	reg.BindWithDescForMode("f", send(FlipCardMsg{}), "flip", cards)
	reg.BindWithDescForMode("e", send(EditSelectedMsg{}), "edit", cards)
	reg.BindWithDescForMode("d", send(ShowDeleteTermMsg{}), "delete", cards)

	reg.BindWithDescForMode("[", send(MoveLetterMsg{Delta: -1}), "prev letter", letters)
	reg.BindWithDescForMode("left", send(MoveLetterMsg{Delta: -1}), "", letters)
	reg.BindWithDescForMode("]", send(MoveLetterMsg{Delta: 1}), "next letter", letters)
	reg.BindWithDescForMode("right", send(MoveLetterMsg{Delta: 1}), "", letters)
	reg.BindWithDescForMode("enter", send(ApplyLetterCursorMsg{}), "filter", letters)

	for _, l := range Letters {
		reg.BindWithDesc("SPC l "+l, send(ApplyLetterMsg{Letter: l}), "Letter "+strings.ToUpper(l))
	}
	reg.BindWithDesc("SPC t a", send(ShowCreateTermMsg{}), "Add term")
	reg.BindWithDescForMode("SPC t e", send(EditSelectedMsg{}), "Edit term", cards)
	reg.BindWithDescForMode("SPC t d", send(ShowDeleteTermMsg{}), "Delete term", cards)
	reg.BindWithDesc("SPC t r", send(RefreshMsg{}), "Refresh")
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// dispatch runs cmd on the controller and starts the spinner.
func (a *AppModel) dispatch(cmd glossary.Command) tea.Cmd {
	a.pending++
	a.log.WithField("command", glossary.CommandName(cmd)).Debug("dispatch")
	run := dispatchCmd(a.ctx, a.ctrl, cmd)
	if a.pending == 1 {
		return tea.Batch(run, a.spinner.Tick)
	}
	return run
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(
		listenCmd(a.sink),
		a.dispatch(glossary.Fetch{}),
	)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.Cards.SetSize(msg.Width, msg.Height-chromeHeight)
		return a, nil
	case spinner.TickMsg:
		if a.pending == 0 {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	case commandDoneMsg:
		a.pending = max(a.pending-1, 0)
		if msg.Err != nil {
			a.log.WithError(msg.Err).WithField("command", glossary.CommandName(msg.Command)).Error("command failed")
		}
		return a, nil

	case TermsShownMsg:
		a.Cards.SetCards(msg.Cards)
		return a, listenCmd(a.sink)
	case NoticeShownMsg:
		a.Cards.SetNotice(msg.Text)
		return a, listenCmd(a.sink)
	case FormOpenedMsg:
		return a.handleFormOpened(msg)
	case FormClosedMsg:
		a.Overlays.RemoveWhere(isTermForm)
		a.submitting = false
		return a, listenCmd(a.sink)

	case SubmitFormMsg:
		if a.submitting {
			return a, nil
		}
		a.submitting = true
		return a, a.dispatch(glossary.Submit{Form: msg.Form})
	case CloseFormMsg:
		return a, a.dispatch(glossary.Close{})
	case ShowCreateTermMsg:
		return a, a.dispatch(glossary.OpenForCreate{})
	case EditSelectedMsg:
		if card, ok := a.Cards.Selected(); ok {
			return a, a.dispatch(glossary.BeginEdit{ID: card.ID})
		}
		return a, nil
	case ShowDeleteTermMsg:
		if card, ok := a.Cards.Selected(); ok {
			a.Overlays.Push(Overlay{View: NewDeleteTermConfirmModal(card)})
		}
		return a, nil
	case DeleteTermMsg:
		a.Overlays.Pop()
		return a, a.dispatch(glossary.Delete{ID: msg.ID})
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil

	case ApplyLetterMsg:
		a.Letters.SetCursor(msg.Letter)
		return a, a.dispatch(glossary.Fetch{Letter: msg.Letter})
	case ApplyLetterCursorMsg:
		return a, a.dispatch(glossary.Fetch{Letter: a.Letters.Current()})
	case MoveLetterMsg:
		a.Letters.Move(msg.Delta)
		return a, nil
	case MoveSelectionMsg:
		a.Cards.Move(msg.Delta)
		return a, nil
	case FlipCardMsg:
		a.Cards.Flip()
		return a, nil
	case FocusSearchMsg:
		return a, a.setMode(ModeSearch)
	case CycleZoneMsg:
		if msg.Delta < 0 {
			return a, a.setMode(a.Zones.Prev())
		}
		return a, a.setMode(a.Zones.Next())
	case RefreshMsg:
		return a, a.dispatch(glossary.Fetch{Keyword: a.Search.Value()})

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	if cmd, ok := a.Overlays.UpdateTop(msg); ok {
		return a, cmd
	}
	if a.Mode == ModeSearch {
		var cmd tea.Cmd
		a.Search, cmd = a.Search.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *appModelAdapter) handleFormOpened(msg FormOpenedMsg) (tea.Model, tea.Cmd) {
	a.Overlays.RemoveWhere(isTermForm)
	a.submitting = false
	form := NewTermFormModal(msg.Form, a.ctrl.State().Editing.On)
	a.Overlays.Push(Overlay{View: form})
	return a, tea.Batch(listenCmd(a.sink), form.Init())
}

func (a *appModelAdapter) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}
	// Modals receive input first.
	if cmd, ok := a.Overlays.UpdateTop(msg); ok {
		return a, cmd
	}

	if a.Mode == ModeSearch {
		return a.handleSearchKey(msg)
	}
	if a.KeyHandler != nil {
		if consumed, cmd := a.KeyHandler.Handle(msg, a.Mode); consumed {
			return a, cmd
		}
	}
	return a, nil
}

// handleSearchKey feeds the search input. Every edit fetches with the new
// keyword and no letter.
func (a *appModelAdapter) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		return a, a.setMode(ModeCards)
	case "tab":
		return a, a.setMode(a.Zones.Next())
	case "shift+tab":
		return a, a.setMode(a.Zones.Prev())
	}
	before := a.Search.Value()
	var cmd tea.Cmd
	a.Search, cmd = a.Search.Update(msg)
	if keyword := a.Search.Value(); keyword != before {
		return a, tea.Batch(cmd, a.dispatch(glossary.Fetch{Keyword: keyword}))
	}
	return a, cmd
}

func (a *AppModel) setMode(mode AppMode) tea.Cmd {
	a.Mode = mode
	a.Zones.SetFocus(mode)
	a.KeyHandler.reset()
	if mode == ModeSearch {
		return a.Search.Focus()
	}
	a.Search.Blur()
	return nil
}

func isTermForm(v View) bool {
	_, ok := v.(*TermFormModal)
	return ok
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if top, ok := a.Overlays.Peek(); ok {
		modal := top.View.View()
		if a.width > 0 && a.height > 0 {
			return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, modal)
		}
		return modal
	}

	state := a.ctrl.State()
	title := Styles.Title.Render("Glossary")
	if state.ActiveLetter != "" {
		title += Styles.Hint.Render(fmt.Sprintf("  initial %s", strings.ToUpper(state.ActiveLetter)))
	}
	if a.pending > 0 {
		title += " " + a.spinner.View()
	}

	var b strings.Builder
	b.WriteString(title + "\n\n")
	b.WriteString(a.Search.View() + "\n")
	b.WriteString(a.Letters.View(state.ActiveLetter, a.Mode == ModeLetters) + "\n\n")
	b.WriteString(a.Cards.View() + "\n")
	if a.KeyHandler.LeaderWaiting {
		b.WriteString(RenderKeybindHelp(a.KeyHandler, a.Mode))
	} else {
		b.WriteString(RenderStatusLine(a.KeyHandler.Registry, a.Mode, a.width))
	}
	return b.String()
}
