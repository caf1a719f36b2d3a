package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("SPC q", tea.Quit)
	reg.Bind("j", nil)

	if reg.Lookup("q") == nil {
		t.Error("expected q to be bound")
	}
	if reg.Lookup("SPC q") == nil {
		t.Error("expected SPC q to be bound")
	}
	if reg.Lookup("space q") == nil {
		t.Error("expected space q to normalize to SPC q")
	}
	if reg.Lookup("unknown") != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeybindRegistry_ModeFilter(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDescForMode("f", tea.Quit, "flip", []AppMode{ModeCards})

	if reg.LookupForMode("f", ModeCards) == nil {
		t.Error("f should apply in cards mode")
	}
	if reg.LookupForMode("f", ModeLetters) != nil {
		t.Error("f should not apply in letters mode")
	}

	reg.BindWithDesc("f", tea.Quit, "flip")
	if reg.LookupForMode("f", ModeLetters) == nil {
		t.Error("rebinding without modes should clear the filter")
	}
}

func TestKeyHandler_LeaderKey(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC x", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewKeyHandler(reg)

	// Press space -> leader waiting (Bubble Tea reports space as " ")
	consumed, cmd := h.Handle(keyMsg(" "), ModeCards)
	if !consumed || cmd != nil {
		t.Errorf("space: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting {
		t.Error("expected leader waiting after space")
	}

	consumed, cmd = h.Handle(keyMsg("x"), ModeCards)
	if !consumed {
		t.Errorf("x: expected consumed")
	}
	if h.LeaderWaiting {
		t.Error("leader should not be waiting after completing sequence")
	}
	if cmd == nil {
		t.Fatal("expected command for SPC x")
	}
	cmd()
	if !executed {
		t.Error("expected command to execute")
	}
}

func TestKeyHandler_LetterSequence(t *testing.T) {
	a := newTestApp(t, &fakeAPI{})

	for _, k := range []string{" ", "l"} {
		consumed, cmd := a.KeyHandler.Handle(keyMsg(k), ModeCards)
		if !consumed || cmd != nil {
			t.Fatalf("%q: consumed=%v cmd=%v", k, consumed, cmd)
		}
	}
	consumed, cmd := a.KeyHandler.Handle(keyMsg("b"), ModeCards)
	if !consumed || cmd == nil {
		t.Fatalf("b: consumed=%v cmd=%v", consumed, cmd)
	}
	if msg, ok := cmd().(ApplyLetterMsg); !ok || msg.Letter != "b" {
		t.Errorf("SPC l b produced %#v, want ApplyLetterMsg{b}", cmd())
	}
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "), ModeCards)
	if !h.LeaderWaiting {
		t.Fatal("expected leader waiting")
	}

	consumed, cmd := h.Handle(keyMsg("esc"), ModeCards)
	if !consumed || cmd != nil {
		t.Errorf("esc: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("esc should cancel leader mode")
	}
}

func TestKeyHandler_SingleKey(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("q"), ModeCards)
	if !consumed || cmd == nil {
		t.Errorf("q: consumed=%v cmd=%v", consumed, cmd)
	}
}

func TestKeyHandler_UnboundFallsThrough(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, _ := h.Handle(keyMsg("j"), ModeCards)
	if consumed {
		t.Error("unbound j should not be consumed")
	}
}

func TestLeaderHints_SubmenuLabels(t *testing.T) {
	reg := NewKeybindRegistry()
	registerKeybinds(reg)

	top := reg.LeaderHints("", ModeCards)
	if top["l"] != "Letter" || top["t"] != "Term" || top["q"] != "Quit" {
		t.Errorf("first-level hints = %v", top)
	}

	letters := reg.LeaderHints("SPC l", ModeCards)
	if len(letters) != len(Letters) {
		t.Errorf("expected %d letter hints, got %d", len(Letters), len(letters))
	}
	if letters["b"] != "Letter B" {
		t.Errorf("SPC l b hint = %q", letters["b"])
	}

	termLetters := reg.LeaderHints("SPC t", ModeLetters)
	if _, ok := termLetters["d"]; ok {
		t.Error("delete term applies to cards only")
	}
}

func TestRenderKeybindHelp(t *testing.T) {
	reg := NewKeybindRegistry()
	registerKeybinds(reg)
	h := NewKeyHandler(reg)
	h.Handle(keyMsg(" "), ModeCards)
	h.Handle(keyMsg("t"), ModeCards)

	out := RenderKeybindHelp(h, ModeCards)
	for _, want := range []string{"SPC t", "Add term", "Refresh", "cancel"} {
		if !strings.Contains(out, want) {
			t.Errorf("help missing %q:\n%s", want, out)
		}
	}
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeySpace.String() returns " ", KeyEsc returns "esc", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestKeyHandler_UnknownLeaderKeyResets(t *testing.T) {
	a := newTestApp(t, &fakeAPI{})

	a.KeyHandler.Handle(keyMsg(" "), ModeCards)
	a.KeyHandler.Handle(keyMsg("l"), ModeCards)
	if !a.KeyHandler.LeaderWaiting {
		t.Fatal("SPC l should wait for a letter")
	}
	consumed, cmd := a.KeyHandler.Handle(keyMsg("1"), ModeCards)
	if !consumed || cmd != nil {
		t.Errorf("1: consumed=%v cmd=%v", consumed, cmd)
	}
	if a.KeyHandler.LeaderWaiting || len(a.KeyHandler.Buffer) != 0 {
		t.Error("a sequence with no binding should leave leader mode")
	}
}
