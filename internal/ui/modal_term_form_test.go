package ui

import (
	"strings"
	"testing"

	"glossary/internal/glossary"
)

func TestTermFormModal_CtrlSSubmitsCurrentValues(t *testing.T) {
	f := glossary.Form{Term: "Seno", Definition: "Razão", Theme: "Trigonometria", Example: "sen(90°) = 1", Source: "livro"}
	m := NewTermFormModal(f, true)

	_, cmd := m.Update(keyMsg("ctrl+s"))
	if cmd == nil {
		t.Fatal("ctrl+s should return a command")
	}
	msg, ok := cmd().(SubmitFormMsg)
	if !ok {
		t.Fatalf("expected SubmitFormMsg, got %T", cmd())
	}
	if msg.Form != f {
		t.Errorf("submitted %+v, want %+v", msg.Form, f)
	}
}

func TestTermFormModal_EscCloses(t *testing.T) {
	m := NewTermFormModal(glossary.Form{}, false)
	_, cmd := m.Update(keyMsg("esc"))
	if cmd == nil {
		t.Fatal("esc should return a command")
	}
	if _, ok := cmd().(CloseFormMsg); !ok {
		t.Errorf("expected CloseFormMsg, got %T", cmd())
	}
}

func TestTermFormModal_TabCyclesFields(t *testing.T) {
	m := NewTermFormModal(glossary.Form{}, false)
	want := []int{fieldDefinition, fieldTheme, fieldExample, fieldSource, fieldTerm}
	for _, w := range want {
		m.Update(keyMsg("tab"))
		if m.Focused() != w {
			t.Fatalf("focus = %s, want %s", fieldLabels[m.Focused()], fieldLabels[w])
		}
	}
	m.Update(keyMsg("shift+tab"))
	if m.Focused() != fieldSource {
		t.Errorf("shift+tab from term should wrap to source, got %s", fieldLabels[m.Focused()])
	}
}

func TestTermFormModal_EnterAdvancesExceptInExample(t *testing.T) {
	m := NewTermFormModal(glossary.Form{}, false)
	m.Update(keyMsg("enter"))
	if m.Focused() != fieldDefinition {
		t.Fatalf("enter should advance from term, focus = %s", fieldLabels[m.Focused()])
	}

	m.focus.SetFocus(fieldExample)
	m.Update(keyMsg("a"))
	m.Update(keyMsg("enter"))
	m.Update(keyMsg("b"))
	if m.Focused() != fieldExample {
		t.Fatal("enter in the example should stay in the field")
	}
	if got := m.Form().Example; got != "a\nb" {
		t.Errorf("example = %q, want two lines", got)
	}
}

func TestTermFormModal_Title(t *testing.T) {
	if !strings.Contains(NewTermFormModal(glossary.Form{}, false).View(), "Add term") {
		t.Error("create form should be titled Add term")
	}
	if !strings.Contains(NewTermFormModal(glossary.Form{Term: "Seno"}, true).View(), "Edit term") {
		t.Error("edit form should be titled Edit term")
	}
}
