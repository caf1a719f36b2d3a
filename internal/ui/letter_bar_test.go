package ui

import (
	"strings"
	"testing"
)

func TestLetterBar_MoveWraps(t *testing.T) {
	b := NewLetterBar()
	b.Move(-1)
	if b.Current() != "z" {
		t.Errorf("left of a = %q, want z", b.Current())
	}
	b.Move(2)
	if b.Current() != "b" {
		t.Errorf("current = %q, want b", b.Current())
	}
}

func TestLetterBar_SetCursorIgnoresCase(t *testing.T) {
	b := NewLetterBar()
	b.SetCursor("M")
	if b.Current() != "m" {
		t.Errorf("current = %q, want m", b.Current())
	}
	b.SetCursor("ç")
	if b.Current() != "m" {
		t.Errorf("unknown letter moved the cursor to %q", b.Current())
	}
}

func TestLetterBar_View(t *testing.T) {
	out := NewLetterBar().View("b", false)
	for _, l := range []string{"A", "B", "Z"} {
		if !strings.Contains(out, l) {
			t.Errorf("bar missing %s: %q", l, out)
		}
	}
}
