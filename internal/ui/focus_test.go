package ui

import "testing"

func TestFocusRing_NextPrevWrap(t *testing.T) {
	var changes []string
	r := NewFocusRing("search", "letters", "cards")
	r.OnChange = func(from, to string) { changes = append(changes, from+">"+to) }

	if got := r.Next(); got != "letters" {
		t.Errorf("Next = %q", got)
	}
	r.Next()
	if got := r.Next(); got != "search" {
		t.Errorf("Next should wrap to search, got %q", got)
	}
	if got := r.Prev(); got != "cards" {
		t.Errorf("Prev should wrap to cards, got %q", got)
	}
	if len(changes) != 4 {
		t.Errorf("changes = %v", changes)
	}
}

func TestFocusRing_SetFocus(t *testing.T) {
	r := NewFocusRing(ModeSearch, ModeLetters, ModeCards)
	if !r.SetFocus(ModeCards) || r.Current != ModeCards {
		t.Errorf("SetFocus(cards) current = %v", r.Current)
	}
	if r.SetFocus(AppMode(42)) {
		t.Error("unknown target should be rejected")
	}
	if r.Current != ModeCards {
		t.Errorf("rejected SetFocus changed current to %v", r.Current)
	}
}

func TestFocusRing_Empty(t *testing.T) {
	r := NewFocusRing[int]()
	if r.Next() != 0 || r.Prev() != 0 {
		t.Error("empty ring should stay on the zero value")
	}
}
