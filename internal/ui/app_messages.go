package ui

import "glossary/internal/glossary"

// TermsShownMsg replaces the card list (sink: ShowTerms).
type TermsShownMsg struct {
	Cards []glossary.Card
}

// NoticeShownMsg replaces the card list with a message (sink: ShowNotice).
type NoticeShownMsg struct {
	Text string
}

// FormOpenedMsg opens the term form populated with Form (sink: OpenForm).
type FormOpenedMsg struct {
	Form glossary.Form
}

// FormClosedMsg closes the term form (sink: CloseForm).
type FormClosedMsg struct{}

// commandDoneMsg is sent when a dispatched controller command returns.
type commandDoneMsg struct {
	Command glossary.Command
	Err     error
}

// ShowCreateTermMsg asks the controller for an empty form (a, SPC t a).
type ShowCreateTermMsg struct{}

// EditSelectedMsg begins editing the selected card (e, SPC t e).
type EditSelectedMsg struct{}

// ShowDeleteTermMsg asks for confirmation before deleting the selected card (d, SPC t d).
type ShowDeleteTermMsg struct{}

// DeleteTermMsg is sent when user confirms deletion.
type DeleteTermMsg struct {
	ID int64
}

// SubmitFormMsg carries the form values on ctrl+s.
type SubmitFormMsg struct {
	Form glossary.Form
}

// CloseFormMsg is sent when user dismisses the term form (Esc).
type CloseFormMsg struct{}

// DismissModalMsg is sent when user cancels a confirmation modal (Esc).
type DismissModalMsg struct{}

// ApplyLetterMsg filters by Letter (SPC l <letter>).
type ApplyLetterMsg struct {
	Letter string
}

// ApplyLetterCursorMsg filters by the letter under the letter bar cursor (enter).
type ApplyLetterCursorMsg struct{}

// MoveLetterMsg moves the letter bar cursor by Delta.
type MoveLetterMsg struct {
	Delta int
}

// MoveSelectionMsg moves the card selection by Delta.
type MoveSelectionMsg struct {
	Delta int
}

// FlipCardMsg flips the selected card between its faces.
type FlipCardMsg struct{}

// FocusSearchMsg moves focus to the search input.
type FocusSearchMsg struct{}

// CycleZoneMsg moves focus to the next (Delta 1) or previous (Delta -1) zone.
type CycleZoneMsg struct {
	Delta int
}

// RefreshMsg re-runs the search for the current keyword.
type RefreshMsg struct{}
