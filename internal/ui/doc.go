// Package ui is the Bubble Tea front end of the glossary.
//
// Core pieces:
//   - AppModel: the root model; search input, letter bar and card list
//   - ChannelSink: glossary.Sink delivering controller output as tea messages
//   - KeybindRegistry/KeyHandler: single keys and SPC leader sequences, filtered by AppMode
//   - OverlayStack: modals (term form, delete confirmation) that receive input first
//   - FocusRing: tab rotation across screen zones and form fields
//
// Controller commands run inside tea.Cmd goroutines; the model never calls
// the term API itself.
package ui
