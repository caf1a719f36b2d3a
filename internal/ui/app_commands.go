package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"glossary/internal/glossary"
)

// dispatchCmd runs one controller command off the update loop. Display
// changes arrive separately through the sink.
func dispatchCmd(ctx context.Context, ctrl *glossary.Controller, cmd glossary.Command) tea.Cmd {
	return func() tea.Msg {
		return commandDoneMsg{Command: cmd, Err: ctrl.Handle(ctx, cmd)}
	}
}

// listenCmd waits for the next sink message. The app re-issues it after
// every message it receives from the sink.
func listenCmd(sink *ChannelSink) tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-sink.ch:
			return msg
		case <-sink.done:
			return nil
		}
	}
}
