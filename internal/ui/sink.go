package ui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"glossary/internal/glossary"
)

// ChannelSink is a glossary.Sink that turns display calls into Bubble Tea
// messages. The app reads them back with listenCmd.
type ChannelSink struct {
	ch   chan tea.Msg
	done chan struct{}
	once sync.Once
}

var _ glossary.Sink = (*ChannelSink)(nil)

// NewChannelSink creates a sink holding up to buffer undelivered messages.
func NewChannelSink(buffer int) *ChannelSink {
	return &ChannelSink{
		ch:   make(chan tea.Msg, buffer),
		done: make(chan struct{}),
	}
}

// ShowTerms implements glossary.Sink.
func (s *ChannelSink) ShowTerms(cards []glossary.Card) {
	s.send(TermsShownMsg{Cards: cards})
}

// ShowNotice implements glossary.Sink.
func (s *ChannelSink) ShowNotice(msg string) {
	s.send(NoticeShownMsg{Text: msg})
}

// OpenForm implements glossary.Sink.
func (s *ChannelSink) OpenForm(f glossary.Form) {
	s.send(FormOpenedMsg{Form: f})
}

// CloseForm implements glossary.Sink.
func (s *ChannelSink) CloseForm() {
	s.send(FormClosedMsg{})
}

// Messages returns the channel the sink writes to.
func (s *ChannelSink) Messages() <-chan tea.Msg {
	return s.ch
}

// Close releases senders blocked on a full channel. Messages sent after
// Close are dropped.
func (s *ChannelSink) Close() {
	s.once.Do(func() { close(s.done) })
}

func (s *ChannelSink) send(msg tea.Msg) {
	select {
	case <-s.done:
		return
	default:
	}
	select {
	case s.ch <- msg:
	case <-s.done:
	}
}
