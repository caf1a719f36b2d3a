package ui

import (
	"testing"

	"glossary/internal/glossary"
)

func TestChannelSink_DeliversInOrder(t *testing.T) {
	s := NewChannelSink(4)
	s.ShowTerms([]glossary.Card{{ID: 1}})
	s.ShowNotice(glossary.NoTermsWithInitial)
	s.OpenForm(glossary.Form{Term: "Seno"})
	s.CloseForm()

	if msg, ok := (<-s.Messages()).(TermsShownMsg); !ok || len(msg.Cards) != 1 {
		t.Errorf("first message = %#v", msg)
	}
	if msg, ok := (<-s.Messages()).(NoticeShownMsg); !ok || msg.Text != glossary.NoTermsWithInitial {
		t.Errorf("second message = %#v", msg)
	}
	if msg, ok := (<-s.Messages()).(FormOpenedMsg); !ok || msg.Form.Term != "Seno" {
		t.Errorf("third message = %#v", msg)
	}
	if _, ok := (<-s.Messages()).(FormClosedMsg); !ok {
		t.Error("fourth message should be FormClosedMsg")
	}
}

func TestChannelSink_CloseUnblocksSenders(t *testing.T) {
	s := NewChannelSink(0)
	done := make(chan struct{})
	go func() {
		s.CloseForm()
		close(done)
	}()
	s.Close()
	<-done

	if msg := listenCmd(s)(); msg != nil {
		t.Errorf("listen after close = %#v, want nil", msg)
	}
}
