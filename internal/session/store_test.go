package session

import (
	"testing"
	"time"
)

func TestEnsureID(t *testing.T) {
	s := NewStore(time.Minute, 10)
	if got := s.EnsureID(" abc "); got != "abc" {
		t.Errorf("got %q, want trimmed id", got)
	}
	minted := s.EnsureID("")
	if minted == "" {
		t.Fatal("blank id should mint a new one")
	}
	if other := s.EnsureID(""); other == minted {
		t.Error("minted ids should be unique")
	}
}

func TestAppendAndHistory(t *testing.T) {
	s := NewStore(time.Minute, 10)
	s.Append("visitor", Message{Role: RoleUser, Content: "hi"})
	s.Append("visitor", Message{Role: RoleAssistant, Content: "hello"})

	history := s.History("visitor")
	if len(history) != 2 {
		t.Fatalf("got %d messages, want 2", len(history))
	}
	if history[0].Role != RoleUser || history[1].Role != RoleAssistant {
		t.Errorf("unexpected order: %+v", history)
	}

	// Mutating the returned slice must not touch the stored history.
	history[0].Content = "changed"
	if got := s.History("visitor"); got[0].Content != "hi" {
		t.Errorf("stored history mutated: %+v", got)
	}

	if got := s.History("stranger"); got != nil {
		t.Errorf("unknown session = %+v, want nil", got)
	}
}

func TestHistoryCap(t *testing.T) {
	s := NewStore(time.Minute, 4)
	for i := 0; i < 6; i++ {
		s.Append("visitor", Message{Role: RoleUser, Content: string(rune('a' + i))})
	}
	history := s.History("visitor")
	if len(history) != 4 {
		t.Fatalf("got %d messages, want cap of 4", len(history))
	}
	if history[0].Content != "c" {
		t.Errorf("oldest kept = %q, want c", history[0].Content)
	}
}

func TestTTLEviction(t *testing.T) {
	current := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	s := NewStore(10*time.Minute, 10)
	s.now = func() time.Time { return current }

	s.Append("early", Message{Role: RoleUser, Content: "hi"})
	current = current.Add(6 * time.Minute)
	s.Append("late", Message{Role: RoleUser, Content: "hi"})
	current = current.Add(6 * time.Minute)

	if got := s.History("early"); got != nil {
		t.Errorf("idle session survived eviction: %+v", got)
	}
	if got := s.History("late"); len(got) != 1 {
		t.Errorf("fresh session evicted, history = %+v", got)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}
