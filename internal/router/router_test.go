package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/geoquest/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
	closed  bool
	msgs    []tea.Msg
}

func (s *stubScreen) Close() { s.closed = true }

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.msgs = append(s.msgs, msg)
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string { return s.title }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)
	cmd := r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "first" {
		t.Errorf("expected active 'first', got %q", r.Active().Title())
	}
	if !s2.closed {
		t.Error("expected popped screen to be closed")
	}
	if cmd == nil {
		t.Fatal("expected a resume command")
	}
	r.Update(cmd())
	if len(s1.msgs) != 1 {
		t.Fatalf("expected ResumedMsg delivered, got %v", s1.msgs)
	}
	if _, ok := s1.msgs[0].(ResumedMsg); !ok {
		t.Errorf("expected ResumedMsg, got %T", s1.msgs[0])
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Replace(s2)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Update(ReplaceScreenMsg{Screen: s2})

	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
}

func TestReplacePreservesStackDepth(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	s3 := &stubScreen{title: "third"}
	r.Replace(s3)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "third" {
		t.Errorf("expected active 'third', got %q", r.Active().Title())
	}
}

func TestPopToRoot(t *testing.T) {
	root := &stubScreen{title: "home"}
	r := New(root)
	a, b := &stubScreen{title: "arena"}, &stubScreen{title: "battle"}
	r.Push(a)
	r.Push(b)

	r.Update(PopToRootMsg{})

	if r.Depth() != 1 || r.Active() != root {
		t.Fatalf("expected only root left, depth %d", r.Depth())
	}
	if !a.closed || !b.closed {
		t.Error("expected popped screens to be closed")
	}
}

func TestReplaceClosesOld(t *testing.T) {
	s1 := &stubScreen{title: "quest"}
	r := New(s1)
	r.Replace(&stubScreen{title: "summary"})
	if !s1.closed {
		t.Error("replaced screen should be closed")
	}
}
