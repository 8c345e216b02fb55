package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func key(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func TestChoices_DigitPicks(t *testing.T) {
	c := NewChoices([]string{"Trapezoid", "Square", "Kite"}, nil)

	c, v, ok := c.Update(key("2"))
	if !ok || v != "1" || c.Selected != 1 {
		t.Fatalf("got %q ok=%v selected=%d", v, ok, c.Selected)
	}
	if _, _, ok := c.Update(key("9")); ok {
		t.Fatal("out-of-range digit must not submit")
	}
}

func TestChoices_ArrowsThenEnterUseValues(t *testing.T) {
	c := NewChoices([]string{"side a", "side b", "side c"}, []string{"a", "b", "c"})

	c, _, _ = c.Update(key("down"))
	c, _, _ = c.Update(key("down"))
	c, _, _ = c.Update(key("down"))
	if c.SelectedValue() != "c" {
		t.Fatalf("SelectedValue = %q", c.SelectedValue())
	}
	c, _, _ = c.Update(key("up"))
	_, v, ok := c.Update(key("enter"))
	if !ok || v != "b" {
		t.Fatalf("got %q ok=%v", v, ok)
	}
}

func TestChoices_ViewMarksResult(t *testing.T) {
	c := NewChoices([]string{"90°", "180°"}, nil)
	out := c.View(1, 0)
	if !strings.Contains(out, "✓ 2)") || !strings.Contains(out, "✗ 1)") {
		t.Fatalf("result marks missing:\n%s", out)
	}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	fired := ""
	m := NewMenu([]MenuItem{
		{Label: "locked", Disabled: true},
		{Label: "quest", Action: func() tea.Cmd {
			fired = "quest"
			return nil
		}},
		{Label: "gone", Disabled: true},
		{Label: "quit", Action: func() tea.Cmd {
			fired = "quit"
			return nil
		}},
	})
	if m.Selected != 1 {
		t.Fatalf("initial selection %d", m.Selected)
	}
	m, _ = m.Update(key("down"))
	if m.Selected != 3 {
		t.Fatalf("expected to skip disabled item, at %d", m.Selected)
	}
	m, _ = m.Update(key("down"))
	if m.Selected != 3 {
		t.Fatalf("moved past the end: %d", m.Selected)
	}
	m.Update(key("enter"))
	if fired != "quit" {
		t.Fatalf("fired %q", fired)
	}
}

func TestTextInput_NumericFilter(t *testing.T) {
	ti := NewTextInput("cm²", true, 10)
	for _, k := range []string{"-", "1", "x", "2", ".", ".", "5", "-"} {
		ti, _ = ti.Update(key(k))
	}
	if ti.Value() != "-12.5" {
		t.Fatalf("value = %q", ti.Value())
	}
}

func TestCountdown(t *testing.T) {
	if Countdown(5, 0, 40) != "" {
		t.Fatal("zero total should render nothing")
	}
	if !strings.Contains(Countdown(12, 20, 40), "12s") {
		t.Fatal("remaining seconds missing")
	}
}

func TestArcadeButton(t *testing.T) {
	if got := ItemState(MenuItem{Label: "HISTORY", Disabled: true}, true); got != ButtonLocked {
		t.Fatalf("disabled item state = %v, want locked", got)
	}
	if got := ItemState(MenuItem{Label: "QUIT"}, true); got != ButtonFocused {
		t.Fatalf("selected item state = %v, want focused", got)
	}

	focused := ArcadeButton("Similarity", "✓", ButtonFocused, 30)
	if !strings.Contains(focused, "▸ Similarity ✓") {
		t.Errorf("focused button = %q", focused)
	}
	if idle := ArcadeButton("Similarity", "", ButtonIdle, 30); strings.Contains(idle, "▸") {
		t.Errorf("idle button has a cursor: %q", idle)
	}
}
