package play

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/geoquest/internal/run"
	"github.com/abhisek/geoquest/internal/taskgen"
	"github.com/abhisek/geoquest/internal/ui/components"
	"github.com/abhisek/geoquest/internal/ui/theme"
)

// StatusLine renders left and right aligned to the edges of width,
// followed by a divider.
func StatusLine(left, right string, width int) string {
	l := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("  " + left)
	r := lipgloss.NewStyle().Foreground(theme.TextDim).Render(right + "  ")
	gap := max(width-lipgloss.Width(l)-lipgloss.Width(r), 1)
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0)))
	return l + strings.Repeat(" ", gap) + r + "\n  " + divider
}

// Progress returns "Task i/n" for st.
func Progress(st run.State) string {
	return fmt.Sprintf("Task %d/%d", st.Index+1, st.Total)
}

// Timer renders the countdown bar of a timed run, or nothing.
func Timer(st run.State, total time.Duration, width int) string {
	if !st.Timed || st.Phase != run.PhaseActive {
		return ""
	}
	bar := components.Countdown(st.Remaining.Seconds(), total.Seconds(), min(width-8, 60))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, bar)
}

// View renders the question and the answer widget, or the graded answer
// and explanation while st shows a result.
func (a *Answer) View(st run.State, width int) string {
	if st.Task == nil {
		return ""
	}
	var b strings.Builder

	question := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(st.Task.Common().Question)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, question))
	b.WriteString("\n\n")

	showing := st.Phase == run.PhaseResult && st.Last != nil
	var widget string
	switch {
	case a.free && showing:
		widget = "Your answer: " + orDash(st.Last.Answer)
	case a.free:
		widget = "Answer: " + a.text.View()
	case showing:
		widget = a.choices.View(resultIndexes(st.Task, st.Last.Answer))
	default:
		widget = a.choices.View(-1, -1) + "\n" + theme.Hint.Render(
			fmt.Sprintf("Select (1-%d) or use arrows + Enter", len(a.choices.Labels)))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, widget))

	if showing {
		b.WriteString("\n\n")
		b.WriteString(ResultPanel(st, width))
	}
	return b.String()
}

// ResultPanel renders the verdict, the solution after a miss and the
// explanation.
func ResultPanel(st run.State, width int) string {
	if st.Last == nil || st.Task == nil {
		return ""
	}
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	switch {
	case st.Last.Correct:
		b.WriteString(center.Inherit(theme.Correct).Render("Correct!"))
	case st.Last.TimedOut:
		b.WriteString(center.Inherit(theme.Incorrect).Render("Time's up!"))
	default:
		b.WriteString(center.Inherit(theme.Incorrect).Render("Not quite"))
	}
	if !st.Last.Correct {
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.TextDim).Render(
			"Correct answer: " + taskgen.Solution(st.Task)))
	}

	if exp := st.Task.Common().Explanation; exp != "" {
		b.WriteString("\n\n")
		text := lipgloss.NewStyle().Width(min(width-8, 70)).Foreground(theme.Text).Render(exp)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, text))
	}

	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.TextDim).Render("Press Enter to continue"))
	return b.String()
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}
