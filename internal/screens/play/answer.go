// Package play holds the task rendering shared by the quest and battle
// screens.
package play

import (
	"strconv"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/geoquest/internal/taskgen"
	"github.com/abhisek/geoquest/internal/ui/components"
)

// Answer is the input widget for the task a run is currently showing: a
// numbered picker for choice tasks, a numeric text input for free input.
type Answer struct {
	taskID  string
	free    bool
	touched bool
	choices components.Choices
	text    components.TextInput
}

// Sync rebuilds the widget when t differs from the task it was built for.
func (a *Answer) Sync(t taskgen.Task) tea.Cmd {
	if t == nil || t.Common().ID == a.taskID {
		return nil
	}
	a.taskID = t.Common().ID
	a.touched = false
	a.free = false

	switch t := t.(type) {
	case *taskgen.MultipleChoice:
		a.choices = components.NewChoices(t.Options, nil)
	case *taskgen.VisualChoice:
		labels := make([]string, len(t.Regions))
		ids := make([]string, len(t.Regions))
		for i, r := range t.Regions {
			labels[i] = regionLabel(r)
			ids[i] = r.ID
		}
		a.choices = components.NewChoices(labels, ids)
	case *taskgen.FreeInput:
		a.free = true
		a.text = components.NewTextInput("your answer", true, 12)
		a.text.Suffix = t.Unit
		return a.text.Init()
	}
	return nil
}

// Update feeds msg to the widget. draft is the answer a timeout would
// evaluate; submit is true when the player confirmed it.
func (a *Answer) Update(msg tea.Msg) (draft string, submit bool, cmd tea.Cmd) {
	if a.free {
		if k, ok := msg.(tea.KeyPressMsg); ok && k.String() == "enter" {
			return a.text.Value(), true, nil
		}
		a.text, cmd = a.text.Update(msg)
		return a.text.Value(), false, cmd
	}

	before := a.choices.Selected
	var value string
	a.choices, value, submit = a.choices.Update(msg)
	if submit {
		return value, true, nil
	}
	if a.choices.Selected != before {
		a.touched = true
	}
	return a.Draft(), false, nil
}

// Draft returns the current unconfirmed answer. A picker the player has
// not moved yet has no draft.
func (a *Answer) Draft() string {
	if a.free {
		return a.text.Value()
	}
	if !a.touched {
		return ""
	}
	return a.choices.SelectedValue()
}

// TaskID returns the id of the task the widget was built for.
func (a *Answer) TaskID() string { return a.taskID }

func regionLabel(r taskgen.Region) string {
	if r.Stroke {
		return r.Label + " (line)"
	}
	return r.Label
}

// resultIndexes returns the option to mark correct and the one the player
// picked for a choice task, -1 when not applicable.
func resultIndexes(t taskgen.Task, answer string) (correct, chosen int) {
	correct, chosen = -1, -1
	switch t := t.(type) {
	case *taskgen.MultipleChoice:
		correct = t.Correct
		if n, err := strconv.Atoi(answer); err == nil {
			chosen = n
		}
	case *taskgen.VisualChoice:
		for i, r := range t.Regions {
			if r.ID == t.Answer {
				correct = i
			}
			if r.ID == answer {
				chosen = i
			}
		}
	}
	return correct, chosen
}
