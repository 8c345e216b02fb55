package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/abhisek/geoquest/internal/run"
	"github.com/abhisek/geoquest/internal/taskgen"
)

var (
	errInputClosed = errors.New("input closed")
	errCancelled   = errors.New("run cancelled")
)

// lineRunner is the part of a quest or battle the line-mode loop drives.
type lineRunner interface {
	Start()
	State() run.State
	Submit(answer string) (run.Attempt, error)
	Next() (bool, error)
	Cancel() error
}

// lineSession plays a run on a plain terminal, one answer per line.
type lineSession struct {
	runner  lineRunner
	changed <-chan struct{}
	lines   <-chan string
	out     io.Writer

	// hint answers "?" when set.
	hint func(ctx context.Context, st run.State) (string, error)
}

// notifier returns a channel fed by a run's notify callback. Sends never
// block; a pending signal is enough to wake the loop.
func notifier() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	return ch, func() {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// readLines scans r in the background so a countdown can interrupt a
// pending read.
func readLines(r io.Reader) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			ch <- sc.Text()
		}
	}()
	return ch
}

func (s *lineSession) play(ctx context.Context) error {
	s.runner.Start()
	for {
		st := s.runner.State()
		switch st.Phase {
		case run.PhaseIntro:
			fmt.Fprintln(s.out, "Get ready...")
			if err := s.waitWhile(ctx, run.PhaseIntro); err != nil {
				return err
			}
		case run.PhaseActive:
			printTask(s.out, st)
			if err := s.answer(ctx, st); err != nil {
				return err
			}
		case run.PhaseResult:
			printResult(s.out, st)
			if _, err := s.runner.Next(); err != nil {
				return err
			}
		case run.PhaseCompleted:
			return nil
		default:
			return errCancelled
		}
	}
}

func (s *lineSession) waitWhile(ctx context.Context, phase run.Phase) error {
	for s.runner.State().Phase == phase {
		select {
		case <-ctx.Done():
			_ = s.runner.Cancel()
			return ctx.Err()
		case <-s.changed:
		}
	}
	return nil
}

// answer reads lines until one is accepted or the countdown evaluates the
// task first.
func (s *lineSession) answer(ctx context.Context, st run.State) error {
	fmt.Fprint(s.out, "> ")
	for {
		select {
		case <-ctx.Done():
			_ = s.runner.Cancel()
			return ctx.Err()

		case <-s.changed:
			if cur := s.runner.State(); cur.Phase != run.PhaseActive || cur.Index != st.Index {
				fmt.Fprintln(s.out)
				return nil
			}

		case line, ok := <-s.lines:
			if !ok {
				_ = s.runner.Cancel()
				return errInputClosed
			}
			if strings.TrimSpace(line) == "?" && s.hint != nil {
				text, err := s.hint(ctx, st)
				if err != nil {
					fmt.Fprintln(s.out, err)
				} else {
					fmt.Fprintln(s.out, "Hint:", text)
				}
				fmt.Fprint(s.out, "> ")
				continue
			}

			answer, err := parseAnswer(st.Task, line)
			if err != nil {
				fmt.Fprintf(s.out, "%v\n> ", err)
				continue
			}
			if _, err := s.runner.Submit(answer); err != nil {
				if errors.Is(err, run.ErrNotAwaitingInput) {
					// The countdown evaluated the task first.
					return nil
				}
				return err
			}
			return nil
		}
	}
}

// parseAnswer turns a typed line into the submission form: an option
// index for multiple choice, a region ID for visual choice and the value
// for free input. Choices are numbered from 1 on screen.
func parseAnswer(t taskgen.Task, line string) (string, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", errors.New("type an answer")
	}

	switch t := t.(type) {
	case *taskgen.MultipleChoice:
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(t.Options) {
			return "", fmt.Errorf("enter a number between 1 and %d", len(t.Options))
		}
		return strconv.Itoa(n - 1), nil

	case *taskgen.VisualChoice:
		if n, err := strconv.Atoi(line); err == nil {
			if n < 1 || n > len(t.Regions) {
				return "", fmt.Errorf("enter a number between 1 and %d", len(t.Regions))
			}
			return t.Regions[n-1].ID, nil
		}
		for _, r := range t.Regions {
			if strings.EqualFold(r.ID, line) || strings.EqualFold(r.Label, line) {
				return r.ID, nil
			}
		}
		return "", fmt.Errorf("unknown choice %q", line)

	default:
		return line, nil
	}
}

func printTask(w io.Writer, st run.State) {
	h := st.Task.Common()
	header := fmt.Sprintf("── Task %d/%d ──", st.Index+1, st.Total)
	if st.Timed {
		header += fmt.Sprintf("  ⏱ %ds", int(st.Remaining.Seconds()))
	}
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, h.Question)

	switch t := st.Task.(type) {
	case *taskgen.MultipleChoice:
		for i, o := range t.Options {
			fmt.Fprintf(w, "  %d) %s\n", i+1, o)
		}
	case *taskgen.VisualChoice:
		for i, r := range t.Regions {
			label := r.Label
			if r.Stroke {
				label += " (line)"
			}
			fmt.Fprintf(w, "  %d) %s\n", i+1, label)
		}
	case *taskgen.FreeInput:
		if t.Unit != "" {
			fmt.Fprintf(w, "  (answer in %s)\n", t.Unit)
		}
	}
}

func printResult(w io.Writer, st run.State) {
	if st.Last == nil {
		return
	}
	switch {
	case st.Last.Correct:
		fmt.Fprintln(w, "\033[32m✓ Correct!\033[0m")
	case st.Last.TimedOut:
		fmt.Fprintf(w, "\033[33m⏱ Time's up!\033[0m Answer: %s\n", taskgen.Solution(st.Task))
	default:
		fmt.Fprintf(w, "\033[31m✗ Not quite.\033[0m Answer: %s\n", taskgen.Solution(st.Task))
	}
	if e := st.Task.Common().Explanation; e != "" {
		fmt.Fprintf(w, "Explanation: %s\n", e)
	}
	fmt.Fprintln(w)
}
