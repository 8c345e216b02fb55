package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/geoquest/internal/run"
	"github.com/abhisek/geoquest/internal/taskgen"
	"github.com/abhisek/geoquest/internal/topics"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview generated tasks for a topic (no database)",
	Long: `Generate and interactively answer tasks for a topic.

This is a stateless developer tool: no database, no rewards, no events.
Use --seed to reproduce a batch and --answers to print solutions instead
of prompting.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringP("topic", "t", "", "Topic ID or title (empty previews every topic)")
	previewCmd.Flags().Int("count", taskgen.DefaultCount, "Number of tasks to generate")
	previewCmd.Flags().Uint64("seed", 0, "Seed for task generation (0 = random)")
	previewCmd.Flags().Bool("answers", false, "Print solutions without prompting")
}

func runPreview(cmd *cobra.Command, args []string) error {
	topicVal, _ := cmd.Flags().GetString("topic")
	count, _ := cmd.Flags().GetInt("count")
	seed, _ := cmd.Flags().GetUint64("seed")
	answers, _ := cmd.Flags().GetBool("answers")
	if count < 1 {
		return fmt.Errorf("count must be positive, got %d", count)
	}

	selected := topics.All()
	if topicVal != "" {
		t, err := resolveTopic(topicVal)
		if err != nil {
			return err
		}
		selected = []topics.Topic{t}
	}
	if !answers && len(selected) > 1 {
		return fmt.Errorf("interactive preview needs --topic; use --answers to list every topic")
	}

	r := seededRand(seed)
	for _, t := range selected {
		tasks := taskgen.Generate(t.ID, count, r)
		fmt.Printf("Topic: %s · %s (%s)\n\n", t.ID, t.Title, t.Difficulty.Label())
		if answers {
			listTasks(tasks)
			continue
		}
		return quizTasks(tasks)
	}
	return nil
}

func listTasks(tasks []taskgen.Task) {
	for i, task := range tasks {
		fmt.Printf("%2d. [%s] %s\n", i+1, task.Kind(), task.Common().Question)
		fmt.Printf("    → %s\n", taskgen.Solution(task))
		if err := taskgen.Validate(task); err != nil {
			fmt.Printf("    ! %v\n", err)
		}
	}
	fmt.Println()
}

func quizTasks(tasks []taskgen.Task) error {
	lines := readLines(os.Stdin)
	var correct int

	for i, task := range tasks {
		st := previewState(task, i, len(tasks))
		printTask(os.Stdout, st)

		var answer string
		for answer == "" {
			fmt.Print("\nYour answer: ")
			line, ok := <-lines
			if !ok {
				fmt.Println("\n(input closed)")
				fmt.Printf("── Summary: %d/%d correct ──\n", correct, len(tasks))
				return nil
			}
			if strings.TrimSpace(line) == "" {
				fmt.Println("(skipped)")
				break
			}
			a, err := parseAnswer(task, line)
			if err != nil {
				fmt.Println(err)
				continue
			}
			answer = a
		}
		if answer == "" {
			fmt.Println()
			continue
		}

		if taskgen.IsCorrect(task, answer) {
			correct++
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %s\n", taskgen.Solution(task))
		}
		if e := task.Common().Explanation; e != "" {
			fmt.Printf("Explanation: %s\n", e)
		}
		fmt.Println()
	}

	fmt.Printf("── Summary: %d/%d correct ──\n", correct, len(tasks))
	return nil
}

// previewState wraps a bare task so printTask can render it.
func previewState(task taskgen.Task, index, total int) run.State {
	return run.State{Phase: run.PhaseActive, Index: index, Total: total, Task: task}
}
