package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/geoquest/internal/hints"
	"github.com/abhisek/geoquest/internal/llm"
	"github.com/abhisek/geoquest/internal/randx"
	"github.com/abhisek/geoquest/internal/store"
	"github.com/abhisek/geoquest/internal/taskgen"
	"github.com/abhisek/geoquest/internal/topics"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect and test the hint LLM",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		events, err := d.store.EventRepo().QueryLLMEvents(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No LLM events found.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-10s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 96))
		for _, e := range events {
			if purpose != "" && e.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			fmt.Printf("%-5d  %-19s  %-10s  %-28s  %-6d  %-6d  %-7d  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				truncate(e.Purpose, 10),
				truncate(e.Model, 28),
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "View full request/response for an LLM event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		e, err := findLLMEvent(cmd.Context(), d.store.EventRepo(), id)
		if err != nil {
			return err
		}

		sep := strings.Repeat("─", 60)
		fmt.Printf("ID:        %d\n", e.ID)
		fmt.Printf("Time:      %s\n", e.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Provider:  %s\n", e.Provider)
		fmt.Printf("Model:     %s\n", e.Model)
		fmt.Printf("Purpose:   %s\n", e.Purpose)
		fmt.Printf("Tokens:    %d in / %d out\n", e.InputTokens, e.OutputTokens)
		fmt.Printf("Latency:   %dms\n", e.LatencyMs)
		fmt.Printf("Success:   %v\n", e.Success)
		if e.ErrorMessage != "" {
			fmt.Printf("Error:     %s\n", e.ErrorMessage)
		}

		for _, part := range []struct{ name, body string }{
			{"REQUEST", e.RequestBody},
			{"RESPONSE", e.ResponseBody},
		} {
			fmt.Println(sep)
			fmt.Println(part.name)
			fmt.Println(sep)
			if part.body != "" {
				fmt.Println(part.body)
			} else {
				fmt.Println("(not captured)")
			}
		}
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated LLM token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		stats, err := d.store.EventRepo().LLMUsageByPurpose(cmd.Context())
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if len(stats) == 0 {
			fmt.Println("No LLM usage recorded yet.")
			return nil
		}

		line := strings.Repeat("─", 90)
		fmt.Println(line)
		fmt.Printf("%-10s  %-28s  %6s  %5s  %9s  %9s  %7s  %9s\n",
			"Purpose", "Model", "Calls", "Fail", "Input", "Output", "Avg Ms", "Cost")
		fmt.Println(line)

		var (
			totalCalls, totalIn, totalOut int
			totalCost                     float64
			unknown                       []string
		)
		for _, st := range stats {
			cost := "?"
			if usd, ok := llm.EstimateCost(st.Model, st.InputTokens, st.OutputTokens); ok {
				cost = formatCost(usd)
				totalCost += usd
			} else {
				unknown = append(unknown, st.Model)
			}
			fmt.Printf("%-10s  %-28s  %6d  %5d  %9d  %9d  %7d  %9s\n",
				truncate(st.Purpose, 10), truncate(st.Model, 28), st.Requests, st.Failures,
				st.InputTokens, st.OutputTokens, st.AvgLatencyMs, cost)
			totalCalls += st.Requests
			totalIn += st.InputTokens
			totalOut += st.OutputTokens
		}

		fmt.Println(line)
		label := "TOTAL"
		if len(unknown) > 0 {
			label = "TOTAL (partial)"
		}
		fmt.Printf("%-40s  %6d  %5s  %9d  %9d  %7s  %9s\n",
			label, totalCalls, "", totalIn, totalOut, "", formatCost(totalCost))
		if len(unknown) > 0 {
			fmt.Printf("\nPricing unavailable for: %s\n", strings.Join(unknown, ", "))
		}
		return nil
	},
}

var llmTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Request one hint from the configured provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		topicVal, _ := cmd.Flags().GetString("topic")
		topic, err := resolveTopic(topicVal)
		if err != nil {
			return err
		}

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		if !d.cfg.LLM.Enabled() {
			return fmt.Errorf("no LLM provider configured; set GEOQUEST_LLM_PROVIDER or a provider API key")
		}
		provider, err := llm.NewProvider(cmd.Context(), d.cfg.LLM, d.store.EventRepo(), d.log)
		if err != nil {
			return err
		}

		question := taskgen.Generate(topic.ID, 1, randx.Fresh())[0].Common().Question
		fmt.Printf("Provider:  %s (%s)\n", d.cfg.LLM.Provider, provider.ModelID())
		fmt.Printf("Topic:     %s\n", topic.Title)
		fmt.Printf("Question:  %s\n", question)

		svc := hints.NewService(provider, hints.DefaultConfig(), d.log)
		start := time.Now()
		h, err := svc.Hint(llm.WithPurpose(cmd.Context(), llm.PurposeProbe), topic.Title, question)
		if err != nil {
			return err
		}
		fmt.Printf("Hint:      %s\n", h.Text)
		fmt.Printf("Source:    %s in %s\n", h.Source, time.Since(start).Round(time.Millisecond))
		if h.Source != hints.SourceLLM {
			return fmt.Errorf("provider call failed; see the log for details")
		}
		return nil
	},
}

// findLLMEvent scans the stored LLM events for id.
func findLLMEvent(ctx context.Context, repo store.EventRepo, id int) (*store.LLMRequestEventRecord, error) {
	events, err := repo.QueryLLMEvents(ctx, store.QueryOpts{})
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	for i := range events {
		if events[i].ID == id {
			return &events[i], nil
		}
	}
	return nil, fmt.Errorf("event %d not found", id)
}

func truncate(s string, max int) string {
	if len([]rune(s)) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. hint)")
	llmTestCmd.Flags().StringP("topic", "t", topics.Angles, "Topic ID or title to ask about")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
	llmCmd.AddCommand(llmTestCmd)
}
