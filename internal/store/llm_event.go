package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

var llmEventFields = []string{
	"id", "sequence", "timestamp", "provider", "model", "purpose",
	"input_tokens", "output_tokens", "latency_ms", "success",
	"error_message", "request_body", "response_body",
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	insert := builder().Insert("llm_request_events").
		Columns(llmEventFields[1:]...).
		Values(seqNum, nowMillis(), data.Provider, data.Model, data.Purpose,
			data.InputTokens, data.OutputTokens, data.LatencyMs, data.Success,
			data.ErrorMessage, data.RequestBody, data.ResponseBody)
	if _, err := execQuery(ctx, r.drv, insert); err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error) {
	sel := applyQueryOpts(
		builder().Select(llmEventFields...).From(entsql.Table("llm_request_events")),
		opts,
	)
	rows, err := selectQuery(ctx, r.drv, sel)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	defer rows.Close()

	var records []LLMRequestEventRecord
	for rows.Next() {
		var (
			rec LLMRequestEventRecord
			ts  int64
		)
		d := &rec.LLMRequestEventData
		if err := rows.Scan(&rec.ID, &rec.Sequence, &ts, &d.Provider, &d.Model, &d.Purpose,
			&d.InputTokens, &d.OutputTokens, &d.LatencyMs, &d.Success,
			&d.ErrorMessage, &d.RequestBody, &d.ResponseBody); err != nil {
			return nil, fmt.Errorf("scan LLM event: %w", err)
		}
		rec.Timestamp = fromMillis(ts)
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error) {
	sel := builder().Select(
		"purpose",
		"model",
		entsql.Count("*"),
		"SUM(CASE WHEN success THEN 0 ELSE 1 END)",
		entsql.Sum("input_tokens"),
		entsql.Sum("output_tokens"),
		"CAST(AVG(latency_ms) AS INTEGER)",
	).
		From(entsql.Table("llm_request_events")).
		GroupBy("purpose", "model").
		OrderBy("purpose", "model")

	rows, err := selectQuery(ctx, r.drv, sel)
	if err != nil {
		return nil, fmt.Errorf("query LLM usage: %w", err)
	}
	defer rows.Close()

	var stats []LLMUsageStats
	for rows.Next() {
		var s LLMUsageStats
		if err := rows.Scan(&s.Purpose, &s.Model, &s.Requests, &s.Failures,
			&s.InputTokens, &s.OutputTokens, &s.AvgLatencyMs); err != nil {
			return nil, fmt.Errorf("scan LLM usage: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
