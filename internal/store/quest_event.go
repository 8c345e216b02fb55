package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

var questEventFields = []string{
	"sequence", "timestamp", "run_id", "user_id", "topic_id", "multiplier",
	"timed", "no_cheat_sheet", "correct", "total", "pot", "perfect",
	"coins_awarded", "xp_awarded", "duration_secs",
}

func (r *eventRepo) AppendQuestEvent(ctx context.Context, data QuestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	insert := builder().Insert("quest_events").
		Columns(questEventFields...).
		Values(seqNum, nowMillis(), data.RunID, data.UserID, data.TopicID, data.Multiplier,
			data.Timed, data.NoCheatSheet, data.Correct, data.Total, data.Pot, data.Perfect,
			data.CoinsAwarded, data.XPAwarded, data.DurationSecs)
	if _, err := execQuery(ctx, r.drv, insert); err != nil {
		return fmt.Errorf("save quest event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryQuestEvents(ctx context.Context, opts QueryOpts) ([]QuestEventRecord, error) {
	sel := builder().Select(questEventFields...).From(entsql.Table("quest_events"))
	if opts.UserID != "" {
		sel = sel.Where(entsql.EQ("user_id", opts.UserID))
	}
	sel = applyQueryOpts(sel, opts)

	rows, err := selectQuery(ctx, r.drv, sel)
	if err != nil {
		return nil, fmt.Errorf("query quest events: %w", err)
	}
	defer rows.Close()

	var records []QuestEventRecord
	for rows.Next() {
		var (
			rec QuestEventRecord
			ts  int64
		)
		d := &rec.QuestEventData
		if err := rows.Scan(&rec.Sequence, &ts, &d.RunID, &d.UserID, &d.TopicID, &d.Multiplier,
			&d.Timed, &d.NoCheatSheet, &d.Correct, &d.Total, &d.Pot, &d.Perfect,
			&d.CoinsAwarded, &d.XPAwarded, &d.DurationSecs); err != nil {
			return nil, fmt.Errorf("scan quest event: %w", err)
		}
		rec.Timestamp = fromMillis(ts)
		records = append(records, rec)
	}
	return records, rows.Err()
}
