package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

var battleEventFields = []string{
	"sequence", "timestamp", "battle_id", "challenger_id", "opponent_id",
	"opponent_name", "topic_id", "wager", "status", "winner_id",
	"challenger_score", "opponent_score",
}

func (r *eventRepo) AppendBattleEvent(ctx context.Context, data BattleEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	insert := builder().Insert("battle_events").
		Columns(battleEventFields...).
		Values(seqNum, nowMillis(), data.BattleID, data.ChallengerID, data.OpponentID,
			data.OpponentName, data.TopicID, data.Wager, data.Status, data.WinnerID,
			data.ChallengerScore, data.OpponentScore)
	if _, err := execQuery(ctx, r.drv, insert); err != nil {
		return fmt.Errorf("save battle event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryBattleEvents(ctx context.Context, opts QueryOpts) ([]BattleEventRecord, error) {
	sel := builder().Select(battleEventFields...).From(entsql.Table("battle_events"))
	if opts.UserID != "" {
		sel = sel.Where(entsql.EQ("challenger_id", opts.UserID))
	}
	sel = applyQueryOpts(sel, opts)

	rows, err := selectQuery(ctx, r.drv, sel)
	if err != nil {
		return nil, fmt.Errorf("query battle events: %w", err)
	}
	defer rows.Close()

	var records []BattleEventRecord
	for rows.Next() {
		var (
			rec BattleEventRecord
			ts  int64
		)
		d := &rec.BattleEventData
		if err := rows.Scan(&rec.Sequence, &ts, &d.BattleID, &d.ChallengerID, &d.OpponentID,
			&d.OpponentName, &d.TopicID, &d.Wager, &d.Status, &d.WinnerID,
			&d.ChallengerScore, &d.OpponentScore); err != nil {
			return nil, fmt.Errorf("scan battle event: %w", err)
		}
		rec.Timestamp = fromMillis(ts)
		records = append(records, rec)
	}
	return records, rows.Err()
}
