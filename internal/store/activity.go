package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

// activityRepo implements ActivityRepo.
type activityRepo struct {
	drv *entsql.Driver
}

func (r *activityRepo) AppendActivity(ctx context.Context, a Activity) error {
	ts := nowMillis()
	if !a.Timestamp.IsZero() {
		ts = a.Timestamp.UnixMilli()
	}

	insert := builder().Insert("activity_log").
		Columns("timestamp", "username", "action", "details").
		Values(ts, a.Username, a.Action, a.Details)
	if _, err := execQuery(ctx, r.drv, insert); err != nil {
		return fmt.Errorf("save activity: %w", err)
	}
	return prune(ctx, r.drv, "activity_log", ActivityLimit)
}

// RecentActivity returns up to limit entries, newest first.
func (r *activityRepo) RecentActivity(ctx context.Context, limit int) ([]Activity, error) {
	sel := builder().Select("id", "timestamp", "username", "action", "details").
		From(entsql.Table("activity_log")).
		OrderBy(entsql.Desc("id"))
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	rows, err := selectQuery(ctx, r.drv, sel)
	if err != nil {
		return nil, fmt.Errorf("query activity: %w", err)
	}
	defer rows.Close()

	var out []Activity
	for rows.Next() {
		var (
			a  Activity
			ts int64
		)
		if err := rows.Scan(&a.ID, &ts, &a.Username, &a.Action, &a.Details); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		a.Timestamp = fromMillis(ts)
		out = append(out, a)
	}
	return out, rows.Err()
}
