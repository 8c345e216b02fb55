package store

import (
	"context"
	"fmt"
	"slices"

	entsql "entgo.io/ent/dialect/sql"
)

// messageRepo implements MessageRepo.
type messageRepo struct {
	drv *entsql.Driver
}

func (r *messageRepo) AppendMessage(ctx context.Context, msg Message) error {
	kind := msg.Kind
	if kind == "" {
		kind = MessageSystem
	}
	ts := nowMillis()
	if !msg.Timestamp.IsZero() {
		ts = msg.Timestamp.UnixMilli()
	}

	insert := builder().Insert("messages").
		Columns("kind", "username", "text", "timestamp").
		Values(kind, msg.Username, msg.Text, ts)
	if _, err := execQuery(ctx, r.drv, insert); err != nil {
		return fmt.Errorf("save message: %w", err)
	}
	return prune(ctx, r.drv, "messages", MessageLimit)
}

// RecentMessages returns up to limit messages, oldest first.
func (r *messageRepo) RecentMessages(ctx context.Context, limit int) ([]Message, error) {
	sel := builder().Select("id", "kind", "username", "text", "timestamp").
		From(entsql.Table("messages")).
		OrderBy(entsql.Desc("id"))
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	rows, err := selectQuery(ctx, r.drv, sel)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	var msgs []Message
	for rows.Next() {
		var (
			m  Message
			ts int64
		)
		if err := rows.Scan(&m.ID, &m.Kind, &m.Username, &m.Text, &ts); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		m.Timestamp = fromMillis(ts)
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	slices.Reverse(msgs)
	return msgs, nil
}
