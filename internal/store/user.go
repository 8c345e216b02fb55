package store

import (
	"context"
	"errors"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

var userFields = []string{"id", "username", "avatar", "coins", "total_earned", "xp", "is_bot", "created_at"}

// userRepo implements UserRepo.
type userRepo struct {
	drv *entsql.Driver
}

func (r *userRepo) EnsureUser(ctx context.Context, username string, startingCoins int) (*User, error) {
	u, err := r.findOne(ctx, entsql.EQ("username", username))
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	insert := builder().Insert("users").
		Columns("id", "username", "avatar", "coins", "total_earned", "xp", "is_bot", "created_at").
		Values(uuid.New().String(), username, "", startingCoins, 0, 0, false, nowMillis()).
		OnConflict(entsql.ConflictColumns("username"), entsql.DoNothing())
	if _, err := execQuery(ctx, r.drv, insert); err != nil {
		return nil, fmt.Errorf("create user %q: %w", username, err)
	}
	return r.findOne(ctx, entsql.EQ("username", username))
}

func (r *userRepo) Get(ctx context.Context, id string) (*User, error) {
	return r.findOne(ctx, entsql.EQ("id", id))
}

func (r *userRepo) ApplyDelta(ctx context.Context, id string, coins, xp int) (*User, error) {
	update := builder().Update("users").
		Set("coins", entsql.Expr("MAX(coins + ?, 0)", coins)).
		Set("xp", entsql.Expr("MAX(xp + ?, 0)", xp)).
		Where(entsql.EQ("id", id))
	if coins > 0 {
		update = update.Add("total_earned", coins)
	}

	res, err := execQuery(ctx, r.drv, update)
	if err != nil {
		return nil, fmt.Errorf("apply delta to %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, fmt.Errorf("apply delta to %s: %w", id, ErrNotFound)
	}
	return r.Get(ctx, id)
}

func (r *userRepo) MarkCompleted(ctx context.Context, userID, topicID string) error {
	insert := builder().Insert("completed_topics").
		Columns("user_id", "topic_id", "completed_at").
		Values(userID, topicID, nowMillis()).
		OnConflict(entsql.ConflictColumns("user_id", "topic_id"), entsql.DoNothing())
	if _, err := execQuery(ctx, r.drv, insert); err != nil {
		return fmt.Errorf("mark %s completed: %w", topicID, err)
	}
	return nil
}

func (r *userRepo) CompletedTopics(ctx context.Context, userID string) ([]string, error) {
	sel := builder().Select("topic_id").
		From(entsql.Table("completed_topics")).
		Where(entsql.EQ("user_id", userID)).
		OrderBy("topic_id")
	rows, err := selectQuery(ctx, r.drv, sel)
	if err != nil {
		return nil, fmt.Errorf("query completed topics: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan completed topic: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *userRepo) SeedBots(ctx context.Context, bots []User) error {
	for _, b := range bots {
		insert := builder().Insert("users").
			Columns("id", "username", "avatar", "coins", "total_earned", "xp", "is_bot", "created_at").
			Values(b.ID, b.Username, b.Avatar, b.Coins, 0, b.XP, true, nowMillis()).
			OnConflict(entsql.DoNothing())
		if _, err := execQuery(ctx, r.drv, insert); err != nil {
			return fmt.Errorf("seed bot %s: %w", b.ID, err)
		}
	}
	return nil
}

func (r *userRepo) Leaderboard(ctx context.Context, limit int) ([]User, error) {
	sel := builder().Select(userFields...).
		From(entsql.Table("users")).
		OrderBy(entsql.Desc("xp"), "username")
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	rows, err := selectQuery(ctx, r.drv, sel)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (r *userRepo) findOne(ctx context.Context, p *entsql.Predicate) (*User, error) {
	sel := builder().Select(userFields...).
		From(entsql.Table("users")).
		Where(p).
		Limit(1)
	rows, err := selectQuery(ctx, r.drv, sel)
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("query user: %w", err)
		}
		return nil, ErrNotFound
	}
	return scanUser(rows)
}

func scanUser(rows *entsql.Rows) (*User, error) {
	var (
		u         User
		createdAt int64
	)
	if err := rows.Scan(&u.ID, &u.Username, &u.Avatar, &u.Coins, &u.TotalEarned, &u.XP, &u.IsBot, &createdAt); err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	u.CreatedAt = fromMillis(createdAt)
	return &u, nil
}
