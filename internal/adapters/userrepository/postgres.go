package userrepository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/startide-game/engine/internal/domain"
	"github.com/startide-game/engine/internal/reporting"
)

type Postgres struct {
	db     *sqlx.DB
	schema string
	tracer trace.Tracer
}

func NewPostgres(db *sqlx.DB, schema string) *Postgres {
	tracer := otel.Tracer("startide/userrepository/postgres")
	return &Postgres{
		db:     db,
		schema: schema,
		tracer: tracer,
	}
}

type dbUser struct {
	ID                  string `db:"id"`
	Username            string `db:"username"`
	Credits             int    `db:"credits"`
	IsEstablishedPlayer bool   `db:"is_established_player"`
	Deleted             bool   `db:"deleted"`
	Rank                int    `db:"rank"`
	Level               int    `db:"level"`
	Victories           int    `db:"victories"`
	Victories1v1        int    `db:"victories_1v1"`
	Defeated1v1         int    `db:"defeated_1v1"`
	Completed           int    `db:"completed"`
	EloRating           *int   `db:"elo_rating"`
}

type dbBadge struct {
	UserID string `db:"user_id"`
	Badge  string `db:"badge"`
	Count  int    `db:"count"`
}

func (p *Postgres) GetByIDs(ctx context.Context, ids []string) (map[string]*domain.User, error) {
	ctx, span := p.tracer.Start(ctx, "Postgres.GetByIDs")
	defer span.End()

	users := make(map[string]*domain.User, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	rows, err := p.db.QueryxContext(
		ctx,
		fmt.Sprintf(`SELECT id, username, credits, is_established_player, deleted,
			rank, level, victories, victories_1v1, defeated_1v1, completed, elo_rating
		FROM %s.users
		WHERE id = ANY($1) AND NOT deleted`,
			pq.QuoteIdentifier(p.schema)),
		pq.Array(ids),
	)
	if err != nil {
		err := fmt.Errorf("failed to query users: %w", err)
		reporting.Report(ctx, err)
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var user dbUser
		if err := rows.StructScan(&user); err != nil {
			err := fmt.Errorf("failed to scan user: %w", err)
			reporting.Report(ctx, err)
			return nil, err
		}
		users[user.ID] = &domain.User{
			ID:                  user.ID,
			Username:            user.Username,
			Credits:             user.Credits,
			IsEstablishedPlayer: user.IsEstablishedPlayer,
			Deleted:             user.Deleted,
			Achievements: domain.UserAchievements{
				Rank:         user.Rank,
				Level:        user.Level,
				Victories:    user.Victories,
				Victories1v1: user.Victories1v1,
				Defeated1v1:  user.Defeated1v1,
				Completed:    user.Completed,
				EloRating:    user.EloRating,
			},
		}
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("failed to iterate users: %w", err)
		reporting.Report(ctx, err)
		return nil, err
	}

	if err := p.loadBadges(ctx, users); err != nil {
		return nil, err
	}

	return users, nil
}

func (p *Postgres) loadBadges(ctx context.Context, users map[string]*domain.User) error {
	if len(users) == 0 {
		return nil
	}

	ids := make([]string, 0, len(users))
	for id := range users {
		ids = append(ids, id)
	}

	rows, err := p.db.QueryxContext(
		ctx,
		fmt.Sprintf(`SELECT user_id, badge, count FROM %s.user_badges WHERE user_id = ANY($1)`,
			pq.QuoteIdentifier(p.schema)),
		pq.Array(ids),
	)
	if err != nil {
		err := fmt.Errorf("failed to query badges: %w", err)
		reporting.Report(ctx, err)
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var badge dbBadge
		if err := rows.StructScan(&badge); err != nil {
			err := fmt.Errorf("failed to scan badge: %w", err)
			reporting.Report(ctx, err)
			return err
		}
		user := users[badge.UserID]
		if user == nil {
			continue
		}
		if user.Achievements.Badges == nil {
			user.Achievements.Badges = map[string]int{}
		}
		user.Achievements.Badges[badge.Badge] = badge.Count
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("failed to iterate badges: %w", err)
		reporting.Report(ctx, err)
		return err
	}

	return nil
}

func (p *Postgres) SaveAchievements(ctx context.Context, users []*domain.User) error {
	ctx, span := p.tracer.Start(ctx, "Postgres.SaveAchievements")
	defer span.End()

	tx, err := p.db.BeginTxx(ctx, nil)
	if err != nil {
		err := fmt.Errorf("failed to begin transaction: %w", err)
		reporting.Report(ctx, err)
		return err
	}
	defer tx.Rollback()

	updateUser := fmt.Sprintf(`UPDATE %s.users SET
			credits = $2,
			is_established_player = $3,
			rank = $4,
			level = $5,
			victories = $6,
			victories_1v1 = $7,
			defeated_1v1 = $8,
			completed = $9,
			elo_rating = $10
		WHERE id = $1`,
		pq.QuoteIdentifier(p.schema))

	upsertBadge := fmt.Sprintf(`INSERT INTO %s.user_badges (user_id, badge, count)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, badge)
		DO UPDATE SET count = EXCLUDED.count`,
		pq.QuoteIdentifier(p.schema))

	for _, user := range users {
		if user == nil {
			continue
		}

		_, err := tx.ExecContext(
			ctx,
			updateUser,
			user.ID,
			user.Credits,
			user.IsEstablishedPlayer,
			user.Achievements.Rank,
			user.Achievements.Level,
			user.Achievements.Victories,
			user.Achievements.Victories1v1,
			user.Achievements.Defeated1v1,
			user.Achievements.Completed,
			user.Achievements.EloRating,
		)
		if err != nil {
			err := fmt.Errorf("failed to update user: %w", err)
			reporting.Report(ctx, err, map[string]string{
				"userID": user.ID,
			})
			return err
		}

		for badge, count := range user.Achievements.Badges {
			_, err := tx.ExecContext(ctx, upsertBadge, user.ID, badge, count)
			if err != nil {
				err := fmt.Errorf("failed to upsert badge: %w", err)
				reporting.Report(ctx, err, map[string]string{
					"userID": user.ID,
					"badge":  badge,
				})
				return err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		err := fmt.Errorf("failed to commit transaction: %w", err)
		reporting.Report(ctx, err)
		return err
	}

	return nil
}
