package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"medinabot/internal/domain"
)

// ActivityRepo implements repository.ActivitySink
type ActivityRepo struct {
	db *sqlx.DB
}

// NewActivityRepo creates a new activity repository
func NewActivityRepo(db *sqlx.DB) *ActivityRepo {
	return &ActivityRepo{db: db}
}

// Append stores one activity entry
func (r *ActivityRepo) Append(ctx context.Context, entry domain.ActivityEntry) error {
	query := `
		INSERT INTO activity_log (user_id, action, created_at)
		VALUES (:user_id, :action, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, entry)
	return err
}

// CleanOldEntries removes entries older than the given number of days
func (r *ActivityRepo) CleanOldEntries(ctx context.Context, days int) error {
	query := `
		DELETE FROM activity_log
		WHERE created_at < NOW() - ($1 * INTERVAL '1 day')
	`
	_, err := r.db.ExecContext(ctx, query, days)
	return err
}
