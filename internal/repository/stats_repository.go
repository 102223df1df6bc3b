package repository

import (
	"context"
	"fmt"
	"time"

	"interview-prep/internal/domain"

	"github.com/jmoiron/sqlx"
)

// sqlxStatsRepository implements domain.StatsRepository using sqlx.
type sqlxStatsRepository struct {
	db *sqlx.DB
}

// NewSQLXStatsRepository creates a new instance of sqlxStatsRepository.
func NewSQLXStatsRepository(db *sqlx.DB) domain.StatsRepository {
	return &sqlxStatsRepository{db: db}
}

// EnsureAndIncrementTotal creates the user's stats row on first use and
// bumps the session counter, in one atomic upsert. Concurrent session
// starts serialize on the user_id conflict target.
func (r *sqlxStatsRepository) EnsureAndIncrementTotal(ctx context.Context, userID string) error {
	query := `INSERT INTO user_stats (user_id, total_sessions, completed_sessions, average_score, daily_streak, behavioral_score, technical_score, badges, updated_at)
	          VALUES ($1, 1, 0, 0, 0, 0, 0, '[]', $2)
	          ON CONFLICT (user_id)
	          DO UPDATE SET total_sessions = user_stats.total_sessions + 1, updated_at = $2`

	executor := GetExecutor(ctx, r.db)
	if _, err := executor.ExecContext(ctx, query, userID, time.Now()); err != nil {
		return fmt.Errorf("failed to increment total sessions: %w", err)
	}
	return nil
}

// RecordCompletion bumps the completed counter and overwrites the average
// with the finished session's mean score.
func (r *sqlxStatsRepository) RecordCompletion(ctx context.Context, userID string, score float64) error {
	query := `UPDATE user_stats
	          SET completed_sessions = completed_sessions + 1, average_score = $2, updated_at = $3
	          WHERE user_id = $1`

	executor := GetExecutor(ctx, r.db)
	if _, err := executor.ExecContext(ctx, query, userID, score, time.Now()); err != nil {
		return fmt.Errorf("failed to record session completion: %w", err)
	}
	return nil
}
