package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"interview-prep/internal/domain"
	"interview-prep/internal/repository/models"
	"interview-prep/internal/util"

	"github.com/jmoiron/sqlx"
)

// sqlxSessionRepository implements domain.SessionRepository using sqlx.
type sqlxSessionRepository struct {
	db *sqlx.DB
}

// NewSQLXSessionRepository creates a new instance of sqlxSessionRepository.
func NewSQLXSessionRepository(db *sqlx.DB) domain.SessionRepository {
	return &sqlxSessionRepository{db: db}
}

func toDomainSession(m *models.InterviewSession) *domain.InterviewSession {
	if m == nil {
		return nil
	}
	s := &domain.InterviewSession{
		ID:        m.ID,
		UserID:    m.UserID,
		Type:      m.Type,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
	}
	if m.Company.Valid {
		s.Company = m.Company.String
	}
	if m.Score.Valid {
		score := m.Score.Float64
		s.Score = &score
	}
	if m.CompletedAt.Valid {
		completedAt := m.CompletedAt.Time
		s.CompletedAt = &completedAt
	}
	return s
}

// CreateSession inserts a new interview session row.
func (r *sqlxSessionRepository) CreateSession(ctx context.Context, session *domain.InterviewSession) error {
	m := &models.InterviewSession{
		ID:          session.ID,
		UserID:      session.UserID,
		Type:        session.Type,
		Company:     util.StringToNullString(session.Company),
		Status:      session.Status,
		Score:       util.FloatPtrToNullFloat64(session.Score),
		CreatedAt:   session.CreatedAt,
		CompletedAt: util.TimePtrToNullTime(session.CompletedAt),
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}

	query := `INSERT INTO interview_sessions (id, user_id, type, company, status, score, created_at, completed_at)
	          VALUES (:id, :user_id, :type, :company, :status, :score, :created_at, :completed_at)`

	executor := GetExecutor(ctx, r.db)
	_, err := executor.NamedExecContext(ctx, query, m)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	session.CreatedAt = m.CreatedAt
	return nil
}

// GetSessionForUser retrieves a session by ID scoped to its owner. The
// user_id predicate is part of the query so a foreign session is
// indistinguishable from a missing one. Returns (nil, nil) when no row
// matches.
func (r *sqlxSessionRepository) GetSessionForUser(ctx context.Context, sessionID, userID string) (*domain.InterviewSession, error) {
	var m models.InterviewSession
	query := `SELECT id, user_id, type, company, status, score, created_at, completed_at
	          FROM interview_sessions WHERE id = $1 AND user_id = $2`

	executor := GetExecutor(ctx, r.db)
	err := executor.GetContext(ctx, &m, query, sessionID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return toDomainSession(&m), nil
}

// CompleteSession marks a session completed with its final score in a
// single UPDATE.
func (r *sqlxSessionRepository) CompleteSession(ctx context.Context, sessionID string, score float64, completedAt time.Time) error {
	query := `UPDATE interview_sessions SET status = $1, score = $2, completed_at = $3 WHERE id = $4`

	executor := GetExecutor(ctx, r.db)
	result, err := executor.ExecContext(ctx, query, domain.SessionCompleted, score, completedAt, sessionID)
	if err != nil {
		return fmt.Errorf("failed to complete session: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check completed session rows: %w", err)
	}
	if rows == 0 {
		return domain.NewSessionNotFoundError()
	}
	return nil
}
