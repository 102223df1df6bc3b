package repository

import (
	"context"
	"fmt"
	"time"

	"interview-prep/internal/domain"
	"interview-prep/internal/repository/models"
	"interview-prep/internal/util"

	"github.com/jmoiron/sqlx"
)

// sqlxAnswerRepository implements domain.AnswerRepository using sqlx.
type sqlxAnswerRepository struct {
	db *sqlx.DB
}

// NewSQLXAnswerRepository creates a new instance of sqlxAnswerRepository.
func NewSQLXAnswerRepository(db *sqlx.DB) domain.AnswerRepository {
	return &sqlxAnswerRepository{db: db}
}

// CreateAnswer persists a scored answer for a session.
func (r *sqlxAnswerRepository) CreateAnswer(ctx context.Context, answer *domain.Answer) error {
	m := &models.Answer{
		ID:            answer.ID,
		SessionID:     answer.SessionID,
		QuestionID:    answer.QuestionID,
		Answer:        answer.Answer,
		Transcription: util.StringToNullString(answer.Transcription),
		Score:         answer.Score,
		CreatedAt:     answer.CreatedAt,
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}

	query := `INSERT INTO answers (id, session_id, question_id, answer, transcription, score, created_at)
	          VALUES (:id, :session_id, :question_id, :answer, :transcription, :score, :created_at)`

	executor := GetExecutor(ctx, r.db)
	_, err := executor.NamedExecContext(ctx, query, m)
	if err != nil {
		return fmt.Errorf("failed to create answer: %w", err)
	}

	answer.CreatedAt = m.CreatedAt
	return nil
}

type sessionAnswerRow struct {
	AnswerID string  `db:"answer_id"`
	Question string  `db:"question"`
	Answer   string  `db:"answer"`
	Score    float64 `db:"score"`
}

// GetSessionAnswers returns every answer of a session joined with its
// question text, ordered by submission time.
func (r *sqlxAnswerRepository) GetSessionAnswers(ctx context.Context, sessionID string) ([]domain.SessionAnswer, error) {
	var rows []sessionAnswerRow
	query := `SELECT a.id AS answer_id, q.question AS question, a.answer AS answer, a.score AS score
	          FROM answers a
	          JOIN questions q ON q.id = a.question_id
	          WHERE a.session_id = $1
	          ORDER BY a.created_at ASC`

	executor := GetExecutor(ctx, r.db)
	if err := executor.SelectContext(ctx, &rows, query, sessionID); err != nil {
		return nil, fmt.Errorf("failed to get session answers: %w", err)
	}

	answers := make([]domain.SessionAnswer, 0, len(rows))
	for _, row := range rows {
		answers = append(answers, domain.SessionAnswer{
			AnswerID: row.AnswerID,
			Question: row.Question,
			Answer:   row.Answer,
			Score:    row.Score,
		})
	}
	return answers, nil
}
