package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"interview-prep/internal/domain"
	"interview-prep/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// sqlxQuestionRepository implements domain.QuestionRepository using sqlx.
type sqlxQuestionRepository struct {
	db *sqlx.DB
}

// NewSQLXQuestionRepository creates a new instance of sqlxQuestionRepository.
func NewSQLXQuestionRepository(db *sqlx.DB) domain.QuestionRepository {
	return &sqlxQuestionRepository{db: db}
}

func toDomainQuestion(m *models.Question) *domain.Question {
	if m == nil {
		return nil
	}
	q := &domain.Question{
		ID:         m.ID,
		Category:   m.Category,
		Difficulty: m.Difficulty,
		Question:   m.Question,
		Tags:       []string(m.Tags),
		CreatedAt:  m.CreatedAt,
	}
	if m.Company.Valid {
		q.Company = m.Company.String
	}
	return q
}

// CreateQuestion persists a question so answers can reference it later.
func (r *sqlxQuestionRepository) CreateQuestion(ctx context.Context, question *domain.Question) error {
	m := &models.Question{
		ID:         question.ID,
		Category:   question.Category,
		Difficulty: question.Difficulty,
		Question:   question.Question,
		Tags:       models.StringSlice(question.Tags),
		CreatedAt:  question.CreatedAt,
	}
	if question.Company != "" {
		m.Company = sql.NullString{String: question.Company, Valid: true}
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}

	query := `INSERT INTO questions (id, category, difficulty, question, company, tags, created_at)
	          VALUES (:id, :category, :difficulty, :question, :company, :tags, :created_at)`

	executor := GetExecutor(ctx, r.db)
	_, err := executor.NamedExecContext(ctx, query, m)
	if err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}

	question.CreatedAt = m.CreatedAt
	return nil
}

// GetQuestionByID retrieves a question by ID. Returns (nil, nil) when no
// question matches.
func (r *sqlxQuestionRepository) GetQuestionByID(ctx context.Context, questionID string) (*domain.Question, error) {
	var m models.Question
	query := `SELECT id, category, difficulty, question, company, tags, created_at FROM questions WHERE id = $1`

	executor := GetExecutor(ctx, r.db)
	err := executor.GetContext(ctx, &m, query, questionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question by id: %w", err)
	}
	return toDomainQuestion(&m), nil
}
