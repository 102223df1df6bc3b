package repository

import (
	"context"
	"testing"

	"interview-prep/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestAnswerRepository_CreateAnswer(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXAnswerRepository(db)

	mock.ExpectExec(`INSERT INTO answers`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	answer := &domain.Answer{
		ID:         "answer1",
		SessionID:  "session1",
		QuestionID: "question1",
		Answer:     "my answer",
		Score:      7.5,
	}
	err := repo.CreateAnswer(context.Background(), answer)
	assert.NoError(t, err)
	assert.False(t, answer.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnswerRepository_GetSessionAnswers(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXAnswerRepository(db)

	rows := sqlmock.NewRows([]string{"answer_id", "question", "answer", "score"}).
		AddRow("a1", "Q1", "first answer", 8.0).
		AddRow("a2", "Q2", "second answer", 6.0)

	mock.ExpectQuery(`(?s)SELECT .* FROM answers a\s+JOIN questions q ON q\.id = a\.question_id\s+WHERE a\.session_id = \$1\s+ORDER BY a\.created_at`).
		WithArgs("session1").
		WillReturnRows(rows)

	answers, err := repo.GetSessionAnswers(context.Background(), "session1")
	assert.NoError(t, err)
	assert.Len(t, answers, 2)
	assert.Equal(t, "Q1", answers[0].Question)
	assert.Equal(t, 8.0, answers[0].Score)
	assert.Equal(t, "a2", answers[1].AnswerID)
}

func TestAnswerRepository_GetSessionAnswers_Empty(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXAnswerRepository(db)

	mock.ExpectQuery(`(?s)SELECT .* FROM answers a`).
		WithArgs("session1").
		WillReturnRows(sqlmock.NewRows([]string{"answer_id", "question", "answer", "score"}))

	answers, err := repo.GetSessionAnswers(context.Background(), "session1")
	assert.NoError(t, err)
	assert.Empty(t, answers)
}
