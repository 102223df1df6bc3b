package domain

import (
	"context"
	"time"
)

// UserRepository defines the interface for user data operations.
// Lookups return (nil, nil) when no row matches; services translate that
// into the caller-appropriate error.
type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, userID string) (*User, error)
}

// SessionRepository defines the interface for interview session persistence.
// GetSessionForUser filters by both id and owner in a single query so an
// ownership miss is indistinguishable from a missing session.
type SessionRepository interface {
	CreateSession(ctx context.Context, session *InterviewSession) error
	GetSessionForUser(ctx context.Context, sessionID, userID string) (*InterviewSession, error)
	CompleteSession(ctx context.Context, sessionID string, score float64, completedAt time.Time) error
}

// QuestionRepository defines the interface for the shared question bank.
type QuestionRepository interface {
	CreateQuestion(ctx context.Context, question *Question) error
	GetQuestionByID(ctx context.Context, questionID string) (*Question, error)
}

// AnswerRepository defines the interface for submitted answers.
type AnswerRepository interface {
	CreateAnswer(ctx context.Context, answer *Answer) error
	GetSessionAnswers(ctx context.Context, sessionID string) ([]SessionAnswer, error)
}

// StatsRepository exposes the only mutations allowed on UserStats. Both
// operations are single atomic statements so concurrent session starts or
// completions by the same user cannot lose updates.
type StatsRepository interface {
	EnsureAndIncrementTotal(ctx context.Context, userID string) error
	RecordCompletion(ctx context.Context, userID string, score float64) error
}

// TransactionManager runs a function within a database transaction.
// Repositories participating in the transaction pick it up from the context.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
