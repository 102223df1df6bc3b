package service

import (
	"context"
	"sync"
	"time"

	"interview-prep/internal/domain"
	"interview-prep/internal/dto"

	"github.com/stretchr/testify/mock"
)

// --- MockUserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- MockSessionRepository ---
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) CreateSession(ctx context.Context, session *domain.InterviewSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) GetSessionForUser(ctx context.Context, sessionID, userID string) (*domain.InterviewSession, error) {
	args := m.Called(ctx, sessionID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InterviewSession), args.Error(1)
}

func (m *MockSessionRepository) CompleteSession(ctx context.Context, sessionID string, score float64, completedAt time.Time) error {
	args := m.Called(ctx, sessionID, score, completedAt)
	return args.Error(0)
}

// --- MockQuestionRepository ---
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) CreateQuestion(ctx context.Context, question *domain.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *MockQuestionRepository) GetQuestionByID(ctx context.Context, questionID string) (*domain.Question, error) {
	args := m.Called(ctx, questionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Question), args.Error(1)
}

// --- MockAnswerRepository ---
type MockAnswerRepository struct {
	mock.Mock
}

func (m *MockAnswerRepository) CreateAnswer(ctx context.Context, answer *domain.Answer) error {
	args := m.Called(ctx, answer)
	return args.Error(0)
}

func (m *MockAnswerRepository) GetSessionAnswers(ctx context.Context, sessionID string) ([]domain.SessionAnswer, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SessionAnswer), args.Error(1)
}

// --- MockStatsRepository ---
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) EnsureAndIncrementTotal(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockStatsRepository) RecordCompletion(ctx context.Context, userID string, score float64) error {
	args := m.Called(ctx, userID, score)
	return args.Error(0)
}

// --- MockTransactionManager ---
// Runs the callback directly so repository mocks see the same context.
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(ctx)
}

// --- MockCompletionService ---
type MockCompletionService struct {
	mock.Mock
}

func (m *MockCompletionService) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockCompletionService) CompleteJSON(ctx context.Context, prompt string, out interface{}) error {
	args := m.Called(ctx, prompt, out)
	return args.Error(0)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// passthroughQuestionCache skips caching so interview service tests
// exercise the generate path directly.
type passthroughQuestionCache struct{}

func (passthroughQuestionCache) GetOrGenerate(ctx context.Context, category, difficulty, topic string, generate func(ctx context.Context) (*dto.GeneratedQuestion, error)) (*dto.GeneratedQuestion, error) {
	return generate(ctx)
}

// passthroughTxManager runs the function without a real transaction so
// stateful fakes observe every write directly.
type passthroughTxManager struct{}

func (passthroughTxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// scriptedCompletionService answers CompleteJSON from a caller-supplied
// function, for scenarios where the payload type varies per call.
type scriptedCompletionService struct {
	completeJSONFunc func(ctx context.Context, prompt string, out interface{}) error
}

func (s *scriptedCompletionService) Complete(ctx context.Context, prompt string) (string, error) {
	return "", nil
}

func (s *scriptedCompletionService) CompleteJSON(ctx context.Context, prompt string, out interface{}) error {
	return s.completeJSONFunc(ctx, prompt, out)
}

// inMemoryStore implements the session, question, answer and stats ports over
// shared maps so multi-step scenarios see each other's writes, the way the
// real repositories share one database.
type inMemoryStore struct {
	mu        sync.Mutex
	sessions  map[string]*domain.InterviewSession
	questions map[string]*domain.Question
	answers   []domain.Answer
	totals    map[string]int
	completed map[string]int
	averages  map[string]float64
}

func newInMemoryStore() *inMemoryStore {
	return &inMemoryStore{
		sessions:  make(map[string]*domain.InterviewSession),
		questions: make(map[string]*domain.Question),
		totals:    make(map[string]int),
		completed: make(map[string]int),
		averages:  make(map[string]float64),
	}
}

func (s *inMemoryStore) CreateSession(ctx context.Context, session *domain.InterviewSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *session
	s.sessions[session.ID] = &copied
	return nil
}

func (s *inMemoryStore) GetSessionForUser(ctx context.Context, sessionID, userID string) (*domain.InterviewSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok || session.UserID != userID {
		return nil, nil
	}
	copied := *session
	return &copied, nil
}

func (s *inMemoryStore) CompleteSession(ctx context.Context, sessionID string, score float64, completedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return domain.NewSessionNotFoundError()
	}
	session.Status = domain.SessionCompleted
	session.Score = &score
	session.CompletedAt = &completedAt
	return nil
}

func (s *inMemoryStore) CreateQuestion(ctx context.Context, question *domain.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *question
	s.questions[question.ID] = &copied
	return nil
}

func (s *inMemoryStore) GetQuestionByID(ctx context.Context, questionID string) (*domain.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	question, ok := s.questions[questionID]
	if !ok {
		return nil, nil
	}
	copied := *question
	return &copied, nil
}

func (s *inMemoryStore) CreateAnswer(ctx context.Context, answer *domain.Answer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.answers = append(s.answers, *answer)
	return nil
}

func (s *inMemoryStore) GetSessionAnswers(ctx context.Context, sessionID string) ([]domain.SessionAnswer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []domain.SessionAnswer
	for _, a := range s.answers {
		if a.SessionID != sessionID {
			continue
		}
		item := domain.SessionAnswer{AnswerID: a.ID, Answer: a.Answer, Score: a.Score}
		if q, ok := s.questions[a.QuestionID]; ok {
			item.Question = q.Question
		}
		result = append(result, item)
	}
	return result, nil
}

func (s *inMemoryStore) EnsureAndIncrementTotal(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.totals[userID]++
	return nil
}

func (s *inMemoryStore) RecordCompletion(ctx context.Context, userID string, score float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.completed[userID]++
	s.averages[userID] = score
	return nil
}
