package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"interview-prep/internal/domain"
	"interview-prep/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestInterviewService(
	sessionRepo *MockSessionRepository,
	questionRepo *MockQuestionRepository,
	answerRepo *MockAnswerRepository,
	statsRepo *MockStatsRepository,
	completion *MockCompletionService,
) InterviewService {
	txManager := new(MockTransactionManager)
	txManager.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	return NewInterviewService(sessionRepo, questionRepo, answerRepo, statsRepo, txManager, completion, passthroughQuestionCache{})
}

func TestInterviewService_StartSession(t *testing.T) {
	sessionRepo := new(MockSessionRepository)
	statsRepo := new(MockStatsRepository)
	svc := newTestInterviewService(sessionRepo, new(MockQuestionRepository), new(MockAnswerRepository), statsRepo, new(MockCompletionService))

	sessionRepo.On("CreateSession", mock.Anything, mock.MatchedBy(func(s *domain.InterviewSession) bool {
		return s.UserID == "user123" && s.Type == "behavioral" && s.Status == domain.SessionInProgress && s.ID != ""
	})).Return(nil)
	statsRepo.On("EnsureAndIncrementTotal", mock.Anything, "user123").Return(nil)

	resp, err := svc.StartSession(context.Background(), "user123", dto.StartSessionRequest{Type: "behavioral"})

	assert.NoError(t, err)
	assert.Equal(t, domain.SessionInProgress, resp.Status)
	assert.Nil(t, resp.Score)
	sessionRepo.AssertExpectations(t)
	statsRepo.AssertExpectations(t)
}

func TestInterviewService_StartSession_MissingType(t *testing.T) {
	svc := newTestInterviewService(new(MockSessionRepository), new(MockQuestionRepository), new(MockAnswerRepository), new(MockStatsRepository), new(MockCompletionService))

	_, err := svc.StartSession(context.Background(), "user123", dto.StartSessionRequest{})

	var validationErrs domain.ValidationErrors
	assert.True(t, errors.As(err, &validationErrs))
}

func TestInterviewService_GenerateQuestion_PersistsAndReturns(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	completion := new(MockCompletionService)
	svc := newTestInterviewService(new(MockSessionRepository), questionRepo, new(MockAnswerRepository), new(MockStatsRepository), completion)

	completion.On("CompleteJSON", mock.Anything, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		payload := args.Get(2).(*generatedQuestionPayload)
		payload.Question = "Tell me about a time you led a project."
		payload.Context = "Focus on leadership and outcomes."
		payload.ExpectedPoints = []string{"ownership", "results"}
	}).Return(nil)
	questionRepo.On("CreateQuestion", mock.Anything, mock.MatchedBy(func(q *domain.Question) bool {
		return q.Question == "Tell me about a time you led a project." && q.Category == "behavioral"
	})).Return(nil)

	resp, err := svc.GenerateQuestion(context.Background(), dto.GenerateQuestionRequest{
		Category:   "behavioral",
		Difficulty: "medium",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Tell me about a time you led a project.", resp.Text)
	assert.Equal(t, "Focus on leadership and outcomes.", resp.Context)
	questionRepo.AssertExpectations(t)
}

func TestInterviewService_GenerateQuestion_TagsPersistedQuestionWithTopic(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	completion := new(MockCompletionService)
	svc := newTestInterviewService(new(MockSessionRepository), questionRepo, new(MockAnswerRepository), new(MockStatsRepository), completion)

	completion.On("CompleteJSON", mock.Anything, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		payload := args.Get(2).(*generatedQuestionPayload)
		payload.Question = "How would you find a goroutine leak in production?"
		payload.Context = "Looks for pprof familiarity."
		payload.ExpectedPoints = []string{"point-a", "point-b"}
	}).Return(nil)
	// The topic is the tag; the model's expected points never become tags.
	questionRepo.On("CreateQuestion", mock.Anything, mock.MatchedBy(func(q *domain.Question) bool {
		return len(q.Tags) == 1 && q.Tags[0] == "goroutines"
	})).Return(nil)

	_, err := svc.GenerateQuestion(context.Background(), dto.GenerateQuestionRequest{
		Category:   "technical",
		Difficulty: "medium",
		Topic:      "goroutines",
	})

	assert.NoError(t, err)
	questionRepo.AssertExpectations(t)
}

func TestInterviewService_GenerateQuestion_NoTopicNoTags(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	completion := new(MockCompletionService)
	svc := newTestInterviewService(new(MockSessionRepository), questionRepo, new(MockAnswerRepository), new(MockStatsRepository), completion)

	completion.On("CompleteJSON", mock.Anything, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		payload := args.Get(2).(*generatedQuestionPayload)
		payload.Question = "Tell me about a time you disagreed with your manager."
		payload.ExpectedPoints = []string{"point-a"}
	}).Return(nil)
	questionRepo.On("CreateQuestion", mock.Anything, mock.MatchedBy(func(q *domain.Question) bool {
		return len(q.Tags) == 0
	})).Return(nil)

	_, err := svc.GenerateQuestion(context.Background(), dto.GenerateQuestionRequest{
		Category:   "behavioral",
		Difficulty: "easy",
	})

	assert.NoError(t, err)
	questionRepo.AssertExpectations(t)
}

func TestInterviewService_GenerateQuestion_AIFailure(t *testing.T) {
	completion := new(MockCompletionService)
	svc := newTestInterviewService(new(MockSessionRepository), new(MockQuestionRepository), new(MockAnswerRepository), new(MockStatsRepository), completion)

	completion.On("CompleteJSON", mock.Anything, mock.Anything, mock.Anything).
		Return(domain.NewAIServiceError(errors.New("connection refused")))

	_, err := svc.GenerateQuestion(context.Background(), dto.GenerateQuestionRequest{
		Category:   "technical",
		Difficulty: "hard",
	})

	var domainErr *domain.DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeAIServiceError, domainErr.Code)
}

func TestInterviewService_SubmitAnswer_ReturnsFeedback(t *testing.T) {
	sessionRepo := new(MockSessionRepository)
	questionRepo := new(MockQuestionRepository)
	answerRepo := new(MockAnswerRepository)
	completion := new(MockCompletionService)
	svc := newTestInterviewService(sessionRepo, questionRepo, answerRepo, new(MockStatsRepository), completion)

	sessionRepo.On("GetSessionForUser", mock.Anything, "session1", "user123").Return(&domain.InterviewSession{
		ID:     "session1",
		UserID: "user123",
		Status: domain.SessionInProgress,
	}, nil)
	questionRepo.On("GetQuestionByID", mock.Anything, "question1").Return(&domain.Question{
		ID:       "question1",
		Question: "Tell me about a conflict you resolved.",
	}, nil)
	completion.On("CompleteJSON", mock.Anything, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		payload := args.Get(2).(*feedbackPayload)
		payload.Score = 7.5
		payload.Strengths = []string{"clear situation"}
		payload.Weaknesses = []string{"vague result"}
		payload.Improvements = []string{"quantify the outcome"}
		payload.StarAnalysis = dto.STARAnalysis{Situation: "good", Task: "good", Action: "good", Result: "weak"}
		payload.ExampleAnswer = "A stronger version of the answer."
	}).Return(nil)
	answerRepo.On("CreateAnswer", mock.Anything, mock.MatchedBy(func(a *domain.Answer) bool {
		return a.SessionID == "session1" && a.QuestionID == "question1" && a.Score == 7.5
	})).Return(nil)

	resp, err := svc.SubmitAnswer(context.Background(), "user123", "session1", dto.SubmitAnswerRequest{
		QuestionID: "question1",
		Answer:     "In my last role I mediated a disagreement between two engineers...",
	})

	assert.NoError(t, err)
	assert.Equal(t, 7.5, resp.Feedback.Score)
	assert.Equal(t, []string{"clear situation"}, resp.Feedback.Strengths)
	assert.Equal(t, "weak", resp.Feedback.StarAnalysis.Result)
	answerRepo.AssertExpectations(t)
}

func TestInterviewService_SubmitAnswer_ForeignSession(t *testing.T) {
	sessionRepo := new(MockSessionRepository)
	completion := new(MockCompletionService)
	svc := newTestInterviewService(sessionRepo, new(MockQuestionRepository), new(MockAnswerRepository), new(MockStatsRepository), completion)

	// The repository scopes by owner, so another user's session comes back
	// as no rows.
	sessionRepo.On("GetSessionForUser", mock.Anything, "session1", "intruder").Return(nil, nil)

	_, err := svc.SubmitAnswer(context.Background(), "intruder", "session1", dto.SubmitAnswerRequest{
		QuestionID: "question1",
		Answer:     "some answer",
	})

	var domainErr *domain.DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeSessionNotFound, domainErr.Code)
	completion.AssertNotCalled(t, "CompleteJSON", mock.Anything, mock.Anything, mock.Anything)
}

func TestInterviewService_SubmitAnswer_UnknownQuestion(t *testing.T) {
	sessionRepo := new(MockSessionRepository)
	questionRepo := new(MockQuestionRepository)
	svc := newTestInterviewService(sessionRepo, questionRepo, new(MockAnswerRepository), new(MockStatsRepository), new(MockCompletionService))

	sessionRepo.On("GetSessionForUser", mock.Anything, "session1", "user123").Return(&domain.InterviewSession{
		ID:     "session1",
		UserID: "user123",
	}, nil)
	questionRepo.On("GetQuestionByID", mock.Anything, "ghost").Return(nil, nil)

	_, err := svc.SubmitAnswer(context.Background(), "user123", "session1", dto.SubmitAnswerRequest{
		QuestionID: "ghost",
		Answer:     "some answer",
	})

	var domainErr *domain.DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeQuestionNotFound, domainErr.Code)
}

func TestInterviewService_CompleteSession_AveragesScores(t *testing.T) {
	sessionRepo := new(MockSessionRepository)
	answerRepo := new(MockAnswerRepository)
	statsRepo := new(MockStatsRepository)
	svc := newTestInterviewService(sessionRepo, new(MockQuestionRepository), answerRepo, statsRepo, new(MockCompletionService))

	sessionRepo.On("GetSessionForUser", mock.Anything, "session1", "user123").Return(&domain.InterviewSession{
		ID:     "session1",
		UserID: "user123",
		Status: domain.SessionInProgress,
	}, nil)
	answerRepo.On("GetSessionAnswers", mock.Anything, "session1").Return([]domain.SessionAnswer{
		{AnswerID: "a1", Score: 8},
		{AnswerID: "a2", Score: 6},
		{AnswerID: "a3", Score: 10},
	}, nil)
	sessionRepo.On("CompleteSession", mock.Anything, "session1", 8.0, mock.AnythingOfType("time.Time")).Return(nil)
	statsRepo.On("RecordCompletion", mock.Anything, "user123", 8.0).Return(nil)

	resp, err := svc.CompleteSession(context.Background(), "user123", "session1")

	assert.NoError(t, err)
	assert.Equal(t, 8.0, resp.AverageScore)
	assert.Equal(t, 3, resp.TotalQuestions)
	sessionRepo.AssertExpectations(t)
	statsRepo.AssertExpectations(t)
}

func TestInterviewService_CompleteSession_NoAnswers(t *testing.T) {
	sessionRepo := new(MockSessionRepository)
	answerRepo := new(MockAnswerRepository)
	statsRepo := new(MockStatsRepository)
	svc := newTestInterviewService(sessionRepo, new(MockQuestionRepository), answerRepo, statsRepo, new(MockCompletionService))

	sessionRepo.On("GetSessionForUser", mock.Anything, "session1", "user123").Return(&domain.InterviewSession{
		ID:     "session1",
		UserID: "user123",
	}, nil)
	answerRepo.On("GetSessionAnswers", mock.Anything, "session1").Return([]domain.SessionAnswer{}, nil)
	sessionRepo.On("CompleteSession", mock.Anything, "session1", 0.0, mock.AnythingOfType("time.Time")).Return(nil)
	statsRepo.On("RecordCompletion", mock.Anything, "user123", 0.0).Return(nil)

	resp, err := svc.CompleteSession(context.Background(), "user123", "session1")

	assert.NoError(t, err)
	assert.Equal(t, 0.0, resp.AverageScore)
	assert.Equal(t, 0, resp.TotalQuestions)
}

func TestInterviewService_CompleteSession_NotFound(t *testing.T) {
	sessionRepo := new(MockSessionRepository)
	svc := newTestInterviewService(sessionRepo, new(MockQuestionRepository), new(MockAnswerRepository), new(MockStatsRepository), new(MockCompletionService))

	sessionRepo.On("GetSessionForUser", mock.Anything, "ghost", "user123").Return(nil, nil)

	_, err := svc.CompleteSession(context.Background(), "user123", "ghost")

	var domainErr *domain.DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeSessionNotFound, domainErr.Code)
}

func TestInterviewService_GetSessionFeedback(t *testing.T) {
	sessionRepo := new(MockSessionRepository)
	answerRepo := new(MockAnswerRepository)
	svc := newTestInterviewService(sessionRepo, new(MockQuestionRepository), answerRepo, new(MockStatsRepository), new(MockCompletionService))

	score := 8.0
	completedAt := time.Now()
	sessionRepo.On("GetSessionForUser", mock.Anything, "session1", "user123").Return(&domain.InterviewSession{
		ID:          "session1",
		UserID:      "user123",
		Type:        "behavioral",
		Status:      domain.SessionCompleted,
		Score:       &score,
		CompletedAt: &completedAt,
	}, nil)
	answerRepo.On("GetSessionAnswers", mock.Anything, "session1").Return([]domain.SessionAnswer{
		{AnswerID: "a1", Question: "Q1", Answer: "A1", Score: 8},
	}, nil)

	resp, err := svc.GetSessionFeedback(context.Background(), "user123", "session1")

	assert.NoError(t, err)
	assert.Equal(t, domain.SessionCompleted, resp.Session.Status)
	assert.Equal(t, 8.0, *resp.Session.Score)
	assert.Len(t, resp.Answers, 1)
	assert.Equal(t, "Q1", resp.Answers[0].Question)
}

// TestInterviewService_SessionLifecycle walks one session through the full
// flow over shared in-memory state: start, generate two questions, answer
// both, complete, then read the feedback view. The feedback view must report
// exactly the score computed at completion.
func TestInterviewService_SessionLifecycle(t *testing.T) {
	store := newInMemoryStore()
	feedbackScores := []float64{8, 6}
	completion := &scriptedCompletionService{
		completeJSONFunc: func(ctx context.Context, prompt string, out interface{}) error {
			switch payload := out.(type) {
			case *generatedQuestionPayload:
				payload.Question = "Generated question"
				payload.Context = "Generated context"
			case *feedbackPayload:
				payload.Score = feedbackScores[0]
				feedbackScores = feedbackScores[1:]
				payload.Strengths = []string{"clear"}
			default:
				t.Fatalf("unexpected payload type %T", out)
			}
			return nil
		},
	}
	svc := NewInterviewService(store, store, store, store, passthroughTxManager{}, completion, passthroughQuestionCache{})
	ctx := context.Background()

	session, err := svc.StartSession(ctx, "user123", dto.StartSessionRequest{Type: "technical"})
	assert.NoError(t, err)
	assert.Equal(t, domain.SessionInProgress, session.Status)

	var questionIDs []string
	for i := 0; i < 2; i++ {
		question, err := svc.GenerateQuestion(ctx, dto.GenerateQuestionRequest{
			Category:   "technical",
			Difficulty: "medium",
		})
		assert.NoError(t, err)
		questionIDs = append(questionIDs, question.ID)
	}

	for _, questionID := range questionIDs {
		answer, err := svc.SubmitAnswer(ctx, "user123", session.ID, dto.SubmitAnswerRequest{
			QuestionID: questionID,
			Answer:     "I profiled the service and fixed the leak.",
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, answer.AnswerID)
	}

	completed, err := svc.CompleteSession(ctx, "user123", session.ID)
	assert.NoError(t, err)
	assert.Equal(t, 7.0, completed.AverageScore)
	assert.Equal(t, 2, completed.TotalQuestions)

	feedback, err := svc.GetSessionFeedback(ctx, "user123", session.ID)
	assert.NoError(t, err)
	assert.Equal(t, domain.SessionCompleted, feedback.Session.Status)
	if assert.NotNil(t, feedback.Session.Score) {
		assert.Equal(t, completed.AverageScore, *feedback.Session.Score)
	}
	assert.Len(t, feedback.Answers, 2)
	assert.Equal(t, 8.0, feedback.Answers[0].Score)
	assert.Equal(t, 6.0, feedback.Answers[1].Score)

	// Stats follow the same lifecycle: one started, one completed, average
	// recorded at completion.
	assert.Equal(t, 1, store.totals["user123"])
	assert.Equal(t, 1, store.completed["user123"])
	assert.Equal(t, 7.0, store.averages["user123"])
}

func TestInterviewService_AnalyzeSTAR(t *testing.T) {
	completion := new(MockCompletionService)
	svc := newTestInterviewService(new(MockSessionRepository), new(MockQuestionRepository), new(MockAnswerRepository), new(MockStatsRepository), completion)

	completion.On("CompleteJSON", mock.Anything, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		report := args.Get(2).(*dto.STARAnalysisReport)
		report.Situation = "Team was behind schedule"
		report.Completeness = 75
		report.Suggestions = []string{"state the measurable result"}
	}).Return(nil)

	resp, err := svc.AnalyzeSTAR(context.Background(), dto.STARAnalysisRequest{
		Answer: "When my team was behind schedule I reorganized the sprint...",
	})

	assert.NoError(t, err)
	assert.Equal(t, 75.0, resp.Completeness)
	assert.Len(t, resp.Suggestions, 1)
}

func TestInterviewService_GenerateCompanyQuestion_MissingFields(t *testing.T) {
	svc := newTestInterviewService(new(MockSessionRepository), new(MockQuestionRepository), new(MockAnswerRepository), new(MockStatsRepository), new(MockCompletionService))

	_, err := svc.GenerateCompanyQuestion(context.Background(), dto.CompanyQuestionRequest{Company: "Acme"})

	var validationErrs domain.ValidationErrors
	assert.True(t, errors.As(err, &validationErrs))
}

func TestMeanScore(t *testing.T) {
	assert.Equal(t, 8.0, domain.MeanScore([]domain.SessionAnswer{{Score: 8}, {Score: 6}, {Score: 10}}))
	assert.Equal(t, 0.0, domain.MeanScore(nil))
	assert.Equal(t, 0.0, domain.MeanScore([]domain.SessionAnswer{}))
}
