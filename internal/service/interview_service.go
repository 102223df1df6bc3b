package service

import (
	"context"
	"time"

	"interview-prep/internal/domain"
	"interview-prep/internal/dto"
	"interview-prep/internal/logger"
	"interview-prep/internal/prompt"
	"interview-prep/internal/util"
	"interview-prep/internal/validation"

	"go.uber.org/zap"
)

// InterviewService defines the interface for interview session operations.
type InterviewService interface {
	StartSession(ctx context.Context, userID string, req dto.StartSessionRequest) (*dto.SessionResponse, error)
	GenerateQuestion(ctx context.Context, req dto.GenerateQuestionRequest) (*dto.GeneratedQuestion, error)
	SubmitAnswer(ctx context.Context, userID, sessionID string, req dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error)
	CompleteSession(ctx context.Context, userID, sessionID string) (*dto.CompleteSessionResponse, error)
	GetSessionFeedback(ctx context.Context, userID, sessionID string) (*dto.SessionFeedbackResponse, error)
	GenerateResumeQuestion(ctx context.Context, req dto.ResumeQuestionRequest) (*dto.ResumeQuestionResponse, error)
	GenerateCompanyQuestion(ctx context.Context, req dto.CompanyQuestionRequest) (*dto.CompanyQuestionResponse, error)
	AnalyzeSTAR(ctx context.Context, req dto.STARAnalysisRequest) (*dto.STARAnalysisReport, error)
}

// feedbackPayload mirrors the JSON the model is asked to produce for answer
// evaluation. ExampleAnswer is parsed but kept out of the HTTP payload.
type feedbackPayload struct {
	Score         float64          `json:"score"`
	Strengths     []string         `json:"strengths"`
	Weaknesses    []string         `json:"weaknesses"`
	Improvements  []string         `json:"improvements"`
	StarAnalysis  dto.STARAnalysis `json:"starAnalysis"`
	ExampleAnswer string           `json:"exampleAnswer"`
}

type interviewServiceImpl struct {
	sessionRepo   domain.SessionRepository
	questionRepo  domain.QuestionRepository
	answerRepo    domain.AnswerRepository
	statsRepo     domain.StatsRepository
	txManager     domain.TransactionManager
	completion    domain.CompletionService
	questionCache QuestionCacheService
	validator     *validation.Validator
}

// NewInterviewService creates a new instance of InterviewService.
func NewInterviewService(
	sessionRepo domain.SessionRepository,
	questionRepo domain.QuestionRepository,
	answerRepo domain.AnswerRepository,
	statsRepo domain.StatsRepository,
	txManager domain.TransactionManager,
	completion domain.CompletionService,
	questionCache QuestionCacheService,
) InterviewService {
	return &interviewServiceImpl{
		sessionRepo:   sessionRepo,
		questionRepo:  questionRepo,
		answerRepo:    answerRepo,
		statsRepo:     statsRepo,
		txManager:     txManager,
		completion:    completion,
		questionCache: questionCache,
		validator:     validation.NewValidator(),
	}
}

// StartSession creates an in-progress session and bumps the user's session
// counter in the same transaction.
func (s *interviewServiceImpl) StartSession(ctx context.Context, userID string, req dto.StartSessionRequest) (*dto.SessionResponse, error) {
	if errs := s.validator.ValidateStartSession(req.Type); len(errs) > 0 {
		return nil, errs
	}

	session := &domain.InterviewSession{
		ID:        util.NewULID(),
		UserID:    userID,
		Type:      req.Type,
		Company:   req.Company,
		Status:    domain.SessionInProgress,
		CreatedAt: time.Now(),
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.sessionRepo.CreateSession(txCtx, session); err != nil {
			return err
		}
		return s.statsRepo.EnsureAndIncrementTotal(txCtx, userID)
	})
	if err != nil {
		return nil, domain.NewInternalError("failed to start session", err)
	}

	logger.Get().Info("Interview session started",
		zap.String("sessionID", session.ID),
		zap.String("type", session.Type))

	return toSessionResponse(session), nil
}

// GenerateQuestion produces an interview question via the AI gateway, with
// cache-first lookup keyed by category, difficulty and topic. Generated
// questions are persisted so answers can reference them.
func (s *interviewServiceImpl) GenerateQuestion(ctx context.Context, req dto.GenerateQuestionRequest) (*dto.GeneratedQuestion, error) {
	if errs := s.validator.ValidateGenerateQuestion(req.Category, req.Difficulty); len(errs) > 0 {
		return nil, errs
	}

	return s.questionCache.GetOrGenerate(ctx, req.Category, req.Difficulty, req.Topic, func(genCtx context.Context) (*dto.GeneratedQuestion, error) {
		var payload generatedQuestionPayload
		if err := s.completion.CompleteJSON(genCtx, prompt.Question(req.Category, req.Difficulty, req.Topic), &payload); err != nil {
			return nil, err
		}

		var tags []string
		if req.Topic != "" {
			tags = []string{req.Topic}
		}
		question := &domain.Question{
			ID:         util.NewULID(),
			Category:   req.Category,
			Difficulty: req.Difficulty,
			Question:   payload.Question,
			Tags:       tags,
			CreatedAt:  time.Now(),
		}
		if err := s.questionRepo.CreateQuestion(genCtx, question); err != nil {
			return nil, domain.NewInternalError("failed to persist generated question", err)
		}

		return &dto.GeneratedQuestion{
			ID:         question.ID,
			Text:       payload.Question,
			Context:    payload.Context,
			Category:   req.Category,
			Difficulty: req.Difficulty,
		}, nil
	})
}

// SubmitAnswer records an answer for a session the caller owns and returns
// AI feedback scored against the STAR rubric.
func (s *interviewServiceImpl) SubmitAnswer(ctx context.Context, userID, sessionID string, req dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error) {
	if errs := s.validator.ValidateSubmitAnswer(req.QuestionID, req.Answer); len(errs) > 0 {
		return nil, errs
	}

	session, err := s.sessionRepo.GetSessionForUser(ctx, sessionID, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up session", err)
	}
	if session == nil {
		return nil, domain.NewSessionNotFoundError()
	}

	question, err := s.questionRepo.GetQuestionByID(ctx, req.QuestionID)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up question", err)
	}
	if question == nil {
		return nil, domain.NewQuestionNotFoundError(req.QuestionID)
	}

	var payload feedbackPayload
	if err := s.completion.CompleteJSON(ctx, prompt.Feedback(question.Question, req.Answer), &payload); err != nil {
		return nil, err
	}

	answer := &domain.Answer{
		ID:            util.NewULID(),
		SessionID:     session.ID,
		QuestionID:    question.ID,
		Answer:        req.Answer,
		Transcription: req.Transcription,
		Score:         payload.Score,
		CreatedAt:     time.Now(),
	}
	if err := s.answerRepo.CreateAnswer(ctx, answer); err != nil {
		return nil, domain.NewInternalError("failed to persist answer", err)
	}

	return &dto.SubmitAnswerResponse{
		AnswerID: answer.ID,
		Feedback: dto.Feedback{
			Score:        payload.Score,
			Strengths:    payload.Strengths,
			Weaknesses:   payload.Weaknesses,
			Improvements: payload.Improvements,
			StarAnalysis: payload.StarAnalysis,
		},
	}, nil
}

// CompleteSession finalizes a session with the mean of its answer scores
// and records the completion in the user's stats, both in one transaction.
// A session with no answers completes with score 0.
func (s *interviewServiceImpl) CompleteSession(ctx context.Context, userID, sessionID string) (*dto.CompleteSessionResponse, error) {
	session, err := s.sessionRepo.GetSessionForUser(ctx, sessionID, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up session", err)
	}
	if session == nil {
		return nil, domain.NewSessionNotFoundError()
	}

	answers, err := s.answerRepo.GetSessionAnswers(ctx, sessionID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load session answers", err)
	}

	average := domain.MeanScore(answers)
	completedAt := time.Now()

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.sessionRepo.CompleteSession(txCtx, sessionID, average, completedAt); err != nil {
			return err
		}
		return s.statsRepo.RecordCompletion(txCtx, userID, average)
	})
	if err != nil {
		return nil, domain.NewInternalError("failed to complete session", err)
	}

	logger.Get().Info("Interview session completed",
		zap.String("sessionID", sessionID),
		zap.Float64("averageScore", average),
		zap.Int("answers", len(answers)))

	return &dto.CompleteSessionResponse{
		SessionID:      sessionID,
		AverageScore:   average,
		TotalQuestions: len(answers),
	}, nil
}

// GetSessionFeedback returns a session with all its scored answers.
func (s *interviewServiceImpl) GetSessionFeedback(ctx context.Context, userID, sessionID string) (*dto.SessionFeedbackResponse, error) {
	session, err := s.sessionRepo.GetSessionForUser(ctx, sessionID, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up session", err)
	}
	if session == nil {
		return nil, domain.NewSessionNotFoundError()
	}

	answers, err := s.answerRepo.GetSessionAnswers(ctx, sessionID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load session answers", err)
	}

	items := make([]dto.AnswerFeedbackItem, 0, len(answers))
	for _, a := range answers {
		items = append(items, dto.AnswerFeedbackItem{
			ID:       a.AnswerID,
			Question: a.Question,
			Answer:   a.Answer,
			Score:    a.Score,
		})
	}

	return &dto.SessionFeedbackResponse{
		Session: *toSessionResponse(session),
		Answers: items,
	}, nil
}

// GenerateResumeQuestion asks the AI for a question grounded in the
// candidate's resume.
func (s *interviewServiceImpl) GenerateResumeQuestion(ctx context.Context, req dto.ResumeQuestionRequest) (*dto.ResumeQuestionResponse, error) {
	if errs := s.validator.ValidateResumeQuestion(req.ResumeText); len(errs) > 0 {
		return nil, errs
	}

	var resp dto.ResumeQuestionResponse
	if err := s.completion.CompleteJSON(ctx, prompt.ResumeQuestion(req.ResumeText, req.ProjectName), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GenerateCompanyQuestion asks the AI for a company- and role-specific
// question.
func (s *interviewServiceImpl) GenerateCompanyQuestion(ctx context.Context, req dto.CompanyQuestionRequest) (*dto.CompanyQuestionResponse, error) {
	if errs := s.validator.ValidateCompanyQuestion(req.Company, req.Role); len(errs) > 0 {
		return nil, errs
	}

	var resp dto.CompanyQuestionResponse
	if err := s.completion.CompleteJSON(ctx, prompt.CompanyQuestion(req.Company, req.Role), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AnalyzeSTAR produces a standalone STAR breakdown of an answer.
func (s *interviewServiceImpl) AnalyzeSTAR(ctx context.Context, req dto.STARAnalysisRequest) (*dto.STARAnalysisReport, error) {
	if errs := s.validator.ValidateSTARAnalysis(req.Answer); len(errs) > 0 {
		return nil, errs
	}

	var report dto.STARAnalysisReport
	if err := s.completion.CompleteJSON(ctx, prompt.STARAnalysis(req.Answer), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func toSessionResponse(session *domain.InterviewSession) *dto.SessionResponse {
	return &dto.SessionResponse{
		ID:          session.ID,
		Type:        session.Type,
		Company:     session.Company,
		Status:      session.Status,
		Score:       session.Score,
		CreatedAt:   session.CreatedAt,
		CompletedAt: session.CompletedAt,
	}
}
