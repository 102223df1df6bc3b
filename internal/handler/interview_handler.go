package handler

import (
	"interview-prep/internal/domain"
	"interview-prep/internal/dto"
	"interview-prep/internal/middleware"
	"interview-prep/internal/service"

	"github.com/gofiber/fiber/v2"
)

// InterviewHandler exposes the interview session and AI question endpoints.
type InterviewHandler struct {
	interviewService service.InterviewService
}

// NewInterviewHandler creates a new instance of InterviewHandler.
func NewInterviewHandler(interviewService service.InterviewService) *InterviewHandler {
	return &InterviewHandler{interviewService: interviewService}
}

func currentUserID(c *fiber.Ctx) string {
	userID, _ := c.Locals(middleware.UserIDKey).(string)
	return userID
}

// StartSession handles POST /interview/start.
func (h *InterviewHandler) StartSession(c *fiber.Ctx) error {
	var req dto.StartSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.interviewService.StartSession(c.Context(), currentUserID(c), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewMessageResponse("Interview session started", fiber.Map{"session": resp}))
}

// GenerateQuestion handles POST /interview/question/generate.
func (h *InterviewHandler) GenerateQuestion(c *fiber.Ctx) error {
	var req dto.GenerateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.interviewService.GenerateQuestion(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(dto.NewSuccessResponse(fiber.Map{"question": resp}))
}

// GenerateResumeQuestion handles POST /interview/question/resume.
func (h *InterviewHandler) GenerateResumeQuestion(c *fiber.Ctx) error {
	var req dto.ResumeQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.interviewService.GenerateResumeQuestion(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(dto.NewSuccessResponse(resp))
}

// GenerateCompanyQuestion handles POST /interview/question/company.
func (h *InterviewHandler) GenerateCompanyQuestion(c *fiber.Ctx) error {
	var req dto.CompanyQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.interviewService.GenerateCompanyQuestion(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(dto.NewSuccessResponse(resp))
}

// AnalyzeSTAR handles POST /interview/answer/star-analysis.
func (h *InterviewHandler) AnalyzeSTAR(c *fiber.Ctx) error {
	var req dto.STARAnalysisRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.interviewService.AnalyzeSTAR(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(dto.NewSuccessResponse(resp))
}

// SubmitAnswer handles POST /interview/:sessionId/answer.
func (h *InterviewHandler) SubmitAnswer(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	var req dto.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.interviewService.SubmitAnswer(c.Context(), currentUserID(c), sessionID, req)
	if err != nil {
		return err
	}

	return c.JSON(dto.NewSuccessResponse(resp))
}

// CompleteSession handles POST /interview/:sessionId/complete.
func (h *InterviewHandler) CompleteSession(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	resp, err := h.interviewService.CompleteSession(c.Context(), currentUserID(c), sessionID)
	if err != nil {
		return err
	}

	return c.JSON(dto.NewMessageResponse("Interview session completed", resp))
}

// GetSessionFeedback handles GET /interview/:sessionId/feedback.
func (h *InterviewHandler) GetSessionFeedback(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	resp, err := h.interviewService.GetSessionFeedback(c.Context(), currentUserID(c), sessionID)
	if err != nil {
		return err
	}

	return c.JSON(dto.NewSuccessResponse(resp))
}
