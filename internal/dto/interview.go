package dto

import "time"

// StartSessionRequest is the body for POST /interview/start.
type StartSessionRequest struct {
	Type    string `json:"type"`
	Company string `json:"company,omitempty"`
}

// SessionResponse represents an interview session in API responses.
type SessionResponse struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Company     string     `json:"company,omitempty"`
	Status      string     `json:"status"`
	Score       *float64   `json:"score"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// GenerateQuestionRequest is the body for POST /interview/question/generate.
type GenerateQuestionRequest struct {
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
	Topic      string `json:"topic,omitempty"`
}

// GeneratedQuestion is the question payload returned to the caller.
type GeneratedQuestion struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Context    string `json:"context"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
}

// SubmitAnswerRequest is the body for POST /interview/:sessionId/answer.
type SubmitAnswerRequest struct {
	QuestionID    string `json:"questionId"`
	Answer        string `json:"answer"`
	Transcription string `json:"transcription,omitempty"`
}

// STARAnalysis is the per-component breakdown of a behavioral answer.
type STARAnalysis struct {
	Situation string `json:"situation"`
	Task      string `json:"task"`
	Action    string `json:"action"`
	Result    string `json:"result"`
}

// Feedback is the AI evaluation of a submitted answer.
type Feedback struct {
	Score        float64      `json:"score"`
	Strengths    []string     `json:"strengths"`
	Weaknesses   []string     `json:"weaknesses"`
	Improvements []string     `json:"improvements"`
	StarAnalysis STARAnalysis `json:"starAnalysis"`
}

// SubmitAnswerResponse is returned from answer submission.
type SubmitAnswerResponse struct {
	AnswerID string   `json:"answerId"`
	Feedback Feedback `json:"feedback"`
}

// CompleteSessionResponse is returned from POST /interview/:sessionId/complete.
type CompleteSessionResponse struct {
	SessionID      string  `json:"sessionId"`
	AverageScore   float64 `json:"averageScore"`
	TotalQuestions int     `json:"totalQuestions"`
}

// AnswerFeedbackItem is one (question, answer, score) tuple in the session
// feedback view.
type AnswerFeedbackItem struct {
	ID       string  `json:"id"`
	Question string  `json:"question"`
	Answer   string  `json:"answer"`
	Score    float64 `json:"score"`
}

// SessionFeedbackResponse is returned from GET /interview/:sessionId/feedback.
type SessionFeedbackResponse struct {
	Session SessionResponse      `json:"session"`
	Answers []AnswerFeedbackItem `json:"answers"`
}

// ResumeQuestionRequest is the body for POST /interview/question/resume.
type ResumeQuestionRequest struct {
	ResumeText  string `json:"resumeText"`
	ProjectName string `json:"projectName,omitempty"`
}

// ResumeQuestionResponse is a question generated from resume content.
type ResumeQuestionResponse struct {
	Question       string   `json:"question"`
	Project        string   `json:"project"`
	TechnicalAreas []string `json:"technicalAreas"`
}

// CompanyQuestionRequest is the body for POST /interview/question/company.
type CompanyQuestionRequest struct {
	Company string `json:"company"`
	Role    string `json:"role"`
}

// CompanyQuestionResponse is a company-specific interview question.
type CompanyQuestionResponse struct {
	Question       string   `json:"question"`
	CompanyContext string   `json:"companyContext"`
	KeyPoints      []string `json:"keyPoints"`
}

// STARAnalysisRequest is the body for POST /interview/answer/star-analysis.
type STARAnalysisRequest struct {
	Answer string `json:"answer"`
}

// STARAnalysisReport is the standalone STAR breakdown of an answer.
type STARAnalysisReport struct {
	Situation    string   `json:"situation"`
	Task         string   `json:"task"`
	Action       string   `json:"action"`
	Result       string   `json:"result"`
	Completeness float64  `json:"completeness"`
	Suggestions  []string `json:"suggestions"`
}
