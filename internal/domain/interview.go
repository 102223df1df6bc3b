package domain

import "time"

// Session status values. The lifecycle is in-progress -> completed and
// completed is terminal; a session is never reopened.
const (
	SessionInProgress = "in-progress"
	SessionCompleted  = "completed"
)

// InterviewSession is one interview-practice attempt scoped to one user.
// Score stays nil until the session is completed.
type InterviewSession struct {
	ID          string
	UserID      string
	Type        string
	Company     string
	Status      string
	Score       *float64
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// IsCompleted reports whether the session has reached its terminal state.
func (s *InterviewSession) IsCompleted() bool {
	return s.Status == SessionCompleted
}

// Question is an interview question, either seeded or AI-generated.
// Questions are immutable after creation and are not owned by any session;
// many sessions may reuse the same question.
type Question struct {
	ID         string
	Category   string
	Difficulty string
	Question   string
	Company    string
	Tags       []string
	CreatedAt  time.Time
}

// Answer belongs to exactly one session and references one question.
// The score (0-10) is assigned by the AI feedback step at creation time.
type Answer struct {
	ID            string
	SessionID     string
	QuestionID    string
	Answer        string
	Transcription string
	Score         float64
	CreatedAt     time.Time
}

// SessionAnswer is the (question, answer, score) tuple returned for a
// session's feedback view, ordered by submission time.
type SessionAnswer struct {
	AnswerID string
	Question string
	Answer   string
	Score    float64
}

// MeanScore computes the arithmetic mean of the answers' scores. An empty
// list yields 0, not NaN; that is the defined empty-mean policy for
// completing a session without answers.
func MeanScore(answers []SessionAnswer) float64 {
	if len(answers) == 0 {
		return 0
	}
	var sum float64
	for _, a := range answers {
		sum += a.Score
	}
	return sum / float64(len(answers))
}
