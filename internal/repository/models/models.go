package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// StringSlice stores a []string column as a JSON text value.
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("StringSlice Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*s = StringSlice{}
		return nil
	}
	return json.Unmarshal(bytesToParse, s)
}

// User represents a row in the users table.
type User struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Name         string    `db:"name"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// InterviewSession represents a row in the interview_sessions table.
// Score and CompletedAt stay NULL while the session is in progress.
type InterviewSession struct {
	ID          string          `db:"id"`
	UserID      string          `db:"user_id"`
	Type        string          `db:"type"`
	Company     sql.NullString  `db:"company"`
	Status      string          `db:"status"`
	Score       sql.NullFloat64 `db:"score"`
	CreatedAt   time.Time       `db:"created_at"`
	CompletedAt sql.NullTime    `db:"completed_at"`
}

// Question represents a row in the questions table.
type Question struct {
	ID         string         `db:"id"`
	Category   string         `db:"category"`
	Difficulty string         `db:"difficulty"`
	Question   string         `db:"question"`
	Company    sql.NullString `db:"company"`
	Tags       StringSlice    `db:"tags"`
	CreatedAt  time.Time      `db:"created_at"`
}

// Answer represents a row in the answers table.
type Answer struct {
	ID            string         `db:"id"`
	SessionID     string         `db:"session_id"`
	QuestionID    string         `db:"question_id"`
	Answer        string         `db:"answer"`
	Transcription sql.NullString `db:"transcription"`
	Score         float64        `db:"score"`
	CreatedAt     time.Time      `db:"created_at"`
}

// UserStats represents a row in the user_stats table, one per user.
type UserStats struct {
	UserID            string      `db:"user_id"`
	TotalSessions     int         `db:"total_sessions"`
	CompletedSessions int         `db:"completed_sessions"`
	AverageScore      float64     `db:"average_score"`
	DailyStreak       int         `db:"daily_streak"`
	BehavioralScore   float64     `db:"behavioral_score"`
	TechnicalScore    float64     `db:"technical_score"`
	Badges            StringSlice `db:"badges"`
	UpdatedAt         time.Time   `db:"updated_at"`
}
