package domain

import "time"

// User represents a registered account. PasswordHash never leaves the
// service layer; response DTOs carry only id, email and name.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserStats holds per-user aggregate counters. There is exactly one row per
// user and it is mutated only by the interview service.
type UserStats struct {
	UserID            string
	TotalSessions     int
	CompletedSessions int
	AverageScore      float64
	DailyStreak       int
	BehavioralScore   float64
	TechnicalScore    float64
	Badges            []string
	UpdatedAt         time.Time
}
