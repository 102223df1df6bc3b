package main

import (
	"context"
	"fmt"
	"os"

	"interview-prep/internal/config"
	"interview-prep/internal/database"
	"interview-prep/internal/domain"
	"interview-prep/internal/logger"
	"interview-prep/internal/repository"
	"interview-prep/internal/util"

	"go.uber.org/zap"
)

type seedQuestion struct {
	Category   string
	Difficulty string
	Question   string
	Tags       []string
}

// starterQuestions is a small bank of common behavioral and technical
// questions so a fresh install has something to practice with before the
// AI generates more.
var starterQuestions = []seedQuestion{
	{
		Category:   "behavioral",
		Difficulty: "easy",
		Question:   "Tell me about a time you had to work with a difficult teammate. How did you handle it?",
		Tags:       []string{"teamwork", "conflict-resolution"},
	},
	{
		Category:   "behavioral",
		Difficulty: "medium",
		Question:   "Describe a project where you missed a deadline. What happened and what did you change afterwards?",
		Tags:       []string{"accountability", "time-management"},
	},
	{
		Category:   "behavioral",
		Difficulty: "hard",
		Question:   "Tell me about a time you disagreed with a decision from leadership. What did you do?",
		Tags:       []string{"communication", "influence"},
	},
	{
		Category:   "technical",
		Difficulty: "easy",
		Question:   "What is the difference between a process and a thread?",
		Tags:       []string{"operating-systems", "concurrency"},
	},
	{
		Category:   "technical",
		Difficulty: "medium",
		Question:   "How would you design a rate limiter for a public API?",
		Tags:       []string{"api-design", "scalability"},
	},
	{
		Category:   "technical",
		Difficulty: "hard",
		Question:   "Explain how you would debug a service whose p99 latency doubled after a deploy with no code changes to the hot path.",
		Tags:       []string{"debugging", "performance"},
	},
	{
		Category:   "system-design",
		Difficulty: "medium",
		Question:   "Design a URL shortening service. Walk through your data model and how you would handle redirects at scale.",
		Tags:       []string{"system-design", "data-modeling"},
	},
	{
		Category:   "system-design",
		Difficulty: "hard",
		Question:   "Design a notification system that delivers to email, SMS and push with per-user preferences and retry handling.",
		Tags:       []string{"system-design", "messaging"},
	},
}

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting question bank seeding...")
	db, err := database.NewSQLXPostgresDB(cfg.GetDSN())
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	questionRepo := repository.NewSQLXQuestionRepository(db)

	seeded := 0
	for _, q := range starterQuestions {
		question := &domain.Question{
			ID:         util.NewULID(),
			Category:   q.Category,
			Difficulty: q.Difficulty,
			Question:   q.Question,
			Tags:       q.Tags,
		}
		if err := questionRepo.CreateQuestion(ctx, question); err != nil {
			log.Error("Failed to seed question",
				zap.String("category", q.Category),
				zap.Error(err))
			continue
		}
		seeded++
	}

	log.Info("Question bank seeding finished",
		zap.Int("seeded", seeded),
		zap.Int("total", len(starterQuestions)))
}
