package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"interview-prep/internal/cache"
	"interview-prep/internal/domain"
	"interview-prep/internal/dto"
	"interview-prep/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const defaultQuestionCacheTTL = 24 * time.Hour

// generatedQuestionPayload is what the AI returns for a question prompt,
// before the question gets an ID and is persisted.
type generatedQuestionPayload struct {
	Question       string   `json:"question"`
	Context        string   `json:"context"`
	ExpectedPoints []string `json:"expectedPoints"`
}

// QuestionCacheService caches generated questions by (category, difficulty,
// topic) so repeated requests do not burn AI calls. Concurrent misses for
// the same key collapse into one generation via singleflight.
type QuestionCacheService interface {
	GetOrGenerate(ctx context.Context, category, difficulty, topic string, generate func(ctx context.Context) (*dto.GeneratedQuestion, error)) (*dto.GeneratedQuestion, error)
}

type questionCacheServiceImpl struct {
	cache domain.Cache
	ttl   time.Duration
	group singleflight.Group
}

// NewQuestionCacheService creates a new instance of QuestionCacheService.
// A nil cache disables caching; every call then goes straight to generate.
func NewQuestionCacheService(c domain.Cache, ttl time.Duration) QuestionCacheService {
	if ttl <= 0 {
		ttl = defaultQuestionCacheTTL
	}
	return &questionCacheServiceImpl{cache: c, ttl: ttl}
}

func (s *questionCacheServiceImpl) GetOrGenerate(ctx context.Context, category, difficulty, topic string, generate func(ctx context.Context) (*dto.GeneratedQuestion, error)) (*dto.GeneratedQuestion, error) {
	if s.cache == nil {
		return generate(ctx)
	}

	key := cache.GenerateCacheKey("question", "generated", category, difficulty, topic)

	if cached, err := s.cache.Get(ctx, key); err == nil {
		var question dto.GeneratedQuestion
		if err := json.Unmarshal([]byte(cached), &question); err == nil {
			return &question, nil
		}
		logger.Get().Warn("Failed to unmarshal cached question, regenerating", zap.String("key", key))
	} else if !errors.Is(err, domain.ErrCacheMiss) {
		logger.Get().Error("Question cache lookup failed", zap.Error(err), zap.String("key", key))
	}

	result, err, _ := s.group.Do(key, func() (interface{}, error) {
		question, err := generate(ctx)
		if err != nil {
			return nil, err
		}

		if data, err := json.Marshal(question); err == nil {
			if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
				logger.Get().Warn("Failed to cache generated question", zap.Error(err), zap.String("key", key))
			}
		}
		return question, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*dto.GeneratedQuestion), nil
}
