package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"learnhub/internal/cache"
	"learnhub/internal/domain"
	"learnhub/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// QuizCacheService is a read-through cache in front of the quiz repository.
// Only live (non-deleted) quizzes are cached; concurrent misses for the same
// quiz are collapsed into a single repository read.
type QuizCacheService interface {
	GetQuiz(ctx context.Context, id string) (*domain.Quiz, error)
	Invalidate(ctx context.Context, id string)
}

type quizCacheService struct {
	repo  domain.QuizRepository
	cache domain.Cache
	ttl   time.Duration
	group singleflight.Group
}

// NewQuizCacheService creates a new instance of quizCacheService.
func NewQuizCacheService(repo domain.QuizRepository, cacheClient domain.Cache, ttl time.Duration) QuizCacheService {
	return &quizCacheService{
		repo:  repo,
		cache: cacheClient,
		ttl:   ttl,
	}
}

func quizCacheKey(id string) string {
	return cache.GenerateCacheKey("quiz", "detail", id)
}

// GetQuiz returns the live quiz with the given id, or nil when absent.
func (s *quizCacheService) GetQuiz(ctx context.Context, id string) (*domain.Quiz, error) {
	key := quizCacheKey(id)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key)
		if err == nil {
			var quiz domain.Quiz
			if err := json.Unmarshal([]byte(cached), &quiz); err == nil {
				return &quiz, nil
			}
			logger.Get().Warn("Failed to unmarshal cached quiz, falling through to repository",
				zap.String("quizID", id))
		} else if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("Quiz cache read failed", zap.Error(err), zap.String("quizID", id))
		}
	}

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		quiz, err := s.repo.GetQuizByID(ctx, id, domain.ListFilters{})
		if err != nil {
			return nil, err
		}
		if quiz == nil {
			return (*domain.Quiz)(nil), nil
		}

		if s.cache != nil {
			if data, err := json.Marshal(quiz); err == nil {
				if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
					logger.Get().Warn("Quiz cache write failed", zap.Error(err), zap.String("quizID", id))
				}
			}
		}
		return quiz, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Quiz), nil
}

// Invalidate drops the cached quiz. Called after updates and deletes.
func (s *quizCacheService) Invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, quizCacheKey(id)); err != nil {
		logger.Get().Warn("Quiz cache invalidation failed", zap.Error(err), zap.String("quizID", id))
	}
}
