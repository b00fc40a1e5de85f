package service

import (
	"context"

	"bistroboss/internal/cache"
	"bistroboss/internal/model"
	"bistroboss/internal/repository"
)

// ReviewService exposes review reads.
type ReviewService interface {
	ListReviews(ctx context.Context) ([]model.Review, error)
}

type reviewService struct {
	repo repository.ReviewRepository
	list *listCache[model.Review]
}

// NewReviewService builds a ReviewService with repository and cache.
func NewReviewService(repo repository.ReviewRepository, cache *cache.Client) ReviewService {
	return &reviewService{repo: repo, list: newListCache[model.Review](cache, ReviewCacheKey)}
}

func (s *reviewService) ListReviews(ctx context.Context) ([]model.Review, error) {
	return s.list.get(ctx, s.repo.List)
}
