package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bistroboss/internal/model"
)

func TestReviewService_ListReviews(t *testing.T) {
	c, mr := setupTestCache(t)
	repo := new(MockReviewRepository)
	repo.On("List", mock.Anything).Return([]model.Review{{Name: "Jane", Details: "Great soup", Rating: 4.5}}, nil).Once()
	svc := NewReviewService(repo, c)

	for i := 0; i < 3; i++ {
		reviews, err := svc.ListReviews(context.Background())
		require.NoError(t, err)
		require.Len(t, reviews, 1)
		assert.Equal(t, 4.5, reviews[0].Rating)
	}

	assert.True(t, mr.Exists(ReviewCacheKey))
	repo.AssertExpectations(t)
}

func TestReviewService_ListReviews_StoreFailureNotCached(t *testing.T) {
	c, mr := setupTestCache(t)
	repo := new(MockReviewRepository)
	repo.On("List", mock.Anything).Return(nil, errors.New("server selection timeout"))

	reviews, err := NewReviewService(repo, c).ListReviews(context.Background())

	assert.Error(t, err)
	assert.Nil(t, reviews)
	assert.False(t, mr.Exists(ReviewCacheKey))
}
