package service

import (
	"context"

	"bistroboss/internal/model"
	"bistroboss/internal/repository"
)

// CartService exposes cart operations.
type CartService interface {
	ListCart(ctx context.Context, email string) ([]model.CartItem, error)
	AddToCart(ctx context.Context, item *model.CartItem) (*model.InsertResult, error)
	RemoveFromCart(ctx context.Context, id string) (*model.DeleteResult, error)
}

type cartService struct {
	repo repository.CartRepository
}

// NewCartService builds a CartService.
func NewCartService(repo repository.CartRepository) CartService {
	return &cartService{repo: repo}
}

func (s *cartService) ListCart(ctx context.Context, email string) ([]model.CartItem, error) {
	return s.repo.List(ctx, email)
}

func (s *cartService) AddToCart(ctx context.Context, item *model.CartItem) (*model.InsertResult, error) {
	return s.repo.Create(ctx, item)
}

func (s *cartService) RemoveFromCart(ctx context.Context, id string) (*model.DeleteResult, error) {
	return s.repo.Delete(ctx, id)
}
