package service

import (
	"context"
	"fmt"

	"bistroboss/internal/cache"
	"bistroboss/internal/errors"
	"bistroboss/internal/model"
	"bistroboss/internal/repository"
)

// MenuService exposes menu operations.
type MenuService interface {
	ListMenu(ctx context.Context) ([]model.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (*model.MenuItem, error)
	CreateMenuItem(ctx context.Context, item *model.MenuItem) (*model.InsertResult, error)
	UpdateMenuItem(ctx context.Context, id string, patch model.MenuItemPatch) (*model.UpdateResult, error)
	DeleteMenuItem(ctx context.Context, id string) (*model.DeleteResult, error)
}

type menuService struct {
	repo repository.MenuRepository
	list *listCache[model.MenuItem]
}

// NewMenuService builds a MenuService with repository and cache.
func NewMenuService(repo repository.MenuRepository, cache *cache.Client) MenuService {
	return &menuService{repo: repo, list: newListCache[model.MenuItem](cache, MenuCacheKey)}
}

func (s *menuService) ListMenu(ctx context.Context) ([]model.MenuItem, error) {
	return s.list.get(ctx, s.repo.List)
}

func (s *menuService) GetMenuItem(ctx context.Context, id string) (*model.MenuItem, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *menuService) CreateMenuItem(ctx context.Context, item *model.MenuItem) (*model.InsertResult, error) {
	res, err := s.repo.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	s.list.invalidate(ctx)
	return res, nil
}

// UpdateMenuItem applies only the allowlisted fields present in patch.
func (s *menuService) UpdateMenuItem(ctx context.Context, id string, patch model.MenuItemPatch) (*model.UpdateResult, error) {
	fields := patch.SetFields()
	if len(fields) == 0 {
		return nil, errors.ErrEmptyUpdate
	}
	res, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, fmt.Errorf("update menu item %s: %w", id, err)
	}
	s.list.invalidate(ctx)
	return res, nil
}

func (s *menuService) DeleteMenuItem(ctx context.Context, id string) (*model.DeleteResult, error) {
	res, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.list.invalidate(ctx)
	return res, nil
}
