package service

import (
	"context"
	"fmt"

	"agrimarket-backend/internal/domain"
	"agrimarket-backend/internal/repository"
	"agrimarket-backend/internal/state"
)

// referenceService caches the four slow-moving reference sets in
// memory. Reads are served from the cache; Refresh reloads from the
// store, and an overlapping refresh cannot clobber a newer one thanks
// to the collection's load tokens.
type referenceService struct {
	categoryRepo repository.CategoryRepository

	productCategories   *state.Collection[domain.Category]
	equipmentCategories *state.Collection[domain.Category]
	states              *state.Collection[domain.RefItem]
	crops               *state.Collection[domain.RefItem]
}

func NewReferenceService(categoryRepo repository.CategoryRepository) ReferenceService {
	categoryID := func(c domain.Category) string { return fmt.Sprint(c.ID) }
	refID := func(r domain.RefItem) string { return fmt.Sprint(r.ID) }
	return &referenceService{
		categoryRepo:        categoryRepo,
		productCategories:   state.NewCollection(categoryID),
		equipmentCategories: state.NewCollection(categoryID),
		states:              state.NewCollection(refID),
		crops:               state.NewCollection(refID),
	}
}

func (s *referenceService) ProductCategories(ctx context.Context) ([]domain.Category, error) {
	return cached(ctx, s.productCategories, s.categoryRepo.ListProductCategories)
}

func (s *referenceService) EquipmentCategories(ctx context.Context) ([]domain.Category, error) {
	return cached(ctx, s.equipmentCategories, s.categoryRepo.ListEquipmentCategories)
}

func (s *referenceService) States(ctx context.Context) ([]domain.RefItem, error) {
	return cached(ctx, s.states, s.categoryRepo.ListStates)
}

func (s *referenceService) Crops(ctx context.Context) ([]domain.RefItem, error) {
	return cached(ctx, s.crops, s.categoryRepo.ListCrops)
}

func (s *referenceService) Refresh(ctx context.Context) error {
	if _, err := reload(ctx, s.productCategories, s.categoryRepo.ListProductCategories); err != nil {
		return err
	}
	if _, err := reload(ctx, s.equipmentCategories, s.categoryRepo.ListEquipmentCategories); err != nil {
		return err
	}
	if _, err := reload(ctx, s.states, s.categoryRepo.ListStates); err != nil {
		return err
	}
	_, err := reload(ctx, s.crops, s.categoryRepo.ListCrops)
	return err
}

// cached serves the collection's contents, loading it on first use.
func cached[T any](ctx context.Context, c *state.Collection[T], load func(context.Context) ([]T, error)) ([]T, error) {
	if c.Len() > 0 {
		return c.Items(), nil
	}
	return reload(ctx, c, load)
}

func reload[T any](ctx context.Context, c *state.Collection[T], load func(context.Context) ([]T, error)) ([]T, error) {
	token := c.BeginLoad()
	items, err := load(ctx)
	c.CompleteLoad(token, items, err)
	if err != nil {
		return nil, err
	}
	return items, nil
}
