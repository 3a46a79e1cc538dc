package mocks

import (
	"context"

	"gofood/food-api/internal/domain"

	"github.com/stretchr/testify/mock"
)

type FavoriteStore struct {
	mock.Mock
}

func (m *FavoriteStore) AddFavorite(ctx context.Context, food domain.Food) error {
	args := m.Called(ctx, food)
	return args.Error(0)
}

func (m *FavoriteStore) RemoveFavorite(ctx context.Context, foodID int) error {
	args := m.Called(ctx, foodID)
	return args.Error(0)
}

func (m *FavoriteStore) ListFavorites(ctx context.Context) ([]domain.Food, error) {
	args := m.Called(ctx)
	var foods []domain.Food
	if v := args.Get(0); v != nil {
		foods = v.([]domain.Food)
	}
	return foods, args.Error(1)
}

func (m *FavoriteStore) FavoriteIDs(ctx context.Context) (map[int]bool, error) {
	args := m.Called(ctx)
	var ids map[int]bool
	if v := args.Get(0); v != nil {
		ids = v.(map[int]bool)
	}
	return ids, args.Error(1)
}

func NewFavoriteStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *FavoriteStore {
	m := &FavoriteStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
