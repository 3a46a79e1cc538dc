package mocks

import (
	"gofood/food-api/internal/domain"

	"github.com/stretchr/testify/mock"
)

type FoodRepository struct {
	mock.Mock
}

func (m *FoodRepository) GetFood(id int) (*domain.Food, error) {
	args := m.Called(id)
	var food *domain.Food
	if v := args.Get(0); v != nil {
		food = v.(*domain.Food)
	}
	return food, args.Error(1)
}

func (m *FoodRepository) ListFoods(nameLike string) ([]domain.Food, error) {
	args := m.Called(nameLike)
	var foods []domain.Food
	if v := args.Get(0); v != nil {
		foods = v.([]domain.Food)
	}
	return foods, args.Error(1)
}

func NewFoodRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *FoodRepository {
	m := &FoodRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
