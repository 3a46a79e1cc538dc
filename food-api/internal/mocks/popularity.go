package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type PopularityReader struct {
	mock.Mock
}

func (m *PopularityReader) TopFoodIDs(ctx context.Context, limit int) ([]int, error) {
	args := m.Called(ctx, limit)
	var ids []int
	if v := args.Get(0); v != nil {
		ids = v.([]int)
	}
	return ids, args.Error(1)
}

func NewPopularityReader(t interface {
	mock.TestingT
	Cleanup(func())
}) *PopularityReader {
	m := &PopularityReader{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
