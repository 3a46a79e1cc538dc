package mocks

import (
	"context"
	"net/http"

	"gofood/order-app/internal/domain"

	"github.com/stretchr/testify/mock"
)

type Gateway struct {
	mock.Mock
}

func (m *Gateway) GetFood(ctx context.Context, id int) (*domain.Dish, error) {
	args := m.Called(ctx, id)
	var dish *domain.Dish
	if v := args.Get(0); v != nil {
		dish = v.(*domain.Dish)
	}
	return dish, args.Error(1)
}

func (m *Gateway) ListOrders(ctx context.Context) ([]domain.PastOrderSummary, error) {
	args := m.Called(ctx)
	var orders []domain.PastOrderSummary
	if v := args.Get(0); v != nil {
		orders = v.([]domain.PastOrderSummary)
	}
	return orders, args.Error(1)
}

func (m *Gateway) GetOrder(ctx context.Context, id int) (*domain.PastOrder, error) {
	args := m.Called(ctx, id)
	var order *domain.PastOrder
	if v := args.Get(0); v != nil {
		order = v.(*domain.PastOrder)
	}
	return order, args.Error(1)
}

func (m *Gateway) CreateFavorite(ctx context.Context, dish domain.Dish) error {
	args := m.Called(ctx, dish)
	return args.Error(0)
}

func (m *Gateway) DeleteFavorite(ctx context.Context, dishID int) error {
	args := m.Called(ctx, dishID)
	return args.Error(0)
}

func (m *Gateway) CreateOrder(ctx context.Context, payload domain.OrderPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func NewGateway(t interface {
	mock.TestingT
	Cleanup(func())
}) *Gateway {
	m := &Gateway{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type HTTPClient struct {
	mock.Mock
}

func (m *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	var resp *http.Response
	if v := args.Get(0); v != nil {
		resp = v.(*http.Response)
	}
	return resp, args.Error(1)
}

func NewHTTPClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *HTTPClient {
	m := &HTTPClient{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
