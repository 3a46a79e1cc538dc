package mocks

import (
	"gofood/food-api/internal/domain"

	"github.com/stretchr/testify/mock"
)

type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) CreateOrder(order *domain.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *OrderRepository) SaveQRCode(orderID int, qr []byte) error {
	args := m.Called(orderID, qr)
	return args.Error(0)
}

func (m *OrderRepository) GetOrder(orderID int) (*domain.Order, []domain.OrderExtra, error) {
	args := m.Called(orderID)
	var order *domain.Order
	if v := args.Get(0); v != nil {
		order = v.(*domain.Order)
	}
	var extras []domain.OrderExtra
	if v := args.Get(1); v != nil {
		extras = v.([]domain.OrderExtra)
	}
	return order, extras, args.Error(2)
}

func (m *OrderRepository) ListOrders() ([]domain.Order, error) {
	args := m.Called()
	var orders []domain.Order
	if v := args.Get(0); v != nil {
		orders = v.([]domain.Order)
	}
	return orders, args.Error(1)
}

func (m *OrderRepository) GetQRCode(orderID int) ([]byte, error) {
	args := m.Called(orderID)
	var qr []byte
	if v := args.Get(0); v != nil {
		qr = v.([]byte)
	}
	return qr, args.Error(1)
}

func NewOrderRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
