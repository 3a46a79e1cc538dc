package tests

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"gofood/order-stats/internal/domain"
	"gofood/order-stats/internal/mocks"
	"gofood/order-stats/internal/service"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/mock"
)

func TestConsumer_ProcessOrder(t *testing.T) {
	tests := []struct {
		name           string
		event          domain.OrderEvent
		setupMockStore func(*mocks.StoreInterface)
	}{
		{
			name:  "success",
			event: domain.OrderEvent{Type: domain.EventOrderPlaced, OrderID: 7, ProductID: 1, Price: 34},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RecordOrder", mock.Anything, mock.MatchedBy(func(e domain.OrderEvent) bool {
					return e.OrderID == 7 && e.ProductID == 1
				})).Return(nil).Once()
			},
		},
		{
			name:  "store error",
			event: domain.OrderEvent{Type: domain.EventOrderPlaced, OrderID: 8, ProductID: 1},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RecordOrder", mock.Anything, mock.Anything).Return(errors.New("redis error")).Once()
			},
		},
		{
			name:           "unknown type",
			event:          domain.OrderEvent{Type: "order_cancelled", OrderID: 9, ProductID: 1},
			setupMockStore: func(mockStore *mocks.StoreInterface) {},
		},
		{
			name:           "missing product",
			event:          domain.OrderEvent{Type: domain.EventOrderPlaced, OrderID: 10},
			setupMockStore: func(mockStore *mocks.StoreInterface) {},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockStore := mocks.NewStoreInterface(t)
			testCase.setupMockStore(mockStore)

			consumer := service.NewConsumer(nil, mockStore)
			consumer.ProcessOrder(context.Background(), testCase.event)

			if len(mockStore.ExpectedCalls) == 0 {
				mockStore.AssertNotCalled(t, "RecordOrder", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestConsumer_StartUntilCancelled(t *testing.T) {
	reader := mocks.NewMessageReader(t)
	store := mocks.NewStoreInterface(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	valid, _ := json.Marshal(domain.OrderEvent{Type: domain.EventOrderPlaced, OrderID: 7, ProductID: 1, Price: 34})

	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{Value: valid}, nil).Once()
	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{Value: []byte("{broken")}, nil).Once()
	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{}, errors.New("transient")).Once()
	reader.On("ReadMessage", mock.Anything).
		Run(func(mock.Arguments) { cancel() }).
		Return(kafka.Message{}, context.Canceled).Once()
	store.On("RecordOrder", mock.Anything, mock.MatchedBy(func(e domain.OrderEvent) bool {
		return e.OrderID == 7
	})).Return(nil).Once()

	service.NewConsumer(reader, store).Start(ctx)
}
