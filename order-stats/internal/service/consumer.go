package service

import (
	"context"
	"encoding/json"
	"log"

	"gofood/order-stats/internal/domain"
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
}

func NewConsumer(reader MessageReader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

// Start reads events until ctx is cancelled. Malformed messages and store
// failures are logged and skipped.
func (c *Consumer) Start(ctx context.Context) {
	log.Println("[order-stats] starting order event consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("[order-stats] consumer stopped")
				return
			}
			log.Printf("[order-stats] error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("[order-stats] error unmarshaling message at offset %d: %v", message.Offset, err)
			continue
		}

		c.ProcessOrder(ctx, event)
	}
}

func (c *Consumer) ProcessOrder(ctx context.Context, event domain.OrderEvent) {
	if event.Type != domain.EventOrderPlaced || event.ProductID <= 0 {
		return
	}

	if err := c.Store.RecordOrder(ctx, event); err != nil {
		log.Printf("[order-stats] error recording order %d: %v", event.OrderID, err)
		return
	}

	log.Printf("[order-stats] recorded order %d for dish %d", event.OrderID, event.ProductID)
}
