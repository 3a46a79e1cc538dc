package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"gofood/config"
	"gofood/order-stats/internal/service"
	"gofood/order-stats/internal/storage"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Fatalf("[order-stats] %v", err)
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader(
		config.GetEnv("KAFKA_ORDERS_TOPIC", "orders"),
		config.GetEnv("KAFKA_GROUP_ID", "order-stats"),
	)
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	service.NewConsumer(reader, storage.NewStore(rdb)).Start(ctx)
}
