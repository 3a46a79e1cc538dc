package main

import (
	"log"
	"strconv"

	"gofood/config"
	httpapi "gofood/food-api/internal/api/http"
	"gofood/food-api/internal/service"
	"gofood/food-api/internal/storage"

	"github.com/jaswdr/faker"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Fatalf("[food-api] %v", err)
	}

	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatalf("[food-api] %v", err)
	}

	if seed, _ := strconv.ParseBool(config.GetEnv("SEED_DEMO", "false")); seed {
		count, _ := strconv.Atoi(config.GetEnv("SEED_COUNT", "6"))
		if _, err := storage.SeedDemo(repo, faker.New(), count); err != nil {
			log.Printf("[food-api] Warning: demo seed failed: %v", err)
		}
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()

	var publisher service.OrderPublisher
	if writer := config.NewKafkaWriter(config.GetEnv("KAFKA_ORDERS_TOPIC", "orders")); writer != nil {
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	} else {
		log.Printf("[food-api] KAFKA_BROKER not set, order events disabled")
	}

	qr := service.DefaultQRGenerator{BaseURL: config.GetEnv("PUBLIC_BASE_URL", "http://localhost:8081")}

	handler := httpapi.NewHandler(
		service.NewFoodService(repo, storage.NewRedisFavorites(rdb), storage.NewRedisPopularity(rdb)),
		service.NewFavoriteService(storage.NewRedisFavorites(rdb)),
		service.NewOrderService(repo, qr, publisher),
	)

	httpapi.StartServer(":"+config.GetEnv("PORT", "8081"), httpapi.NewRouter(handler))
}
