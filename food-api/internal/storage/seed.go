package storage

import (
	"fmt"
	"log"

	"gofood/food-api/internal/domain"

	"github.com/jaswdr/faker"
)

type FoodWriter interface {
	CountFoods() (int, error)
	CreateFood(food *domain.Food) error
}

var (
	demoDishes = []string{"Ao molho", "Veggie", "A la Camarón", "Carbonara", "Bolonhesa", "Quatro queijos"}
	demoExtras = []string{"Bacon", "Frango", "Queijo extra", "Cebola crispy", "Molho especial"}
)

// SeedDemo fills an empty menu with count generated dishes, each with three
// extras. A non-empty menu is left untouched.
func SeedDemo(repo FoodWriter, fake faker.Faker, count int) (int, error) {
	existing, err := repo.CountFoods()
	if err != nil {
		return 0, fmt.Errorf("count foods: %w", err)
	}
	if existing > 0 {
		return 0, nil
	}

	for i := 0; i < count; i++ {
		food := &domain.Food{
			Name:         fake.RandomStringElement(demoDishes),
			Description:  fake.Lorem().Sentence(10),
			Price:        fake.Float64(2, 15, 60),
			ImageURL:     fmt.Sprintf("/images/food-%d.png", i+1),
			ThumbnailURL: fmt.Sprintf("/images/food-%d-thumb.png", i+1),
		}
		for j := 0; j < 3; j++ {
			food.Extras = append(food.Extras, domain.Extra{
				Name:  fake.RandomStringElement(demoExtras),
				Value: float64(fake.IntBetween(1, 8)),
			})
		}
		if err := repo.CreateFood(food); err != nil {
			return i, fmt.Errorf("seed food %d: %w", i+1, err)
		}
	}

	log.Printf("[food-api] seeded %d demo dishes", count)
	return count, nil
}
