package storage

import (
	"errors"
	"testing"

	"gofood/food-api/internal/domain"

	"github.com/jaswdr/faker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	count    int
	countErr error
	created  []domain.Food
	failAt   int
}

func (w *recordingWriter) CountFoods() (int, error) {
	return w.count, w.countErr
}

func (w *recordingWriter) CreateFood(food *domain.Food) error {
	if w.failAt > 0 && len(w.created)+1 == w.failAt {
		return errors.New("insert failed")
	}
	food.ID = len(w.created) + 1
	w.created = append(w.created, *food)
	return nil
}

func TestSeedDemo_EmptyMenu(t *testing.T) {
	writer := &recordingWriter{}

	seeded, err := SeedDemo(writer, faker.New(), 4)

	require.NoError(t, err)
	assert.Equal(t, 4, seeded)
	require.Len(t, writer.created, 4)
	for _, food := range writer.created {
		assert.Contains(t, demoDishes, food.Name)
		assert.NotEmpty(t, food.Description)
		assert.GreaterOrEqual(t, food.Price, 15.0)
		assert.LessOrEqual(t, food.Price, 60.0)
		require.Len(t, food.Extras, 3)
		for _, extra := range food.Extras {
			assert.Contains(t, demoExtras, extra.Name)
			assert.GreaterOrEqual(t, extra.Value, 1.0)
			assert.LessOrEqual(t, extra.Value, 8.0)
		}
	}
}

func TestSeedDemo_SkipsPopulatedMenu(t *testing.T) {
	writer := &recordingWriter{count: 2}

	seeded, err := SeedDemo(writer, faker.New(), 4)

	require.NoError(t, err)
	assert.Zero(t, seeded)
	assert.Empty(t, writer.created)
}

func TestSeedDemo_Errors(t *testing.T) {
	_, err := SeedDemo(&recordingWriter{countErr: errors.New("db down")}, faker.New(), 4)
	assert.ErrorContains(t, err, "count foods")

	writer := &recordingWriter{failAt: 2}
	seeded, err := SeedDemo(writer, faker.New(), 4)
	assert.ErrorContains(t, err, "seed food 2")
	assert.Equal(t, 1, seeded)
}
