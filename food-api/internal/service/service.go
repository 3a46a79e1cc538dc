package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"gofood/food-api/internal/domain"
)

var (
	ErrInvalidOrder    = errors.New("invalid order payload")
	ErrInvalidFavorite = errors.New("invalid favorite payload")
)

type FoodRepository interface {
	GetFood(id int) (*domain.Food, error)
	ListFoods(nameLike string) ([]domain.Food, error)
}

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	SaveQRCode(orderID int, qr []byte) error
	GetOrder(orderID int) (*domain.Order, []domain.OrderExtra, error)
	ListOrders() ([]domain.Order, error)
	GetQRCode(orderID int) ([]byte, error)
}

type FavoriteStore interface {
	AddFavorite(ctx context.Context, food domain.Food) error
	RemoveFavorite(ctx context.Context, foodID int) error
	ListFavorites(ctx context.Context) ([]domain.Food, error)
	FavoriteIDs(ctx context.Context) (map[int]bool, error)
}

type PopularityReader interface {
	TopFoodIDs(ctx context.Context, limit int) ([]int, error)
}

type OrderPublisher interface {
	PublishOrder(ctx context.Context, event domain.OrderEvent) error
}

type FoodServiceInterface interface {
	Get(ctx context.Context, id int) (*domain.Food, error)
	List(ctx context.Context, nameLike string) ([]domain.Food, error)
	Popular(ctx context.Context, limit int) ([]domain.Food, error)
}

type FavoriteServiceInterface interface {
	Add(ctx context.Context, food *domain.Food) error
	Remove(ctx context.Context, foodID int) error
	List(ctx context.Context) ([]domain.Food, error)
}

type OrderServiceInterface interface {
	Create(ctx context.Context, order *domain.Order) error
	Get(orderID int) (*domain.Order, error)
	List() ([]domain.Order, error)
	GetQRCode(orderID int) ([]byte, error)
	QRLink(orderID int) string
}

type FoodService struct {
	repo       FoodRepository
	favorites  FavoriteStore
	popularity PopularityReader
}

func NewFoodService(repo FoodRepository, favorites FavoriteStore, popularity PopularityReader) *FoodService {
	return &FoodService{repo: repo, favorites: favorites, popularity: popularity}
}

func (s *FoodService) Get(ctx context.Context, id int) (*domain.Food, error) {
	food, err := s.repo.GetFood(id)
	if err != nil {
		return nil, err
	}
	favorites := s.favoriteIDs(ctx)
	food.IsFavorite = favorites[food.ID]
	return food, nil
}

func (s *FoodService) List(ctx context.Context, nameLike string) ([]domain.Food, error) {
	foods, err := s.repo.ListFoods(nameLike)
	if err != nil {
		return nil, err
	}
	favorites := s.favoriteIDs(ctx)
	for i := range foods {
		foods[i].IsFavorite = favorites[foods[i].ID]
	}
	return foods, nil
}

// Popular returns up to limit dishes ranked by how often they were ordered.
// Ranked ids whose dish no longer exists are skipped.
func (s *FoodService) Popular(ctx context.Context, limit int) ([]domain.Food, error) {
	foods := []domain.Food{}
	if s.popularity == nil {
		return foods, nil
	}
	ids, err := s.popularity.TopFoodIDs(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("rank foods: %w", err)
	}

	favorites := s.favoriteIDs(ctx)
	for _, id := range ids {
		food, err := s.repo.GetFood(id)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			return nil, err
		}
		food.IsFavorite = favorites[food.ID]
		foods = append(foods, *food)
	}
	return foods, nil
}

// favoriteIDs degrades to "no favorites" when the store is unavailable so the
// menu stays readable.
func (s *FoodService) favoriteIDs(ctx context.Context) map[int]bool {
	if s.favorites == nil {
		return nil
	}
	ids, err := s.favorites.FavoriteIDs(ctx)
	if err != nil {
		log.Printf("[food-api] Warning: failed to load favorites: %v", err)
		return nil
	}
	return ids
}

var _ FoodServiceInterface = (*FoodService)(nil)

type FavoriteService struct {
	store FavoriteStore
}

func NewFavoriteService(store FavoriteStore) *FavoriteService {
	return &FavoriteService{store: store}
}

func (s *FavoriteService) Add(ctx context.Context, food *domain.Food) error {
	if food.ID <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidFavorite)
	}
	food.IsFavorite = true
	return s.store.AddFavorite(ctx, *food)
}

func (s *FavoriteService) Remove(ctx context.Context, foodID int) error {
	if foodID <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidFavorite)
	}
	return s.store.RemoveFavorite(ctx, foodID)
}

func (s *FavoriteService) List(ctx context.Context) ([]domain.Food, error) {
	return s.store.ListFavorites(ctx)
}

var _ FavoriteServiceInterface = (*FavoriteService)(nil)

type OrderService struct {
	repo      OrderRepository
	qrEncoder QRGenerator
	publisher OrderPublisher
}

func NewOrderService(repo OrderRepository, qr QRGenerator, publisher OrderPublisher) *OrderService {
	return &OrderService{repo: repo, qrEncoder: qr, publisher: publisher}
}

func (s *OrderService) Create(ctx context.Context, order *domain.Order) error {
	if err := validateOrder(order); err != nil {
		return err
	}
	if err := s.repo.CreateOrder(order); err != nil {
		return err
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(order.ID); err == nil {
			_ = s.repo.SaveQRCode(order.ID, qr)
		}
	}

	if s.publisher != nil {
		event := domain.OrderEvent{
			Type:        "order_placed",
			OrderID:     order.ID,
			ProductID:   order.ProductID,
			Price:       order.Price,
			ExtrasCount: countExtras(order.Extras),
			Timestamp:   time.Now(),
		}
		if err := s.publisher.PublishOrder(ctx, event); err != nil {
			log.Printf("[food-api] Warning: failed to publish order %d: %v", order.ID, err)
		}
	}

	return nil
}

func validateOrder(order *domain.Order) error {
	if order.ProductID <= 0 {
		return fmt.Errorf("%w: product_id must be positive", ErrInvalidOrder)
	}
	if order.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidOrder)
	}
	for _, extra := range order.Extras {
		if extra.Quantity < 0 {
			return fmt.Errorf("%w: extra %d has a negative quantity", ErrInvalidOrder, extra.ID)
		}
	}
	return nil
}

func countExtras(extras []domain.OrderExtra) int {
	total := 0
	for _, extra := range extras {
		total += extra.Quantity
	}
	return total
}

func (s *OrderService) Get(orderID int) (*domain.Order, error) {
	order, extras, err := s.repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	order.Extras = extras
	return order, nil
}

func (s *OrderService) List() ([]domain.Order, error) {
	return s.repo.ListOrders()
}

func (s *OrderService) GetQRCode(orderID int) ([]byte, error) {
	qr, err := s.repo.GetQRCode(orderID)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		if regenerated, err := s.qrEncoder.Generate(orderID); err == nil {
			_ = s.repo.SaveQRCode(orderID, regenerated)
			return regenerated, nil
		}
	}
	return qr, nil
}

func (s *OrderService) QRLink(orderID int) string {
	return fmt.Sprintf("/orders/%d/qrcode", orderID)
}

var _ OrderServiceInterface = (*OrderService)(nil)
