package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gofood/order-app/internal/domain"
	"gofood/order-app/internal/ledger"
	"gofood/order-app/internal/pricing"

	"github.com/shopspring/decimal"
)

var (
	ErrSessionLocked   = errors.New("order is being submitted or already confirmed")
	ErrSessionClosed   = errors.New("session already dismissed")
	ErrNotConfirmed    = errors.New("order has not been confirmed")
	ErrFavoritePending = errors.New("favorite update already in progress")
)

type Composer struct {
	gateway   Gateway
	formatter pricing.Formatter
}

func NewComposer(gateway Gateway, formatter pricing.Formatter) *Composer {
	return &Composer{gateway: gateway, formatter: formatter}
}

// StartSession loads the dish and opens a fresh draft for it: every extra at
// zero, base quantity one, nothing submitted yet.
func (c *Composer) StartSession(ctx context.Context, dishID int) (*Session, error) {
	dish, err := c.gateway.GetFood(ctx, dishID)
	if err != nil {
		return nil, fmt.Errorf("load dish %d: %w", dishID, err)
	}

	local := dish.Clone()
	local.FormattedPrice = c.formatter.Format(local.Price.Decimal)

	return &Session{
		gateway:      c.gateway,
		formatter:    c.formatter,
		dish:         local,
		extras:       ledger.Initialize(local.Extras),
		baseQuantity: 1,
		state:        domain.StateIdle,
	}, nil
}

// Session is one dish-detail visit. The mutex is never held across a
// remote call.
type Session struct {
	mu sync.Mutex

	gateway   Gateway
	formatter pricing.Formatter

	dish            domain.Dish
	extras          ledger.Ledger
	baseQuantity    int
	favoritePending bool
	state           domain.SubmissionState
	closed          bool
}

func (s *Session) IncrementExtra(extraID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.editable(); err != nil {
		return err
	}
	s.extras = s.extras.Increment(extraID)
	return nil
}

func (s *Session) DecrementExtra(extraID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.editable(); err != nil {
		return err
	}
	s.extras = s.extras.Decrement(extraID)
	return nil
}

func (s *Session) IncrementQuantity() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.editable(); err != nil {
		return err
	}
	s.baseQuantity++
	return nil
}

// DecrementQuantity lowers the base quantity, stopping at one.
func (s *Session) DecrementQuantity() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.editable(); err != nil {
		return err
	}
	if s.baseQuantity > 1 {
		s.baseQuantity--
	}
	return nil
}

// ToggleFavorite flips the flag before the remote call resolves. If the call
// fails the flag is flipped back and the error returned.
func (s *Session) ToggleFavorite(ctx context.Context) error {
	s.mu.Lock()
	if err := s.editable(); err != nil {
		s.mu.Unlock()
		return err
	}
	if s.favoritePending {
		s.mu.Unlock()
		return ErrFavoritePending
	}
	s.dish.IsFavorite = !s.dish.IsFavorite
	s.favoritePending = true
	dish := s.dish.Clone()
	s.mu.Unlock()

	var err error
	if dish.IsFavorite {
		err = s.gateway.CreateFavorite(ctx, dish)
	} else {
		err = s.gateway.DeleteFavorite(ctx, dish.ID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.favoritePending = false
	if err != nil {
		s.dish.IsFavorite = !dish.IsFavorite
		if dish.IsFavorite {
			return fmt.Errorf("add favorite %d: %w", dish.ID, err)
		}
		return fmt.Errorf("remove favorite %d: %w", dish.ID, err)
	}
	return nil
}

// Submit posts the current draft. On success the session is Confirmed and no
// longer editable; on failure it goes back to Idle so the user can retry.
func (s *Session) Submit(ctx context.Context) error {
	s.mu.Lock()
	if err := s.editable(); err != nil {
		s.mu.Unlock()
		return err
	}
	payload := s.payload()
	s.state = domain.StateSubmitting
	s.mu.Unlock()

	err := s.gateway.CreateOrder(ctx, payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = domain.StateIdle
		return fmt.Errorf("submit order for dish %d: %w", payload.ProductID, err)
	}
	s.state = domain.StateConfirmed
	return nil
}

// DismissConfirmation ends the session and asks the caller to go back one
// screen. It is only valid once the order is confirmed.
func (s *Session) DismissConfirmation() (domain.NavigationIntent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.NavigationIntent{}, ErrSessionClosed
	}
	if s.state != domain.StateConfirmed {
		return domain.NavigationIntent{}, ErrNotConfirmed
	}
	s.closed = true
	return domain.NavigationIntent{Kind: domain.IntentGoBack}, nil
}

func (s *Session) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total()
}

func (s *Session) FormattedTotal() string {
	return s.formatter.Format(s.Total())
}

func (s *Session) Draft() domain.OrderDraft {
	s.mu.Lock()
	defer s.mu.Unlock()

	return domain.OrderDraft{
		Dish:         s.dish.Clone(),
		Extras:       s.extras.Selections(),
		BaseQuantity: s.baseQuantity,
		Total:        domain.NewMoney(s.total()),
	}
}

func (s *Session) Payload() domain.OrderPayload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.payload()
}

func (s *Session) BaseQuantity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.baseQuantity
}

func (s *Session) State() domain.SubmissionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) IsFavorite() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dish.IsFavorite
}

func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Session) editable() error {
	if s.closed {
		return ErrSessionClosed
	}
	if s.state != domain.StateIdle {
		return ErrSessionLocked
	}
	return nil
}

func (s *Session) total() decimal.Decimal {
	return pricing.ComputeTotal(s.dish, s.extras.Selections(), s.baseQuantity)
}

func (s *Session) payload() domain.OrderPayload {
	return domain.OrderPayload{
		ProductID:      s.dish.ID,
		Name:           s.dish.Name,
		Description:    s.dish.Description,
		ImageURL:       s.dish.ImageURL,
		ThumbnailURL:   s.dish.ThumbnailURL,
		FormattedPrice: s.dish.FormattedPrice,
		Extras:         s.extras.Selections(),
		Price:          domain.NewMoney(s.total()),
	}
}
