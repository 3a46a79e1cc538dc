package domain

import (
	"github.com/shopspring/decimal"
)

// Money is an exact monetary amount. It decodes from JSON numbers or strings
// and always encodes as a bare JSON number.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

func MoneyFromFloat(f float64) Money {
	return Money{Decimal: decimal.NewFromFloat(f)}
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.String()), nil
}

type ExtraDefinition struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Value Money  `json:"value"`
}

type ExtraSelection struct {
	ExtraDefinition
	Quantity int `json:"quantity"`
}

type Dish struct {
	ID             int               `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          Money             `json:"price"`
	ImageURL       string            `json:"image_url"`
	ThumbnailURL   string            `json:"thumbnail_url,omitempty"`
	FormattedPrice string            `json:"formattedPrice,omitempty"`
	IsFavorite     bool              `json:"is_favorite,omitempty"`
	Extras         []ExtraDefinition `json:"extras"`
}

// Clone returns a copy that shares no slices with d.
func (d Dish) Clone() Dish {
	clone := d
	if d.Extras != nil {
		clone.Extras = make([]ExtraDefinition, len(d.Extras))
		copy(clone.Extras, d.Extras)
	}
	return clone
}

// OrderPayload is the body of POST /orders: the dish fields without the
// dish id, plus product_id, the extras ledger and the computed total.
type OrderPayload struct {
	ProductID      int              `json:"product_id"`
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	ImageURL       string           `json:"image_url"`
	ThumbnailURL   string           `json:"thumbnail_url,omitempty"`
	FormattedPrice string           `json:"formattedPrice,omitempty"`
	Extras         []ExtraSelection `json:"extras"`
	Price          Money            `json:"price"`
}

type OrderDraft struct {
	Dish         Dish
	Extras       []ExtraSelection
	BaseQuantity int
	Total        Money
}

type PastOrderSummary struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Price          Money  `json:"price"`
	FormattedPrice string `json:"formattedPrice"`
	ThumbnailURL   string `json:"thumbnail_url"`
}

type PastOrder struct {
	ID             int              `json:"id"`
	ProductID      int              `json:"product_id"`
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	Price          Money            `json:"price"`
	FormattedPrice string           `json:"formattedPrice"`
	ImageURL       string           `json:"image_url"`
	ThumbnailURL   string           `json:"thumbnail_url"`
	Extras         []ExtraSelection `json:"extras"`
}

type SubmissionState int

const (
	StateIdle SubmissionState = iota
	StateSubmitting
	StateConfirmed
)

func (s SubmissionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

type IntentKind int

const (
	IntentGoBack IntentKind = iota + 1
	IntentOpenOrderDetails
)

// NavigationIntent tells the caller where to go next; routing itself is not
// owned here.
type NavigationIntent struct {
	Kind    IntentKind
	OrderID int
}
