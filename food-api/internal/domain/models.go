package domain

import "time"

type Extra struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type Food struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Price          float64   `json:"price"`
	ImageURL       string    `json:"image_url"`
	ThumbnailURL   string    `json:"thumbnail_url,omitempty"`
	FormattedPrice string    `json:"formattedPrice,omitempty"`
	IsFavorite     bool      `json:"is_favorite"`
	Extras         []Extra   `json:"extras,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type OrderExtra struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Value    float64 `json:"value"`
	Quantity int     `json:"quantity"`
}

type Order struct {
	ID             int          `json:"id"`
	ProductID      int          `json:"product_id"`
	Name           string       `json:"name"`
	Description    string       `json:"description"`
	ImageURL       string       `json:"image_url"`
	ThumbnailURL   string       `json:"thumbnail_url"`
	FormattedPrice string       `json:"formattedPrice"`
	Price          float64      `json:"price"`
	Extras         []OrderExtra `json:"extras"`
	QRCode         string       `json:"qr_code,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
}

type OrderEvent struct {
	Type        string    `json:"type"`
	OrderID     int       `json:"order_id"`
	ProductID   int       `json:"product_id"`
	Price       float64   `json:"price"`
	ExtrasCount int       `json:"extras_count"`
	Timestamp   time.Time `json:"timestamp"`
}
