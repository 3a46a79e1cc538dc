package domain

import "time"

const EventOrderPlaced = "order_placed"

type OrderEvent struct {
	Type        string    `json:"type"`
	OrderID     int       `json:"order_id"`
	ProductID   int       `json:"product_id"`
	Price       float64   `json:"price"`
	ExtrasCount int       `json:"extras_count"`
	Timestamp   time.Time `json:"timestamp"`
}

type DishStats struct {
	ProductID int     `json:"product_id"`
	Orders    int64   `json:"orders"`
	Revenue   float64 `json:"revenue"`
	Extras    int64   `json:"extras"`
}
