package storage

import (
	"database/sql"
	"fmt"

	"gofood/food-api/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) GetFood(id int) (*domain.Food, error) {
	var food domain.Food
	err := r.DB.QueryRow(`
		SELECT id, name, COALESCE(description, ''), price, COALESCE(image_url, ''), COALESCE(thumbnail_url, ''), created_at
		FROM foods
		WHERE id = $1`, id).
		Scan(&food.ID, &food.Name, &food.Description, &food.Price, &food.ImageURL, &food.ThumbnailURL, &food.CreatedAt)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(`
		SELECT id, name, value
		FROM food_extras
		WHERE food_id = $1
		ORDER BY id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	food.Extras = []domain.Extra{}
	for rows.Next() {
		var extra domain.Extra
		if err := rows.Scan(&extra.ID, &extra.Name, &extra.Value); err != nil {
			return nil, err
		}
		food.Extras = append(food.Extras, extra)
	}
	return &food, rows.Err()
}

func (r *PostgresRepository) ListFoods(nameLike string) ([]domain.Food, error) {
	query := `
		SELECT id, name, COALESCE(description, ''), price, COALESCE(image_url, ''), COALESCE(thumbnail_url, ''), created_at
		FROM foods`
	var args []interface{}
	if nameLike != "" {
		query += " WHERE name ILIKE '%' || $1 || '%'"
		args = append(args, nameLike)
	}
	query += " ORDER BY id"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	foods := []domain.Food{}
	for rows.Next() {
		var food domain.Food
		if err := rows.Scan(&food.ID, &food.Name, &food.Description, &food.Price, &food.ImageURL, &food.ThumbnailURL, &food.CreatedAt); err != nil {
			continue
		}
		foods = append(foods, food)
	}
	return foods, nil
}

func (r *PostgresRepository) CountFoods() (int, error) {
	var count int
	err := r.DB.QueryRow("SELECT COUNT(*) FROM foods").Scan(&count)
	return count, err
}

func (r *PostgresRepository) CreateFood(food *domain.Food) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRow(`
		INSERT INTO foods (name, description, price, image_url, thumbnail_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, food.Name, food.Description, food.Price, food.ImageURL, food.ThumbnailURL).Scan(&food.ID, &food.CreatedAt); err != nil {
		return err
	}

	for i := range food.Extras {
		extra := &food.Extras[i]
		if err := tx.QueryRow(`
			INSERT INTO food_extras (food_id, name, value)
			VALUES ($1, $2, $3)
			RETURNING id
		`, food.ID, extra.Name, extra.Value).Scan(&extra.ID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) CreateOrder(order *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRow(`
		INSERT INTO orders (product_id, name, description, image_url, thumbnail_url, formatted_price, price, qr_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULL)
		RETURNING id, created_at
	`, order.ProductID, order.Name, order.Description, order.ImageURL, order.ThumbnailURL, order.FormattedPrice, order.Price).
		Scan(&order.ID, &order.CreatedAt); err != nil {
		return err
	}

	for _, extra := range order.Extras {
		if _, err := tx.Exec(`
			INSERT INTO order_extras (order_id, extra_id, name, value, quantity)
			VALUES ($1, $2, $3, $4, $5)
		`, order.ID, extra.ID, extra.Name, extra.Value, extra.Quantity); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) SaveQRCode(orderID int, qr []byte) error {
	_, err := r.DB.Exec(`UPDATE orders SET qr_code = $1 WHERE id = $2`, qr, orderID)
	return err
}

func (r *PostgresRepository) GetOrder(orderID int) (*domain.Order, []domain.OrderExtra, error) {
	var order domain.Order
	if err := r.DB.QueryRow(`
		SELECT id, product_id, name, description, image_url, thumbnail_url, formatted_price, price, created_at
		FROM orders WHERE id = $1
	`, orderID).Scan(&order.ID, &order.ProductID, &order.Name, &order.Description, &order.ImageURL,
		&order.ThumbnailURL, &order.FormattedPrice, &order.Price, &order.CreatedAt); err != nil {
		return nil, nil, err
	}

	rows, err := r.DB.Query(`
		SELECT extra_id, name, value, quantity
		FROM order_extras
		WHERE order_id = $1
		ORDER BY id
	`, orderID)
	if err != nil {
		return &order, nil, err
	}
	defer rows.Close()

	extras := []domain.OrderExtra{}
	for rows.Next() {
		var extra domain.OrderExtra
		if err := rows.Scan(&extra.ID, &extra.Name, &extra.Value, &extra.Quantity); err != nil {
			continue
		}
		extras = append(extras, extra)
	}

	return &order, extras, nil
}

func (r *PostgresRepository) ListOrders() ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT id, product_id, name, description, image_url, thumbnail_url, formatted_price, price, created_at
		FROM orders
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.ProductID, &order.Name, &order.Description, &order.ImageURL,
			&order.ThumbnailURL, &order.FormattedPrice, &order.Price, &order.CreatedAt); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *PostgresRepository) GetQRCode(orderID int) ([]byte, error) {
	var qrCode []byte
	if err := r.DB.QueryRow("SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qrCode); err != nil {
		return nil, err
	}
	return qrCode, nil
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS foods (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			price NUMERIC(10, 2) NOT NULL,
			image_url TEXT,
			thumbnail_url TEXT,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS food_extras (
			id SERIAL PRIMARY KEY,
			food_id INTEGER NOT NULL REFERENCES foods(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			value NUMERIC(10, 2) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			product_id INTEGER NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			image_url TEXT NOT NULL DEFAULT '',
			thumbnail_url TEXT NOT NULL DEFAULT '',
			formatted_price TEXT NOT NULL DEFAULT '',
			price NUMERIC(10, 2) NOT NULL,
			qr_code BYTEA,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS order_extras (
			id SERIAL PRIMARY KEY,
			order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			extra_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			value NUMERIC(10, 2) NOT NULL,
			quantity INTEGER NOT NULL CHECK (quantity >= 0)
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}
