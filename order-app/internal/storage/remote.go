package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"gofood/order-app/internal/domain"
	"gofood/order-app/internal/service"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("resource not found")

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// RemoteError is returned for any non-2xx answer from the food service.
type RemoteError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	msg := fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

func (e *RemoteError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	return nil
}

// RemoteGateway talks to the food service over HTTP. It neither retries nor
// caches.
type RemoteGateway struct {
	baseURL string
	client  HTTPClient
}

func NewRemoteGateway(baseURL string, client HTTPClient) *RemoteGateway {
	return &RemoteGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

func (g *RemoteGateway) GetFood(ctx context.Context, id int) (*domain.Dish, error) {
	var dish domain.Dish
	if err := g.do(ctx, http.MethodGet, "/foods/"+strconv.Itoa(id), nil, nil, &dish); err != nil {
		return nil, err
	}
	return &dish, nil
}

func (g *RemoteGateway) ListOrders(ctx context.Context) ([]domain.PastOrderSummary, error) {
	orders := []domain.PastOrderSummary{}
	if err := g.do(ctx, http.MethodGet, "/orders", nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (g *RemoteGateway) GetOrder(ctx context.Context, id int) (*domain.PastOrder, error) {
	var order domain.PastOrder
	if err := g.do(ctx, http.MethodGet, "/orders/"+strconv.Itoa(id), nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (g *RemoteGateway) CreateFavorite(ctx context.Context, dish domain.Dish) error {
	return g.do(ctx, http.MethodPost, "/favorites", nil, dish, nil)
}

func (g *RemoteGateway) DeleteFavorite(ctx context.Context, dishID int) error {
	query := url.Values{"id": []string{strconv.Itoa(dishID)}}
	return g.do(ctx, http.MethodDelete, "/favorites", query, nil, nil)
}

func (g *RemoteGateway) CreateOrder(ctx context.Context, payload domain.OrderPayload) error {
	return g.do(ctx, http.MethodPost, "/orders", nil, payload, nil)
}

func (g *RemoteGateway) do(ctx context.Context, method, path string, query url.Values, in, out interface{}) error {
	target := g.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &RemoteError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

var _ service.Gateway = (*RemoteGateway)(nil)
