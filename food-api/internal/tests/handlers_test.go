package tests

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "gofood/food-api/internal/api/http"
	"gofood/food-api/internal/domain"
	"gofood/food-api/internal/mocks"
	"gofood/food-api/internal/service"
	"gofood/food-api/internal/storage"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	foods      *mocks.FoodRepository
	favorites  *mocks.FavoriteStore
	popularity *mocks.PopularityReader
	orders     *mocks.OrderRepository
	qr         *mocks.QRGenerator
	router     *mux.Router
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		foods:      mocks.NewFoodRepository(t),
		favorites:  mocks.NewFavoriteStore(t),
		popularity: mocks.NewPopularityReader(t),
		orders:     mocks.NewOrderRepository(t),
		qr:         mocks.NewQRGenerator(t),
		router:     mux.NewRouter(),
	}
	handler := httpapi.NewHandler(
		service.NewFoodService(f.foods, f.favorites, f.popularity),
		service.NewFavoriteService(f.favorites),
		service.NewOrderService(f.orders, f.qr, nil),
	)
	handler.RegisterRoutes(f.router)
	return f
}

func (f *fixture) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	w := newFixture(t).do("GET", "/health", "")

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "food-api", body["service"])
}

func TestGetFoodHandler(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(*fixture)
		wantCode  int
	}{
		{
			name: "found",
			id:   "1",
			setupMock: func(f *fixture) {
				f.foods.On("GetFood", 1).Return(&domain.Food{
					ID: 1, Name: "Ao molho", Price: 10,
					Extras: []domain.Extra{{ID: 10, Name: "Bacon", Value: 2}},
				}, nil).Once()
				f.favorites.On("FavoriteIDs", mock.Anything).Return(map[int]bool{1: true}, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name: "not found",
			id:   "999",
			setupMock: func(f *fixture) {
				f.foods.On("GetFood", 999).Return(nil, sql.ErrNoRows).Once()
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "database error",
			id:   "2",
			setupMock: func(f *fixture) {
				f.foods.On("GetFood", 2).Return(nil, errors.New("db error")).Once()
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name:      "invalid id",
			id:        "abc",
			setupMock: func(f *fixture) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture(t)
			testCase.setupMock(f)

			w := f.do("GET", "/foods/"+testCase.id, "")

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestGetFoodHandler_Body(t *testing.T) {
	f := newFixture(t)
	f.foods.On("GetFood", 1).Return(&domain.Food{
		ID: 1, Name: "Ao molho", Price: 10,
		Extras: []domain.Extra{{ID: 10, Name: "Bacon", Value: 2}},
	}, nil).Once()
	f.favorites.On("FavoriteIDs", mock.Anything).Return(map[int]bool{1: true}, nil).Once()

	w := f.do("GET", "/foods/1", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"id": 1, "name": "Ao molho", "description": "", "price": 10, "image_url": "",
		"is_favorite": true, "extras": [{"id": 10, "name": "Bacon", "value": 2}],
		"created_at": "0001-01-01T00:00:00Z"
	}`, w.Body.String())
}

func TestGetFoodsHandler_NameFilter(t *testing.T) {
	f := newFixture(t)
	f.foods.On("ListFoods", "molho").Return([]domain.Food{{ID: 1, Name: "Ao molho"}}, nil).Once()
	f.favorites.On("FavoriteIDs", mock.Anything).Return(map[int]bool{}, nil).Once()

	w := f.do("GET", "/foods?name_like=molho", "")

	require.Equal(t, http.StatusOK, w.Code)
	var foods []domain.Food
	require.NoError(t, json.NewDecoder(w.Body).Decode(&foods))
	require.Len(t, foods, 1)
	assert.Equal(t, "Ao molho", foods[0].Name)
}

func TestGetPopularFoodsHandler(t *testing.T) {
	f := newFixture(t)
	f.popularity.On("TopFoodIDs", mock.Anything, 2).Return([]int{3, 1}, nil).Once()
	f.favorites.On("FavoriteIDs", mock.Anything).Return(map[int]bool{1: true}, nil).Once()
	f.foods.On("GetFood", 3).Return(&domain.Food{ID: 3, Name: "Veggie"}, nil).Once()
	f.foods.On("GetFood", 1).Return(&domain.Food{ID: 1, Name: "Ao molho"}, nil).Once()

	w := f.do("GET", "/foods/popular?limit=2", "")

	require.Equal(t, http.StatusOK, w.Code)
	var foods []domain.Food
	require.NoError(t, json.NewDecoder(w.Body).Decode(&foods))
	require.Len(t, foods, 2)
	assert.Equal(t, 3, foods[0].ID)
	assert.True(t, foods[1].IsFavorite)

	w = f.do("GET", "/foods/popular?limit=0", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateFavoriteHandler(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(*fixture)
		wantCode  int
	}{
		{
			name: "valid request",
			body: `{"id":1,"name":"Ao molho","price":10}`,
			setupMock: func(f *fixture) {
				f.favorites.On("AddFavorite", mock.Anything, mock.AnythingOfType("domain.Food")).Return(nil).Once()
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "invalid JSON",
			body:      `{invalid}`,
			setupMock: func(f *fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "missing id",
			body:      `{"name":"Ao molho"}`,
			setupMock: func(f *fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "store error",
			body: `{"id":1}`,
			setupMock: func(f *fixture) {
				f.favorites.On("AddFavorite", mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture(t)
			testCase.setupMock(f)

			w := f.do("POST", "/favorites", testCase.body)

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestDeleteFavoriteHandler(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		setupMock func(*fixture)
		wantCode  int
	}{
		{
			name:   "query id",
			target: "/favorites?id=1",
			setupMock: func(f *fixture) {
				f.favorites.On("RemoveFavorite", mock.Anything, 1).Return(nil).Once()
			},
			wantCode: http.StatusNoContent,
		},
		{
			name:   "path id",
			target: "/favorites/2",
			setupMock: func(f *fixture) {
				f.favorites.On("RemoveFavorite", mock.Anything, 2).Return(nil).Once()
			},
			wantCode: http.StatusNoContent,
		},
		{
			name:   "not a favorite",
			target: "/favorites?id=3",
			setupMock: func(f *fixture) {
				f.favorites.On("RemoveFavorite", mock.Anything, 3).Return(storage.ErrFavoriteNotFound).Once()
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:      "missing id",
			target:    "/favorites",
			setupMock: func(f *fixture) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture(t)
			testCase.setupMock(f)

			w := f.do("DELETE", testCase.target, "")

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestCreateOrderHandler(t *testing.T) {
	f := newFixture(t)
	f.orders.On("CreateOrder", mock.AnythingOfType("*domain.Order")).Run(func(args mock.Arguments) {
		args.Get(0).(*domain.Order).ID = 7
	}).Return(nil).Once()
	f.qr.On("Generate", 7).Return([]byte("png"), nil).Once()
	f.orders.On("SaveQRCode", 7, []byte("png")).Return(nil).Once()

	body := `{"product_id":1,"name":"Ao molho","price":34,"extras":[{"id":10,"name":"Bacon","value":2,"quantity":2}]}`
	w := f.do("POST", "/orders", body)

	require.Equal(t, http.StatusCreated, w.Code)
	var order domain.Order
	require.NoError(t, json.NewDecoder(w.Body).Decode(&order))
	assert.Equal(t, 7, order.ID)
	assert.Equal(t, "/orders/7/qrcode", order.QRCode)
	assert.Equal(t, []domain.OrderExtra{{ID: 10, Name: "Bacon", Value: 2, Quantity: 2}}, order.Extras)
}

func TestCreateOrderHandler_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "invalid JSON", body: `{invalid}`},
		{name: "missing product", body: `{"price":10}`},
		{name: "negative extra", body: `{"product_id":1,"price":10,"extras":[{"id":10,"quantity":-1}]}`},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			w := newFixture(t).do("POST", "/orders", testCase.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestGetOrdersHandler(t *testing.T) {
	f := newFixture(t)
	f.orders.On("ListOrders").Return([]domain.Order{{ID: 9, Price: 12}, {ID: 4, Price: 34}}, nil).Once()

	w := f.do("GET", "/orders", "")

	require.Equal(t, http.StatusOK, w.Code)
	var orders []domain.Order
	require.NoError(t, json.NewDecoder(w.Body).Decode(&orders))
	require.Len(t, orders, 2)
	assert.Equal(t, 9, orders[0].ID)
	assert.Equal(t, 4, orders[1].ID)
}

func TestGetOrderHandler(t *testing.T) {
	f := newFixture(t)
	f.orders.On("GetOrder", 7).Return(&domain.Order{ID: 7, ProductID: 1}, []domain.OrderExtra{{ID: 10, Quantity: 2}}, nil).Once()
	f.orders.On("GetOrder", 8).Return(nil, nil, sql.ErrNoRows).Once()

	w := f.do("GET", "/orders/7", "")
	require.Equal(t, http.StatusOK, w.Code)
	var order domain.Order
	require.NoError(t, json.NewDecoder(w.Body).Decode(&order))
	assert.Len(t, order.Extras, 1)

	w = f.do("GET", "/orders/8", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetOrderQRCodeHandler(t *testing.T) {
	f := newFixture(t)
	f.orders.On("GetQRCode", 7).Return([]byte("\x89PNG"), nil).Once()
	f.orders.On("GetQRCode", 8).Return(nil, sql.ErrNoRows).Once()

	w := f.do("GET", "/orders/7/qrcode", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, "\x89PNG", w.Body.String())

	w = f.do("GET", "/orders/8/qrcode", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	handler := httpapi.NewRouter(httpapi.NewHandler(nil, nil, nil))

	req := httptest.NewRequest("OPTIONS", "/orders", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
