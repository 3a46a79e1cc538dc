package httpapi

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"gofood/food-api/internal/domain"
	"gofood/food-api/internal/service"
	"gofood/food-api/internal/storage"

	"github.com/gorilla/mux"
)

type Handler struct {
	Foods     service.FoodServiceInterface
	Favorites service.FavoriteServiceInterface
	Orders    service.OrderServiceInterface
}

func NewHandler(foodSvc service.FoodServiceInterface, favoriteSvc service.FavoriteServiceInterface, orderSvc service.OrderServiceInterface) *Handler {
	return &Handler{
		Foods:     foodSvc,
		Favorites: favoriteSvc,
		Orders:    orderSvc,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/foods", h.getFoods).Methods("GET")
	r.HandleFunc("/foods/popular", h.getPopularFoods).Methods("GET")
	r.HandleFunc("/foods/{id}", h.getFood).Methods("GET")

	r.HandleFunc("/favorites", h.getFavorites).Methods("GET")
	r.HandleFunc("/favorites", h.createFavorite).Methods("POST")
	r.HandleFunc("/favorites", h.deleteFavorite).Methods("DELETE")
	r.HandleFunc("/favorites/{id}", h.deleteFavorite).Methods("DELETE")

	r.HandleFunc("/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "food-api",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) getFoods(w http.ResponseWriter, r *http.Request) {
	foods, err := h.Foods.List(r.Context(), r.URL.Query().Get("name_like"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, foods)
}

func (h *Handler) getPopularFoods(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 50 {
			http.Error(w, "limit must be between 1 and 50", http.StatusBadRequest)
			return
		}
		limit = parsed
	}
	foods, err := h.Foods.Popular(r.Context(), limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, foods)
}

func (h *Handler) getFood(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	food, err := h.Foods.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Food not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, food)
}

func (h *Handler) getFavorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.Favorites.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, favorites)
}

func (h *Handler) createFavorite(w http.ResponseWriter, r *http.Request) {
	var food domain.Food
	if err := json.NewDecoder(r.Body).Decode(&food); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Favorites.Add(r.Context(), &food); err != nil {
		if errors.Is(err, service.ErrInvalidFavorite) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, food)
}

func (h *Handler) deleteFavorite(w http.ResponseWriter, r *http.Request) {
	raw, ok := mux.Vars(r)["id"]
	if !ok {
		raw = r.URL.Query().Get("id")
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		http.Error(w, "Invalid favorite id", http.StatusBadRequest)
		return
	}
	if err := h.Favorites.Remove(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidFavorite):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, storage.ErrFavoriteNotFound):
			http.Error(w, "Favorite not found", http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var order domain.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Orders.Create(r.Context(), &order); err != nil {
		if errors.Is(err, service.ErrInvalidOrder) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	order.QRCode = h.Orders.QRLink(order.ID)
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(w, r)
	if !ok {
		return
	}
	order, err := h.Orders.Get(orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	order.QRCode = h.Orders.QRLink(order.ID)
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(w, r)
	if !ok {
		return
	}
	qrCode, err := h.Orders.GetQRCode(orderID)
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	if len(qrCode) == 0 {
		http.Error(w, "QR code not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
