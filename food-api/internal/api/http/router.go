package httpapi

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func NewRouter(handler *Handler) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", "Accept", "X-Request-ID"},
	}).Handler(r)
}

func StartServer(addr string, handler http.Handler) {
	log.Printf("[food-api] Food API starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
