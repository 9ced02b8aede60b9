package router

import (
	"net/http"
	"strings"

	"hanoi-foodie/internal/handler"
	"hanoi-foodie/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	restaurantHandler *handler.RestaurantHandler,
	dishHandler *handler.DishHandler,
	menuHandler *handler.MenuHandler,
	apiKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Restaurant handler function
	restaurantRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		// /api/restaurants/{name}/dishes is the only nested route
		if strings.HasSuffix(r.URL.Path, "/dishes") &&
			r.URL.Path != "/api/restaurants" && r.URL.Path != "/api/restaurants/" {
			restaurantHandler.GetDishes(w, r)
			return
		}
		if r.URL.Path == "/api/restaurants" || r.URL.Path == "/api/restaurants/" {
			restaurantHandler.GetAll(w, r)
			return
		}

		http.Error(w, "not found", http.StatusNotFound)
	}

	// Register restaurant routes (both with and without trailing slash)
	mux.HandleFunc("/api/restaurants", restaurantRouteHandler)
	mux.HandleFunc("/api/restaurants/", restaurantRouteHandler)

	// Dish handler function
	dishRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/restaurants") &&
			r.URL.Path != "/api/dishes" && r.URL.Path != "/api/dishes/" {
			dishHandler.GetRestaurants(w, r)
			return
		}
		if r.URL.Path == "/api/dishes" || r.URL.Path == "/api/dishes/" {
			dishHandler.GetAll(w, r)
			return
		}

		http.Error(w, "not found", http.StatusNotFound)
	}

	// Register dish routes (both with and without trailing slash)
	mux.HandleFunc("/api/dishes", dishRouteHandler)
	mux.HandleFunc("/api/dishes/", dishRouteHandler)

	// Menu handler function
	menuRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/menu/price" {
			menuHandler.GetPrice(w, r)
			return
		}
		if r.URL.Path == "/api/menu" || r.URL.Path == "/api/menu/" {
			menuHandler.GetAll(w, r)
			return
		}

		http.Error(w, "not found", http.StatusNotFound)
	}

	// Register menu routes (both with and without trailing slash)
	mux.HandleFunc("/api/menu", menuRouteHandler)
	mux.HandleFunc("/api/menu/", menuRouteHandler)

	// Apply middleware in order: Recovery -> Logging -> RequestID -> CORS -> APIKeyAuth
	var h http.Handler = mux
	h = middleware.APIKeyAuth(apiKey, logger)(h)
	h = middleware.CORS(h)
	h = middleware.RequestID(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
