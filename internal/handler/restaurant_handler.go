package handler

import (
	"net/http"
	"strings"

	"hanoi-foodie/internal/model"
	"hanoi-foodie/internal/service"

	"github.com/rs/zerolog"
)

// RestaurantHandler handles restaurant-related HTTP requests.
type RestaurantHandler struct {
	service service.MenuService
	logger  zerolog.Logger
}

// NewRestaurantHandler creates a new restaurant handler.
func NewRestaurantHandler(service service.MenuService, logger zerolog.Logger) *RestaurantHandler {
	return &RestaurantHandler{
		service: service,
		logger:  logger.With().Str("handler", "restaurant").Logger(),
	}
}

// GetAll handles GET /api/restaurants requests.
func (h *RestaurantHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	restaurants, err := h.service.Restaurants(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve restaurants", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, restaurants)
}

// GetDishes handles GET /api/restaurants/{name}/dishes requests, returning
// the dishes served at the named restaurant.
func (h *RestaurantHandler) GetDishes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	// Expecting path: /api/restaurants/{name}/dishes
	name := strings.TrimPrefix(r.URL.Path, "/api/restaurants/")
	name = strings.TrimSuffix(name, "/dishes")
	if name == "" {
		writeError(w, http.StatusBadRequest, "restaurant name is required", h.logger)
		return
	}

	restaurants, err := h.service.Restaurants(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve restaurants", h.logger)
		return
	}

	known := false
	for _, rest := range restaurants {
		if rest.Name == name {
			known = true
			break
		}
	}
	if !known {
		writeError(w, http.StatusNotFound, "restaurant not found", h.logger)
		return
	}

	dishes, err := h.service.Dishes(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve dishes", h.logger)
		return
	}

	entries, err := h.service.MenuEntries(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve menu entries", h.logger)
		return
	}

	served := service.DishesAt(name, dishes, entries)
	if served == nil {
		served = []model.Dish{}
	}

	writeJSON(w, http.StatusOK, served)
}
