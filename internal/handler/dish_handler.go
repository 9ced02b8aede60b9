package handler

import (
	"net/http"
	"strings"

	"hanoi-foodie/internal/model"
	"hanoi-foodie/internal/service"

	"github.com/rs/zerolog"
)

// DishHandler handles dish-related HTTP requests.
type DishHandler struct {
	service service.MenuService
	logger  zerolog.Logger
}

// NewDishHandler creates a new dish handler.
func NewDishHandler(service service.MenuService, logger zerolog.Logger) *DishHandler {
	return &DishHandler{
		service: service,
		logger:  logger.With().Str("handler", "dish").Logger(),
	}
}

// GetAll handles GET /api/dishes requests.
func (h *DishHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	dishes, err := h.service.Dishes(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve dishes", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, dishes)
}

// GetRestaurants handles GET /api/dishes/{name}/restaurants requests,
// returning the restaurants serving the named dish.
func (h *DishHandler) GetRestaurants(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	// Expecting path: /api/dishes/{name}/restaurants
	name := strings.TrimPrefix(r.URL.Path, "/api/dishes/")
	name = strings.TrimSuffix(name, "/restaurants")
	if name == "" {
		writeError(w, http.StatusBadRequest, "dish name is required", h.logger)
		return
	}

	dishes, err := h.service.Dishes(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve dishes", h.logger)
		return
	}

	known := false
	for _, d := range dishes {
		if d.Name == name {
			known = true
			break
		}
	}
	if !known {
		writeError(w, http.StatusNotFound, "dish not found", h.logger)
		return
	}

	restaurants, err := h.service.Restaurants(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve restaurants", h.logger)
		return
	}

	entries, err := h.service.MenuEntries(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve menu entries", h.logger)
		return
	}

	serving := service.RestaurantsServing(name, restaurants, entries)
	if serving == nil {
		serving = []model.Restaurant{}
	}

	writeJSON(w, http.StatusOK, serving)
}
