package handler

import (
	"net/http"

	"hanoi-foodie/internal/model"
	"hanoi-foodie/internal/service"

	"github.com/rs/zerolog"
)

// MenuHandler handles menu-related HTTP requests.
type MenuHandler struct {
	service service.MenuService
	logger  zerolog.Logger
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(service service.MenuService, logger zerolog.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		logger:  logger.With().Str("handler", "menu").Logger(),
	}
}

// GetAll handles GET /api/menu requests, returning the joined
// restaurant-dish-price view.
func (h *MenuHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	entries, err := h.service.MenuEntries(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve menu entries", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// GetPrice handles GET /api/menu/price?restaurant=X&dish=Y requests. Responds
// 404 when the pair has no listed price; a zero price is a real price.
func (h *MenuHandler) GetPrice(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	restaurant := r.URL.Query().Get("restaurant")
	dish := r.URL.Query().Get("dish")
	if restaurant == "" || dish == "" {
		writeError(w, http.StatusBadRequest, "restaurant and dish parameters are required", h.logger)
		return
	}

	entries, err := h.service.MenuEntries(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve menu entries", h.logger)
		return
	}

	price, ok := service.PriceOf(restaurant, dish, entries)
	if !ok {
		writeError(w, http.StatusNotFound, "no listed price for this restaurant and dish", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.MenuEntry{
		Restaurant: restaurant,
		Dish:       dish,
		Price:      price,
	})
}
