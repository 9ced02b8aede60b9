package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hanoi-foodie/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var handlerTestRestaurants = []model.Restaurant{
	{ID: 1, Name: "Pho Thin", Address: "13 Lo Duc"},
	{ID: 2, Name: "Banh Mi 25", Address: "25 Hang Ca"},
}

var handlerTestDishes = []model.Dish{
	{ID: 1, Name: "Pho Bo"},
	{ID: 2, Name: "Banh Mi"},
}

func TestRestaurantHandler_GetAll(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockMenuService)
		mockService.On("Restaurants", mock.Anything).Return(handlerTestRestaurants, nil)

		h := NewRestaurantHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodGet, "/api/restaurants", nil)
		w := httptest.NewRecorder()

		h.GetAll(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var restaurants []model.Restaurant
		require.NoError(t, json.NewDecoder(w.Body).Decode(&restaurants))
		assert.Len(t, restaurants, 2)
		assert.Equal(t, "Pho Thin", restaurants[0].Name)
	})

	t.Run("Service error", func(t *testing.T) {
		mockService := new(MockMenuService)
		mockService.On("Restaurants", mock.Anything).Return(nil, errors.New("database error"))

		h := NewRestaurantHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodGet, "/api/restaurants", nil)
		w := httptest.NewRecorder()

		h.GetAll(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestRestaurantHandler_GetDishes(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Returns dishes served at the restaurant", func(t *testing.T) {
		mockService := new(MockMenuService)
		mockService.On("Restaurants", mock.Anything).Return(handlerTestRestaurants, nil)
		mockService.On("Dishes", mock.Anything).Return(handlerTestDishes, nil)
		mockService.On("MenuEntries", mock.Anything).Return(handlerTestEntries, nil)

		h := NewRestaurantHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodGet, "/api/restaurants/Pho%20Thin/dishes", nil)
		w := httptest.NewRecorder()

		h.GetDishes(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var dishes []model.Dish
		require.NoError(t, json.NewDecoder(w.Body).Decode(&dishes))
		require.Len(t, dishes, 1)
		assert.Equal(t, "Pho Bo", dishes[0].Name)
	})

	t.Run("Unknown restaurant returns 404", func(t *testing.T) {
		mockService := new(MockMenuService)
		mockService.On("Restaurants", mock.Anything).Return(handlerTestRestaurants, nil)

		h := NewRestaurantHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodGet, "/api/restaurants/Nonexistent/dishes", nil)
		w := httptest.NewRecorder()

		h.GetDishes(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Known restaurant with no menu entries returns empty list", func(t *testing.T) {
		mockService := new(MockMenuService)
		mockService.On("Restaurants", mock.Anything).Return(handlerTestRestaurants, nil)
		mockService.On("Dishes", mock.Anything).Return(handlerTestDishes, nil)
		mockService.On("MenuEntries", mock.Anything).Return([]model.MenuEntry{}, nil)

		h := NewRestaurantHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodGet, "/api/restaurants/Pho%20Thin/dishes", nil)
		w := httptest.NewRecorder()

		h.GetDishes(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})
}
