package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"food-ordering-api/store"
)

type RestaurantHandler struct {
	catalog *store.CatalogStore
}

func NewRestaurantHandler(catalog *store.CatalogStore) *RestaurantHandler {
	return &RestaurantHandler{catalog: catalog}
}

type CreateRestaurantRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	Address      string  `json:"address"`
	Phone        string  `json:"phone"`
	CuisineType  string  `json:"cuisine_type"`
	Rating       float64 `json:"rating"`
	DeliveryFee  float64 `json:"delivery_fee"`
	MinimumOrder float64 `json:"minimum_order"`
	ImageURL     string  `json:"image_url"`
}

// Create adds a new restaurant. Any authenticated user may create one.
func (h *RestaurantHandler) Create(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurant, err := h.catalog.CreateRestaurant(c.Request.Context(), store.RestaurantParams{
		Name:         req.Name,
		Description:  req.Description,
		Address:      req.Address,
		Phone:        req.Phone,
		CuisineType:  req.CuisineType,
		Rating:       req.Rating,
		DeliveryFee:  req.DeliveryFee,
		MinimumOrder: req.MinimumOrder,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create restaurant"})
		return
	}

	c.JSON(http.StatusCreated, restaurant)
}

// List returns all restaurants (public).
func (h *RestaurantHandler) List(c *gin.Context) {
	restaurants, err := h.catalog.ListRestaurants(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list restaurants"})
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

// Get returns a single restaurant with its menu (public).
func (h *RestaurantHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurant id"})
		return
	}

	restaurant, err := h.catalog.GetRestaurant(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get restaurant"})
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
