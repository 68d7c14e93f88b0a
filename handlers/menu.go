package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"food-ordering-api/store"
)

type MenuHandler struct {
	catalog *store.CatalogStore
}

func NewMenuHandler(catalog *store.CatalogStore) *MenuHandler {
	return &MenuHandler{catalog: catalog}
}

type CreateMenuItemRequest struct {
	RestaurantID uint    `json:"restaurant_id" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	Category     string  `json:"category"`
	ImageURL     string  `json:"image_url"`
}

// Create adds a menu item to an existing restaurant.
func (h *MenuHandler) Create(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.catalog.CreateMenuItem(c.Request.Context(), store.MenuItemParams{
		RestaurantID: req.RestaurantID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Category:     req.Category,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, store.ErrInvalidRestaurant) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Restaurant does not exist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// List returns menu items, optionally filtered by ?restaurant_id= (public).
func (h *MenuHandler) List(c *gin.Context) {
	var restaurantID uint
	if raw := c.Query("restaurant_id"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurant_id"})
			return
		}
		restaurantID = id
	}

	items, err := h.catalog.ListMenuItems(c.Request.Context(), restaurantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list menu items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// Get returns a single menu item (public).
func (h *MenuHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item id"})
		return
	}

	item, err := h.catalog.GetMenuItem(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get menu item"})
		return
	}
	c.JSON(http.StatusOK, item)
}
