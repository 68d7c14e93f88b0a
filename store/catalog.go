package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"food-ordering-api/models"
)

// CatalogStore persists restaurants and their menu items.
type CatalogStore struct {
	db *gorm.DB
}

func NewCatalogStore(db *gorm.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

// RestaurantParams enumerates every field accepted when creating a restaurant.
// Unset numeric fields default to zero and the restaurant starts active.
type RestaurantParams struct {
	Name         string
	Description  string
	Address      string
	Phone        string
	CuisineType  string
	Rating       float64
	DeliveryFee  float64
	MinimumOrder float64
	ImageURL     string
}

// MenuItemParams enumerates every field accepted when creating a menu item.
type MenuItemParams struct {
	RestaurantID uint
	Name         string
	Description  string
	Price        float64
	Category     string
	ImageURL     string
}

// CreateRestaurant inserts a new restaurant. Names are not unique; two
// restaurants may share one.
func (s *CatalogStore) CreateRestaurant(ctx context.Context, p RestaurantParams) (*models.Restaurant, error) {
	restaurant := models.Restaurant{
		Name:         p.Name,
		Description:  p.Description,
		Address:      p.Address,
		Phone:        p.Phone,
		CuisineType:  p.CuisineType,
		Rating:       p.Rating,
		DeliveryFee:  p.DeliveryFee,
		MinimumOrder: p.MinimumOrder,
		ImageURL:     p.ImageURL,
		IsActive:     true,
	}
	if err := s.db.WithContext(ctx).Create(&restaurant).Error; err != nil {
		return nil, fmt.Errorf("failed to create restaurant: %w", err)
	}
	return &restaurant, nil
}

// ListRestaurants returns all restaurants.
func (s *CatalogStore) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	restaurants := make([]models.Restaurant, 0)
	if err := s.db.WithContext(ctx).Find(&restaurants).Error; err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}
	return restaurants, nil
}

// GetRestaurant returns a single restaurant with its menu items preloaded,
// or ErrNotFound.
func (s *CatalogStore) GetRestaurant(ctx context.Context, id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.db.WithContext(ctx).Preload("MenuItems").First(&restaurant, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}
	return &restaurant, nil
}

// CreateMenuItem inserts a menu item after confirming the owning restaurant
// exists. Not every backing store enforces the foreign key, so the check is
// done here.
func (s *CatalogStore) CreateMenuItem(ctx context.Context, p MenuItemParams) (*models.MenuItem, error) {
	db := s.db.WithContext(ctx)

	var count int64
	if err := db.Model(&models.Restaurant{}).Where("id = ?", p.RestaurantID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check restaurant: %w", err)
	}
	if count == 0 {
		return nil, ErrInvalidRestaurant
	}

	item := models.MenuItem{
		RestaurantID: p.RestaurantID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		Category:     p.Category,
		ImageURL:     p.ImageURL,
		IsAvailable:  true,
	}
	if err := db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}
	return &item, nil
}

// ListMenuItems returns menu items, filtered to one restaurant when
// restaurantID is nonzero.
func (s *CatalogStore) ListMenuItems(ctx context.Context, restaurantID uint) ([]models.MenuItem, error) {
	items := make([]models.MenuItem, 0)
	query := s.db.WithContext(ctx)
	if restaurantID != 0 {
		query = query.Where("restaurant_id = ?", restaurantID)
	}
	if err := query.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	return items, nil
}

// GetMenuItem returns a single menu item or ErrNotFound.
func (s *CatalogStore) GetMenuItem(ctx context.Context, id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}
	return &item, nil
}

// SetRestaurantImageByName updates the banner image of the first restaurant
// with the given name. Returns ErrNotFound when no restaurant matches.
func (s *CatalogStore) SetRestaurantImageByName(ctx context.Context, name, imageURL string) error {
	db := s.db.WithContext(ctx)

	var restaurant models.Restaurant
	if err := db.Where("name = ?", name).First(&restaurant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to find restaurant: %w", err)
	}
	if err := db.Model(&restaurant).Update("image_url", imageURL).Error; err != nil {
		return fmt.Errorf("failed to update restaurant image: %w", err)
	}
	return nil
}

// SetMenuItemImageByName updates the image of the first menu item with the
// given name. Returns ErrNotFound when no item matches.
func (s *CatalogStore) SetMenuItemImageByName(ctx context.Context, name, imageURL string) error {
	db := s.db.WithContext(ctx)

	var item models.MenuItem
	if err := db.Where("name = ?", name).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to find menu item: %w", err)
	}
	if err := db.Model(&item).Update("image_url", imageURL).Error; err != nil {
		return fmt.Errorf("failed to update menu item image: %w", err)
	}
	return nil
}

// Reset deletes all menu items and restaurants, in that order. Used by the
// seed tool before repopulating.
func (s *CatalogStore) Reset(ctx context.Context) error {
	db := s.db.WithContext(ctx)
	if err := db.Where("1 = 1").Delete(&models.MenuItem{}).Error; err != nil {
		return fmt.Errorf("failed to clear menu items: %w", err)
	}
	if err := db.Where("1 = 1").Delete(&models.Restaurant{}).Error; err != nil {
		return fmt.Errorf("failed to clear restaurants: %w", err)
	}
	return nil
}

// CountMenuItems returns the number of menu items owned by a restaurant.
func (s *CatalogStore) CountMenuItems(ctx context.Context, restaurantID uint) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.MenuItem{}).Where("restaurant_id = ?", restaurantID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count menu items: %w", err)
	}
	return count, nil
}
