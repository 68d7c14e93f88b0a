// Command seed populates the database with sample restaurants and menus, and
// patches image URLs on existing records by name.
//
// Usage:
//
//	seed populate
//	seed set-item-image -name "Pepperoni Pizza" -url https://...
//	seed set-restaurant-image -name "Pizza Palace" -url https://...
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"food-ordering-api/config"
	"food-ordering-api/models"
	"food-ordering-api/store"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("expected 'populate', 'set-item-image' or 'set-restaurant-image' subcommand")
		os.Exit(1)
	}

	_ = godotenv.Load()

	switch os.Args[1] {
	case "populate":
		populate()
	case "set-item-image":
		setImage(os.Args[2:], "set-item-image", func(ctx context.Context, catalog *store.CatalogStore, name, url string) error {
			return catalog.SetMenuItemImageByName(ctx, name, url)
		})
	case "set-restaurant-image":
		setImage(os.Args[2:], "set-restaurant-image", func(ctx context.Context, catalog *store.CatalogStore, name, url string) error {
			return catalog.SetRestaurantImageByName(ctx, name, url)
		})
	default:
		fmt.Println("expected 'populate', 'set-item-image' or 'set-restaurant-image' subcommand")
		os.Exit(1)
	}
}

func openCatalog() *store.CatalogStore {
	db, err := config.InitDB(config.Load())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	return store.NewCatalogStore(db)
}

func populate() {
	catalog := openCatalog()
	ctx := context.Background()

	if err := catalog.Reset(ctx); err != nil {
		log.Fatalf("Failed to clear existing data: %v", err)
	}

	total := 0
	created := make([]*models.Restaurant, 0, len(restaurantSeeds))
	for _, seed := range restaurantSeeds {
		restaurant, err := catalog.CreateRestaurant(ctx, seed.restaurant)
		if err != nil {
			log.Fatalf("Failed to create restaurant %q: %v", seed.restaurant.Name, err)
		}
		created = append(created, restaurant)
		for _, item := range seed.menu {
			item.RestaurantID = restaurant.ID
			if _, err := catalog.CreateMenuItem(ctx, item); err != nil {
				log.Fatalf("Failed to create menu item %q: %v", item.Name, err)
			}
			total++
		}
	}

	fmt.Printf("Seeded %d restaurants and %d menu items\n", len(created), total)
	for _, restaurant := range created {
		count, err := catalog.CountMenuItems(ctx, restaurant.ID)
		if err != nil {
			log.Fatalf("Failed to count menu items: %v", err)
		}
		fmt.Printf("  - %s: %d items\n", restaurant.Name, count)
	}
}

func setImage(args []string, cmd string, update func(context.Context, *store.CatalogStore, string, string) error) {
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	name := fs.String("name", "", "Record name to match")
	url := fs.String("url", "", "New image URL")
	fs.Parse(args)

	if *name == "" || *url == "" {
		fmt.Println("name and url are required")
		fs.PrintDefaults()
		os.Exit(1)
	}

	catalog := openCatalog()
	if err := update(context.Background(), catalog, *name, *url); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Fatalf("%q not found", *name)
		}
		log.Fatalf("Failed to update image: %v", err)
	}
	fmt.Printf("Updated image for %q\n", *name)
}
