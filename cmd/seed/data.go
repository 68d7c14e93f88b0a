package main

import "food-ordering-api/store"

type restaurantSeed struct {
	restaurant store.RestaurantParams
	menu       []store.MenuItemParams
}

var restaurantSeeds = []restaurantSeed{
	{
		restaurant: store.RestaurantParams{
			Name:         "Pizza Palace",
			Description:  "Authentic Italian pizza with fresh ingredients and wood-fired ovens",
			Address:      "123 Main St, Downtown",
			Phone:        "(555) 123-4567",
			CuisineType:  "Italian",
			Rating:       4.5,
			DeliveryFee:  2.99,
			MinimumOrder: 15.00,
			ImageURL:     "https://images.unsplash.com/photo-1513104890138-7c749659a591?w=400&h=300&fit=crop",
		},
		menu: []store.MenuItemParams{
			{Name: "Margherita Pizza", Description: "Fresh mozzarella, tomato sauce, and basil", Price: 16.99, Category: "Pizza", ImageURL: "https://images.unsplash.com/photo-1604382354936-07c5d9983bd3?w=400&h=300&fit=crop"},
			{Name: "Pepperoni Pizza", Description: "Classic pepperoni with melted cheese", Price: 18.99, Category: "Pizza", ImageURL: "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=400&h=300&fit=crop"},
			{Name: "Garlic Bread", Description: "Crispy bread with garlic butter and herbs", Price: 6.99, Category: "Sides", ImageURL: "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400&h=300&fit=crop"},
			{Name: "Caesar Salad", Description: "Fresh romaine lettuce with Caesar dressing", Price: 12.99, Category: "Salads", ImageURL: "https://images.unsplash.com/photo-1546793665-c74683f339c1?w=400&h=300&fit=crop"},
			{Name: "Tiramisu", Description: "Classic Italian dessert with coffee and mascarpone", Price: 8.99, Category: "Desserts", ImageURL: "https://images.unsplash.com/photo-1571877227200-a0d98ea607e9?w=400&h=300&fit=crop"},
		},
	},
	{
		restaurant: store.RestaurantParams{
			Name:         "Sushi Express",
			Description:  "Fresh sushi and Japanese cuisine made with premium ingredients",
			Address:      "456 Oak Ave, Midtown",
			Phone:        "(555) 234-5678",
			CuisineType:  "Japanese",
			Rating:       4.7,
			DeliveryFee:  3.99,
			MinimumOrder: 20.00,
			ImageURL:     "https://images.unsplash.com/photo-1579584425555-c3ce17fd4351?w=400&h=300&fit=crop",
		},
		menu: []store.MenuItemParams{
			{Name: "California Roll", Description: "Crab, avocado, and cucumber roll", Price: 12.99, Category: "Rolls", ImageURL: "https://images.unsplash.com/photo-1579584425555-c3ce17fd4351?w=400&h=300&fit=crop"},
			{Name: "Salmon Nigiri", Description: "Fresh salmon over seasoned rice", Price: 8.99, Category: "Nigiri", ImageURL: "https://images.unsplash.com/photo-1579584425555-c3ce17fd4351?w=400&h=300&fit=crop"},
			{Name: "Miso Soup", Description: "Traditional Japanese soup with tofu", Price: 4.99, Category: "Soups", ImageURL: "https://images.unsplash.com/photo-1569718212165-3a8278d5f624?w=400&h=300&fit=crop"},
			{Name: "Tempura Shrimp", Description: "Crispy battered shrimp with dipping sauce", Price: 14.99, Category: "Appetizers", ImageURL: "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=400&h=300&fit=crop"},
			{Name: "Green Tea Ice Cream", Description: "Smooth matcha ice cream", Price: 6.99, Category: "Desserts", ImageURL: "https://images.unsplash.com/photo-1563805042-7684c019e1cb?w=400&h=300&fit=crop"},
		},
	},
	{
		restaurant: store.RestaurantParams{
			Name:         "Burger Barn",
			Description:  "Juicy burgers, crispy fries, and classic American comfort food",
			Address:      "789 Pine St, Westside",
			Phone:        "(555) 345-6789",
			CuisineType:  "American",
			Rating:       4.2,
			DeliveryFee:  1.99,
			MinimumOrder: 12.00,
			ImageURL:     "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=400&h=300&fit=crop",
		},
		menu: []store.MenuItemParams{
			{Name: "Classic Cheeseburger", Description: "Juicy beef patty with cheese and fresh veggies", Price: 11.99, Category: "Burgers", ImageURL: "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=400&h=300&fit=crop"},
			{Name: "Bacon Deluxe", Description: "Double patty with bacon and special sauce", Price: 15.99, Category: "Burgers", ImageURL: "https://images.unsplash.com/photo-1586190848861-99aa4a171e90?w=400&h=300&fit=crop"},
			{Name: "French Fries", Description: "Crispy golden fries with sea salt", Price: 4.99, Category: "Sides", ImageURL: "https://images.unsplash.com/photo-1573080496219-bb080dd4f877?w=400&h=300&fit=crop"},
			{Name: "Onion Rings", Description: "Beer-battered onion rings", Price: 5.99, Category: "Sides", ImageURL: "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=400&h=300&fit=crop"},
			{Name: "Chocolate Milkshake", Description: "Thick and creamy chocolate shake", Price: 6.99, Category: "Drinks", ImageURL: "https://images.unsplash.com/photo-1572490122747-3968b75cc699?w=400&h=300&fit=crop"},
		},
	},
	{
		restaurant: store.RestaurantParams{
			Name:         "Taco Fiesta",
			Description:  "Authentic Mexican tacos, burritos, and fresh salsas",
			Address:      "321 Elm St, Eastside",
			Phone:        "(555) 456-7890",
			CuisineType:  "Mexican",
			Rating:       4.4,
			DeliveryFee:  2.49,
			MinimumOrder: 10.00,
			ImageURL:     "https://images.unsplash.com/photo-1565299585323-38d6b0865b47?w=400&h=300&fit=crop",
		},
		menu: []store.MenuItemParams{
			{Name: "Street Tacos", Description: "Three authentic street tacos with choice of meat", Price: 9.99, Category: "Tacos", ImageURL: "https://images.unsplash.com/photo-1565299585323-38d6b0865b47?w=400&h=300&fit=crop"},
			{Name: "Beef Burrito", Description: "Large burrito with rice, beans, and beef", Price: 12.99, Category: "Burritos", ImageURL: "https://images.unsplash.com/photo-1582169296194-e4d644c48063?w=400&h=300&fit=crop"},
			{Name: "Guacamole & Chips", Description: "Fresh guacamole with crispy tortilla chips", Price: 7.99, Category: "Appetizers", ImageURL: "https://images.unsplash.com/photo-1604329760661-e71dc83f8f26?w=400&h=300&fit=crop"},
			{Name: "Quesadilla", Description: "Cheese quesadilla with pico de gallo", Price: 10.99, Category: "Quesadillas", ImageURL: "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=400&h=300&fit=crop"},
			{Name: "Horchata", Description: "Traditional Mexican rice drink", Price: 4.99, Category: "Drinks", ImageURL: "https://images.unsplash.com/photo-1572490122747-3968b75cc699?w=400&h=300&fit=crop"},
		},
	},
	{
		restaurant: store.RestaurantParams{
			Name:         "Thai Garden",
			Description:  "Traditional Thai cuisine with aromatic spices and fresh herbs",
			Address:      "654 Maple Dr, Northside",
			Phone:        "(555) 567-8901",
			CuisineType:  "Thai",
			Rating:       4.6,
			DeliveryFee:  3.49,
			MinimumOrder: 18.00,
			ImageURL:     "https://images.unsplash.com/photo-1559314809-0d155014e29e?w=400&h=300&fit=crop",
		},
		menu: []store.MenuItemParams{
			{Name: "Pad Thai", Description: "Stir-fried rice noodles with shrimp and peanuts", Price: 16.99, Category: "Noodles", ImageURL: "https://images.unsplash.com/photo-1559314809-0d155014e29e?w=400&h=300&fit=crop"},
			{Name: "Green Curry", Description: "Spicy green curry with coconut milk and vegetables", Price: 18.99, Category: "Curries", ImageURL: "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=400&h=300&fit=crop"},
			{Name: "Spring Rolls", Description: "Fresh vegetables wrapped in rice paper", Price: 8.99, Category: "Appetizers", ImageURL: "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=400&h=300&fit=crop"},
			{Name: "Tom Yum Soup", Description: "Hot and sour soup with shrimp", Price: 12.99, Category: "Soups", ImageURL: "https://images.unsplash.com/photo-1569718212165-3a8278d5f624?w=400&h=300&fit=crop"},
			{Name: "Mango Sticky Rice", Description: "Sweet sticky rice with fresh mango", Price: 7.99, Category: "Desserts", ImageURL: "https://images.unsplash.com/photo-1563805042-7684c019e1cb?w=400&h=300&fit=crop"},
		},
	},
}
