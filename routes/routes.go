package routes

import (
	"github.com/gin-gonic/gin"

	"food-ordering-api/auth"
	"food-ordering-api/handlers"
	"food-ordering-api/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	users *handlers.UserHandler,
	restaurants *handlers.RestaurantHandler,
	menu *handlers.MenuHandler,
	tokens *auth.TokenService,
) {
	// ── Public routes ──────────────────────────────────────────────
	r.POST("/users/register", users.Register)
	r.POST("/users/login", users.Login)
	r.GET("/users/check-username/:username", users.CheckUsername)
	r.GET("/users/check-email/:email", users.CheckEmail)

	r.GET("/restaurants", restaurants.List)
	r.GET("/restaurants/:id", restaurants.Get)
	r.GET("/menu-items", menu.List)
	r.GET("/menu-items/:id", menu.Get)

	// ── Authenticated routes ───────────────────────────────────────
	protected := r.Group("/")
	protected.Use(middleware.AuthRequired(tokens))
	{
		protected.GET("/users/me", users.Me)
		protected.POST("/restaurants", restaurants.Create)
		protected.POST("/menu-items", menu.Create)
	}
}
