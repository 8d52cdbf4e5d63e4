package routes

import (
	"recipe-share/handlers"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers the full HTTP surface on r.
func SetupRoutes(r *gin.Engine, recipes *handlers.RecipeHandler, reviews *handlers.ReviewHandler) {
	r.GET("/", recipes.Index)
	r.GET("/recipes", recipes.Filter)
	r.GET("/recipe/:id", recipes.Detail)
	r.GET("/add_recipe", recipes.ShowAddForm)
	r.POST("/add_recipe", recipes.Create)
	r.POST("/add_review/:recipe_id", reviews.Create)

	// Catch-all for unmatched routes
	r.NoRoute(handlers.NotFound)
}
