package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/ararara127/5Scent/controllers/product"
	ratingControllers "github.com/ararara127/5Scent/controllers/rating"
)

// SetupProductRoutes registers the public catalog surface.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db))
		products.GET("/:id", productcontroller.GetProductByID(db))
		products.GET("/bestsellers/list", productcontroller.GetBestsellers(db))
		products.GET("/:id/ratings", ratingControllers.GetProductRatings(db))
	}
}
