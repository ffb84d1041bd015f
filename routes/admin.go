package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/ararara127/5Scent/controllers/order"
	productcontroller "github.com/ararara127/5Scent/controllers/product"
	"github.com/ararara127/5Scent/middleware"
)

// SetupAdminRoutes registers endpoints gated on the caller's admin flag.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	admin := r.Group("", middleware.RequireAuth, middleware.RequireAdmin)
	{
		// Catalog management
		admin.POST("/products", productcontroller.CreateProduct(db))
		admin.PUT("/products/:id", productcontroller.UpdateProduct(db))
		admin.DELETE("/products/:id", productcontroller.DeleteProduct(db))

		// Order management
		admin.PUT("/orders/:id/status", orderControllers.UpdateOrderStatus(db))
		admin.POST("/orders/:id/delivered", orderControllers.MarkDelivered(db))
	}
}
