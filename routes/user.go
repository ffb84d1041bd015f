package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/ararara127/5Scent/controllers/cart"
	orderControllers "github.com/ararara127/5Scent/controllers/order"
	ratingControllers "github.com/ararara127/5Scent/controllers/rating"
	wishlistControllers "github.com/ararara127/5Scent/controllers/wishlist"
	"github.com/ararara127/5Scent/middleware"
)

// SetupUserRoutes registers all bearer-token-protected customer endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	cartGroup := r.Group("/cart", middleware.RequireAuth)
	{
		cartGroup.GET("", cartControllers.GetCart(db))
		cartGroup.POST("", cartControllers.AddToCart(db))
		cartGroup.PUT("/:id", cartControllers.UpdateCartItem(db))
		cartGroup.DELETE("/:id", cartControllers.DeleteCartItem(db))
		cartGroup.POST("/clear", cartControllers.ClearCart(db))
	}

	orderGroup := r.Group("/orders")
	{
		// Live order feed for the dashboard. Browser websocket clients
		// cannot set an Authorization header, so this sits outside RequireAuth.
		orderGroup.GET("/ws", orderControllers.OrderWebSocketHandler)

		authed := orderGroup.Group("", middleware.RequireAuth)
		authed.POST("", orderControllers.CreateOrder(db))
		authed.GET("", orderControllers.GetUserOrders(db))
		authed.GET("/:id", orderControllers.GetOrderByID(db))
		authed.POST("/:id/cancel", orderControllers.CancelOrder(db))
		authed.POST("/:id/tracking", orderControllers.AddTracking(db))
	}

	wishlistGroup := r.Group("/wishlist", middleware.RequireAuth)
	{
		wishlistGroup.GET("", wishlistControllers.GetWishlist(db))
		wishlistGroup.POST("/toggle", wishlistControllers.ToggleWishlist(db))
		wishlistGroup.GET("/check/:product_id", wishlistControllers.CheckWishlist(db))
	}

	ratingGroup := r.Group("/ratings", middleware.RequireAuth)
	{
		ratingGroup.POST("", ratingControllers.SubmitRating(db))
		ratingGroup.GET("/user/my-ratings", ratingControllers.GetUserRatings(db))
		ratingGroup.DELETE("/:id", ratingControllers.DeleteRating(db))
	}
}
