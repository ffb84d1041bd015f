package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authControllers "github.com/ararara127/5Scent/controllers/auth"
	"github.com/ararara127/5Scent/middleware"
)

func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authControllers.Register(db))
		authGroup.POST("/login", authControllers.Login(db))

		authGroup.POST("/logout", middleware.RequireAuth, authControllers.Logout())
		authGroup.GET("/user", middleware.RequireAuth, authControllers.CurrentUser(db))
	}
}
