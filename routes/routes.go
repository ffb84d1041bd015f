package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	SetupAuthRoutes(r, db)
	SetupProductRoutes(r, db)
	SetupUserRoutes(r, db)
	SetupAdminRoutes(r, db)
	SetupPOSRoutes(r, db)
}
