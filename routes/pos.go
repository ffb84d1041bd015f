package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	posControllers "github.com/ararara127/5Scent/controllers/pos"
)

// SetupPOSRoutes registers the point-of-sale endpoints. The POS terminal runs
// inside the store network, so these stay unauthenticated.
func SetupPOSRoutes(r *gin.Engine, db *gorm.DB) {
	pos := r.Group("/pos")
	{
		pos.POST("/transactions", posControllers.CreateTransaction(db))
		pos.GET("/transactions", posControllers.GetTransactions(db))
		pos.GET("/transactions/:id", posControllers.GetTransactionByID(db))
		pos.GET("/transactions/:id/receipt", posControllers.GetReceipt(db))
		pos.GET("/daily-report", posControllers.DailyReport(db))
		pos.GET("/daily-report/export", posControllers.ExportDailyReportToExcel(db))
	}
}
