package posControllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/ararara127/5Scent/models"
)

// GET /pos/daily-report/export
//
// Same data as the daily report, as a downloadable spreadsheet for the
// back office.
func ExportDailyReportToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		day, dateStr, err := reportDate(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}

		var transactions []models.POSTransaction
		if err := db.Preload("Items.Product").
			Where("created_at >= ? AND created_at < ?", day, day.AddDate(0, 0, 1)).
			Order("created_at ASC").
			Find(&transactions).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Daily Sales " + dateStr)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"TransactionID", "Time", "Customer", "PaymentMethod",
			"Product", "Quantity", "UnitPrice", "Subtotal",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		var totalSales float64
		for _, t := range transactions {
			totalSales += t.TotalPrice
			for _, item := range t.Items {
				row := sheet.AddRow()
				row.AddCell().SetValue(t.ID)
				row.AddCell().SetValue(t.CreatedAt.Format("15:04:05"))
				row.AddCell().SetValue(t.CustomerName)
				row.AddCell().SetValue(t.PaymentMethod)
				row.AddCell().SetValue(item.Product.Name)
				row.AddCell().SetValue(item.Quantity)
				row.AddCell().SetValue(item.Price)
				row.AddCell().SetValue(item.Price * float64(item.Quantity))
			}
		}

		summaryRow := sheet.AddRow()
		summaryRow.AddCell().SetValue("TOTAL")
		for i := 0; i < 6; i++ {
			summaryRow.AddCell()
		}
		summaryRow.AddCell().SetValue(totalSales)

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=daily-report-%s.xlsx", dateStr))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
