package posControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ararara127/5Scent/models"
	"github.com/ararara127/5Scent/utils"
)

const transactionsPerPage = 20

type POSItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type CreateTransactionInput struct {
	CustomerName  string         `json:"customer_name" binding:"omitempty,max=255"`
	PaymentMethod string         `json:"payment_method" binding:"required,oneof=cash card qris"`
	Items         []POSItemInput `json:"items" binding:"required,min=1,dive"`
}

// POST /pos/transactions
//
// Unlike orders, POS prices come from the catalog at sale time; any price a
// client sends is ignored. The per-line unit price is snapshotted onto the
// POSItem row.
func CreateTransaction(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateTransactionInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		customerName := input.CustomerName
		if customerName == "" {
			customerName = models.DefaultPOSCustomer
		}

		var totalPrice float64
		items := make([]models.POSItem, 0, len(input.Items))
		for _, item := range input.Items {
			var product models.Product
			if err := db.First(&product, item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				} else {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
				}
				return
			}
			totalPrice += product.Price * float64(item.Quantity)
			items = append(items, models.POSItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     product.Price,
			})
		}

		transaction := models.POSTransaction{
			TotalPrice:    totalPrice,
			PaymentMethod: input.PaymentMethod,
			CustomerName:  customerName,
			Items:         items,
		}
		if err := db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&transaction).Error
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
			return
		}

		var result models.POSTransaction
		if err := db.Preload("Items.Product").First(&result, transaction.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transaction"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":     "POS transaction created",
			"transaction": result,
		})
	}
}

// GET /pos/transactions
func GetTransactions(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.POSTransaction{})

		var total int64
		if err := query.Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count transactions"})
			return
		}

		page := utils.PageParam(c)
		var transactions []models.POSTransaction
		if err := query.Preload("Items.Product").
			Order("created_at DESC").
			Scopes(utils.Paginate(page, transactionsPerPage)).
			Find(&transactions).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
			return
		}

		c.JSON(http.StatusOK, utils.NewPagination(transactions, page, transactionsPerPage, total))
	}
}

// GET /pos/transactions/:id
func GetTransactionByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var transaction models.POSTransaction
		if err := db.Preload("Items.Product").
			First(&transaction, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transaction"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"transaction": transaction})
	}
}

// reportDate parses ?date=YYYY-MM-DD in server-local time, defaulting to today.
func reportDate(c *gin.Context) (time.Time, string, error) {
	dateStr := c.Query("date")
	if dateStr == "" {
		now := time.Now()
		day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
		return day, day.Format("2006-01-02"), nil
	}
	day, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		return time.Time{}, "", err
	}
	return day, dateStr, nil
}

// GET /pos/daily-report
func DailyReport(db *gorm.DB) gin.HandlerFunc {
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

		var totalSales float64
		for _, t := range transactions {
			totalSales += t.TotalPrice
		}

		c.JSON(http.StatusOK, gin.H{
			"date":              dateStr,
			"total_sales":       totalSales,
			"transaction_count": len(transactions),
			"transactions":      transactions,
		})
	}
}
