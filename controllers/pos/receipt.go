package posControllers

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ararara127/5Scent/models"
)

const receiptRule = "================================"

// formatRupiah renders an amount the Indonesian way: no decimals, "." as the
// thousands separator. 130000 -> "130.000".
func formatRupiah(amount float64) string {
	n := int64(math.Round(amount))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := fmt.Sprintf("%d", n)
	var b strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}
	return sign + b.String()
}

// GET /pos/transactions/:id/receipt
//
// The layout matches the receipt printed at the counter; clients render the
// text verbatim, so labels and line order are a contract.
func GetReceipt(db *gorm.DB) gin.HandlerFunc {
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

		var b strings.Builder
		b.WriteString(receiptRule + "\n")
		b.WriteString("          5SCENT RECEIPT\n")
		b.WriteString(receiptRule + "\n")
		fmt.Fprintf(&b, "Transaction ID: %d\n", transaction.ID)
		fmt.Fprintf(&b, "Date: %s\n", transaction.CreatedAt.Format("2006-01-02 15:04:05"))
		fmt.Fprintf(&b, "Customer: %s\n", transaction.CustomerName)
		b.WriteString(receiptRule + "\n")
		b.WriteString("Item                Qty    Price\n")
		b.WriteString("--------------------------------\n")
		for _, item := range transaction.Items {
			subtotal := item.Price * float64(item.Quantity)
			fmt.Fprintf(&b, "%s  %d    Rp %s\n", item.Product.Name, item.Quantity, formatRupiah(subtotal))
		}
		b.WriteString(receiptRule + "\n")
		fmt.Fprintf(&b, "TOTAL: Rp %s\n", formatRupiah(transaction.TotalPrice))
		fmt.Fprintf(&b, "Payment: %s\n", strings.ToUpper(transaction.PaymentMethod))
		b.WriteString(receiptRule + "\n")
		b.WriteString("Thank you for your purchase!\n")

		c.JSON(http.StatusOK, gin.H{"receipt": b.String()})
	}
}
