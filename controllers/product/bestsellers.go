package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ararara127/5Scent/models"
)

const bestsellerLimit = 8

// GetBestsellers returns the top products ranked by how many order lines
// reference them (distinct lines, not units sold). Ties break on product id
// ascending so the ranking is deterministic.
func GetBestsellers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		type rankedRow struct {
			ID        uint
			LineCount int64
		}
		var rows []rankedRow
		if err := db.Model(&models.Product{}).
			Select("products.id AS id, COUNT(order_details.id) AS line_count").
			Joins("LEFT JOIN order_details ON order_details.product_id = products.id").
			Group("products.id").
			Order("line_count DESC, products.id ASC").
			Limit(bestsellerLimit).
			Scan(&rows).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rank bestsellers"})
			return
		}

		ids := make([]uint, 0, len(rows))
		counts := make(map[uint]int64, len(rows))
		for _, row := range rows {
			ids = append(ids, row.ID)
			counts[row.ID] = row.LineCount
		}

		var products []models.Product
		if len(ids) > 0 {
			if err := db.Preload("Images").Find(&products, ids).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bestsellers"})
				return
			}
		}
		byID := make(map[uint]models.Product, len(products))
		for _, p := range products {
			byID[p.ID] = p
		}

		type bestseller struct {
			models.Product
			OrderDetailsCount int64 `json:"order_details_count"`
		}
		out := make([]bestseller, 0, len(ids))
		for _, id := range ids {
			if p, ok := byID[id]; ok {
				out = append(out, bestseller{Product: p, OrderDetailsCount: counts[id]})
			}
		}

		c.JSON(http.StatusOK, gin.H{"bestsellers": out})
	}
}
