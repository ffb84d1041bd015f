package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ararara127/5Scent/models"
	"github.com/ararara127/5Scent/utils"
)

const productsPerPage = 12

// GetProducts returns the catalog, filtered and paginated.
// Query params: category, search (substring on name), sort (price_low|price_high), page.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{}).Preload("Images").Preload("Ratings")

		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", category)
		}
		if search := c.Query("search"); search != "" {
			query = query.Where("name LIKE ?", "%"+search+"%")
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count products"})
			return
		}

		switch c.Query("sort") {
		case "price_low":
			query = query.Order("price ASC")
		case "price_high":
			query = query.Order("price DESC")
		}

		page := utils.PageParam(c)
		var products []models.Product
		if err := query.Scopes(utils.Paginate(page, productsPerPage)).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, utils.NewPagination(products, page, productsPerPage, total))
	}
}
