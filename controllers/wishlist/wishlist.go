package wishlistControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ararara127/5Scent/models"
	"github.com/ararara127/5Scent/utils"
)

const wishlistPerPage = 12

type ToggleInput struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// GET /wishlist
func GetWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		query := db.Model(&models.Wishlist{}).Where("user_id = ?", userID)

		var total int64
		if err := query.Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count wishlist"})
			return
		}

		page := utils.PageParam(c)
		var entries []models.Wishlist
		if err := query.Preload("Product.Images").
			Scopes(utils.Paginate(page, wishlistPerPage)).
			Order("created_at DESC").
			Find(&entries).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
			return
		}

		c.JSON(http.StatusOK, utils.NewPagination(entries, page, wishlistPerPage, total))
	}
}

// POST /wishlist/toggle
//
// Removes the entry when present, creates it when absent. The delete-first
// order plus the unique (user_id, product_id) index keeps concurrent toggles
// from ever leaving duplicate rows.
func ToggleWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var input ToggleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			}
			return
		}

		result := db.Where("user_id = ? AND product_id = ?", userID, input.ProductID).
			Delete(&models.Wishlist{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist"})
			return
		}
		if result.RowsAffected > 0 {
			c.JSON(http.StatusOK, gin.H{
				"message": "Removed from wishlist",
				"added":   false,
			})
			return
		}

		entry := models.Wishlist{UserID: userID, ProductID: input.ProductID}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&entry).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message":  "Added to wishlist",
			"added":    true,
			"wishlist": entry,
		})
	}
}

// GET /wishlist/check/:product_id
func CheckWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var count int64
		if err := db.Model(&models.Wishlist{}).
			Where("user_id = ? AND product_id = ?", userID, c.Param("product_id")).
			Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"in_wishlist": count > 0})
	}
}
