package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Pagination is the envelope every list endpoint returns.
type Pagination struct {
	Data     interface{} `json:"data"`
	Page     int         `json:"page"`
	PerPage  int         `json:"per_page"`
	Total    int64       `json:"total"`
	LastPage int         `json:"last_page"`
}

// PageParam reads ?page= with a floor of 1.
func PageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	return page
}

// Paginate is a GORM scope applying LIMIT/OFFSET for the given page.
func Paginate(page, perPage int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset((page - 1) * perPage).Limit(perPage)
	}
}

func NewPagination(data interface{}, page, perPage int, total int64) Pagination {
	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}
	return Pagination{
		Data:     data,
		Page:     page,
		PerPage:  perPage,
		Total:    total,
		LastPage: lastPage,
	}
}
