package api

import (
	"net/http"                    // HTTP status codes
	"plantes_api/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// ListItemsHandler returns the whole item catalogue (read-only surface)
func ListItemsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var items []domain.Item // Slice to hold items
		if err := db.Find(&items).Error; err != nil {
			// If fetching fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, items) // Return all items
	}
}
