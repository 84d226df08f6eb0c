package middleware

import (
	"net/http"                    // HTTP status codes
	"plantes_api/internal/domain" // Importing domain models
	"plantes_api/internal/utils"  // JWT utility functions
	"strings"                     // String manipulation

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// JWTAuthMiddleware validates JWT tokens, loads the user and attaches it to the context
func JWTAuthMiddleware(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token no proporcionado"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string and parse it
		claims, err := utils.ParseJWT(tokenStr, secret)       // Parse the JWT token
		if err != nil {
			// If parsing fails, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token inválido o expirado"})
			return
		}
		var user domain.Usuari // Fetch the token's user from the database
		if err := db.First(&user, claims.UserID).Error; err != nil {
			// A token for a deleted user is treated as stale
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Usuario no encontrado"})
			return
		}
		c.Set("user", user)      // Store the loaded user in context
		c.Set("userID", user.ID) // Store userID in context
		c.Next()                 // Proceed to the next handler
	}
}
