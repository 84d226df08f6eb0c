package api

import (
	"net/http"                    // HTTP status codes
	"plantes_api/internal/domain" // Importing domain models
	"plantes_api/internal/utils"  // Utility functions
	"time"                        // Token lifetime

	"github.com/gin-gonic/gin"   // Gin web framework
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// Request struct for login
type LoginRequest struct {
	Correu      string `json:"correu" binding:"required"`      // Email must be provided
	Contrasenya string `json:"contrasenya" binding:"required"` // Password must be provided
}

// LoginHandler authenticates a user and returns a JWT token plus the record (POST /api/login)
func LoginHandler(db *gorm.DB, jwtSecret string, jwtExpiresIn time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		var user domain.Usuari // Fetch user from database
		if err := db.Where("correu = ?", req.Correu).First(&user).Error; err != nil {
			// If user not found, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciales inválidas"})
			return
		}
		// Compare provided password with stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(user.Contrasenya), []byte(req.Contrasenya)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciales inválidas"})
			return
		}
		// Generate JWT token carrying the user's ID and role
		token, err := utils.GenerateJWT(user.ID, user.Rol, jwtSecret, jwtExpiresIn)
		if err != nil {
			// If token generation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en el servidor"})
			return
		}
		// Return the token together with the record
		c.JSON(http.StatusOK, gin.H{
			"token": token, // JWT token
			"user":  user,  // The authenticated user
		})
	}
}
