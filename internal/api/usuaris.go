package api

import (
	"net/http"                    // HTTP status codes
	"plantes_api/internal/domain" // Importing domain models
	"plantes_api/internal/utils"  // Utility functions
	"strconv"                     // String conversion
	"time"                        // Token lifetime

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// Request struct for registration
type RegisterRequest struct {
	Nom          string  `json:"nom"`          // Display name
	Correu       string  `json:"correu"`       // Email address
	Contrasenya  string  `json:"contrasenya"`  // Plaintext password
	Edat         int     `json:"edat"`         // Age
	Nacionalitat string  `json:"nacionalitat"` // Nationality
	CodiPostal   string  `json:"codiPostal"`   // Postal code
	ImatgePerfil string  `json:"imatgePerfil"` // Profile image reference
	Btc          float64 `json:"btc"`          // Starting balance, defaults to 0
}

// Request struct for the legacy login endpoint (POST /usuaris/api/login)
type LegacyLoginRequest struct {
	Email    string `json:"email"`    // Email address
	Password string `json:"password"` // Plaintext password
}

// Request struct for updating a user
type UpdateUsuariRequest struct {
	Nom          string `json:"nom"`          // Display name
	Correu       string `json:"correu"`       // Email address
	Contrasenya  string `json:"contrasenya"`  // Password field, written as received
	Edat         int    `json:"edat"`         // Age
	Nacionalitat string `json:"nacionalitat"` // Nationality
	CodiPostal   string `json:"codiPostal"`   // Postal code
	ImatgePerfil string `json:"imatgePerfil"` // Profile image reference
}

// Request struct for balance updates
type BtcUpdateRequest struct {
	Amount float64 `json:"amount"` // Signed delta applied to the balance
}

// RegisterUsuariHandler creates a new user and returns it together with a JWT token
func RegisterUsuariHandler(db *gorm.DB, jwtSecret string, jwtExpiresIn time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Validate required fields
		if req.Nom == "" || req.Correu == "" || req.Contrasenya == "" {
			// If any is missing, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Nom, correu i contrasenya són obligatoris"})
			return
		}
		// Hash the password and create the user
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Contrasenya), bcrypt.DefaultCost)
		if err != nil {
			// If hashing fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al hashear la contraseña"})
			return
		}
		// Build the user record; btc keeps its zero default when omitted
		user := domain.Usuari{
			Nom:          req.Nom,          // Display name
			Correu:       req.Correu,       // Email address
			Contrasenya:  string(hash),     // Stored hashed
			Edat:         req.Edat,         // Age
			Nacionalitat: req.Nacionalitat, // Nationality
			CodiPostal:   req.CodiPostal,   // Postal code
			ImatgePerfil: req.ImatgePerfil, // Profile image reference
			Btc:          req.Btc,          // Starting balance
		}
		// Attempt to create the user in the database
		if err := db.Create(&user).Error; err != nil {
			// If creation fails (e.g., duplicate correu), return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		// Generate JWT token bound to the new user
		token, err := utils.GenerateJWT(user.ID, user.Rol, jwtSecret, jwtExpiresIn)
		if err != nil {
			// If token generation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al generar el token"})
			return
		}
		// Log successful registration
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID,     // New user ID
			"correu":  user.Correu, // Email address
		}).Info("Usuario registrado") // Log registration
		// Return the created record plus the token; the plaintext contrasenya is
		// echoed back, matching the legacy response shape
		c.JSON(http.StatusCreated, gin.H{
			"id":           user.ID,          // New user ID
			"nom":          req.Nom,          // Display name
			"correu":       req.Correu,       // Email address
			"contrasenya":  req.Contrasenya,  // Echoed plaintext (legacy behaviour)
			"edat":         req.Edat,         // Age
			"nacionalitat": req.Nacionalitat, // Nationality
			"codiPostal":   req.CodiPostal,   // Postal code
			"imatgePerfil": req.ImatgePerfil, // Profile image reference
			"btc":          req.Btc,          // Starting balance
			"token":        token,            // Token for immediate authentication
		})
	}
}

// ListUsuarisHandler returns all users
func ListUsuarisHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []domain.Usuari // Slice to hold users
		if err := db.Find(&users).Error; err != nil {
			// If fetching fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, users) // Return all users
	}
}

// GetUsuariHandler returns a single user by ID
func GetUsuariHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")    // Path parameter
		var user domain.Usuari // User struct to hold data
		if err := db.First(&user, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				// If no row matched, return not found
				c.JSON(http.StatusNotFound, gin.H{"error": "Usuari no trobat"})
				return
			}
			// Any other failure is a server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, user) // Return the user
	}
}

// GetUsuariByCorreuHandler returns a single user by email address
func GetUsuariByCorreuHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		correu := c.Param("correu") // Path parameter
		var user domain.Usuari      // User struct to hold data
		if err := db.Where("correu = ?", correu).First(&user).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				// If no row matched, return not found
				c.JSON(http.StatusNotFound, gin.H{"error": "Usuari no trobat"})
				return
			}
			// Any other failure is a server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, user) // Return the user
	}
}

// UpdateUsuariHandler overwrites a user's mutable fields; only the user itself or an ADMIN may call it
func UpdateUsuariHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authUser, exists := c.Get("user") // Authenticated user from the JWT middleware
		if !exists {
			// Middleware did not run; treat as unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token no proporcionado"})
			return
		}
		current := authUser.(domain.Usuari)    // Loaded user record
		id, err := strconv.Atoi(c.Param("id")) // Target user ID
		if err != nil {
			// Non-numeric ID cannot match any row
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// The authenticated identity must match the target or hold the ADMIN role
		if current.ID != uint(id) && current.Rol != "ADMIN" {
			// Otherwise the update is forbidden
			c.JSON(http.StatusForbidden, gin.H{"error": "No tienes permiso para modificar este usuario"})
			return
		}
		var req UpdateUsuariRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Overwrite every mutable column unconditionally.
		// TODO: contrasenya is written exactly as received instead of being
		// re-hashed; re-hash here once the clients stop resending the stored hash.
		res := db.Model(&domain.Usuari{}).Where("id = ?", id).Updates(map[string]any{
			"nom":          req.Nom,          // Display name
			"correu":       req.Correu,       // Email address
			"contrasenya":  req.Contrasenya,  // Written verbatim
			"edat":         req.Edat,         // Age
			"nacionalitat": req.Nacionalitat, // Nationality
			"codiPostal":   req.CodiPostal,   // Postal code
			"imatgePerfil": req.ImatgePerfil, // Profile image reference
		})
		if res.Error != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"user_id": id,                // Target user ID
				"error":   res.Error.Error(), // Error message
			}).Error("Update failed") // Log update failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
			return
		}
		if res.RowsAffected == 0 {
			// No row matched the target ID
			c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
			return
		}
		var user domain.Usuari // Re-read the refreshed record
		if err := db.First(&user, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
				return
			}
			// Any other failure is a server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al recuperar usuario actualizado"})
			return
		}
		// Return the refreshed record
		c.JSON(http.StatusOK, gin.H{
			"message": "Usuario actualizado correctamente", // Success message
			"usuario": user,                                // Updated record
		})
	}
}

// DeleteUsuariHandler deletes a user by ID
func DeleteUsuariHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id") // Path parameter
		if err := db.Delete(&domain.Usuari{}, "id = ?", id).Error; err != nil {
			// If deletion fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		// Succeeds whether or not a row matched, as the legacy endpoint did
		c.JSON(http.StatusOK, gin.H{"message": "Usuari eliminat correctament"})
	}
}

// LegacyLoginHandler verifies credentials and returns the user without a token (POST /usuaris/api/login)
func LegacyLoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LegacyLoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Faltan datos"})
			return
		}
		// Both fields are required
		if req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Faltan datos"})
			return
		}
		var user domain.Usuari // Fetch user by email
		if err := db.Where("correu = ?", req.Email).First(&user).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				// Unknown email; this endpoint reports it as a 400, not 401
				c.JSON(http.StatusBadRequest, gin.H{"error": "Usuario no encontrado"})
				return
			}
			// Any other failure is a server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en la base de datos"})
			return
		}
		// Compare provided password with stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(user.Contrasenya), []byte(req.Password)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Contraseña incorrecta"})
			return
		}
		// This legacy variant returns the record without issuing a token
		c.JSON(http.StatusOK, gin.H{
			"message": "Login exitoso", // Success message
			"usuario": user,            // The authenticated user
		})
	}
}

// UpdateBtcHandler applies a signed delta to a user's balance atomically
func UpdateBtcHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId") // Target user ID
		var req BtcUpdateRequest    // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request"})
			return
		}
		// Single atomic statement: the database evaluates btc + amount, so
		// concurrent deltas never overwrite each other
		res := db.Model(&domain.Usuari{}).Where("id = ?", userID).
			Update("btc", gorm.Expr("btc + ?", req.Amount))
		if res.Error != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"user_id": userID,            // Target user ID
				"amount":  req.Amount,        // Requested delta
				"error":   res.Error.Error(), // Error message
			}).Error("Balance update failed") // Log balance update failure
			// The legacy endpoint maps database failures to 400
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": res.Error.Error()})
			return
		}
		// Log successful balance update
		logrus.WithFields(logrus.Fields{
			"user_id": userID,     // Target user ID
			"amount":  req.Amount, // Applied delta
		}).Info("Balance updated") // Log balance update
		// Return success response
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Saldo actualizado con éxito"})
	}
}
