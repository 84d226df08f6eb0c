package api

import (
	"net/http"                    // HTTP status codes
	"plantes_api/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// Request struct shared by plant creation and update
type PlantaRequest struct {
	UsuariID          uint   `json:"usuari_id"`          // Owning user
	Nom               string `json:"nom"`                // Plant name
	Tipus             string `json:"tipus"`              // Plant type
	Nivell            int    `json:"nivell"`             // Level
	Atac              int    `json:"atac"`               // Attack stat
	Defensa           int    `json:"defensa"`            // Defense stat
	Velocitat         int    `json:"velocitat"`          // Speed stat
	HabilitatEspecial string `json:"habilitat_especial"` // Special ability
	Energia           int    `json:"energia"`            // Energy
	Estat             string `json:"estat"`              // Status
	Raritat           string `json:"raritat"`            // Rarity
	Imatge            string `json:"imatge"`             // Image reference
}

// ListPlantesHandler returns all plants
func ListPlantesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var plantes []domain.Planta // Slice to hold plants
		if err := db.Find(&plantes).Error; err != nil {
			// If fetching fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, plantes) // Return all plants
	}
}

// ListPlantesByUsuariHandler returns every plant owned by a given user
func ListPlantesByUsuariHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")         // Owning user ID
		var plantes []domain.Planta // Slice to hold plants
		if err := db.Where("usuari_id = ?", id).Find(&plantes).Error; err != nil {
			// If fetching fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, plantes) // Return the user's plants (possibly empty)
	}
}

// GetPlantaHandler returns a single plant by ID
func GetPlantaHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")      // Path parameter
		var planta domain.Planta // Plant struct to hold data
		if err := db.First(&planta, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				// If no row matched, return not found
				c.JSON(http.StatusNotFound, gin.H{"error": "Planta no encontrada"})
				return
			}
			// Any other failure is a server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, planta) // Return the plant
	}
}

// CreatePlantaHandler inserts a new plant, applying the declared defaults for omitted stats
func CreatePlantaHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlantaRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Apply insert-time defaults for omitted fields
		energia := req.Energia
		if energia == 0 {
			energia = 100 // Energy defaults to 100
		}
		estat := req.Estat
		if estat == "" {
			estat = "actiu" // Status defaults to "actiu"
		}
		raritat := req.Raritat
		if raritat == "" {
			raritat = "comú" // Rarity defaults to "comú"
		}
		// Build the record; nivell/atac/defensa/velocitat keep their zero defaults
		planta := domain.Planta{
			UsuariID:          req.UsuariID,          // Owning user (FK enforced by the database)
			Nom:               req.Nom,               // Plant name
			Tipus:             req.Tipus,             // Plant type
			Nivell:            req.Nivell,            // Level
			Atac:              req.Atac,              // Attack stat
			Defensa:           req.Defensa,           // Defense stat
			Velocitat:         req.Velocitat,         // Speed stat
			HabilitatEspecial: req.HabilitatEspecial, // Special ability
			Energia:           energia,               // Energy
			Estat:             estat,                 // Status
			Raritat:           raritat,               // Rarity
			Imatge:            req.Imatge,            // Image reference
		}
		// Attempt to create the plant in the database
		if err := db.Create(&planta).Error; err != nil {
			// A nonexistent usuari_id surfaces here as a foreign key violation
			logrus.WithFields(logrus.Fields{
				"usuari_id": req.UsuariID, // Owning user
				"error":     err.Error(),  // Error message
			}).Error("Failed to create planta") // Log creation failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		// Echo the request back with the pre-schema fallbacks (1/10/10/5), which
		// disagree with the inserted defaults (0/0/0/0) — legacy response shape
		nivell := req.Nivell
		if nivell == 0 {
			nivell = 1
		}
		atac := req.Atac
		if atac == 0 {
			atac = 10
		}
		defensa := req.Defensa
		if defensa == 0 {
			defensa = 10
		}
		velocitat := req.Velocitat
		if velocitat == 0 {
			velocitat = 5
		}
		// Return the created record as the legacy endpoint shaped it
		c.JSON(http.StatusCreated, gin.H{
			"id":                 planta.ID,             // New plant ID
			"usuari_id":          req.UsuariID,          // Owning user
			"nom":                req.Nom,               // Plant name
			"tipus":              req.Tipus,             // Plant type
			"nivell":             nivell,                // Echoed fallback
			"atac":               atac,                  // Echoed fallback
			"defensa":            defensa,               // Echoed fallback
			"velocitat":          velocitat,             // Echoed fallback
			"habilitat_especial": req.HabilitatEspecial, // Special ability
			"energia":            energia,               // Energy
			"estat":              estat,                 // Status
			"raritat":            raritat,               // Rarity
			"imatge":             req.Imatge,            // Image reference
		})
	}
}

// UpdatePlantaHandler overwrites every mutable plant column and refreshes the update timestamp
func UpdatePlantaHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")   // Path parameter
		var req PlantaRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Full-field overwrite; ultima_actualitzacio refreshes automatically.
		// No ownership check here — the legacy surface never had one.
		res := db.Model(&domain.Planta{}).Where("id = ?", id).Updates(map[string]any{
			"nom":                req.Nom,               // Plant name
			"tipus":              req.Tipus,             // Plant type
			"nivell":             req.Nivell,            // Level
			"atac":               req.Atac,              // Attack stat
			"defensa":            req.Defensa,           // Defense stat
			"velocitat":          req.Velocitat,         // Speed stat
			"habilitat_especial": req.HabilitatEspecial, // Special ability
			"energia":            req.Energia,           // Energy
			"estat":              req.Estat,             // Status
			"raritat":            req.Raritat,           // Rarity
			"imatge":             req.Imatge,            // Image reference
		})
		if res.Error != nil {
			// If the update fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
			return
		}
		// Succeeds even when no row matched, as the legacy endpoint did
		c.JSON(http.StatusOK, gin.H{"message": "Planta actualitzada correctament"})
	}
}

// DeletePlantaHandler deletes a plant by ID
func DeletePlantaHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id") // Path parameter
		if err := db.Delete(&domain.Planta{}, "id = ?", id).Error; err != nil {
			// If deletion fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		// Succeeds whether or not a row matched
		c.JSON(http.StatusOK, gin.H{"message": "Planta eliminada correctament"})
	}
}
