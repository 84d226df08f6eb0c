package main

import (
	"log"                             // log package is needed for logging
	"plantes_api/internal/api"        // Custom package for API handlers
	"plantes_api/internal/config"     // Custom package for configuration
	"plantes_api/internal/middleware" // Custom package for middleware

	// For loading .env files
	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
	"gorm.io/driver/mysql"       // MySQL driver for GORM
	"gorm.io/gorm"               // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Setup Data Source Name (DSN) and connect to the database
	dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// API documentation
	r.GET("/api-docs", api.DocsUIHandler())                // Swagger UI page
	r.GET("/api-docs/openapi.json", api.DocsSpecHandler()) // OpenAPI document

	// Usuaris routes
	usuarisGroup := r.Group("/usuaris")
	usuarisGroup.POST("", api.RegisterUsuariHandler(db, cfg.JWTSecret, cfg.JWTExpiresIn)) // Registration endpoint
	usuarisGroup.GET("", api.ListUsuarisHandler(db))                                      // List users endpoint
	usuarisGroup.GET("/:id", api.GetUsuariHandler(db))                                    // Get user by ID endpoint
	usuarisGroup.GET("/correu/:correu", api.GetUsuariByCorreuHandler(db))                 // Get user by email endpoint
	// Update is the only protected route: JWT middleware verifies the token and loads the user
	usuarisGroup.PUT("/:id", middleware.JWTAuthMiddleware(db, cfg.JWTSecret), api.UpdateUsuariHandler(db))
	usuarisGroup.DELETE("/:id", api.DeleteUsuariHandler(db))    // Delete user endpoint
	usuarisGroup.PUT("/btc/:userId", api.UpdateBtcHandler(db))  // Atomic balance delta endpoint
	usuarisGroup.POST("/api/login", api.LegacyLoginHandler(db)) // Legacy login endpoint (no token)

	// Login route (token variant)
	r.POST("/api/login", api.LoginHandler(db, cfg.JWTSecret, cfg.JWTExpiresIn)) // Login endpoint

	// Plantas routes
	plantasGroup := r.Group("/plantas")
	plantasGroup.GET("", api.ListPlantesHandler(db))                       // List plants endpoint
	plantasGroup.GET("/usuaris/:id", api.ListPlantesByUsuariHandler(db))   // List a user's plants endpoint
	plantasGroup.GET("/:id", api.GetPlantaHandler(db))                     // Get plant by ID endpoint
	plantasGroup.POST("", api.CreatePlantaHandler(db))                     // Create plant endpoint
	plantasGroup.PUT("/:id", api.UpdatePlantaHandler(db))                  // Update plant endpoint
	plantasGroup.DELETE("/:id", api.DeletePlantaHandler(db))               // Delete plant endpoint

	// Items routes (read-only)
	r.GET("/items", api.ListItemsHandler(db)) // List items endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
