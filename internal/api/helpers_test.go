package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"plantes_api/internal/domain"
	"plantes_api/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testSecret    = "test-secret"
	testExpiresIn = time.Hour
)

// setupTestDB opens a per-test in-memory SQLite database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A unique shared-cache name keeps the database alive across the pool's
	// connections while isolating it from other tests.
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&domain.Usuari{}, &domain.Planta{}, &domain.Item{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// setupRouter wires the same routes as cmd/server against the given database.
func setupRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()

	usuarisGroup := r.Group("/usuaris")
	usuarisGroup.POST("", RegisterUsuariHandler(db, testSecret, testExpiresIn))
	usuarisGroup.GET("", ListUsuarisHandler(db))
	usuarisGroup.GET("/:id", GetUsuariHandler(db))
	usuarisGroup.GET("/correu/:correu", GetUsuariByCorreuHandler(db))
	usuarisGroup.PUT("/:id", middleware.JWTAuthMiddleware(db, testSecret), UpdateUsuariHandler(db))
	usuarisGroup.DELETE("/:id", DeleteUsuariHandler(db))
	usuarisGroup.PUT("/btc/:userId", UpdateBtcHandler(db))
	usuarisGroup.POST("/api/login", LegacyLoginHandler(db))

	r.POST("/api/login", LoginHandler(db, testSecret, testExpiresIn))

	plantasGroup := r.Group("/plantas")
	plantasGroup.GET("", ListPlantesHandler(db))
	plantasGroup.GET("/usuaris/:id", ListPlantesByUsuariHandler(db))
	plantasGroup.GET("/:id", GetPlantaHandler(db))
	plantasGroup.POST("", CreatePlantaHandler(db))
	plantasGroup.PUT("/:id", UpdatePlantaHandler(db))
	plantasGroup.DELETE("/:id", DeletePlantaHandler(db))

	r.GET("/items", ListItemsHandler(db))

	return r
}

// createUsuari inserts a user with a properly hashed password.
func createUsuari(t *testing.T, db *gorm.DB, nom, correu, contrasenya, rol string, btc float64) domain.Usuari {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(contrasenya), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := domain.Usuari{
		Nom:         nom,
		Correu:      correu,
		Contrasenya: string(hash),
		Rol:         rol,
		Btc:         btc,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a JSON response body into a generic map.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body %q: %v", w.Body.String(), err)
	}
	return body
}
