package api

import (
	_ "embed"  // Embedding the OpenAPI document
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

//go:embed openapi.json
var openapiSpec []byte // The OpenAPI 3 document describing this API

// Minimal Swagger UI page pointed at the embedded document
const swaggerUIPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>API Aplicación de Plantas</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({ url: '/api-docs/openapi.json', dom_id: '#swagger-ui' });
  </script>
</body>
</html>`

// DocsUIHandler serves the Swagger UI page
func DocsUIHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(swaggerUIPage))
	}
}

// DocsSpecHandler serves the OpenAPI document consumed by the UI
func DocsSpecHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", openapiSpec)
	}
}
