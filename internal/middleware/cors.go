package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS permite el acceso del frontend. En desarrollo el origen por defecto
// es "*"; en producción se fija con CORS_ORIGIN.
func CORS(origen string) gin.HandlerFunc {
	if origen == "" {
		origen = "*"
	}
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", origen)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
		c.Header("Access-Control-Expose-Headers", "X-Request-ID")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
