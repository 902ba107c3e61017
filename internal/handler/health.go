package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health reporta el estado de Postgres y Redis. No expone credenciales
// ni detalles de conexión.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		estado := gin.H{"service": "tramites-backend", "db": "ok", "redis": "ok"}
		codigo := http.StatusOK

		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			estado["db"] = "error"
			codigo = http.StatusServiceUnavailable
		}
		if rdb.Ping(ctx).Err() != nil {
			estado["redis"] = "error"
			codigo = http.StatusServiceUnavailable
		}

		estado["ok"] = codigo == http.StatusOK
		c.JSON(codigo, estado)
	}
}
