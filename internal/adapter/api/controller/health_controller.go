package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger verifica a conexão com o banco de dados
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController responde às verificações de disponibilidade
type HealthController struct {
	db      Pinger
	version string
}

// NewHealthController cria uma nova instância de HealthController
func NewHealthController(db Pinger, version string) *HealthController {
	return &HealthController{db: db, version: version}
}

// Check verifica a API e o banco de dados
// @Summary Verifica a saúde da API
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (c *HealthController) Check(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	if err := c.db.Ping(pingCtx); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "degraded",
			"database": "unavailable",
			"version":  c.version,
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": "ok",
		"version":  c.version,
	})
}
