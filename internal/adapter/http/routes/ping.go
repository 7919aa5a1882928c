package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ping godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /v1/ping [get]
func ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", ping)
}
