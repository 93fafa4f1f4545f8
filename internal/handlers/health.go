package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status  string `json:"status"`
	HasData bool   `json:"hasData"`
}

// Health handles the health check endpoint
func (a *API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		HasData: a.store.HasData(),
	})
}
