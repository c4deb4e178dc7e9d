package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Healthcheck godoc
// @ID          healthcheck
// @Summary     Service healthcheck
// @Description Liveness probe; always returns OK while the process serves traffic.
// @Tags        Health
// @Produce     json
//
// @Success     200  {object}  handlers.APIResponse
// @Router      /healthcheck [get]
func (h *Handlers) Healthcheck(c *gin.Context) {
	respond(c, http.StatusOK, gin.H{"status": "OK"}, "service is healthy")
}
