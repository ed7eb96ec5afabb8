package api

import (
	"tos-api/internal/handler/dto/response"
	"tos-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type StatusHandler struct {
	reporter usecase.StatusReporter
}

func NewStatusHandler(reporter usecase.StatusReporter) *StatusHandler {
	return &StatusHandler{reporter: reporter}
}

// @Summary Health status
// @Description Reports datastore connectivity. Results are cached briefly.
// @Tags health
// @Produce json
// @Success 200 {object} response.StatusResponse
// @Failure 500 {object} response.StatusResponse
// @Router /v1/status [get]
func (h *StatusHandler) Status(c *gin.Context) {
	status := h.reporter.CheckHealth(c.Request.Context())
	c.JSON(status.ResponseCode(), response.NewStatusResponse(status))
}
