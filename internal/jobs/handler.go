package jobs

import (
	"github.com/gin-gonic/gin"

	"resume-matcher/internal/shared/server/respond"
)

// Handler serves the sample job catalog.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches job routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/jobs/samples", h.samples)
}

func (h *Handler) samples(c *gin.Context) {
	respond.OK(c, Samples())
}
