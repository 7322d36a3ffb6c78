package matches

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resume-matcher/internal/parse"
	"resume-matcher/internal/shared/server/middleware"
	"resume-matcher/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches match routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/matches", h.create)
	rg.GET("/matches", h.list)
	rg.GET("/matches/:id", h.get)
}

func (h *Handler) create(c *gin.Context) {
	clientID := middleware.ClientIDFromContext(c)

	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.JobDescription == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "jobDescription is required", nil)
		return
	}

	m, err := h.Svc.Run(c.Request.Context(), clientID, req.ProfileID, req.ResumeData, req.JobDescription)
	if err != nil {
		switch {
		case errors.Is(err, parse.ErrEmptyInput):
			respond.Error(c, http.StatusBadRequest, "empty_input", "job description contains no text", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to score match", nil)
		}
		return
	}

	c.Set("matchId", m.ID)
	respond.Created(c, toResponse(m))
}

func (h *Handler) get(c *gin.Context) {
	clientID := middleware.ClientIDFromContext(c)

	m, err := h.Svc.Get(c.Request.Context(), clientID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "match not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch match", nil)
		}
		return
	}

	respond.OK(c, toResponse(m))
}

func (h *Handler) list(c *gin.Context) {
	clientID := middleware.ClientIDFromContext(c)

	limit := clampQueryInt(c, "limit", 20, 0, 50)
	offset := clampQueryInt(c, "offset", 0, 0, 1<<30)

	stored, err := h.Svc.List(c.Request.Context(), clientID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list matches", nil)
		return
	}

	resp := make([]MatchResponse, 0, len(stored))
	for _, m := range stored {
		resp = append(resp, toResponse(m))
	}
	respond.OK(c, resp)
}

func clampQueryInt(c *gin.Context, key string, def, min, max int) int {
	val := def
	if raw := c.Query(key); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			val = parsed
		}
	}
	if val < min {
		val = min
	}
	if val > max {
		val = max
	}
	return val
}
