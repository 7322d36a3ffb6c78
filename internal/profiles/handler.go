package profiles

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-matcher/internal/extract"
	"resume-matcher/internal/parse"
	"resume-matcher/internal/shared/server/middleware"
	"resume-matcher/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc            *Service
	MaxUploadBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = 10 << 20
	}
	return &Handler{Svc: svc, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches profile routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/profiles", h.upload)
	rg.POST("/profiles/text", h.fromText)
	rg.GET("/profiles", h.list)
	rg.GET("/profiles/:id", h.get)
}

func (h *Handler) upload(c *gin.Context) {
	clientID := middleware.ClientIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume file is required", nil)
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".pdf" && ext != ".docx" && ext != ".doc" && ext != ".txt" {
		respond.Error(c, http.StatusBadRequest, "validation_error",
			"unsupported file format, upload PDF, DOC, DOCX or TXT", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	profile, err := h.Svc.ParseUpload(c.Request.Context(), clientID, fileHeader.Filename, mimeType, data)
	if err != nil {
		h.writeParseError(c, err)
		return
	}

	c.Set("profileId", profile.ID)
	respond.Created(c, toResponse(profile))
}

type fromTextRequest struct {
	Text string `json:"text"`
}

func (h *Handler) fromText(c *gin.Context) {
	clientID := middleware.ClientIDFromContext(c)

	var req fromTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	profile, err := h.Svc.ParseText(c.Request.Context(), clientID, req.Text)
	if err != nil {
		h.writeParseError(c, err)
		return
	}

	c.Set("profileId", profile.ID)
	respond.Created(c, toResponse(profile))
}

func (h *Handler) get(c *gin.Context) {
	clientID := middleware.ClientIDFromContext(c)

	profile, err := h.Svc.Get(c.Request.Context(), clientID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "profile not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch profile", nil)
		}
		return
	}

	respond.OK(c, toResponse(profile))
}

func (h *Handler) list(c *gin.Context) {
	clientID := middleware.ClientIDFromContext(c)

	limit := clampQueryInt(c, "limit", 20, 0, 50)
	offset := clampQueryInt(c, "offset", 0, 0, 1<<30)

	stored, err := h.Svc.List(c.Request.Context(), clientID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list profiles", nil)
		return
	}

	resp := make([]ProfileResponse, 0, len(stored))
	for _, p := range stored {
		resp = append(resp, toResponse(p))
	}
	respond.OK(c, resp)
}

func (h *Handler) writeParseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, parse.ErrEmptyInput):
		respond.Error(c, http.StatusBadRequest, "empty_input", "document contains no text", nil)
	case errors.Is(err, extract.ErrUnsupportedType):
		respond.Error(c, http.StatusBadRequest, "unsupported_format", err.Error(), nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to process resume", nil)
	}
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
