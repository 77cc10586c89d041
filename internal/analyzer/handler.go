package analyzer

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobassist-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the analyzer service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analyzer routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyzer", h.analyze)
}

type analyzeRequest struct {
	JobDescription string `json:"jobDescription"`
}

type analyzeResponse struct {
	Analysis string `json:"analysis"`
}

// analyze always answers 200; model failures come back as an inline
// "Error: ..." analysis string.
func (h *Handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	analysis := h.Svc.Analyze(c.Request.Context(), req.JobDescription)
	respond.JSON(c, http.StatusOK, analyzeResponse{Analysis: analysis})
}
