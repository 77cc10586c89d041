package resumes

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobassist-backend/internal/activity"
	"jobassist-backend/internal/export"
	"jobassist-backend/internal/shared/server/middleware"
	"jobassist-backend/internal/shared/server/respond"
	"jobassist-backend/internal/shared/util"
)

// Handler wires HTTP handlers to the resume service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.create)
	rg.POST("/resumes/download", h.download)
}

type draftRequest struct {
	Title   string `json:"title"`
	Name    string `json:"name"`
	Summary string `json:"summary"`
}

func (r draftRequest) draft() Draft {
	return Draft{Title: r.Title, Name: r.Name, Summary: r.Summary}
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req draftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	record, err := h.Svc.Record(c.Request.Context(), userID, req.draft())
	if err != nil {
		writeActivityError(c, err, "failed to record resume")
		return
	}
	c.Set("recordId", record.ID)
	c.Set("recordMode", string(record.Mode))
	respond.JSON(c, http.StatusCreated, record)
}

// download renders the submitted draft as a PDF without touching the tracker.
func (h *Handler) download(c *gin.Context) {
	var req draftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	draft := req.draft()
	pdfBytes, err := export.RecordPDF(draft.Compose())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to render pdf", nil)
		return
	}

	fileName, err := util.SanitizeFileName(draft.Label())
	if err != nil {
		fileName = "resume"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName+".pdf"))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func writeActivityError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, activity.ErrUnknownUser):
		respond.Error(c, http.StatusNotFound, "unknown_user", "user not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
