package uploads

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"jobassist-backend/internal/activity"
	"jobassist-backend/internal/shared/server/middleware"
	"jobassist-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the upload service.
type Handler struct {
	Svc      *Service
	MaxBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxBytes int64) *Handler {
	if maxBytes <= 0 {
		maxBytes = 10 << 20
	}
	return &Handler{Svc: svc, MaxBytes: maxBytes}
}

// RegisterRoutes attaches upload routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/uploads", h.upload)
	rg.GET("/uploads/download", h.download)
}

func (h *Handler) upload(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxBytes)

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	result, err := h.Svc.Upload(c.Request.Context(), userID, fileHeader.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnsupportedFileType):
			respond.Error(c, http.StatusBadRequest, "unsupported_file_type", "only pdf files are accepted", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid upload", nil)
		case errors.Is(err, activity.ErrUnknownUser):
			respond.Error(c, http.StatusNotFound, "unknown_user", "user not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store upload", nil)
		}
		return
	}
	c.Set("recordId", result.Record.ID)
	c.Set("recordMode", string(result.Record.Mode))
	respond.JSON(c, http.StatusCreated, result)
}

// download streams a previously stored upload back to its owner.
func (h *Handler) download(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	rc, err := h.Svc.Fetch(c.Request.Context(), userID, c.Query("key"))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "key is required", nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "upload not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to open upload", nil)
		}
		return
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read upload", nil)
		return
	}

	fileName := downloadFileName(c.Query("key"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, "application/pdf", data)
}

// downloadFileName recovers the original name from a storage key of the form
// <hashed-user>/<random>_<name>.
func downloadFileName(storageKey string) string {
	base := path.Base(storageKey)
	if i := strings.Index(base, "_"); i >= 0 && i+1 < len(base) {
		return base[i+1:]
	}
	return base
}
