package activity

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobassist-backend/internal/shared/server/middleware"
	"jobassist-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the activity service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches tracker routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/tracker", h.list)
}

type listResponse struct {
	Records []Record `json:"records"`
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	records, err := h.Svc.ListForUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUnknownUser) {
			respond.Error(c, http.StatusNotFound, "unknown_user", "user not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load tracker", nil)
		return
	}
	respond.JSON(c, http.StatusOK, listResponse{Records: records})
}
