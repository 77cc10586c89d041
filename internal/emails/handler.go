package emails

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobassist-backend/internal/activity"
	"jobassist-backend/internal/shared/server/middleware"
	"jobassist-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the email service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches email routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/emails", h.create)
}

type draftRequest struct {
	JobTitle string `json:"jobTitle"`
	Receiver string `json:"receiverName"`
	Sender   string `json:"senderName"`
	Type     string `json:"mailType"`
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req draftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	record, err := h.Svc.Record(c.Request.Context(), userID, Draft{
		JobTitle: req.JobTitle,
		Receiver: req.Receiver,
		Sender:   req.Sender,
		Type:     req.Type,
	})
	if err != nil {
		switch {
		case errors.Is(err, activity.ErrUnknownUser):
			respond.Error(c, http.StatusNotFound, "unknown_user", "user not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to record email", nil)
		}
		return
	}
	c.Set("recordId", record.ID)
	c.Set("recordMode", string(record.Mode))
	respond.JSON(c, http.StatusCreated, record)
}
