package jobsearch

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobassist-backend/internal/shared/metrics"
	"jobassist-backend/internal/shared/server/respond"
	"jobassist-backend/internal/shared/telemetry"
)

// Handler wires HTTP handlers to the job search client.
type Handler struct {
	Client *Client
}

// NewHandler constructs a Handler.
func NewHandler(client *Client) *Handler {
	return &Handler{Client: client}
}

// RegisterRoutes attaches job search routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/jobs", h.search)
}

type searchResult struct {
	Jobs []Listing `json:"jobs"`
}

// search always answers 200. Upstream failures degrade to an empty result
// set so the page still renders.
func (h *Handler) search(c *gin.Context) {
	metrics.IncJobSearch()

	listings, err := h.Client.Search(c.Request.Context(), c.Query("what"), c.Query("where"))
	if err != nil {
		metrics.IncJobSearchFailed()
		telemetry.Error("job search failed", map[string]any{"error": err.Error()})
		listings = []Listing{}
	}
	if listings == nil {
		listings = []Listing{}
	}
	respond.JSON(c, http.StatusOK, searchResult{Jobs: listings})
}
