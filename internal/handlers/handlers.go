package handlers

import (
	"log/slog"
	"net/http"

	"avy-dashboard/internal/middleware"
	"avy-dashboard/internal/models"
	"avy-dashboard/internal/observability"
	"avy-dashboard/internal/rating"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	log     *slog.Logger
	metrics *observability.Metrics
}

func New(log *slog.Logger, metrics *observability.Metrics) *Handlers {
	return &Handlers{log: log, metrics: metrics}
}

type stateResponse struct {
	Applied    *bool             `json:"applied,omitempty"`
	Assessment rating.Assessment `json:"assessment"`
	Grid       rating.DangerGrid `json:"grid"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// assess recomputes the session's assessment and counts it.
func (h *Handlers) assess(st *models.DashboardState) (rating.Assessment, error) {
	a, err := st.Assess()
	if err != nil {
		return a, err
	}
	h.metrics.Recomputes.Inc()
	h.metrics.MaxDanger.WithLabelValues(a.MaxDanger.String()).Inc()
	return a, nil
}

// respondState saves the session and answers with the fresh assessment.
// applied is nil for plain reads.
func (h *Handlers) respondState(c *gin.Context, st *models.DashboardState, applied *bool) {
	a, err := h.assess(st)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to evaluate rating"})
		return
	}
	if err := middleware.SaveDashboard(c, st); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to save session"})
		return
	}
	c.JSON(http.StatusOK, stateResponse{
		Applied:    applied,
		Assessment: a,
		Grid:       st.Grid.Grid(),
	})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}
