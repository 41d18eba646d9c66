package handlers

import (
	"avy-dashboard/internal/middleware"
	"avy-dashboard/internal/rating"

	"github.com/gin-gonic/gin"
)

// GetState returns the current assessment and grid.
func (h *Handlers) GetState(c *gin.Context) {
	h.respondState(c, middleware.CurrentDashboard(c), nil)
}

// selectionRequest fields left out keep their current value.
type selectionRequest struct {
	Sensitivity  *int               `json:"sensitivity"`
	Distribution *int               `json:"distribution"`
	Size         *rating.IndexRange `json:"size"`
}

// UpdateSelection moves one or more sliders.
func (h *Handlers) UpdateSelection(c *gin.Context) {
	var req selectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	st := middleware.CurrentDashboard(c)
	sel := st.Selection
	if req.Sensitivity != nil {
		sel.Sensitivity = *req.Sensitivity
	}
	if req.Distribution != nil {
		sel.Distribution = *req.Distribution
	}
	if req.Size != nil {
		sel.Size = *req.Size
	}
	st.Selection = sel.Clamp()

	h.respondState(c, st, nil)
}

// LikelihoodDrag snaps the sensitivity and distribution sliders to a box
// drawn on the likelihood matrix.
func (h *Handlers) LikelihoodDrag(c *gin.Context) {
	h.drag(c, "likelihood", rating.ApplyLikelihoodDrag)
}

// DangerDrag sets the size range from a box drawn on the danger matrix.
func (h *Handlers) DangerDrag(c *gin.Context) {
	h.drag(c, "danger", rating.ApplyDangerDrag)
}

func (h *Handlers) drag(c *gin.Context, matrix string, apply func(rating.DragBox, rating.Selection) (rating.Selection, bool)) {
	var box rating.DragBox
	if err := c.ShouldBindJSON(&box); err != nil {
		badRequest(c, err)
		return
	}

	st := middleware.CurrentDashboard(c)
	next, ok := apply(box, st.Selection)
	if ok {
		st.Selection = next
		h.metrics.DragGestures.WithLabelValues(matrix, "applied").Inc()
	} else {
		h.metrics.DragGestures.WithLabelValues(matrix, "ignored").Inc()
		h.log.Debug("incomplete drag ignored", "session_id", st.SessionID, "matrix", matrix)
	}

	h.respondState(c, st, &ok)
}
