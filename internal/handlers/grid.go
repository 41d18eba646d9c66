package handlers

import (
	"net/http"

	"avy-dashboard/internal/database"
	"avy-dashboard/internal/middleware"
	"avy-dashboard/internal/models"
	"avy-dashboard/internal/rating"

	"github.com/gin-gonic/gin"
)

// EditCell applies a single danger grid edit. An unknown level or position
// is not an error: the grid is returned unchanged with applied=false.
func (h *Handlers) EditCell(c *gin.Context) {
	var edit rating.CellEdit
	if err := c.ShouldBindJSON(&edit); err != nil {
		badRequest(c, err)
		return
	}

	st := middleware.CurrentDashboard(c)
	prev, ok := st.Grid.SetCell(edit)
	if !ok {
		h.metrics.GridEdits.WithLabelValues("rejected").Inc()
		h.log.Debug("grid edit ignored", "session_id", st.SessionID,
			"row", edit.Row, "col", edit.Col, "value", edit.Value)
		h.respondState(c, st, &ok)
		return
	}

	h.metrics.GridEdits.WithLabelValues("applied").Inc()
	h.log.Info("grid edit applied", "session_id", st.SessionID,
		"row", edit.Row, "col", edit.Col, "from", prev.String(), "to", edit.Value)

	row, col := edit.Row, edit.Col
	if err := database.CreateAuditLog(models.GridEditLog{
		SessionID: st.SessionID,
		Action:    models.ActionSetCell,
		Row:       &row,
		Col:       &col,
		FromLevel: prev.String(),
		ToLevel:   edit.Value,
	}); err != nil {
		h.log.Error("audit write failed", "session_id", st.SessionID, "error", err)
	}

	h.respondState(c, st, &ok)
}

// ResetGrid discards every edit made in this session.
func (h *Handlers) ResetGrid(c *gin.Context) {
	st := middleware.CurrentDashboard(c)
	st.Grid.Reset()

	h.metrics.GridResets.Inc()
	h.log.Info("grid reset to defaults", "session_id", st.SessionID)

	if err := database.CreateAuditLog(models.GridEditLog{
		SessionID: st.SessionID,
		Action:    models.ActionReset,
	}); err != nil {
		h.log.Error("audit write failed", "session_id", st.SessionID, "error", err)
	}

	applied := true
	h.respondState(c, st, &applied)
}

type legendEntry struct {
	Level     rating.DangerLevel `json:"level"`
	Abbrev    string             `json:"abbrev"`
	Color     string             `json:"color"`
	TextColor string             `json:"text_color"`
}

type gridResponse struct {
	Grid             rating.DangerGrid `json:"grid"`
	Legend           []legendEntry     `json:"legend"`
	LikelihoodLabels []string          `json:"likelihood_labels"`
	SizeLabels       []string          `json:"size_labels"`
}

// GetGrid returns the session's danger grid with everything needed to draw
// the grid editor.
func (h *Handlers) GetGrid(c *gin.Context) {
	st := middleware.CurrentDashboard(c)

	legend := make([]legendEntry, 0, len(rating.DangerLevels()))
	for _, lvl := range rating.DangerLevels() {
		legend = append(legend, legendEntry{
			Level:     lvl,
			Abbrev:    lvl.Abbrev(),
			Color:     lvl.Color(),
			TextColor: lvl.TextColor(),
		})
	}

	c.JSON(http.StatusOK, gridResponse{
		Grid:             st.Grid.Grid(),
		Legend:           legend,
		LikelihoodLabels: rating.LikelihoodLabels,
		SizeLabels:       rating.SizeLabels,
	})
}
