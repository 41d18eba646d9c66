package handlers

import (
	"net/http"

	"avy-dashboard/internal/database"
	"avy-dashboard/internal/middleware"

	"github.com/gin-gonic/gin"
)

const auditLimit = 200

// ListAuditLogs returns this session's grid journal. It is empty when the
// audit database is not configured.
func (h *Handlers) ListAuditLogs(c *gin.Context) {
	st := middleware.CurrentDashboard(c)

	logs, err := database.ListAuditLogs(st.SessionID, auditLimit)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to read audit log"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id": st.SessionID,
		"entries":    logs,
	})
}
