package handlers

import (
	"avy-dashboard/internal/middleware"
	"avy-dashboard/internal/rating"

	"github.com/gin-gonic/gin"
)

// render wraps c.HTML and passes the shared label tables and the session id
// to every template.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	data["Levels"] = rating.DangerLevels()
	data["SizeLabels"] = rating.SizeLabels
	data["SensitivityLabels"] = rating.SensitivityLabels
	data["SensitivitySliderLabels"] = rating.SensitivitySliderLabels
	data["DistributionSliderLabels"] = rating.DistributionSliderLabels

	if st := middleware.CurrentDashboard(c); st != nil {
		data["SessionID"] = st.SessionID
	}

	c.HTML(status, tmpl, data)
}
