package handlers

import (
	"net/http"

	"avy-dashboard/internal/middleware"
	"avy-dashboard/internal/rating"

	"github.com/gin-gonic/gin"
)

type gridCell struct {
	Level     rating.DangerLevel
	Row       int
	Col       int
	Highlight bool
}

type gridRow struct {
	Label string
	Cells []gridCell
}

type likelihoodCell struct {
	Label     string
	Value     int
	Highlight bool
}

type likelihoodRow struct {
	Label string
	Cells []likelihoodCell
}

// Both matrices are drawn with the lowest row at the bottom.

func dangerRows(g rating.DangerGrid, a rating.Assessment) []gridRow {
	rows := make([]gridRow, 0, rating.GridSize)
	for r := rating.GridSize - 1; r >= 0; r-- {
		row := gridRow{Label: rating.LikelihoodLabels[r]}
		for col := 0; col < rating.GridSize; col++ {
			row.Cells = append(row.Cells, gridCell{
				Level: g[r][col],
				Row:   r,
				Col:   col,
				Highlight: r >= a.LikelihoodRange.Lo && r <= a.LikelihoodRange.Hi &&
					col >= a.Selection.Size.Lo && col <= a.Selection.Size.Hi,
			})
		}
		rows = append(rows, row)
	}
	return rows
}

func likelihoodRows(a rating.Assessment) []likelihoodRow {
	m := rating.LikelihoodMatrix()
	rows := make([]likelihoodRow, 0, rating.DistributionCount)
	for d := rating.DistributionCount - 1; d >= 0; d-- {
		row := likelihoodRow{Label: rating.DistributionLabels[d]}
		for s := 0; s < rating.SensitivityCount; s++ {
			row.Cells = append(row.Cells, likelihoodCell{
				Label: rating.LikelihoodLabels[m[d][s]],
				Value: m[d][s],
				Highlight: d >= a.DistributionRange.Lo && d <= a.DistributionRange.Hi &&
					s >= a.SensitivityRange.Lo && s <= a.SensitivityRange.Hi,
			})
		}
		rows = append(rows, row)
	}
	return rows
}

// IndexPage renders the forecast tab and the grid editor for the session.
func (h *Handlers) IndexPage(c *gin.Context) {
	st := middleware.CurrentDashboard(c)
	a, err := h.assess(st)
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "failed to evaluate rating")
		return
	}

	render(c, http.StatusOK, "index.html", gin.H{
		"assessment":     a,
		"dangerRows":     dangerRows(st.Grid.Grid(), a),
		"likelihoodRows": likelihoodRows(a),
	})
}
