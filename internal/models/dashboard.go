package models

import "avy-dashboard/internal/rating"

// DashboardState is everything one browser session owns: its slider
// positions and its private copy of the danger grid.
type DashboardState struct {
	SessionID string
	Selection rating.Selection
	Grid      *rating.GridStore
}

// Assess evaluates the session's selection against its grid.
func (s *DashboardState) Assess() (rating.Assessment, error) {
	return rating.Evaluate(s.Selection, s.Grid.Grid())
}
