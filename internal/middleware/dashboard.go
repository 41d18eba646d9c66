package middleware

import (
	"log/slog"

	"avy-dashboard/internal/models"
	"avy-dashboard/internal/observability"
	"avy-dashboard/internal/rating"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

const dashboardKey = "Dashboard"

// session keys
const (
	keySessionID    = "sid"
	keySensitivity  = "sens"
	keyDistribution = "dist"
	keySizeLo       = "size_lo"
	keySizeHi       = "size_hi"
	keyGrid         = "grid"
)

// InjectDashboard loads the session's slider state and danger grid into the
// request context. A request without a session starts a new one from the
// default selection and the given default grid.
func InjectDashboard(defaults rating.DangerGrid, metrics *observability.Metrics, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		st, fresh := loadState(sess, defaults, log)
		if fresh {
			metrics.SessionsStarted.Inc()
			log.Info("dashboard session started", "session_id", st.SessionID)
			if err := storeState(sess, st); err != nil {
				log.Error("failed to save new session", "session_id", st.SessionID, "error", err)
			}
		}

		c.Set(dashboardKey, st)
		c.Next()
	}
}

// CurrentDashboard returns the state placed by InjectDashboard.
func CurrentDashboard(c *gin.Context) *models.DashboardState {
	v, ok := c.Get(dashboardKey)
	if !ok {
		return nil
	}
	st, _ := v.(*models.DashboardState)
	return st
}

// SaveDashboard writes the state back to the session cookie. It must be
// called before the response body is written.
func SaveDashboard(c *gin.Context, st *models.DashboardState) error {
	return storeState(sessions.Default(c), st)
}

// sessionReader is the read side of sessions.Session.
type sessionReader interface {
	Get(key interface{}) interface{}
}

func loadState(sess sessionReader, defaults rating.DangerGrid, log *slog.Logger) (*models.DashboardState, bool) {
	sid, _ := sess.Get(keySessionID).(string)
	if sid == "" {
		return &models.DashboardState{
			SessionID: uuid.NewString(),
			Selection: rating.DefaultSelection(),
			Grid:      rating.NewGridStore(defaults),
		}, true
	}

	def := rating.DefaultSelection()
	sel := rating.Selection{
		Sensitivity:  intOr(sess.Get(keySensitivity), def.Sensitivity),
		Distribution: intOr(sess.Get(keyDistribution), def.Distribution),
		Size: rating.IndexRange{
			Lo: intOr(sess.Get(keySizeLo), def.Size.Lo),
			Hi: intOr(sess.Get(keySizeHi), def.Size.Hi),
		},
	}

	grid := defaults
	if enc, ok := sess.Get(keyGrid).(string); ok {
		g, err := rating.DecodeGrid(enc)
		if err != nil {
			log.Warn("discarding unreadable session grid", "session_id", sid, "error", err)
		} else {
			grid = g
		}
	}

	return &models.DashboardState{
		SessionID: sid,
		Selection: sel.Clamp(),
		Grid:      rating.RestoreGridStore(grid, defaults),
	}, false
}

func storeState(sess sessions.Session, st *models.DashboardState) error {
	sess.Set(keySessionID, st.SessionID)
	sess.Set(keySensitivity, st.Selection.Sensitivity)
	sess.Set(keyDistribution, st.Selection.Distribution)
	sess.Set(keySizeLo, st.Selection.Size.Lo)
	sess.Set(keySizeHi, st.Selection.Size.Hi)
	sess.Set(keyGrid, st.Grid.Grid().Encode())
	if err := sess.Save(); err != nil {
		return goerr.Wrap(err, "failed to save session", goerr.V("session_id", st.SessionID))
	}
	return nil
}

func intOr(v any, def int) int {
	if n, ok := v.(int); ok {
		return n
	}
	return def
}
