package server

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"avy-dashboard/internal/config"
	"avy-dashboard/internal/handlers"
	"avy-dashboard/internal/middleware"
	"avy-dashboard/internal/observability"
	"avy-dashboard/internal/rating"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:embed templates/*.html
var templatesFS embed.FS

const sessionName = "avy_session"

var funcMap = template.FuncMap{
	"upper": strings.ToUpper,
}

func NewRouter(cfg *config.Config, defaults rating.DangerGrid, log *slog.Logger, metrics *observability.Metrics) (*gin.Engine, error) {
	gin.SetMode(cfg.GinMode)

	r := gin.New()
	r.Use(gin.Recovery())

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	authKey, encKey, err := sessionKeys(cfg.SessionSecret)
	if err != nil {
		return nil, err
	}
	store := cookie.NewStore(authKey, encKey)
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.SessionMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	// HEALTHCHECK + METRICS (no session)
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	h := handlers.New(log, metrics)

	dash := r.Group("/")
	dash.Use(sessions.Sessions(sessionName, store))
	dash.Use(middleware.InjectDashboard(defaults, metrics, log))
	dash.Use(middleware.RequestLogger(log))

	// FORECAST
	dash.GET("/", h.IndexPage)
	dash.GET("/api/state", h.GetState)
	dash.POST("/api/selection", h.UpdateSelection)
	dash.POST("/api/drag/likelihood", h.LikelihoodDrag)
	dash.POST("/api/drag/danger", h.DangerDrag)

	// SETTINGS
	dash.GET("/api/grid", h.GetGrid)
	dash.POST("/api/grid/cell", h.EditCell)
	dash.POST("/api/grid/reset", h.ResetGrid)

	// AUDIT
	dash.GET("/api/audit", h.ListAuditLogs)

	return r, nil
}
