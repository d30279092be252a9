package http

import (
	"log/slog"

	"github.com/geocoder89/userdesk/internal/config"
	"github.com/geocoder89/userdesk/internal/http/handlers"
	"github.com/geocoder89/userdesk/internal/http/middlewares"
	"github.com/geocoder89/userdesk/internal/observability"
	"github.com/geocoder89/userdesk/internal/render"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const serviceName = "userdesk"

type ListView interface {
	handlers.UserListView
	Loading() bool
}

// Metrics is optional; with a nil Prom the router serves no /metrics.
type Metrics struct {
	Prom     *observability.Prom
	Gatherer prometheus.Gatherer
}

func NewRouter(log *slog.Logger, cfg config.Config, v ListView, m Metrics) *gin.Engine {
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.SetHTMLTemplate(render.PageTemplate)

	// middleware

	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(serviceName))
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger(log))
	if m.Prom != nil {
		r.Use(m.Prom.GinHandleMiddleware())
	}
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middlewares.MaxBodyBytes(cfg.MaxBodyBytes))
	r.Use(middlewares.RequireJSON())

	// health
	h := handlers.NewHealthHandler(func() bool { return !v.Loading() })
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)

	if m.Prom != nil && m.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.Gatherer, promhttp.HandlerOpts{})))
	}

	users := handlers.NewUsersHandler(v)

	r.GET("/", users.Page)
	r.GET(render.ScriptPath, users.PageScript)
	r.GET("/users", users.ListUsers)
	r.GET("/users/:id", users.GetUser)
	// row link target
	r.GET("/user/:id", users.GetUser)
	r.POST("/users/:id/edit", users.EditUser)
	r.DELETE("/users/:id", users.DeleteUser)

	r.PUT("/form/fields", users.SetField)
	r.POST("/form/submit", users.Submit)
	r.POST("/form/cancel", users.Cancel)

	return r
}
