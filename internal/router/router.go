package router

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/medhq/hms-api/internal/handler"
	"github.com/medhq/hms-api/internal/middleware"
	authsvc "github.com/medhq/hms-api/internal/service/auth"
	"github.com/medhq/hms-api/internal/session"
	"github.com/medhq/hms-api/pkg/logger"
)

// Handler is any domain handler that can attach its routes to a group.
type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Config struct {
	RateLimitRPS   float64
	RateLimitBurst int
	CORS           middleware.CORSConfig
	MetricsPrefix  string
}

type Router struct {
	engine  *gin.Engine
	auth    *authsvc.Service
	codec   *session.TokenCodec
	health  *handler.HealthHandler
	pages   []Handler
	log     *logger.Logger
	metrics *routerMetrics
	limiter *middleware.RateLimiter
}

type routerMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	errorTotal      *prometheus.CounterVec
}

// New wires the engine with the core middleware chain. Page handlers sit
// behind the session gate; health and metrics stay outside it so probes
// work without a cookie.
func New(
	auth *authsvc.Service,
	codec *session.TokenCodec,
	health *handler.HealthHandler,
	log *logger.Logger,
	cfg Config,
	pages ...Handler,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	r := &Router{
		engine:  engine,
		auth:    auth,
		codec:   codec,
		health:  health,
		pages:   pages,
		log:     log,
		metrics: newRouterMetrics(cfg.MetricsPrefix),
		limiter: middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
	}

	engine.Use(
		middleware.RequestID(),
		middleware.Recovery(log),
		middleware.Logger(log),
		r.metricsMiddleware(),
		middleware.CORS(cfg.CORS),
		r.limiter.Middleware(),
	)

	return r
}

func (r *Router) Setup() {
	r.setupOperational()

	gate := middleware.SessionGate(r.auth, r.codec, r.log)

	pages := r.engine.Group("")
	pages.Use(gate)
	for _, h := range r.pages {
		h.RegisterRoutes(pages)
	}

	// Root navigation never renders; the gate turns it into a redirect.
	pages.GET(session.RootPath, func(c *gin.Context) {})

	// The login view renders only for anonymous visitors; the gate sends
	// signed-in ones to the dashboard before this handler runs.
	pages.GET(session.LoginPath, func(c *gin.Context) {
		c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"page": "login"}))
	})

	// Unmatched paths run through the gate too: an anonymous visitor on a
	// bad URL lands on the login page, not a bare 404.
	r.engine.NoRoute(gate, func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handler.NewErrorResponse("page not found"))
	})
}

func (r *Router) setupOperational() {
	r.health.RegisterRoutes(r.engine.Group(""))
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Close stops background upkeep owned by the router.
func (r *Router) Close() {
	r.limiter.Stop()
}

func newRouterMetrics(prefix string) *routerMetrics {
	m := &routerMetrics{
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: prefix + "_request_duration_seconds",
				Help: "Duration of HTTP requests in seconds",
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		errorTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_errors_total",
				Help: "Total number of HTTP errors",
			},
			[]string{"method", "path", "type"},
		),
	}
	prometheus.MustRegister(m.requestDuration, m.requestTotal, m.errorTotal)
	return m
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()

		c.Next()

		status := fmt.Sprintf("%d", c.Writer.Status())
		duration := time.Since(start).Seconds()

		r.metrics.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		r.metrics.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()

		if c.Writer.Status() >= 400 {
			r.metrics.errorTotal.WithLabelValues(c.Request.Method, path, "http").Inc()
		}
	}
}
