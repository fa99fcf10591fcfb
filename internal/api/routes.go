// Package api is the HTTP transport (§9's ambient stack): a thin gin
// layer around the round-table core that adds request correlation,
// CORS, health/info endpoints, metrics exposition, and the error
// taxonomy original_source/app/api/scheduler.py used (invalid
// input/problem -> 400, anything else unexpected -> 500, a solved or
// infeasible schedule -> 200).
package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	roundtable "github.com/katalvlaran/roundtable"
	"github.com/katalvlaran/roundtable/core"
	"github.com/katalvlaran/roundtable/internal/applog"
	"github.com/katalvlaran/roundtable/internal/metrics"
)

// serviceName and serviceVersion back the GET / descriptor.
const (
	serviceName    = "roundtable-server"
	serviceVersion = "v1"
)

// Handler holds the dependencies every route needs: a logger, a metrics
// registry, and the solver defaults from config (§9: "Default time limit
// is a configuration value of the enclosing call") — nothing else from the
// core pipeline, since roundtable.Schedule is a free function, called
// directly.
type Handler struct {
	log                     *applog.Logger
	metrics                 *metrics.Registry
	defaultTimeLimitSeconds int
}

// SetupRouter builds the gin engine: CORS middleware (allowedOrigins is
// "*"/empty or a comma-separated allow-list, normally
// cfg.Server.AllowedOrigins), request-id stamping, the public route
// group, and /metrics. defaultTimeLimitSeconds is applied to any request
// that omits time_limit_seconds (normally cfg.Solver.DefaultTimeLimitSeconds).
func SetupRouter(log *applog.Logger, reg *metrics.Registry, allowedOrigins string, defaultTimeLimitSeconds int) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(corsMiddleware(allowedOrigins))
	r.Use(requestIDMiddleware())

	h := &Handler{log: log, metrics: reg, defaultTimeLimitSeconds: defaultTimeLimitSeconds}

	r.GET("/", h.handleRoot)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", h.handleHealth)
		v1.POST("/schedule", h.handleSchedule)
	}

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg.Gatherer(), promhttp.HandlerOpts{})))

	return r
}

// corsMiddleware mirrors leanlp-BTC-coinjoin's ALLOWED_ORIGINS handling:
// "*" or empty allows any origin; otherwise only an exact match from the
// comma-separated allow-list is echoed back.
func corsMiddleware(allowed string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		switch {
		case allowed == "" || allowed == "*":
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		default:
			for _, candidate := range strings.Split(allowed, ",") {
				if strings.TrimSpace(candidate) == origin {
					c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
					break
				}
			}
		}
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// requestIDMiddleware stamps every request with a correlation id (a fresh
// one unless the caller already supplied X-Request-Id), echoed back on the
// response and available to handlers via c.GetString("request_id").
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-Id", id)
		c.Next()
	}
}

// handleRoot returns a small service descriptor, mirroring
// original_source/app/main.py's root endpoint.
func (h *Handler) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": serviceName,
		"version": serviceVersion,
	})
}

// handleHealth reports liveness.
func (h *Handler) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleSchedule binds a core.Request, runs the pipeline, and serializes
// the result. Per original_source/app/api/scheduler.py's taxonomy:
// invalid input/problem is 400, anything else unexpected is 500, and a
// schedule response — even a core.StatusInfeasible one — is always 200.
func (h *Handler) handleSchedule(c *gin.Context) {
	requestID, _ := c.Get("request_id")
	log := h.log.With("request_id", requestID.(string))

	var req core.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.TimeLimitSeconds == 0 {
		req.TimeLimitSeconds = h.defaultTimeLimitSeconds
	}

	start := time.Now()
	resp, err := roundtable.Schedule(c.Request.Context(), req)
	duration := time.Since(start)

	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, core.ErrInvalidInput) || errors.Is(err, core.ErrInvalidProblem) {
			status = http.StatusBadRequest
		}
		log.Error("schedule failed", err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	log.InfoFields("schedule completed", "solver_status", string(resp.SolverStatus), "duration_ms", duration.Milliseconds())
	h.metrics.ObserveSchedule(string(resp.SolverStatus), duration)
	c.JSON(http.StatusOK, resp)
}
