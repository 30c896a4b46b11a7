package server

import (
	"embed"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"podesk/internal/api"
	"podesk/internal/config"
	"podesk/internal/service/po"
	"podesk/internal/service/project"
	"podesk/internal/service/vendor"
	"podesk/internal/window"
)

//go:embed ui
var uiFiles embed.FS

// Server serves the embedded page and the host-operation API on loopback.
type Server struct {
	router *gin.Engine
	log    zerolog.Logger
}

// New wires the services and the window host into a ready-to-run server.
func New(cfg *config.AppConfig, projectsDir, vendorsDir string, host window.Host, log zerolog.Logger) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	projects := project.NewManager(projectsDir, log)
	pos := po.NewService(projects, config.ResolvePath(cfg.Data.TemplatePath), log)
	vendors := vendor.NewService(projects, vendorsDir, log)
	handler := api.NewHandler(projects, pos, vendors, host, log)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(log))
	router.Use(cors())

	handler.RegisterRoutes(router.Group("/api"))

	serveUI(router)

	return &Server{
		router: router,
		log:    log.With().Str("component", "server").Logger(),
	}
}

// Run serves until the process ends.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Router exposes the engine for httptest-based tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func serveUI(router *gin.Engine) {
	sub, _ := fs.Sub(uiFiles, "ui")

	router.GET("/", func(c *gin.Context) {
		data, err := fs.ReadFile(sub, "index.html")
		if err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	})

	// Single-page UI: anything unknown falls back to the page.
	router.NoRoute(func(c *gin.Context) {
		data, err := fs.ReadFile(sub, "index.html")
		if err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	})
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.New().String()
		c.Header("X-Request-ID", requestID)

		c.Next()

		log.Debug().
			Str("component", "http").
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	}
}
