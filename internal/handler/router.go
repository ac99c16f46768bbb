package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"smart-parking/internal/domain/user"
	"smart-parking/internal/handler/api"
	"smart-parking/internal/handler/httperr"
	"smart-parking/internal/handler/middleware"
	"smart-parking/internal/pkg/config"
	"smart-parking/internal/pkg/errs"
	"smart-parking/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth *api.AuthHandler
	Lot  *api.LotHandler
	Spot *api.SpotHandler
}

func NewHandlers(auth *api.AuthHandler, lot *api.LotHandler, spot *api.SpotHandler) Handlers {
	return Handlers{Auth: auth, Lot: lot, Spot: spot}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, h, authMiddleware)
	setupExtras(engine, cfg, m)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	if cfg.Metrics.Enabled {
		engine.Use(m.Middleware())
	}
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAdmin := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAdmin)}

	apiGroup := engine.Group("/api")
	{
		apiGroup.GET("/health", healthCheck)

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		lotRoutes := []route{
			{Method: http.MethodGet, Path: "", Handler: h.Lot.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Lot.Get},
			{Method: http.MethodPost, Path: "", Handler: h.Lot.Create, Mw: requireAdmin},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Lot.Update, Mw: requireAdmin},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Lot.Delete, Mw: requireAdmin},
		}
		for _, prefix := range []string{"/lots", "/parking-lots"} {
			lots := apiGroup.Group(prefix)
			lots.Use(authMiddleware.RequireAuth())
			addRoutes(lots, lotRoutes)
		}

		slots := apiGroup.Group("/slots")
		slots.Use(authMiddleware.RequireAuth())
		{
			addRoutes(slots, []route{
				{Method: http.MethodGet, Path: "/lot/:lotId", Handler: h.Spot.ListByLot},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Spot.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Spot.Create, Mw: requireAdmin},
				{Method: http.MethodPut, Path: "/:id/status", Handler: h.Spot.SetStatus, Mw: requireAdmin},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Spot.Delete, Mw: requireAdmin},
				{Method: http.MethodPost, Path: "/simulate/:lotId", Handler: h.Spot.Simulate, Mw: requireAdmin},
			})
		}
	}
}

// setupExtras mounts /metrics and the optional static frontend.
func setupExtras(engine *gin.Engine, cfg config.Config, m *metrics.Metrics) {
	if cfg.Metrics.Enabled {
		engine.GET(cfg.Metrics.Path, gin.WrapH(m.Handler()))
	}
	engine.NoRoute(staticOrNotFound(cfg.Server.StaticDir))
}

// staticOrNotFound serves files from dir and falls back to index.html so a
// single-page frontend can own its routes. API paths always get a JSON 404.
func staticOrNotFound(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if dir == "" || strings.HasPrefix(path, "/api/") || c.Request.Method != http.MethodGet {
			httperr.AbortWithError(c, http.StatusNotFound, errs.ErrNotFound, "Route not found", nil)
			return
		}

		file := filepath.Join(dir, filepath.Clean("/"+path))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
		c.File(filepath.Join(dir, "index.html"))
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"message": "Smart Parking API is running",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
