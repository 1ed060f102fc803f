package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"nexus-booking/internal/handler/api"
	"nexus-booking/internal/handler/httperr"
	"nexus-booking/internal/handler/middleware"
	"nexus-booking/internal/pkg/apperr"
	"nexus-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	serviceHandler *api.ServiceHandler,
	bookingHandler *api.BookingHandler,
	userHandler *api.UserHandler,
	adminHandler *api.AdminHandler,
	adminAuth *middleware.AdminAuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, serviceHandler, bookingHandler, userHandler, adminHandler, adminAuth)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
}

func setupRoutes(
	engine *gin.Engine,
	cfg config.Config,
	serviceHandler *api.ServiceHandler,
	bookingHandler *api.BookingHandler,
	userHandler *api.UserHandler,
	adminHandler *api.AdminHandler,
	adminAuth *middleware.AdminAuthMiddleware,
) {
	engine.GET("/health", healthCheck(cfg))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	services := engine.Group("/services")
	{
		addRoutes(services, []route{
			{Method: http.MethodGet, Path: "", Handler: serviceHandler.List},
			{Method: http.MethodGet, Path: "/:id", Handler: serviceHandler.Get},
		})
	}

	bookings := engine.Group("/bookings")
	{
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: bookingHandler.Create},
			{Method: http.MethodGet, Path: "", Handler: bookingHandler.List},
		})
	}

	users := engine.Group("/users")
	{
		addRoutes(users, []route{
			{Method: http.MethodPost, Path: "", Handler: userHandler.CreateOrFetch},
		})
	}

	admin := engine.Group("/admin")
	admin.Use(adminAuth.RequireAdmin())
	{
		addRoutes(admin, []route{
			{Method: http.MethodPost, Path: "/services", Handler: adminHandler.CreateService},
			{Method: http.MethodPost, Path: "/services/:id/availability", Handler: adminHandler.CreateWindow},
			{Method: http.MethodPost, Path: "/bookings/:id/cancel", Handler: adminHandler.CancelBooking},
		})
	}

	engine.NoRoute(func(c *gin.Context) {
		status, envelope := httperr.NewEnvelope(apperr.KindNotFound, map[string]any{"path": c.Request.URL.Path})
		c.JSON(status, envelope)
	})
}

// @Summary Health check
// @Description Report process liveness and uptime
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Router /health [get]
func healthCheck(cfg config.Config) gin.HandlerFunc {
	startedAt := time.Now()
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ok":        true,
			"service":   "nexus-booking-api",
			"env":       cfg.Server.Env,
			"uptime":    time.Since(startedAt).Seconds(),
			"timestamp": time.Now().UTC(),
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
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
