package router

import (
	"database/sql"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"

	"github.com/MarliRenee/aware-api/internal/config"
	"github.com/MarliRenee/aware-api/internal/handlers"
	"github.com/MarliRenee/aware-api/internal/middleware"
	"github.com/MarliRenee/aware-api/internal/monitoring"
	"github.com/MarliRenee/aware-api/internal/service"
)

// New assembles the gin engine: middleware chain, the three resource
// routers with their auth requirements, and the monitoring surface.
func New(cfg *config.Config, db *sql.DB) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(monitoring.RequestMetrics())
	engine.Use(secure.New(secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "no-referrer",
	}))
	engine.Use(cors.New(cors.Config{
		AllowOrigins: []string{cfg.ClientOrigin},
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders: []string{"Authorization", "Content-Type"},
	}))
	engine.Use(middleware.ErrorHandler())

	usersService := service.NewUsers(db)
	icebergsService := service.NewIcebergs(db)
	responsesService := service.NewResponses(db)

	requireAuth := middleware.BasicAuth(usersService)

	users := handlers.NewUsers(usersService)
	icebergs := handlers.NewIcebergs(icebergsService)
	responses := handlers.NewResponses(responsesService)

	engine.GET("/", handlers.Hello)
	engine.GET("/health", handlers.Health)

	api := engine.Group("/api")
	api.GET("/status", handlers.Status)

	usersRoutes := api.Group("/users")
	usersRoutes.GET("", users.List)
	usersRoutes.POST("", users.Create)
	userByID := usersRoutes.Group("/:user_id", users.RequireUser)
	userByID.GET("", users.Get)
	userByID.DELETE("", users.Delete)
	userByID.PATCH("", users.Patch)

	icebergsRoutes := api.Group("/icebergs", requireAuth)
	icebergsRoutes.GET("", icebergs.List)
	icebergsRoutes.POST("", icebergs.Create)
	icebergByID := icebergsRoutes.Group("/:iceberg_id", icebergs.RequireIceberg)
	icebergByID.GET("", icebergs.Get)
	icebergByID.DELETE("", icebergs.Delete)
	icebergByID.PATCH("", icebergs.Patch)

	responsesRoutes := api.Group("/responses")
	responsesRoutes.GET("", responses.List)
	responsesRoutes.POST("", requireAuth, responses.Create)
	responseByID := responsesRoutes.Group("/:response_id", responses.RequireResponse)
	responseByID.GET("", responses.Get)
	responseByID.DELETE("", responses.Delete)
	responseByID.PATCH("", responses.Patch)

	monitor := handlers.NewMonitor(monitoring.NewService(db, time.Now()), cfg.MonitoringKey)
	monitoringRoutes := api.Group("/monitoring")
	monitoringRoutes.GET("/status", monitor.Status)
	monitoringRoutes.GET("/connections", monitor.Connections)
	monitoringRoutes.GET("/runtime", monitor.Runtime)
	monitoringRoutes.GET("/counts", monitor.Counts)
	monitoringRoutes.GET("/all", monitor.All)
	monitoringRoutes.GET("/snapshot", monitor.Snapshot)

	return engine
}
