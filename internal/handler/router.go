package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tos-api/internal/handler/api"
	"tos-api/internal/handler/middleware"
	"tos-api/internal/handler/validation"
	"tos-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, tosHandler *api.TOSHandler, statusHandler *api.StatusHandler) {
	// near-miss paths such as a trailing slash must reach NoRoute and get a 404
	engine.RedirectTrailingSlash = false
	engine.RedirectFixedPath = false

	setupMiddleware(engine, cfg)
	setupRoutes(engine, tosHandler, statusHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, tosHandler *api.TOSHandler, statusHandler *api.StatusHandler) {
	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	var routes []route
	for _, path := range validation.StatusPaths() {
		routes = append(routes, route{Path: path, Handler: statusHandler.Status})
	}
	// method, content type and path checks are part of the request pipeline,
	// so the user response routes take every method
	for _, path := range validation.UserResponsePaths() {
		routes = append(routes, route{Path: path, Handler: tosHandler.UserResponse})
	}
	addRoutes(&engine.RouterGroup, routes)

	// unknown paths and methods still run through the pipeline, which rejects them
	engine.NoRoute(tosHandler.UserResponse)
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
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
