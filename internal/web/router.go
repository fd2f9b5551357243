// Package web assembles the gin engine: global middleware, public form routes and the
// bearer-protected admin group.
package web

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/amm-colonia/inscripciones-api/internal/handler"
	"github.com/amm-colonia/inscripciones-api/internal/middleware"
	"github.com/amm-colonia/inscripciones-api/internal/service"
	"github.com/amm-colonia/inscripciones-api/pkg/logger"
	corsmiddleware "github.com/amm-colonia/inscripciones-api/pkg/middleware/cors"
	reqidmiddleware "github.com/amm-colonia/inscripciones-api/pkg/middleware/requestid"
)

// Dependencies are the init-once collaborators the router needs.
type Dependencies struct {
	Logger         *zap.Logger
	Metrics        *service.MetricsService
	Verifier       middleware.TokenVerifier
	Registrations  *handler.RegistrationHandler
	Admin          *handler.AdminHandler
	Auth           *handler.AuthHandler
	Observability  *handler.MetricsHandler
	APIPrefix      string
	AllowedOrigins []string
	EnableDocs     bool
}

// NewRouter builds the HTTP engine.
func NewRouter(deps Dependencies) *gin.Engine {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	prefix := deps.APIPrefix
	if prefix == "" {
		prefix = "/api"
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(log))
	r.Use(corsmiddleware.New(deps.AllowedOrigins))
	r.Use(middleware.Metrics(deps.Metrics))

	if deps.Observability != nil {
		r.GET("/health", deps.Observability.Health)
		r.GET("/ready", deps.Observability.Ready)
		r.GET("/metrics", deps.Observability.Prometheus)
	}
	if deps.EnableDocs {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(prefix)
	api.POST("/registration", deps.Registrations.Submit)
	api.GET("/registration/weeks", deps.Registrations.Weeks)
	api.POST("/admin/login", deps.Auth.Login)

	admin := api.Group("/admin", middleware.JWT(deps.Verifier))
	admin.GET("/registrations", deps.Admin.List)
	admin.GET("/export", deps.Admin.Export)
	admin.GET("/me", deps.Admin.Me)

	return r
}
