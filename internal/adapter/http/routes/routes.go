package routes

import (
	"net/http"
	"time"

	_ "arclean_orcamentos/docs" // swag init output
	"arclean_orcamentos/internal/adapter/http/handlers"
	"arclean_orcamentos/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies wires the router. A nil Metrics handler disables /metrics.
type Dependencies struct {
	AppState usecase.IAppStateUseCase
	Log      *logrus.Entry
	Metrics  http.Handler
}

func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, deps.Log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics))
	}

	settingsHandler := handlers.NewSettingsHandler(deps.AppState)
	catalogHandler := handlers.NewCatalogHandler(deps.AppState)
	quoteHandler := handlers.NewQuoteHandler(deps.AppState)
	backupHandler := handlers.NewBackupHandler(deps.AppState)

	v1 := router.Group("/v1")
	addPingRoutes(v1, settingsHandler)
	addCatalogRoutes(v1, catalogHandler)
	addQuoteRoutes(v1, quoteHandler)
	addSettingsRoutes(v1, settingsHandler)
	addBackupRoutes(v1, backupHandler)
	return router
}

func addPingRoutes(rg *gin.RouterGroup, h *handlers.SettingsHandler) {
	rg.GET("/ping", h.Ping)
}

func setMiddlewares(router *gin.Engine, log *logrus.Entry) {
	router.Use(requestLogger(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.WithField("panic", recovered).Error("recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func requestLogger(log *logrus.Entry) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.FullPath(),
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		})
		if len(c.Errors) > 0 {
			entry = entry.WithError(c.Errors.Last())
		}
		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			entry.Error("request failed")
		case c.Writer.Status() >= http.StatusBadRequest:
			entry.Warn("request rejected")
		default:
			entry.Debug("request served")
		}
	}
}
