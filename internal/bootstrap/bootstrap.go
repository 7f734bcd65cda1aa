package bootstrap

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/smghasemi/membersync/internal/config"
	"github.com/smghasemi/membersync/internal/shared/middleware"
	"github.com/gin-gonic/gin"
)

// Bootstrap assembles the gin engine with the middleware every route shares.
type Bootstrap struct {
	cfg *config.Config
}

func NewBootstrap(cfg *config.Config) *Bootstrap {
	return &Bootstrap{
		cfg: cfg,
	}
}

// SetupEngine builds the engine with recovery, request ids, CORS, and
// request logging. Request timeouts are applied per route group in
// routes.go; the import trigger needs a far longer deadline than the
// management API.
func (b *Bootstrap) SetupEngine() *gin.Engine {
	if b.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// All request logging goes through slog.
	gin.DefaultWriter = io.Discard
	gin.DefaultErrorWriter = io.Discard

	engine := gin.New()
	engine.Use(gin.CustomRecovery(b.recoveryHandler))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.CORS(b.cfg))
	engine.Use(middleware.LoggerMiddleware())

	return engine
}

func (b *Bootstrap) recoveryHandler(c *gin.Context, recovered interface{}) {
	slog.Error("panic recovered",
		"panic", recovered,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"request_id", middleware.GetRequestID(c),
	)

	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"error":      "Internal server error",
		"request_id": middleware.GetRequestID(c),
	})
}
