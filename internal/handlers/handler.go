package handlers

import (
	"io/fs"
	"time"

	"github.com/DrOldGuy/model-railroad-scaler/internal/logger"
	"github.com/DrOldGuy/model-railroad-scaler/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Options holds what the HTTP layer needs besides the services.
type Options struct {
	// Pages is the page tree: index.html plus css/.
	Pages fs.FS
	// ClientJS is the path of the GopherJS-compiled controller on disk.
	ClientJS string
	// FeedInterval is the default /ws push period.
	FeedInterval time.Duration
}

type Handler struct {
	services *service.Service
	log      *logger.Logger
	opts     Options
	now      func() time.Time
}

// NewHandler applies defaults to opts. log may be nil.
func NewHandler(services *service.Service, log *logger.Logger, opts Options) *Handler {
	if opts.FeedInterval <= 0 || opts.FeedInterval > maxInterval {
		opts.FeedInterval = defaultInterval
	}
	return &Handler{services: services, log: log, opts: opts, now: time.Now}
}

func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.accessLog)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	// called by the page
	router.POST("/scale", h.scale)
	router.GET("/scales", h.listScales)

	h.registerAuthRoutes(router)

	h.registerAPIRoutes(router)
	router.GET("/ws", h.wsConnect)

	h.registerPageRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.requireUser)
	{
		// Body example: {"name":"Gn15","factor":22.5}
		api.POST("/scales", h.addScale)
		api.GET("/conversions", h.listConversions)
	}
}

func (h *Handler) registerPageRoutes(r *gin.Engine) {
	r.GET("/", h.index)
	r.GET("/css/*filepath", h.stylesheet)
	r.GET("/js/client.js", h.clientJS)
}
