package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"slotbook/internal/handler/api"
	"slotbook/internal/handler/middleware"
	"slotbook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Slot         *api.SlotHandler
	Booking      *api.BookingHandler
	Host         *api.HostHandler
	Availability *api.AvailabilityHandler
	EventType    *api.EventTypeHandler
	Public       *api.PublicHandler
}

// NewRouter registers every route on engine. rateLimiter may be nil when Redis
// is not configured.
func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware, rateLimiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	var bookingMw []gin.HandlerFunc
	if rateLimiter != nil {
		bookingMw = append(bookingMw, rateLimiter.Middleware())
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/hosts", Handler: h.Host.Register, Mw: bookingMw},
			{Method: http.MethodGet, Path: "/hosts/:hostId/event-types/:eventTypeId/slots", Handler: h.Slot.List},
			{Method: http.MethodPost, Path: "/hosts/:hostId/event-types/:eventTypeId/bookings", Handler: h.Booking.Reserve, Mw: bookingMw},
			{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.Booking.Get},
			{Method: http.MethodGet, Path: "/u/:username", Handler: h.Public.Host},
			{Method: http.MethodGet, Path: "/u/:username/:slug", Handler: h.Public.EventType},
			{Method: http.MethodPost, Path: "/bookings/:id/cancel", Handler: h.Booking.Cancel, Mw: bookingMw},
		})

		me := apiGroup.Group("/me")
		me.Use(authMiddleware.RequireAuth())
		{
			addRoutes(me, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Host.Me},
				{Method: http.MethodPut, Path: "", Handler: h.Host.UpdateMe},
				{Method: http.MethodGet, Path: "/availability/weekly", Handler: h.Availability.GetWeekly},
				{Method: http.MethodPut, Path: "/availability/weekly", Handler: h.Availability.PutWeekly},
				{Method: http.MethodGet, Path: "/availability/overrides", Handler: h.Availability.ListOverrides},
				{Method: http.MethodPut, Path: "/availability/overrides", Handler: h.Availability.PutOverrides},
				{Method: http.MethodDelete, Path: "/availability/overrides/:date", Handler: h.Availability.DeleteOverride},
				{Method: http.MethodPut, Path: "/busy", Handler: h.Availability.SyncBusy},
				{Method: http.MethodPost, Path: "/event-types", Handler: h.EventType.Create},
				{Method: http.MethodGet, Path: "/event-types", Handler: h.EventType.List},
				{Method: http.MethodPatch, Path: "/event-types/:id", Handler: h.EventType.Update},
				{Method: http.MethodDelete, Path: "/event-types/:id", Handler: h.EventType.Delete},
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.ListMine},
			})
		}
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
		"status":  "ok",
		"message": "Service is healthy",
	})
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
