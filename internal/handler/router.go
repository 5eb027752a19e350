package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-pricing/internal/domain/user"
	"hotel-pricing/internal/handler/api"
	"hotel-pricing/internal/handler/middleware"
	"hotel-pricing/internal/pkg/config"
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
	authHandler *api.AuthHandler,
	pricingHandler *api.PricingHandler,
	roomHandler *api.RoomHandler,
	hotelHandler *api.HotelHandler,
	trainingHandler *api.TrainingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, pricingHandler, roomHandler, hotelHandler, trainingHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	pricingHandler *api.PricingHandler,
	roomHandler *api.RoomHandler,
	hotelHandler *api.HotelHandler,
	trainingHandler *api.TrainingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		pricing := apiGroup.Group("/pricing")
		{
			addRoutes(pricing, []route{
				{Method: http.MethodGet, Path: "/suggest/:roomId", Handler: pricingHandler.GetSuggestion},
			})

			commit := pricing.Group("")
			commit.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleRevenueManager))
			addRoutes(commit, []route{
				{Method: http.MethodPost, Path: "/apply", Handler: pricingHandler.ApplyPrice},
			})
		}

		hotels := apiGroup.Group("/hotels")
		{
			addRoutes(hotels, []route{
				{Method: http.MethodGet, Path: "", Handler: hotelHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: hotelHandler.Get},
			})

			hotelAdmin := hotels.Group("")
			hotelAdmin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
			addRoutes(hotelAdmin, []route{
				{Method: http.MethodPost, Path: "", Handler: hotelHandler.Create},
			})

			hotelRooms := hotels.Group("")
			hotelRooms.Use(authMiddleware.RequireAuth())
			addRoutes(hotelRooms, []route{
				{Method: http.MethodGet, Path: "/:id/rooms", Handler: roomHandler.ListByHotel},
			})
		}

		rooms := apiGroup.Group("/rooms")
		rooms.Use(authMiddleware.RequireAuth())
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: roomHandler.Get},
				{
					Method: http.MethodPost, Path: "", Handler: roomHandler.Create,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAdmin)},
				},
				{
					Method: http.MethodPut, Path: "/:id", Handler: roomHandler.Update,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleRevenueManager)},
				},
				{
					Method: http.MethodDelete, Path: "/:id", Handler: roomHandler.Delete,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAdmin)},
				},
			})
		}

		ml := apiGroup.Group("/ml")
		ml.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(ml, []route{
				{Method: http.MethodPost, Path: "/train", Handler: trainingHandler.Train},
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
