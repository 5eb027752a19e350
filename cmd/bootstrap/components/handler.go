package components

import (
	"hotel-pricing/internal/handler"
	"hotel-pricing/internal/handler/api"
	"hotel-pricing/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewPricingHandler,
		api.NewRoomHandler,
		api.NewHotelHandler,
		api.NewTrainingHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
