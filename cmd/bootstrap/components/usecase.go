package components

import (
	"hotel-pricing/internal/pkg/clock"
	"hotel-pricing/internal/pkg/config"
	"hotel-pricing/internal/usecase"
	"hotel-pricing/internal/usecase/commands"
	"hotel-pricing/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) config.AuthConfig {
		return cfg.Auth
	},
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPricingQueries,
		queries.NewRoomQueries,
		queries.NewHotelQueries,
		queries.NewUserQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewPricingCommands,
		commands.NewRoomCommands,
		commands.NewHotelCommands,
		commands.NewTrainingCommands,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
