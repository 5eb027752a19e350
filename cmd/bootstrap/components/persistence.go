package components

import (
	"hotel-pricing/internal/infra/db"
	"hotel-pricing/internal/infra/predictor"
	"hotel-pricing/internal/infra/readstore"
	"hotel-pricing/internal/infra/uow"
	"hotel-pricing/internal/pkg/config"
	"hotel-pricing/internal/usecase/commands"
	"hotel-pricing/internal/usecase/queries"
	"hotel-pricing/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomReadStore)),
		),
		fx.Annotate(
			readstore.NewHotelReadStore,
			fx.As(new(queries.HotelReadStore)),
		),
		fx.Annotate(
			readstore.NewPriceHistoryReadStore,
			fx.As(new(queries.PriceHistoryReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewTrainingReadStore,
			fx.As(new(commands.TrainingDataReadStore)),
		),
		fx.Annotate(
			NewPredictorClient,
			fx.As(new(queries.PricePredictor)),
			fx.As(new(commands.Trainer)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewPredictorClient(cfg config.Config) *predictor.Client {
	return predictor.NewClient(cfg.Predictor)
}
