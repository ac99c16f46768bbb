package components

import (
	"context"
	"log/slog"
	"time"

	"smart-parking/internal/infra/db"
	"smart-parking/internal/infra/mongostore"
	"smart-parking/internal/infra/readstore"
	"smart-parking/internal/infra/uow"
	"smart-parking/internal/pkg/config"
	"smart-parking/internal/usecase/queries"
	"smart-parking/internal/usecase/shared"

	"go.uber.org/fx"
)

const storeInitTimeout = 30 * time.Second

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewStore,
	),
)

// Store is everything the use cases need from persistence, built for the
// driver named by STORE_DRIVER.
type Store struct {
	fx.Out

	UnitOfWork shared.UnitOfWork
	Lots       queries.LotReadStore
	Spots      queries.SpotReadStore
	Users      queries.UserReadStore
}

func NewStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeInitTimeout)
	defer cancel()

	if cfg.Store.Driver == config.DriverMongo {
		return newMongoStore(ctx, lc, cfg.Mongo, logger)
	}
	return newPostgresStore(ctx, lc, cfg.DB, logger)
}

func newPostgresStore(ctx context.Context, lc fx.Lifecycle, cfg config.DBConfig, logger *slog.Logger) (Store, error) {
	pool, cleanup, err := db.Connect(ctx, cfg)
	if err != nil {
		return Store{}, err
	}

	if cfg.AutoMigrate {
		if err := db.Migrate(ctx, pool); err != nil {
			cleanup()
			return Store{}, err
		}
		logger.Info("database schema is up to date")
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	logger.Info("using postgres store", slog.String("host", cfg.Host), slog.String("database", cfg.DBName))
	return Store{
		UnitOfWork: uow.NewPostgresUoW(pool),
		Lots:       readstore.NewLotReadStore(pool),
		Spots:      readstore.NewSpotReadStore(pool),
		Users:      readstore.NewUserReadStore(pool),
	}, nil
}

func newMongoStore(ctx context.Context, lc fx.Lifecycle, cfg config.MongoConfig, logger *slog.Logger) (Store, error) {
	client, database, err := mongostore.Connect(ctx, cfg)
	if err != nil {
		return Store{}, err
	}

	if err := mongostore.EnsureIndexes(ctx, database); err != nil {
		_ = client.Disconnect(context.Background())
		return Store{}, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	})

	logger.Info("using mongo store",
		slog.String("database", cfg.Database),
		slog.Bool("transactions", cfg.Transactions))
	return Store{
		UnitOfWork: mongostore.NewMongoUoW(client, database, cfg.Transactions, logger),
		Lots:       mongostore.NewLotReadStore(database),
		Spots:      mongostore.NewSpotReadStore(database),
		Users:      mongostore.NewUserReadStore(database),
	}, nil
}
