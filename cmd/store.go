package cmd

import (
	"context"
	"fmt"

	personapp "contactbook/application/person"
	"contactbook/config"
	"contactbook/domain/person"
	"contactbook/domain/shared"
	"contactbook/infrastructure/persistence/gormstore"
	"contactbook/infrastructure/persistence/memory"
	"contactbook/infrastructure/persistence/retry"
	"contactbook/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// store groups the persistence collaborators of the people service.
type store struct {
	people     person.Repository
	queries    personapp.PeopleQueryRepository
	readModel  personapp.PeopleReadModel
	uowFactory shared.UnitOfWorkFactory
	db         *gorm.DB // nil for the in-memory store
}

func openStore(ctx context.Context, cfg *config.Config) (*store, error) {
	if !cfg.UsesSQL() {
		logger.Info("Using in-memory persistence layer")
		s := memory.NewStore()
		s.SetDefaultActor(cfg.App.DefaultActor)
		queries := memory.NewPeopleQueryRepository(s)
		return &store{
			people:     memory.NewPersonRepository(s),
			queries:    queries,
			readModel:  queries,
			uowFactory: memory.NewUnitOfWorkFactory(s),
		}, nil
	}

	db, err := ConnectDatabase(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Database.AutoMigrate {
		if err := gormstore.AutoMigrate(ctx, db); err != nil {
			return nil, err
		}
	}

	return &store{
		people:     gormstore.NewPersonRepository(db, gormstore.WithDefaultActor(cfg.App.DefaultActor)),
		queries:    gormstore.NewPeopleQueryRepository(db),
		readModel:  gormstore.NewReadModelRepository(db),
		uowFactory: gormstore.NewUnitOfWorkFactory(db, retry.FromAppConfig(cfg)),
		db:         db,
	}, nil
}

// ConnectDatabase opens and pings the configured SQL database.
func ConnectDatabase(ctx context.Context, cfg *config.Config) (*gorm.DB, error) {
	dbConfig := gormstore.NewConfig(cfg.Database)
	db, err := dbConfig.Connect()
	if err != nil {
		return nil, err
	}
	if err := gormstore.Ping(ctx, db); err != nil {
		return nil, fmt.Errorf("failed to ping %s: %w", cfg.Database.Driver, err)
	}
	logger.Info("Using GORM persistence layer", zap.String("driver", cfg.Database.Driver))
	return db, nil
}

func (s *store) close() error {
	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
