package gormstore

import (
	"context"
	"fmt"

	"contactbook/infrastructure/persistence/gormstore/po"
	"contactbook/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates the people, addresses, phone_numbers and outbox_events tables.
func AutoMigrate(ctx context.Context, db *gorm.DB) error {
	models := po.AllModels()
	if err := db.WithContext(ctx).AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	logger.Info("Database schema migrated", zap.Int("tables", len(models)))
	return nil
}
