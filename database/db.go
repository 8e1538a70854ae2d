package database

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vin0san/mini-twitter/models"
)

// indexes are created outside AutoMigrate because they need a sort order.
var indexes = []string{
	"CREATE INDEX IF NOT EXISTS idx_tweets_created_at_id ON tweets(created_at DESC, id)",
	"CREATE INDEX IF NOT EXISTS idx_tweets_owner_created_at ON tweets(owner_id, created_at DESC)",
}

// Migrate creates or updates the schema for every model.
func Migrate(db *DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	for _, stmt := range indexes {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	logrus.Info("Database migrated successfully")
	return nil
}
