package database

import (
	"fmt"

	"gorm.io/gorm"

	"opsboard/internal/models"
)

// AddIndexes creates indexes on columns the listing and stats queries filter
// or sort by. AutoMigrate covers tag-declared indexes; these are the extras.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		model interface{}
		name  string
		sql   string
	}{
		{&models.Task{}, "idx_tasks_status", "CREATE INDEX idx_tasks_status ON tasks (status)"},
		{&models.Task{}, "idx_tasks_created_at", "CREATE INDEX idx_tasks_created_at ON tasks (created_at)"},
		{&models.Client{}, "idx_clients_created_at", "CREATE INDEX idx_clients_created_at ON clients (created_at)"},
		{&models.TeamMember{}, "idx_team_members_created_at", "CREATE INDEX idx_team_members_created_at ON team_members (created_at)"},
	}

	for _, idx := range indexes {
		if db.Migrator().HasIndex(idx.model, idx.name) {
			continue
		}
		if err := db.Exec(idx.sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
