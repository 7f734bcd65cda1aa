package database

import (
	"fmt"
	"log/slog"

	"github.com/smghasemi/membersync/internal/config"
	"github.com/smghasemi/membersync/internal/model"

	"gorm.io/gorm"
)

// Migrate creates the destination tables. Unlike a usual service schema the
// imported tables keep their legacy natural keys, so AutoMigrate is safe to
// run repeatedly; it never drops data.
func Migrate(db *gorm.DB, cfg *config.Config) error {
	if !cfg.Database.IsAutoMigrate {
		slog.Info("database migration disabled",
			"auto_migrate", false, "env", cfg.App.Env,
		)
		return nil
	}

	if err := runAutoMigrate(db); err != nil {
		return fmt.Errorf("table creation failed: %w", err)
	}

	slog.Info("database migration complete")
	return nil
}

// runAutoMigrate creates tables in dependency order: independent lookup
// tables first, then the tables that reference them.
func runAutoMigrate(db *gorm.DB) error {
	models := []interface{}{
		&model.Shift{},
		&model.PersonRole{},
		&model.MembershipType{},
		&model.User{},
		&model.Person{},
		&model.Member{},
		&model.Locker{},
	}

	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("migrate %T: %w", m, err)
		}
		slog.Debug("table ready", "model", fmt.Sprintf("%T", m))
	}

	return nil
}
