package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/appmaster-hq/appmaster/internal/shared/logger"
)

// Manager runs schema migrations with the strategy matching the driver.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

func NewManager(driver string) *Manager {
	var strategy Strategy
	switch driver {
	case "sqlite":
		strategy = NewAutoMigrateStrategy()
	default:
		strategy = NewGooseStrategy()
	}
	return NewManagerWithStrategy(strategy)
}

func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().Named("migration.manager"),
	}
}

func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())
	if err := m.strategy.Migrate(db); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}
	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

func (m *Manager) Down(db *gorm.DB, steps int) error {
	if steps < 1 {
		return fmt.Errorf("steps must be positive")
	}
	return m.strategy.Down(db, steps)
}

func (m *Manager) Version(db *gorm.DB) (int64, error) {
	return m.strategy.Version(db)
}

func (m *Manager) Status(db *gorm.DB) error {
	return m.strategy.Status(db)
}

func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
