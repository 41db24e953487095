package migration

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/campus-pulse/campuspulse/internal/shared/config"
	"github.com/campus-pulse/campuspulse/internal/shared/logger"
)

// DefaultScriptsPath is where `migrate create` writes new goose scripts.
const DefaultScriptsPath = "internal/infrastructure/migration/scripts/goose"

// Manager runs the configured migration strategy.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks the strategy named by cfg.MigrationStrategy. Unknown
// names fall back to goose.
func NewManager(cfg *config.DatabaseConfig) *Manager {
	var strategy Strategy

	switch strings.ToLower(strings.TrimSpace(cfg.MigrationStrategy)) {
	case StrategyGolangMigrate:
		strategy = NewGolangMigrateStrategy(cfg.Path)
	case StrategyGormAuto:
		strategy = NewGormAutoMigrateStrategy()
	default:
		strategy = NewGooseStrategy(DefaultScriptsPath)
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
		m.logger.Errorw("migration failed",
			"strategy", m.strategy.GetName(),
			"error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}

func (m *Manager) GetStrategyInfo() map[string]interface{} {
	return map[string]interface{}{
		"name":        m.strategy.GetName(),
		"description": getStrategyDescription(m.strategy.GetName()),
	}
}

func getStrategyDescription(strategyName string) string {
	switch strategyName {
	case StrategyGoose:
		return "goose - versioned SQL scripts embedded in the binary"
	case StrategyGolangMigrate:
		return "golang-migrate - versioned up/down SQL scripts embedded in the binary"
	case StrategyGormAuto:
		return "GORM AutoMigrate - schema derived from model definitions"
	default:
		return "Unknown migration strategy"
	}
}
