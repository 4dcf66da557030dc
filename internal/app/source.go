// Package app wires configuration into a campaign source for the binaries.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"campdash/internal/adapter/csvsource"
	"campdash/internal/adapter/postgres"
	"campdash/internal/config"
	"campdash/internal/config/configs"
	"campdash/internal/core/port"
	"campdash/internal/db"
)

// NewSource builds the source selected by cfg.Source.Kind. The returned
// close function releases any connections and is never nil.
func NewSource(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.CampaignSource, func(), error) {
	switch cfg.Source.Kind {
	case configs.SourceCSV:
		return csvsource.NewCSVSource(cfg.Source.CSVPath, cfg.Source.DelimiterRune()), func() {}, nil

	case configs.SourcePostgres:
		if cfg.Psql.RunMigrations {
			if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return nil, nil, fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, nil, fmt.Errorf("database connection: %w", err)
		}
		return postgres.NewCampaignSource(pool), pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown source kind %q", cfg.Source.Kind)
	}
}
