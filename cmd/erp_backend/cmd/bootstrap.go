package cmd

import (
	"context"
	"fmt"
	"log/slog"

	portssvc "github.com/Yousifhashim249/ERP-project/internal/core/ports/services"
	"github.com/Yousifhashim249/ERP-project/internal/core/services"
	"github.com/Yousifhashim249/ERP-project/internal/platform/migrations"
	"github.com/Yousifhashim249/ERP-project/internal/platform/seed"
	"github.com/Yousifhashim249/ERP-project/internal/repositories/database/pgsql"
	"github.com/Yousifhashim249/ERP-project/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
)

// application is the wired service graph shared by the commands.
type application struct {
	pool     *pgxpool.Pool
	services *portssvc.ServiceContainer
	roles    *services.RoleBook
}

func bootstrap(ctx context.Context) (*application, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("PGSQL_URL is required")
	}

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database pool: %w", err)
	}

	container, roles := services.NewServiceContainer(cfg, pgsql.NewTransactionManager(pool))
	return &application{pool: pool, services: container, roles: roles}, nil
}

func (a *application) close() {
	database.ClosePgxPool(a.pool)
}

// seedChart applies the chart of accounts file when one is configured.
func (a *application) seedChart(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}
	chart, err := seed.LoadFile(path)
	if err != nil {
		return err
	}
	_, err = seed.Apply(ctx, a.services.Account, chart, logger)
	return err
}

// resolveRoles maps every well-known role to its account, failing when any is missing.
func (a *application) resolveRoles(ctx context.Context) error {
	if err := a.roles.Resolve(ctx, a.services.Account); err != nil {
		return err
	}
	logger.Info("Account roles resolved", slog.Int("roles", len(cfg.RoleAccounts)))
	return nil
}

func runMigrations() error {
	return migrations.Up(cfg.DatabaseURL, logger)
}
