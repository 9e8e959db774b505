package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/huecraft/huecraft/internal/config"
	"github.com/huecraft/huecraft/internal/datastore"
	"github.com/huecraft/huecraft/internal/server"
	"github.com/huecraft/huecraft/migrations"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the huecraft HTTP API",
	Long: `Run the huecraft HTTP API server.

Configuration is read from the environment (or a .env file):
database connection, listen port, allowed origins, upload limits.
Pending database migrations are applied on startup. The server shuts
down gracefully on SIGINT or SIGTERM.`,
	RunE: runServe,
}

// runServe executes the serve command.
func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	level := hclog.Info
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose || cfg.DevMode {
		level = hclog.Debug
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "huecraft",
		Level: level,
	})

	connStr := datastore.BuildDBConnStr(
		cfg.DatabaseHost,
		cfg.DatabaseUser,
		cfg.DatabasePassword,
		cfg.DatabaseName,
		cfg.SSLMode,
	)
	db, err := datastore.NewDB(cfg.DatabaseType, connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()
	logger.Info("connected to database", "name", cfg.DatabaseName, "host", cfg.DatabaseHost)

	if err := migrations.RunMigrations(db, logger.Named("migrations")); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	app := server.New(cfg, logger, server.Repositories{
		History:   datastore.NewHistoryDatabase(db),
		Palette:   datastore.NewPaletteDatabase(db),
		Brand:     datastore.NewBrandDatabase(db),
		Favorite:  datastore.NewFavoriteDatabase(db),
		Analytics: datastore.NewAnalyticsDatabase(db),
		Share:     datastore.NewShareDatabase(db),
	})

	return app.Serve(app.BuildRoutes())
}
