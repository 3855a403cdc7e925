// Package cli holds the ketoggler command line: the API server and its
// maintenance commands.
package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/lukaszlop/ketoggler/config"
	"github.com/lukaszlop/ketoggler/internal/database"
	"github.com/lukaszlop/ketoggler/internal/logging"
)

// NewRootCommand builds the ketoggler command tree
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "ketoggler",
		Short: "keto recipe API",
		Example: `ketoggler serve
ketoggler migrate
ketoggler migrate --rollback
ketoggler seed
ketoggler token --user <user-id>`,
		SilenceUsage: true,
	}

	root.AddCommand(serveCommand(), migrateCommand(), seedCommand(), tokenCommand())
	root.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})
	root.CompletionOptions.HiddenDefaultCmd = true
	return root
}

// env is what every command needs before doing its own work
type env struct {
	cfg *config.Config
	log *logrus.Logger
}

func loadEnv() (*env, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, log: log}, nil
}

// openDB connects to the configured database. The caller closes it.
func (e *env) openDB() (*gorm.DB, error) {
	db, err := database.Open(e.cfg, e.log)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

func (e *env) migrator(db *gorm.DB) *database.Migrator {
	dsn := ""
	if e.cfg.DBDriver == config.DriverPostgres {
		dsn = e.cfg.PostgresDSN()
	}
	return database.NewMigrator(db, dsn, e.log)
}
