package cli

import (
	"github.com/spf13/cobra"

	"github.com/lukaszlop/ketoggler/internal/database"
)

func migrateCommand() *cobra.Command {
	var rollback bool

	command := &cobra.Command{
		Use:   "migrate",
		Short: "Migrate the database",
		Long:  "Apply all pending migrations, or roll back the latest one with --rollback.",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			db, err := e.openDB()
			if err != nil {
				return err
			}
			defer database.Close(db)

			m := e.migrator(db)
			if rollback {
				return m.Down(cmd.Context())
			}
			return m.Up(cmd.Context())
		},
	}

	command.Flags().BoolVar(&rollback, "rollback", false, "roll back the most recent migration")
	return command
}
