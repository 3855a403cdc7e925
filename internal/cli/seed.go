package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lukaszlop/ketoggler/internal/database"
	"github.com/lukaszlop/ketoggler/internal/seed"
)

func seedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the ingredient and allergen catalog",
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

			res, err := seed.Catalog(cmd.Context(), db)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "inserted %d ingredients, %d allergens\n", res.Ingredients, res.Allergens)
			return nil
		},
	}
}
