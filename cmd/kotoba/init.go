package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the kotoba database and configuration",
	Long: `Create the configuration directory with a default config.yaml and the
data directory with an empty database.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Config dir and config.yaml are created by PersistentPreRunE;
		// opening the store creates the data dir and schema.
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		dataDir, err := resolveDataDir()
		if err != nil {
			return err
		}
		fmt.Printf("Initialized kotoba database in %s\n", dataDir)
		return nil
	},
}
