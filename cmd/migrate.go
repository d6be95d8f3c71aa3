package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update all database tables and exit",
	Run: func(_ *cobra.Command, _ []string) {
		initStorage()
		logrus.Info("[DB] All schemas migrated successfully")
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
