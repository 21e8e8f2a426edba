package cmd

import (
	"github.com/spf13/cobra"

	"github.com/akashgh003/gen-ai-asgn/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize advisor configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the backend, server and rate-limit store, and writes the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
