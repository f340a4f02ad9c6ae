package cmd

import (
	"github.com/spf13/cobra"

	"github.com/blackstone-contractors/website/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the site configuration with an interactive wizard",
	Long:  `Runs an interactive wizard that asks for the site name, port and inquiry storage and writes .blackstone.yml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
