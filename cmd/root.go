package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blackstone-contractors/website/internal/config"
	"github.com/blackstone-contractors/website/internal/logging"
)

var (
	cfgFile string
	verbose bool

	appConfig *config.Config
	logger    = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "blackstone",
	Short: "Website for Blackstone Contractors LLC",
	Long: `blackstone serves and exports the Blackstone Contractors brochure site:
service pages, the filterable project gallery with its viewer, the FAQ,
the blog and the contact form.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// init writes the config file, version needs none.
		if cmd.Name() == "init" || cmd.Name() == "version" {
			return nil
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		appConfig = cfg

		l, err := logging.New(cfg.Log.Level, cfg.Log.Format, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
