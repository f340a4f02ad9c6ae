package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blackstone-contractors/website/internal/progress"
	"github.com/blackstone-contractors/website/internal/site"
)

var (
	buildOutput  string
	buildExclude []string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the website as static files",
	Long: `Renders every page, blog post, asset and the search index into the
output directory so the site can be hosted by any static file server. The
exported pages handle gallery, FAQ and blog filters in the browser.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := buildSite(appConfig, true, nil)
		if err != nil {
			return err
		}

		exp := site.NewExporter(s, buildOutput)
		exp.Exclude = buildExclude
		exp.Reporter = progress.NewReporter("Exporting site")

		n, err := exp.Export()
		if err != nil {
			return fmt.Errorf("exporting site: %w", err)
		}
		logger.Info("site exported", zap.String("output", buildOutput), zap.Int("files", n))
		fmt.Printf("Exported %d files to %s\n", n, buildOutput)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "dist", "Output directory")
	buildCmd.Flags().StringSliceVar(&buildExclude, "exclude", nil, "Output paths to skip (doublestar patterns, e.g. \"blog/**\")")
	rootCmd.AddCommand(buildCmd)
}
