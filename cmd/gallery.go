package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackstone-contractors/website/internal/content"
	"github.com/blackstone-contractors/website/internal/gallery"
	"github.com/blackstone-contractors/website/internal/tui"
)

var galleryCategory string

var galleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Browse the project gallery in the terminal",
	Long:  `Opens the project gallery full screen. Arrow keys move, tab switches category, enter opens the viewer, esc closes it and q quits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := content.Catalog()
		if galleryCategory != "" && !catalog.HasCategory(galleryCategory) {
			return fmt.Errorf("unknown category %q: choose one of %v", galleryCategory, catalog.Categories())
		}
		b := gallery.Restore(catalog, gallery.State{Category: galleryCategory})
		return tui.Run(b)
	},
}

func init() {
	galleryCmd.Flags().StringVar(&galleryCategory, "category", "", "Category to start in")
	rootCmd.AddCommand(galleryCmd)
}
