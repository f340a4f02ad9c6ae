package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/blackstone-contractors/website/internal/contact"
)

var inquiriesLimit int

var inquiriesCmd = &cobra.Command{
	Use:   "inquiries",
	Short: "Inspect stored contact form inquiries",
}

var inquiriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the most recent inquiries",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !appConfig.Contact.StoreInquiries {
			return fmt.Errorf("contact.store_inquiries is disabled in %s", cfgFile)
		}
		database, err := openDatabase(appConfig)
		if err != nil {
			return err
		}
		defer database.Close()

		store := contact.NewStore(database)
		ctx := cmd.Context()
		total, err := store.Count(ctx)
		if err != nil {
			return err
		}
		list, err := store.List(ctx, inquiriesLimit)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Println("No inquiries yet.")
			return nil
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "RECEIVED\tNAME\tEMAIL\tPHONE\tSERVICE")
		for _, inq := range list {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				inq.CreatedAt.Local().Format("2006-01-02 15:04"),
				inq.Name, inq.Email, inq.Phone, inq.ServiceLabel())
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Printf("\nShowing %d of %d inquiries\n", len(list), total)
		return nil
	},
}

func init() {
	inquiriesListCmd.Flags().IntVar(&inquiriesLimit, "limit", 20, "Maximum number of inquiries to show")
	inquiriesCmd.AddCommand(inquiriesListCmd)
	rootCmd.AddCommand(inquiriesCmd)
}
