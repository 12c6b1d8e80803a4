package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"billed/internal/client"

	"github.com/spf13/cobra"
)

var billsCmd = &cobra.Command{
	Use:   "bills",
	Short: "List your expense bills",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newClientEnv()
		if err != nil {
			return err
		}
		defer env.logger.Sync()

		bills := &client.Bills{
			Store:  env.store,
			Logger: env.logger,
		}

		rows, err := bills.GetBills(cmd.Context())
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			fmt.Println("No bills yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tTYPE\tNAME\tAMOUNT\tSTATUS\tFILE")
		for _, row := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d €\t%s\t%s\n",
				row.FormattedDate, row.Type, row.Name, row.Amount,
				row.FormattedStatus, row.FileName,
			)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(billsCmd)
}
