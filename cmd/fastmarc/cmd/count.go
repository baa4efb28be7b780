package cmd

import (
	"github.com/spf13/cobra"

	"github.com/RvanB/fastmarc/pkg/reader"
)

// countCmd represents the count command
var countCmd = &cobra.Command{
	Use:   "count FILE...",
	Short: "Count the records in MARC files",
	Long: `Count the records in each file by building the boundary index and
reading its length. No record bodies are decoded, so this is the cheapest
possible full-file pass.

If a file's tail is truncated or malformed, the count of complete records
found before the failure point is still reported.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			r, err := reader.OpenFile(path, readerOptions(cmd))
			if r == nil {
				return err
			}
			if err != nil {
				cmd.Printf("%s: %d records (index stopped early: %v)\n", path, r.Len(), err)
			} else {
				cmd.Printf("%s: %d records\n", path, r.Len())
			}
			if err := r.Close(); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(countCmd)
}
