package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/RvanB/fastmarc/pkg/reader"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fastmarc",
	Short: "Indexed reader for MARC21 record files",
	Long: `fastmarc reads MARC21 bibliographic record files through a one-pass
boundary index: record counts are O(1) and any record is one seek away.

The subcommands are thin callers of the reader; all parsing lives in the
library packages.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("strict", false, "Treat a missing record terminator as a decode failure")
}

// readerOptions derives reader options from the persistent flags.
func readerOptions(cmd *cobra.Command) reader.Options {
	strict, _ := cmd.Flags().GetBool("strict")
	return reader.Options{Strict: strict}
}
