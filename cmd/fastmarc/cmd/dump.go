package cmd

import (
	"github.com/spf13/cobra"

	"github.com/RvanB/fastmarc/pkg/marc"
	"github.com/RvanB/fastmarc/pkg/reader"
)

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump FILE",
	Short: "Print the decoded contents of a MARC file",
	Long: `Decode every record in the file and print its leader codes, tags,
indicators and subfields. Byte values are printed as quoted strings without
any character-set conversion; MARC-8 data will show escaped bytes.

A record that fails to decode is reported in place and the walk continues
with the next record.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// A partial-index error is not fatal here: the iterator surfaces
		// it after the last complete record.
		r, err := reader.OpenFile(args[0], readerOptions(cmd))
		if r == nil {
			return err
		}
		defer r.Close()

		pos := 0
		it := r.Records()
		for it.Next() {
			rec := it.Record()
			if rec == nil {
				cmd.Printf("record %d: %v\n", pos, it.Err())
				pos++
				continue
			}
			printRecord(cmd, pos, rec)
			pos++
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

func printRecord(cmd *cobra.Command, pos int, rec *marc.Record) {
	cmd.Printf("=== record %d (status %q, type %q, %d fields)\n",
		pos, rec.Leader.Status, rec.Leader.Type, len(rec.Fields))
	for _, w := range rec.Warnings {
		cmd.Printf("    warning: %v\n", w)
	}
	for _, f := range rec.Fields {
		if f.Kind == marc.ControlField {
			cmd.Printf("%s    %q\n", f.Tag, f.Value)
			continue
		}
		cmd.Printf("%s [%c%c]", f.Tag, f.Indicators[0], f.Indicators[1])
		for _, sf := range f.Subfields {
			cmd.Printf(" $%c %q", sf.Code, sf.Value)
		}
		cmd.Printf("\n")
	}
}
