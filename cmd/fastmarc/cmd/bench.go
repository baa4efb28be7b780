package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/RvanB/fastmarc/pkg/config"
	"github.com/RvanB/fastmarc/pkg/reader"
)

// benchCmd represents the bench command
var benchCmd = &cobra.Command{
	Use:   "bench [FILE...]",
	Short: "Benchmark indexed reading of MARC files",
	Long: `Benchmark the two phases of the indexed reader separately:

  open            build the boundary index and count records (no decoding)
  iteration-only  decode every record over an already-built index

Files come from the arguments or, if none are given, from the YAML config.

Examples:
  fastmarc bench records.mrc --repeats=5
  fastmarc bench --config=bench.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.DefaultConfig()
		if path, _ := cmd.Flags().GetString("config"); path != "" {
			loaded, err := config.LoadConfig(path)
			if err != nil {
				return err
			}
			cfg = loaded
		}
		if cmd.Flags().Changed("repeats") {
			cfg.Repeats, _ = cmd.Flags().GetInt("repeats")
		}
		if cmd.Flags().Changed("strict") {
			cfg.Strict, _ = cmd.Flags().GetBool("strict")
		}
		if cfg.Repeats < 1 {
			return fmt.Errorf("repeats must be positive, got %d", cfg.Repeats)
		}

		files := args
		if len(files) == 0 {
			files = cfg.Files
		}
		if len(files) == 0 {
			return fmt.Errorf("no files to benchmark: pass FILE arguments or set files in the config")
		}

		opts := reader.Options{Strict: cfg.Strict}
		for _, path := range files {
			if err := benchFile(cmd, path, cfg.Repeats, opts); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	benchCmd.Flags().IntP("repeats", "r", 3, "Number of timed runs per measurement")
	benchCmd.Flags().StringP("config", "c", "", "YAML config file (files, repeats, strict)")
	rootCmd.AddCommand(benchCmd)
}

func benchFile(cmd *cobra.Command, path string, repeats int, opts reader.Options) error {
	// Phase 1: full open, index build plus O(1) count, once per run.
	openTimes := make([]time.Duration, 0, repeats)
	for i := 0; i < repeats; i++ {
		start := time.Now()
		r, err := reader.OpenFile(path, opts)
		if r == nil {
			return err
		}
		_ = r.Len()
		openTimes = append(openTimes, time.Since(start))
		if err != nil {
			cmd.Printf("warning: %s: index stopped early: %v\n", path, err)
		}
		if err := r.Close(); err != nil {
			return err
		}
	}

	// Phase 2: iteration over an index that is already built, decoding
	// every record each pass.
	r, err := reader.OpenFile(path, opts)
	if r == nil {
		return err
	}
	defer r.Close()

	iterTimes := make([]time.Duration, 0, repeats)
	for i := 0; i < repeats; i++ {
		start := time.Now()
		it := r.Records()
		for it.Next() {
			// Decoded records are discarded; the pass itself is the
			// measurement.
			_ = it.Record()
		}
		iterTimes = append(iterTimes, time.Since(start))
	}

	cmd.Printf("\n%s\nRecords: %d\n", path, r.Len())

	cmd.Printf("\n--- open (build index + count) ---\n")
	cmd.Printf("runs: %s\nbest: %v   mean: %v\n", formatRuns(openTimes), best(openTimes), mean(openTimes))

	cmd.Printf("\n--- iteration-only (index already built) ---\n")
	cmd.Printf("runs: %s\nbest: %v   mean: %v\n", formatRuns(iterTimes), best(iterTimes), mean(iterTimes))

	if b := best(openTimes); b > 0 {
		cmd.Printf("\nCount speedup over full decode: x%.2f\n", float64(best(iterTimes))/float64(b))
	}
	return nil
}

func best(times []time.Duration) time.Duration {
	min := times[0]
	for _, t := range times[1:] {
		if t < min {
			min = t
		}
	}
	return min
}

func mean(times []time.Duration) time.Duration {
	var sum time.Duration
	for _, t := range times {
		sum += t
	}
	return sum / time.Duration(len(times))
}

func formatRuns(times []time.Duration) string {
	parts := make([]string, len(times))
	for i, t := range times {
		parts[i] = t.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
