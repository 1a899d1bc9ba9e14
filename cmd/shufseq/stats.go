package main

import (
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yyyoichi/shufseq"
	"github.com/yyyoichi/shufseq/internal/stats"
)

const (
	cfgMarkdown  = "markdown"
	cfgHistogram = "histogram"
	cfgBins      = "bins"
)

var statsCmd = &cobra.Command{
	Use:     "stats NAME SIZE COUNT",
	Short:   "Measure recurrence distances of a generator",
	Example: "  shufseq stats disjoint 100 10000",
	Args:    cobra.ExactArgs(3),
	RunE:    runStats,
}

func init() {
	fs := statsCmd.Flags()
	fs.Bool(cfgMarkdown, false, "report as a markdown table")
	fs.String(cfgHistogram, "", "write a histogram of the distances to this HTML file")
	fs.Int(cfgBins, 40, "histogram bins")
	bindFlags(fs)
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	name, n, k, err := parseRun(args)
	if err != nil {
		return err
	}
	level.Debug(logger).Log("msg", "measuring", "generator", name, "size", n, "count", k)

	opts := seedOptions()
	path := viper.GetString(cfgHistogram)
	if path != "" {
		opts = append(opts, shufseq.WithDistances())
	}
	c, err := shufseq.Measure(cmd.Context(), name, n, k, opts...)
	if err != nil {
		return err
	}
	s, err := c.Summary()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	write := stats.WriteText
	if viper.GetBool(cfgMarkdown) {
		write = stats.WriteMarkdown
	}
	if err := write(out, s); err != nil {
		return err
	}

	if path != "" {
		dividers, counts, err := c.Histogram(viper.GetInt(cfgBins))
		if err != nil {
			return err
		}
		if err := writeHistogram(path, name, s, dividers, counts); err != nil {
			return err
		}
		level.Info(logger).Log("msg", "histogram written", "path", path)
	}
	return nil
}
