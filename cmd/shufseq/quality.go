package main

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/go-kit/log/level"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yyyoichi/shufseq"
	"github.com/yyyoichi/shufseq/internal/stats"
)

const (
	cfgSizes   = "sizes"
	cfgSamples = "samples"
	cfgWorkers = "workers"
)

var qualityCmd = &cobra.Command{
	Use:   "quality",
	Short: "Measure every generator across several universe sizes",
	Args:  cobra.NoArgs,
	RunE:  runQuality,
}

func init() {
	fs := qualityCmd.Flags()
	fs.IntSlice(cfgSizes, []int{10, 100, 1000}, "universe sizes")
	fs.Int(cfgSamples, 10000, "recurrences sampled per case")
	fs.Int(cfgWorkers, 4, "cases measured concurrently")
	bindFlags(fs)
	rootCmd.AddCommand(qualityCmd)
}

type qualityCase struct {
	Name    string
	N       uint32
	Summary stats.Summary
	Err     error
	Elapsed time.Duration
}

func runQuality(cmd *cobra.Command, args []string) error {
	var sizes []uint32
	for _, s := range viper.GetIntSlice(cfgSizes) {
		if s < 1 {
			return fmt.Errorf("invalid size %d", s)
		}
		sizes = append(sizes, uint32(s))
	}
	k := viper.GetInt(cfgSamples)
	workers := max(viper.GetInt(cfgWorkers), 1)
	names := shufseq.Names()

	level.Info(logger).Log("msg", "starting quality evaluation", "generators", len(names), "sizes", len(sizes),
		"cases", len(names)*len(sizes), "samples", k)

	var cases []*qualityCase
	for _, name := range names {
		for _, n := range sizes {
			cases = append(cases, &qualityCase{Name: name, N: n})
		}
	}
	measureAll(cmd.Context(), cases, k, workers)

	ok := 0
	for _, c := range cases {
		if c.Err != nil {
			level.Error(logger).Log("msg", "[FAIL]", "generator", c.Name, "size", c.N, "err", c.Err)
			continue
		}
		j := c.Summary.Judge()
		kv := []any{"generator", c.Name, "size", c.N,
			"min", f2(c.Summary.MinN()), "max", f2(c.Summary.MaxN()),
			"avg", f2(c.Summary.AvgN()), "std", f2(c.Summary.StdN()), "time", c.Elapsed}
		if j.Horrid() {
			level.Warn(logger).Log(append([]any{"msg", "[FAIL]"}, kv...)...)
			continue
		}
		ok++
		level.Info(logger).Log(append([]any{"msg", "[OK]"}, kv...)...)
	}

	writeQualityTable(cmd, cases)
	level.Info(logger).Log("msg", "results", "total", len(cases), "ok", ok, "failed", len(cases)-ok)
	return nil
}

func measureAll(ctx context.Context, cases []*qualityCase, k, workers int) {
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	wg.Add(len(cases))
	for _, c := range cases {
		sem <- struct{}{}
		go func(c *qualityCase) {
			defer func() { <-sem; wg.Done() }()
			start := time.Now()
			col, err := shufseq.Measure(ctx, c.Name, c.N, k, seedOptions()...)
			if err == nil {
				c.Summary, err = col.Summary()
			}
			c.Err = err
			c.Elapsed = time.Since(start)
		}(c)
	}
	wg.Wait()
}

func writeQualityTable(cmd *cobra.Command, cases []*qualityCase) {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Generator", "N", "Min", "Max", "Avg", "Std"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, c := range cases {
		if c.Err != nil {
			continue
		}
		s, j := c.Summary, c.Summary.Judge()
		table.Append([]string{
			c.Name,
			strconv.FormatUint(uint64(c.N), 10),
			judged(s.MinN(), j.Min),
			judged(s.MaxN(), j.Max),
			judged(s.AvgN(), j.Avg),
			judged(s.StdN(), j.Std),
		})
	}
	table.Render()
}

func judged(v float64, j stats.Judgment) string {
	return fmt.Sprintf("%s %s", f2(v), j)
}

func f2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
