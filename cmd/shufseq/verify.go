package main

import (
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yyyoichi/shufseq"
	"github.com/yyyoichi/shufseq/internal/verify"
)

const (
	cfgSize       = "size"
	cfgIterations = "iterations"
	cfgEpsilon    = "epsilon"
	cfgHeatmap    = "heatmap"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the invariants of the disjoint generator by sampling",
	Args:  cobra.NoArgs,
	RunE:  runVerify,
}

func init() {
	fs := verifyCmd.Flags()
	fs.Uint32(cfgSize, verify.DefaultSize, "universe size")
	fs.Int(cfgIterations, verify.DefaultIterations, "number of sampled passes")
	fs.Float64(cfgEpsilon, verify.DefaultEpsilon, "tolerance of destination frequencies")
	fs.String(cfgHeatmap, "", "write destination frequency heat maps to this HTML file")
	bindFlags(fs)
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	opts := append(seedOptions(),
		shufseq.WithVerifySize(viper.GetUint32(cfgSize)),
		shufseq.WithIterations(viper.GetInt(cfgIterations)),
		shufseq.WithEpsilon(viper.GetFloat64(cfgEpsilon)),
		shufseq.WithLogger(logger),
	)
	r, err := shufseq.Verify(cmd.Context(), opts...)
	if err != nil {
		level.Error(logger).Log("msg", "verification failed", "err", err)
		return err
	}
	for _, d := range r.Widths() {
		level.Info(logger).Log("msg", "interlace width sampled", "width", d, "passes", r.Count[d])
	}
	level.Info(logger).Log("msg", "verification passed", "size", r.Size, "iterations", r.Iterations, "anomalies", len(r.Anomalies))

	if path := viper.GetString(cfgHeatmap); path != "" {
		if err := writeHeatmap(path, r); err != nil {
			return err
		}
		level.Info(logger).Log("msg", "heat map written", "path", path)
	}
	return nil
}
