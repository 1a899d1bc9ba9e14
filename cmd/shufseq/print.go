package main

import (
	"github.com/spf13/cobra"

	"github.com/yyyoichi/shufseq"
)

var printCmd = &cobra.Command{
	Use:     "print NAME SIZE COUNT",
	Short:   "Print COUNT values of a generator as 'index value' lines",
	Example: "  shufseq print overlap 100 1000 > overlap.dat",
	Args:    cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, n, k, err := parseRun(args)
		if err != nil {
			return err
		}
		return shufseq.Print(cmd.OutOrStdout(), name, n, k, seedOptions()...)
	},
}

func init() {
	rootCmd.AddCommand(printCmd)
}
