package main

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/yyyoichi/shufseq"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered generators",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"Name", "Description"})
		table.SetAutoWrapText(false)
		for _, name := range shufseq.Names() {
			desc, err := shufseq.Description(name)
			if err != nil {
				return err
			}
			table.Append([]string{name, desc})
		}
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
