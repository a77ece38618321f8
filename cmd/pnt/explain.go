package main

import (
	"github.com/spf13/cobra"

	"github.com/bjaus/pnt"
)

func newExplainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain [flags] <template>",
		Short: "List the directives of a template",
		Args:  cobra.ExactArgs(1),
		RunE:  runExplain,
	}
	cmd.Flags().StringP("output", "o", "table",
		"report format (table|json|jsonl|yaml|csv|tsv|markdown|html|plain|go-template=<tmpl>)")
	return cmd
}

func runExplain(cmd *cobra.Command, args []string) error {
	name, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	format, err := pnt.ParseReportFormat(name)
	if err != nil {
		return err
	}
	tmpl, err := unescape(args[0])
	if err != nil {
		return err
	}
	dirs, err := pnt.Explain(tmpl)
	if err != nil {
		return err
	}
	return pnt.WriteReport(cmd.OutOrStdout(), format, tmpl, dirs)
}
