package cmd

import (
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [flags] <jobs.yaml>",
	Short: "Run the extraction jobs described in a YAML file",
	Long: `Run the extraction jobs described in a YAML file, in order. The first failing
job stops the run.

A file holds a single job or a list under "jobs". Keys: source, mode, format,
pages, password, process_background, areas, regions, columns, split, flag_size,
strip, edge_tol, row_tol, line_scale, shift, copy, output.

Example:
  jobs:
    - source: reports/q3.pdf
      mode: stream
      columns: [72, 95.5, 209]
      split: true
    - source: reports/q4.pdf
      areas: ["10,800,600,400"]
      output: out/q4.csv`,
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return NewAppHandler(cmd.OutOrStdout()).ProcessJobFile(args[0])
	},
}

func init() {
	runCmd.Flags().BoolVar(&decode, "decode", false,
		"Print csv, json or html tables as JSON rows")
	rootCmd.AddCommand(runCmd)
}
