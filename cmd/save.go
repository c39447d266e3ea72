package cmd

import (
	"github.com/spf13/cobra"
)

// saveCmd represents the save command
var saveCmd = &cobra.Command{
	Use:   "save [flags] <file.pdf> <output>",
	Short: "Extract tables and keep the files camelot writes",
	Long: `Extract tables and keep the files camelot writes next to <output>.

For csv, json and html camelot writes one file per table named
{output}-page-{n}-table-{i}.{ext}. Excel and sqlite write a single workbook or
database at <output>.

Examples:
  go-camelot save report.pdf out/report.csv
  go-camelot save report.pdf out/report.xlsx -f excel -p 2-4`,
	Args:          cobra.ExactArgs(2),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		job, err := saveOpts.job(args[0], cmd.Flags().Changed)
		if err != nil {
			return err
		}
		job.Output = args[1]

		return NewAppHandler(cmd.OutOrStdout()).ProcessJob(job)
	},
}

var saveOpts jobFlags

func init() {
	saveOpts.register(saveCmd)
	rootCmd.AddCommand(saveCmd)
}
