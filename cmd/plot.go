package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/nodewee/go-camelot/pkg/constants"
)

var (
	plotOpts jobFlags
	plotKind string
)

// plotCmd represents the plot command
var plotCmd = &cobra.Command{
	Use:   "plot [flags] <file.pdf>",
	Short: "Show how camelot sees a page",
	Long: `Run camelot in plot mode to inspect the text, lines and tables it detects.
Nothing is extracted; camelot opens its own plot window.

Plot kinds: ` + strings.Join(constants.PlotKinds, ", ") + `

Examples:
  go-camelot plot report.pdf -p 1
  go-camelot plot report.pdf -p 2 -k contour`,
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		job, err := plotOpts.job(args[0], cmd.Flags().Changed)
		if err != nil {
			return err
		}

		return NewAppHandler(cmd.OutOrStdout()).Plot(job, plotKind)
	},
}

func init() {
	plotOpts.register(plotCmd)
	plotCmd.Flags().StringVarP(&plotKind, "kind", "k", constants.DefaultPlotKind,
		"Plot kind ("+strings.Join(constants.PlotKinds, ", ")+")")
	rootCmd.AddCommand(plotCmd)
}
