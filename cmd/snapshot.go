package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ftl/aliascope/ui/report"
	"github.com/ftl/aliascope/ui/scope"
)

var snapshotFlags = struct {
	width  int
	height int
}{}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print the plots and the report line of the initial parameters",
	RunE:  runSnapshot,
}

func init() {
	snapshotCmd.Flags().IntVar(&snapshotFlags.width, "width", 100, "plot width in characters")
	snapshotCmd.Flags().IntVar(&snapshotFlags.height, "height", 12, "height of each plot in lines")

	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	controller, err := newController()
	if err != nil {
		return err
	}

	plots := scope.New()
	controller.AddView(plots)
	controller.Startup()

	out := cmd.OutOrStdout()
	frame, _ := plots.Frame()
	fmt.Fprintln(out, plots.Render(snapshotFlags.width, snapshotFlags.height))
	fmt.Fprintln(out)
	fmt.Fprintln(out, report.Header)
	fmt.Fprintln(out, report.Line(frame))
	return nil
}
