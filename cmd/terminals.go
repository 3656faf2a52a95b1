package cmd

import (
	"github.com/joshyorko/scriptboard/common"
	"github.com/joshyorko/scriptboard/launcher"
	"github.com/joshyorko/scriptboard/pretty"
	"github.com/joshyorko/scriptboard/xviper"

	"github.com/spf13/cobra"
)

var terminalsCmd = &cobra.Command{
	Use:   "terminals",
	Short: "Show how scripts would be launched on this machine.",
	Long: `Show the selected launch strategy, the Python interpreter, and every
configured terminal program with its availability, in preference order.`,
	Run: func(cmd *cobra.Command, args []string) {
		host := launcher.DefaultHost()
		mode := xviper.GetString("launch.mode")
		launch, err := launcher.Detect(host, profiles, mode)
		pretty.Guard(err == nil, 1, "Launch mode: %v", err)

		common.Stdout("%sLaunch mode:%s %s\n", pretty.Bold, pretty.Reset, mode)
		common.Stdout("%sStrategy:%s    %s\n", pretty.Bold, pretty.Reset, launch.Name())
		common.Stdout("%sGraphical:%s   %v\n", pretty.Bold, pretty.Reset, host.Graphical())
		common.Stdout("%sPython:%s      %s\n\n", pretty.Bold, pretty.Reset, resolveInterpreter())

		survey, err := launcher.Survey(host, profiles)
		pretty.Guard(err == nil, 1, "Terminal settings: %v", err)
		if len(survey) == 0 {
			pretty.Note("No terminal programs configured for %s.", host.GOOS)
			return
		}
		for _, entry := range survey {
			color, state := pretty.Red, "missing"
			if entry.Available {
				color, state = pretty.Green, "available"
			}
			running := ""
			if entry.Running {
				running = " (running this dashboard)"
			}
			common.Stdout("  %-20s %s%-9s%s %s%s\n", entry.Candidate.Name, color, state, pretty.Reset, entry.Path, running)
		}
	},
}

func init() {
	rootCmd.AddCommand(terminalsCmd)
}
