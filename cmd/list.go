package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/joshyorko/scriptboard/catalog"
	"github.com/joshyorko/scriptboard/common"
	"github.com/joshyorko/scriptboard/pretty"

	"github.com/spf13/cobra"
)

func listTree(sink io.Writer, library catalog.Library, root string) int {
	units, err := library.Units(root)
	common.Uncritical("listing units", err)
	count := 0
	for _, unit := range units {
		fmt.Fprintf(sink, "%s%s%s\n", pretty.Bold, unit.Name, pretty.Reset)
		subfolders, err := library.Subfolders(unit)
		common.Uncritical("listing subfolders", err)
		for _, folder := range subfolders {
			fmt.Fprintf(sink, "  %s\n", folder.Name)
			scripts, err := library.Scripts(folder)
			common.Uncritical("listing scripts", err)
			for _, script := range scripts {
				fmt.Fprintf(sink, "    %s%s%s\n", pretty.Green, script.Name, pretty.Reset)
				count += 1
			}
		}
	}
	return count
}

var listCmd = &cobra.Command{
	Use:   "list [root]",
	Short: "Print units, subfolders and scripts without any menus.",
	Long: `Print the whole tree of units, subfolders and scripts that the dashboard
would offer, one entry per line, indented by level.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		root := resolveRoot(args)
		common.Debug("Listing %q.", root)
		count := listTree(os.Stdout, catalog.Filesystem(), root)
		if count == 0 {
			pretty.Note("No scripts found under %q.", root)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
