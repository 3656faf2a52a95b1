package cmd

import (
	"github.com/joshyorko/scriptboard/common"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show scriptboard version.",
	Run: func(cmd *cobra.Command, args []string) {
		common.Stdout("%s %s\n", common.Product.Name(), common.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
