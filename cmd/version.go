package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tooldex/tooldex/config"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the tooldex version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tooldex version %s\n", config.DefaultConfig.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
