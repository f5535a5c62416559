package main

import (
	"github.com/philipparndt/goshapes/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("goshapes %s\n", version.GetVersion())
		cmd.Printf("  commit: %s\n", version.GitCommit)
		cmd.Printf("  built:  %s\n", version.BuildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
