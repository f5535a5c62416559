package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/goshapes/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "goshapes",
	Short: "Interactive editor for flat shapes on a ground plane",
	Long: `goshapes edits closed polygons lying on a horizontal plane. Points are added,
dragged and removed with the mouse, and the shapes are triangulated into a mesh
that can be exported as STL.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags.Register(rootCmd.PersistentFlags())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
