package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/philipparndt/goshapes/pkg/shape"
	"github.com/spf13/cobra"
)

var newForce bool

var newCmd = &cobra.Command{
	Use:   "new [file]",
	Short: "Create an empty shape document",
	Args:  cobra.ExactArgs(1),
	RunE:  runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().BoolVarP(&newForce, "force", "f", false, "Overwrite an existing document")
}

func runNew(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); err == nil && !newForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	s, err := openSession(path, true)
	if err != nil && !newForce {
		return err
	}
	doc := shape.NewDocument()
	if s != nil {
		doc.HandleRadius = s.options.HandleRadius
	}

	if err := shape.Save(path, doc); err != nil {
		return err
	}
	cmd.Printf("Created %s\n", path)
	return nil
}
