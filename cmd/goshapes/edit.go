package main

import (
	"time"

	"github.com/philipparndt/goshapes/internal/app"
	"github.com/spf13/cobra"
)

var editNoWatch bool

var editCmd = &cobra.Command{
	Use:   "edit [file]",
	Short: "Open a shape document in the editor window",
	Long:  "Edit the shapes of a document interactively. A missing document is created on the first save.",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().BoolVar(&editNoWatch, "no-watch", false, "Do not reload the document when it changes on disk")
}

func runEdit(cmd *cobra.Command, args []string) error {
	s, err := openSession(args[0], true)
	if err != nil {
		return err
	}

	return app.Run(app.Options{
		Path:     s.path,
		Document: s.doc,
		Editor:   s.options,
		Watch:    s.cfg.Watcher.Enabled && !editNoWatch,
		Debounce: time.Duration(s.cfg.Watcher.DebounceMS) * time.Millisecond,
		Logger:   s.logger,
	})
}
