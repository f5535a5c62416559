package main

import (
	"fmt"

	"github.com/philipparndt/goshapes/internal/replay"
	"github.com/philipparndt/goshapes/pkg/mesh"
	"github.com/philipparndt/goshapes/pkg/shape"
	"github.com/spf13/cobra"
)

var (
	replayScript string
	replayOutput string
)

var replayCmd = &cobra.Command{
	Use:   "replay [file]",
	Short: "Apply a scripted list of pointer events to a document",
	Long: `Drive the editor without a window. The script is a YAML list of steps such as
move, down, up, drag, click, undo, redo, select and delete-shape, with screen
coordinates mapped onto the drawing plane by a top-down viewport.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().StringVar(&replayScript, "script", "", "Event script (YAML)")
	replayCmd.Flags().StringVarP(&replayOutput, "output", "o", "", "Write the resulting document here (default: print summary only)")
	_ = replayCmd.MarkFlagRequired("script")
}

func runReplay(cmd *cobra.Command, args []string) error {
	s, err := openSession(args[0], true)
	if err != nil {
		return err
	}

	script, err := replay.ParseFile(replayScript)
	if err != nil {
		return err
	}

	builder := mesh.NewBuilder(s.path, s.logger, nil)
	runner := replay.NewRunner(s.doc.Shapes, s.options, script.TopDown(), builder)
	result, err := runner.Run(script)
	if err != nil {
		return fmt.Errorf("failed at step %d: %w", result.Steps+1, err)
	}

	cmd.Printf("Replayed %d steps: %d shapes, %d points, %d triangles\n",
		result.Steps, s.doc.Shapes.Len(), s.doc.Shapes.TotalPoints(), builder.Model().TriangleCount())
	for _, label := range result.Checkpoints {
		cmd.Printf("  %s\n", label)
	}

	if replayOutput != "" {
		if err := shape.Save(replayOutput, s.doc); err != nil {
			return err
		}
		cmd.Printf("Saved %s\n", replayOutput)
	}
	return nil
}
