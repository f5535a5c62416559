package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/goshapes/pkg/mesh"
	"github.com/philipparndt/goshapes/pkg/openscad"
	"github.com/philipparndt/goshapes/pkg/stl"
	"github.com/spf13/cobra"
)

var (
	exportOutput  string
	exportBinary  bool
	exportStrict  bool
	exportFormat  string
	exportExtrude float64
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write a shape document as STL or OpenSCAD",
	Long: `Write a shape document as STL or OpenSCAD.

Flat STL export triangulates every shape on the drawing plane. With --extrude
the shapes are turned into solids; for STL output this requires the openscad
binary in PATH.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: document name with the format's extension)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "stl", "Output format: stl or scad")
	exportCmd.Flags().Float64Var(&exportExtrude, "extrude", 0, "Extrude shapes to solids of this height")
	exportCmd.Flags().BoolVar(&exportBinary, "binary", false, "Write binary instead of ASCII STL")
	exportCmd.Flags().BoolVar(&exportStrict, "strict", false, "Fail when a shape cannot be triangulated")
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportFormat != "stl" && exportFormat != "scad" {
		return fmt.Errorf("unknown format %q (expected stl or scad)", exportFormat)
	}
	if exportExtrude < 0 {
		return fmt.Errorf("extrude height must not be negative, got %v", exportExtrude)
	}

	s, err := openSession(args[0], false)
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(s.path, filepath.Ext(s.path))
	output := exportOutput
	if output == "" {
		output = base + "." + exportFormat
	}

	scadOpts := openscad.Options{
		Extrude:     exportExtrude,
		PlaneHeight: s.cfg.Editor.PlaneHeight,
	}

	switch {
	case exportFormat == "scad":
		return exportSCAD(cmd, s, output, scadOpts)
	case exportExtrude > 0:
		renderer := openscad.NewRenderer(filepath.Dir(s.path))
		if err := renderer.RenderShapes(s.doc.Shapes, scadOpts, output); err != nil {
			return err
		}
		cmd.Printf("Rendered %d shapes to %s\n", s.doc.Shapes.Len(), output)
		return nil
	}

	model, err := mesh.Build(filepath.Base(base), s.doc.Shapes)
	if err != nil {
		if exportStrict {
			return fmt.Errorf("failed to triangulate: %w", err)
		}
		s.logger.Warn("shapes skipped", "error", err)
	}

	if err := stl.WriteFile(output, model, exportBinary); err != nil {
		return err
	}

	cmd.Printf("Wrote %d triangles to %s\n", model.TriangleCount(), output)
	return nil
}

func exportSCAD(cmd *cobra.Command, s *session, output string, opts openscad.Options) error {
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", output, err)
	}
	if err := openscad.Write(f, s.doc.Shapes, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", output, err)
	}

	cmd.Printf("Wrote %d shapes to %s\n", s.doc.Shapes.Len(), output)
	return nil
}
