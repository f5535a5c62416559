// Package openscad writes shape collections as OpenSCAD sources and renders
// them to solid STL files with the openscad binary.
package openscad

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/philipparndt/goshapes/pkg/shape"
)

// Options controls the generated source
type Options struct {
	// Extrude is the height of the solid; zero writes flat polygons
	Extrude float64
	// PlaneHeight lifts the result to the drawing plane
	PlaneHeight float64
}

// Write emits one polygon per shape with at least three points. OpenSCAD is
// Z-up, so world X maps to X, world Z to -Y and the plane height to Z.
func Write(w io.Writer, shapes *shape.Collection, opts Options) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "// Generated by goshapes: %d shapes\n", shapes.Len())
	fmt.Fprintf(bw, "translate([0, 0, %s]) {\n", num(opts.PlaneHeight))

	for i, s := range shapes.Shapes() {
		if s.Len() < 3 {
			fmt.Fprintf(bw, "  // shape %d (%s) skipped: %d points\n", i+1, s.ID, s.Len())
			continue
		}

		indent := "  "
		fmt.Fprintf(bw, "  // shape %d (%s)\n", i+1, s.ID)
		if opts.Extrude > 0 {
			fmt.Fprintf(bw, "  linear_extrude(height = %s)\n", num(opts.Extrude))
			indent = "    "
		}

		fmt.Fprintf(bw, "%spolygon(points = [", indent)
		for j, p := range s.Points {
			if j > 0 {
				bw.WriteString(", ")
			}
			fmt.Fprintf(bw, "[%s, %s]", num(p.X), num(-p.Z))
		}
		bw.WriteString("]);\n")
	}

	bw.WriteString("}\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write OpenSCAD source: %w", err)
	}
	return nil
}

func num(v float64) string {
	// -0 would print as "-0"
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
