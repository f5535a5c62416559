package main

import (
	"fmt"

	"github.com/philipparndt/goshapes/pkg/analysis"
	"github.com/spf13/cobra"
)

var (
	infoEdges    int
	infoShortest bool
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display information about a shape document",
	Long:  "Show the shapes of a document with their point count, area and perimeter, and the size of the resulting mesh.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().IntVarP(&infoEdges, "edges", "n", 0, "Also list the N longest edges")
	infoCmd.Flags().BoolVarP(&infoShortest, "shortest", "s", false, "List the shortest instead of the longest edges")
}

func runInfo(cmd *cobra.Command, args []string) error {
	s, err := openSession(args[0], false)
	if err != nil {
		return err
	}
	result := analysis.AnalyzeShapes(s.doc.Shapes)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Shape Document Information")
	fmt.Fprintln(out, "==========================")
	fmt.Fprintf(out, "File: %s\n", s.path)
	fmt.Fprintf(out, "Handle Radius: %.3f\n\n", s.options.HandleRadius)

	fmt.Fprintln(out, "Shapes:")
	if len(result.Shapes) == 0 {
		fmt.Fprintln(out, "  (none)")
	}
	for _, sh := range result.Shapes {
		fmt.Fprintf(out, "  %d. %s  points: %d  area: %.4f  perimeter: %.4f\n",
			sh.Index+1, sh.ID, sh.Points, sh.Area, sh.Perimeter)
		if sh.Err != nil {
			fmt.Fprintf(out, "     not triangulated: %v\n", sh.Err)
		}
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Totals:")
	fmt.Fprintf(out, "  Points: %d\n", result.PointCount)
	fmt.Fprintf(out, "  Triangles: %d\n", result.TriangleCount)
	fmt.Fprintf(out, "  Total Area: %.4f square units\n", result.TotalArea)
	if result.PointCount > 0 {
		fmt.Fprintf(out, "  Min: %s\n", analysis.FormatVector(result.Min))
		fmt.Fprintf(out, "  Max: %s\n", analysis.FormatVector(result.Max))
	}

	if result.EdgeCount > 0 {
		fmt.Fprintln(out, "\nEdge Lengths:")
		fmt.Fprintf(out, "  Minimum: %.4f units\n", result.MinEdgeLength)
		fmt.Fprintf(out, "  Maximum: %.4f units\n", result.MaxEdgeLength)
		fmt.Fprintf(out, "  Average: %.4f units\n", result.AvgEdgeLength)
	}

	if infoEdges > 0 {
		edges := analysis.FindLongestEdges(result, infoEdges)
		title := "Longest Edges"
		if infoShortest {
			edges = analysis.FindShortestEdges(result, infoEdges)
			title = "Shortest Edges"
		}
		fmt.Fprintf(out, "\n%s:\n", title)
		for _, e := range edges {
			fmt.Fprintf(out, "  shape %d edge %d: %.4f  %s -> %s\n",
				e.Shape+1, e.Edge+1, e.Length, analysis.FormatVector(e.Start), analysis.FormatVector(e.End))
		}
	}
	return nil
}
