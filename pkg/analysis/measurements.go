// Package analysis computes summary measurements of a shape collection.
package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/goshapes/pkg/geometry"
	"github.com/philipparndt/goshapes/pkg/mesh"
	"github.com/philipparndt/goshapes/pkg/shape"
)

// EdgeInfo contains information about an outline edge
type EdgeInfo struct {
	Start  geometry.Vector3
	End    geometry.Vector3
	Length float64
	Shape  int
	Edge   int
}

// ShapeInfo contains the measurements of one shape
type ShapeInfo struct {
	Index     int
	ID        string
	Points    int
	Area      float64
	Perimeter float64
	Triangles int
	// Err is set when the shape cannot be triangulated
	Err error
}

// MeasurementResult contains the measurements of a collection
type MeasurementResult struct {
	Shapes        []ShapeInfo
	Min, Max      geometry.Vector3 // Bounds of all points
	TotalArea     float64
	TriangleCount int
	PointCount    int
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	AllEdges      []EdgeInfo
}

// Dimensions returns the extent of all points along each axis
func (r *MeasurementResult) Dimensions() geometry.Vector3 {
	if r.PointCount == 0 {
		return geometry.Vector3{}
	}
	return r.Max.Sub(r.Min)
}

// AnalyzeShapes measures every shape of the collection
func AnalyzeShapes(shapes *shape.Collection) *MeasurementResult {
	result := &MeasurementResult{
		Shapes:   make([]ShapeInfo, 0, shapes.Len()),
		AllEdges: make([]EdgeInfo, 0),
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0
	first := true

	for si, s := range shapes.Shapes() {
		info := ShapeInfo{
			Index:     si,
			ID:        s.ID,
			Points:    s.Len(),
			Area:      s.Area(),
			Perimeter: s.Perimeter(),
		}
		tris, err := mesh.Triangulate(s.Points)
		info.Triangles = len(tris)
		info.Err = err

		result.Shapes = append(result.Shapes, info)
		result.TotalArea += info.Area
		result.TriangleCount += info.Triangles
		result.PointCount += info.Points

		for _, p := range s.Points {
			if first {
				result.Min, result.Max = p, p
				first = false
				continue
			}
			result.Min = result.Min.Min(p)
			result.Max = result.Max.Max(p)
		}

		// A single point has no real edge
		if s.Len() < 2 {
			continue
		}
		for i := range s.Points {
			start, end := s.Edge(i)
			length := start.Distance(end)

			result.AllEdges = append(result.AllEdges, EdgeInfo{
				Start:  start,
				End:    end,
				Length: length,
				Shape:  si,
				Edge:   i,
			})

			totalLength += length
			if length < minLength {
				minLength = length
			}
			if length > maxLength {
				maxLength = length
			}
		}
	}

	result.EdgeCount = len(result.AllEdges)
	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// FindLongestEdges returns the N longest edges
func FindLongestEdges(result *MeasurementResult, count int) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Length > edges[j].Length
	})

	if count > len(edges) {
		count = len(edges)
	}
	return edges[:count]
}

// FindShortestEdges returns the N shortest edges
func FindShortestEdges(result *MeasurementResult, count int) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Length < edges[j].Length
	})

	if count > len(edges) {
		count = len(edges)
	}
	return edges[:count]
}

// FormatVector formats a vector for display
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", v.X, v.Y, v.Z)
}
