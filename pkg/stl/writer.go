package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/goshapes/pkg/geometry"
)

// WriteASCII writes the model in ASCII STL format
func WriteASCII(w io.Writer, model *Model) error {
	bw := bufio.NewWriter(w)
	name := sanitizeName(model.Name)

	fmt.Fprintf(bw, "solid %s\n", name)
	for _, t := range model.Triangles {
		fmt.Fprintf(bw, "  facet normal %g %g %g\n", t.Normal.X, t.Normal.Y, t.Normal.Z)
		fmt.Fprintf(bw, "    outer loop\n")
		for _, v := range []geometry.Vector3{t.V1, t.V2, t.V3} {
			fmt.Fprintf(bw, "      vertex %g %g %g\n", v.X, v.Y, v.Z)
		}
		fmt.Fprintf(bw, "    endloop\n")
		fmt.Fprintf(bw, "  endfacet\n")
	}
	fmt.Fprintf(bw, "endsolid %s\n", name)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write ASCII STL: %w", err)
	}
	return nil
}

// WriteBinary writes the model in binary STL format: 80-byte header,
// little-endian triangle count, then 50 bytes per triangle.
func WriteBinary(w io.Writer, model *Model) error {
	bw := bufio.NewWriter(w)

	header := make([]byte, 80)
	copy(header, model.Name)
	if _, err := bw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if len(model.Triangles) > math.MaxUint32 {
		return fmt.Errorf("too many triangles: %d", len(model.Triangles))
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(model.Triangles))); err != nil {
		return fmt.Errorf("failed to write triangle count: %w", err)
	}

	for i, t := range model.Triangles {
		record := struct {
			Normal, V1, V2, V3 [3]float32
			Attribute          uint16
		}{
			Normal: [3]float32{float32(t.Normal.X), float32(t.Normal.Y), float32(t.Normal.Z)},
			V1:     [3]float32{float32(t.V1.X), float32(t.V1.Y), float32(t.V1.Z)},
			V2:     [3]float32{float32(t.V2.X), float32(t.V2.Y), float32(t.V2.Z)},
			V3:     [3]float32{float32(t.V3.X), float32(t.V3.Y), float32(t.V3.Z)},
		}
		if err := binary.Write(bw, binary.LittleEndian, &record); err != nil {
			return fmt.Errorf("failed to write triangle %d: %w", i, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write binary STL: %w", err)
	}
	return nil
}

// WriteFile writes the model to path, binary or ASCII
func WriteFile(path string, model *Model, asBinary bool) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if asBinary {
		err = WriteBinary(file, model)
	} else {
		err = WriteASCII(file, model)
	}
	if err != nil {
		file.Close()
		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", filepath.Base(path), err)
	}
	return nil
}

func sanitizeName(name string) string {
	name = strings.Join(strings.Fields(name), "_")
	if name == "" {
		return "goshapes"
	}
	return name
}
