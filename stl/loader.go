// Package stl decodes binary STL files into scene meshes.
package stl

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"liblac/scene"
	vm "liblac/vecmath"
)

const (
	headerSize = 80
	recordSize = 50
)

var ErrTruncated = errors.New("stl: truncated triangle data")

// Read loads the binary STL file at path.
func Read(path string) (*scene.Mesh, error) {
	log.Printf("Reading stl file %s", path)
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("Successfully read stl file, Triangle Count: %d, Triangle memory size: %d KiB", len(m.Indices)/3, (len(b)-headerSize-4)/1024)
	return m, nil
}

// Decode reads a binary STL stream. Every triangle contributes three
// unshared vertices coloured with the facet normal.
func Decode(r io.Reader) (*scene.Mesh, error) {
	var header [headerSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("stl: reading header: %w", err)
	}
	var triangleCnt uint32
	if err := binary.Read(r, binary.LittleEndian, &triangleCnt); err != nil {
		return nil, fmt.Errorf("stl: reading triangle count: %w", err)
	}

	// triangleCnt is untrusted, do not preallocate from it
	var v []scene.Vertex
	var id []uint32
	var rec [recordSize]byte
	for t := uint32(0); t < triangleCnt; t++ {
		if _, err := io.ReadFull(r, rec[:]); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("%w: got %d of %d triangles", ErrTruncated, t, triangleCnt)
			}
			return nil, err
		}
		normal := toVec3(rec[0:12])
		for k := 0; k < 3; k++ {
			off := 12 + 12*k
			id = append(id, uint32(len(v)))
			v = append(v, scene.Vertex{
				Pos:   toVec3(rec[off : off+12]),
				Color: normal,
			})
		}
		// rec[48:50] is the attribute byte count, unused
	}
	return scene.NewMesh(v, id), nil
}

func toVec3(b []byte) vm.Vec3 {
	return vm.Vec3{
		toFloat32(b[0:4]),
		toFloat32(b[4:8]),
		toFloat32(b[8:12]),
	}
}

func toFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
