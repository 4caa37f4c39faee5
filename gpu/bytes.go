// Package gpu describes the vertex and uniform layouts the math types are
// uploaded with. Matrices are copied as their flat float32 image, which is
// exactly what GLSL expects for a column-major mat4 used as M * v.
package gpu

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// RawBytes writes a fixed size value as its little endian byte representation
// so it can be handed to vk.Memcopy or push constants.
func RawBytes(p any) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, p); err != nil {
		return nil, fmt.Errorf("gpu: raw bytes of %T: %w", p, err)
	}
	return buf.Bytes(), nil
}
