package render

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/soypat/lowpoly"
)

// WritePLY writes the mesh in binary little-endian PLY format. PLY is the
// emitter format for baked colors: when the mesh carries per-vertex colors
// they are written as uchar red/green/blue properties, otherwise the color
// properties are omitted entirely so the viewer's default material applies.
func WritePLY(w io.Writer, m lowpoly.Mesh) error {
	if len(m.Vertices) == 0 {
		return errors.New("empty vertex slice")
	}
	if err := m.Validate(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	bw.WriteString("ply\nformat binary_little_endian 1.0\n")
	fmt.Fprintf(bw, "element vertex %d\n", len(m.Vertices))
	bw.WriteString("property float x\nproperty float y\nproperty float z\n")
	if m.Colors != nil {
		bw.WriteString("property uchar red\nproperty uchar green\nproperty uchar blue\n")
	}
	fmt.Fprintf(bw, "element face %d\n", len(m.Faces))
	bw.WriteString("property list uchar int vertex_indices\nend_header\n")
	var vbuf [15]byte
	for i, v := range m.Vertices {
		f := [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
		if bad3F32(f) {
			return fmt.Errorf("inf/NaN PLY vertex %d", i)
		}
		put3F32(vbuf[:], f)
		n := 12
		if m.Colors != nil {
			c := m.Colors[i]
			vbuf[12] = colorByte(c.R)
			vbuf[13] = colorByte(c.G)
			vbuf[14] = colorByte(c.B)
			n = 15
		}
		bw.Write(vbuf[:n])
	}
	var fbuf [13]byte
	for _, f := range m.Faces {
		fbuf[0] = 3
		binary.LittleEndian.PutUint32(fbuf[1:], uint32(f[0]))
		binary.LittleEndian.PutUint32(fbuf[5:], uint32(f[1]))
		binary.LittleEndian.PutUint32(fbuf[9:], uint32(f[2]))
		bw.Write(fbuf[:])
	}
	return bw.Flush()
}

// SavePLY writes the mesh to path in binary PLY format.
func SavePLY(path string, m lowpoly.Mesh) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WritePLY(file, m)
}

// colorByte converts a color component in [0,1] to its 8 bit value.
func colorByte(x float64) byte {
	x = math.Max(0, math.Min(1, x))
	return byte(x*255 + 0.5)
}
