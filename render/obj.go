package render

import (
	"github.com/fogleman/fauxgl"
	"github.com/soypat/lowpoly"
	"gonum.org/v1/gonum/spatial/r3"
)

// LoadOBJ reads a Wavefront OBJ file into a triangle-soup mesh with every
// vertex tagged tag. Parsing is delegated to fauxgl, which triangulates
// polygonal faces on load.
func LoadOBJ(path string, tag lowpoly.Tag) (lowpoly.Mesh, error) {
	fm, err := fauxgl.LoadOBJ(path)
	if err != nil {
		return lowpoly.Mesh{}, err
	}
	tris := make([]Triangle3, len(fm.Triangles))
	for i, t := range fm.Triangles {
		tris[i] = Triangle3{V: [3]r3.Vec{
			fromFauxgl(t.V1.Position),
			fromFauxgl(t.V2.Position),
			fromFauxgl(t.V3.Position),
		}}
	}
	return FromSoup(tris, tag), nil
}

func fromFauxgl(v fauxgl.Vector) r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

func toFauxgl(v r3.Vec) fauxgl.Vector {
	return fauxgl.Vector{X: v.X, Y: v.Y, Z: v.Z}
}
