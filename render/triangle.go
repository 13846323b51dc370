// Package render adapts meshes at the boundary with the visualization
// host: flat triangle soups, STL and colored PLY codecs, OBJ import and a
// PNG preview rasterizer. The core pipeline in the parent package never
// touches files; everything file-shaped lives here.
package render

import (
	"github.com/soypat/lowpoly"
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle3 is a triangle in 3D space, the unit in which surface geometry
// crosses the host boundary.
type Triangle3 struct {
	V [3]r3.Vec
}

// Normal returns the normal vector to the plane defined by the triangle.
// Degenerate triangles return the +Z axis.
func (t Triangle3) Normal() r3.Vec {
	e1 := r3.Sub(t.V[1], t.V[0])
	e2 := r3.Sub(t.V[2], t.V[0])
	n := r3.Cross(e1, e2)
	if r3.Norm(n) == 0 {
		return r3.Vec{Z: 1}
	}
	return r3.Unit(n)
}

// Soup flattens an indexed mesh into independent triangles, dropping tags
// and colors.
func Soup(m lowpoly.Mesh) []Triangle3 {
	tris := make([]Triangle3, len(m.Faces))
	for i, f := range m.Faces {
		tris[i] = Triangle3{V: [3]r3.Vec{
			m.Vertices[f[0]],
			m.Vertices[f[1]],
			m.Vertices[f[2]],
		}}
	}
	return tris
}

// FromSoup builds an indexed mesh from independent triangles with every
// vertex tagged tag. Each triangle contributes three fresh vertices;
// merging coincident ones is the clustering stage's job, not this one's.
func FromSoup(tris []Triangle3, tag lowpoly.Tag) lowpoly.Mesh {
	m := lowpoly.Mesh{
		Vertices: make([]r3.Vec, 0, 3*len(tris)),
		Tags:     make([]lowpoly.Tag, 0, 3*len(tris)),
		Faces:    make([][3]int, 0, len(tris)),
	}
	for _, t := range tris {
		n := len(m.Vertices)
		m.Vertices = append(m.Vertices, t.V[0], t.V[1], t.V[2])
		m.Tags = append(m.Tags, tag, tag, tag)
		m.Faces = append(m.Faces, [3]int{n, n + 1, n + 2})
	}
	return m
}

// Merge concatenates meshes into one, offsetting face indices. Missing tag
// arrays read as the zero component. Colors are kept only when every input
// carries them, since a partially colored mesh has no meaning downstream.
func Merge(meshes ...lowpoly.Mesh) lowpoly.Mesh {
	colored := len(meshes) > 0
	for _, m := range meshes {
		if m.Colors == nil {
			colored = false
		}
	}
	var out lowpoly.Mesh
	for _, m := range meshes {
		off := len(out.Vertices)
		out.Vertices = append(out.Vertices, m.Vertices...)
		for i := range m.Vertices {
			var t lowpoly.Tag
			if m.Tags != nil {
				t = m.Tags[i]
			}
			out.Tags = append(out.Tags, t)
		}
		if colored {
			out.Colors = append(out.Colors, m.Colors...)
		}
		for _, f := range m.Faces {
			out.Faces = append(out.Faces, [3]int{f[0] + off, f[1] + off, f[2] + off})
		}
	}
	return out
}
