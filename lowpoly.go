// Package lowpoly re-derives a simplified, faceted "low-poly" version of a
// triangle mesh such as a molecular surface: vertex positions are snapped
// onto a coarse grid and merged, faces that collapse in the process are
// dropped, optional Laplacian smoothing softens the facets and per-vertex
// colors are reassigned from a palette cycled across mesh components.
//
// The pipeline is a pure function over in-memory buffers. It performs no
// I/O and keeps no state between calls, so independent callers may run it
// concurrently on independent meshes. Acquiring the input surface and
// displaying the result are the host's concern; see the render package for
// boundary adapters.
package lowpoly

import (
	"math"

	"github.com/soypat/lowpoly/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Tag identifies the structural component a vertex belongs to, typically
// a protein chain. Tags are opaque to the pipeline: only equality and the
// order of first appearance matter. Values need not be small or contiguous.
type Tag int

// Mesh is the unit of exchange with the rendering host.
type Mesh struct {
	Vertices []r3.Vec
	// Tags holds one component tag per vertex. A nil Tags means every
	// vertex belongs to the zero component.
	Tags []Tag
	// Faces are vertex index triples into Vertices. Index order defines
	// the winding and is preserved by the pipeline.
	Faces [][3]int
	// Colors holds one entry per vertex once baked by the colorizer.
	// nil means colors are unset and the host's default material applies.
	Colors []Color
}

// Config are the pipeline parameters. CartoonStyle, OutlineColor and Name
// are host rendering and labeling concerns carried through untouched; the
// pipeline never interprets them.
type Config struct {
	// Factor is the clustering grid cell size in model units (angstroms
	// for molecular surfaces). Larger factors yield fewer, larger facets.
	Factor float64
	// Rounding is the number of Laplacian smoothing iterations.
	// Zero leaves the simplified geometry untouched.
	Rounding int
	// Color selects how vertex colors are baked. The zero value cycles
	// the built-in pastel palette across components.
	Color Spec

	CartoonStyle bool
	OutlineColor string
	Name         string
}

// Validate checks all parameters. It resolves color tokens so that a bad
// color name surfaces here, before any mesh processing begins.
func (cfg Config) Validate() error {
	if cfg.Factor <= 0 {
		return configErrf("factor", "grid cell size must be positive, got %g", cfg.Factor)
	}
	if cfg.Rounding < 0 {
		return configErrf("rounding", "smoothing iterations must be non-negative, got %d", cfg.Rounding)
	}
	_, err := cfg.Color.resolve()
	return err
}

// Validate checks the mesh buffers against each other: per-vertex arrays
// must match the vertex count and face indices must be in range.
func (m Mesh) Validate() error {
	if m.Tags != nil && len(m.Tags) != len(m.Vertices) {
		return inputErrf(len(m.Tags), "got %d component tags for %d vertices", len(m.Tags), len(m.Vertices))
	}
	if m.Colors != nil && len(m.Colors) != len(m.Vertices) {
		return inputErrf(len(m.Colors), "got %d colors for %d vertices", len(m.Colors), len(m.Vertices))
	}
	for i, f := range m.Faces {
		for _, vi := range f {
			if vi < 0 || vi >= len(m.Vertices) {
				return inputErrf(i, "face references vertex %d, mesh has %d", vi, len(m.Vertices))
			}
		}
	}
	return nil
}

// Bounds returns the axis aligned bounding box of the mesh vertices.
func (m Mesh) Bounds() r3.Box {
	bb := d3.Box{Min: d3.Elem(math.MaxFloat64), Max: d3.Elem(-math.MaxFloat64)}
	for _, v := range m.Vertices {
		bb.Min = d3.MinElem(bb.Min, v)
		bb.Max = d3.MaxElem(bb.Max, v)
	}
	return r3.Box(bb)
}

// Simplify runs the full pipeline over m and returns the simplified mesh.
// The input mesh is not modified. Configuration and input are validated in
// full up front: on error no partial result is returned.
//
// Total collapse is not an error. A factor larger than the mesh diagonal
// yields a single vertex and an empty face list.
func Simplify(m Mesh, cfg Config) (Mesh, error) {
	if err := cfg.Validate(); err != nil {
		return Mesh{}, err
	}
	if err := m.Validate(); err != nil {
		return Mesh{}, err
	}
	verts, tags, remap, err := Cluster(m.Vertices, m.Tags, cfg.Factor)
	if err != nil {
		return Mesh{}, err
	}
	faces := RebuildFaces(m.Faces, remap)
	if err := Smooth(verts, faces, cfg.Rounding); err != nil {
		return Mesh{}, err
	}
	colors, err := cfg.Color.Colorize(tags, len(verts))
	if err != nil {
		return Mesh{}, err
	}
	return Mesh{Vertices: verts, Tags: tags, Faces: faces, Colors: colors}, nil
}
