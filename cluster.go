package lowpoly

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// clusterKey quantizes a vertex position to its grid cell coordinates.
// math.Floor keeps cells consistent across the origin; plain int64
// conversion would collapse the cells at -1 and 0 into one.
func clusterKey(v r3.Vec, factor float64) [3]int64 {
	return [3]int64{
		int64(math.Floor(v.X / factor)),
		int64(math.Floor(v.Y / factor)),
		int64(math.Floor(v.Z / factor)),
	}
}

// Cluster snaps vertex positions onto a grid of cell size factor and merges
// all vertices sharing a cell into one representative placed at the
// arithmetic mean of the members. remap maps every input vertex index to
// its representative's index in verts. Output order is the order cells are
// first seen in the input, so results are deterministic.
//
// The representative inherits the component tag of the first member.
// Members of one cell are expected to share a tag; when they do not the
// merge happens silently and the first tag wins.
func Cluster(vertices []r3.Vec, tags []Tag, factor float64) (verts []r3.Vec, vtags []Tag, remap []int, err error) {
	if factor <= 0 {
		return nil, nil, nil, configErrf("factor", "grid cell size must be positive, got %g", factor)
	}
	cells := make(map[[3]int64]int, len(vertices)/4+1)
	var (
		sums   []r3.Vec
		counts []int
	)
	remap = make([]int, len(vertices))
	for i, v := range vertices {
		key := clusterKey(v, factor)
		ci, ok := cells[key]
		if !ok {
			ci = len(sums)
			cells[key] = ci
			sums = append(sums, r3.Vec{})
			counts = append(counts, 0)
			var t Tag
			if tags != nil {
				t = tags[i]
			}
			vtags = append(vtags, t)
		}
		sums[ci] = r3.Add(sums[ci], v)
		counts[ci]++
		remap[i] = ci
	}
	verts = make([]r3.Vec, len(sums))
	for i := range sums {
		verts[i] = r3.Scale(1/float64(counts[i]), sums[i])
	}
	return verts, vtags, remap, nil
}
