package lowpoly

import "gonum.org/v1/gonum/spatial/r3"

// adjacency builds the undirected neighbor lists of the mesh graph: two
// vertices are neighbors when they co-occur in a face. A vertex belonging
// to no face ends up with an empty list.
func adjacency(nverts int, faces [][3]int) [][]int {
	adj := make([][]int, nverts)
	add := func(a, b int) {
		// Linear scan keeps the list unique; facet meshes have small degree.
		for _, existing := range adj[a] {
			if existing == b {
				return
			}
		}
		adj[a] = append(adj[a], b)
	}
	for _, f := range faces {
		add(f[0], f[1])
		add(f[0], f[2])
		add(f[1], f[0])
		add(f[1], f[2])
		add(f[2], f[0])
		add(f[2], f[1])
	}
	return adj
}

// Smooth applies iterations passes of discrete Laplacian smoothing to the
// vertex positions in place: each pass moves every vertex to the unweighted
// mean of its direct neighbors' positions. All updates within one pass read
// the pre-pass positions, so the result does not depend on vertex order.
// Vertices with no neighbors are left where they are, and iterations of
// zero leaves every position bit-identical.
func Smooth(vertices []r3.Vec, faces [][3]int, iterations int) error {
	return SmoothDamped(vertices, faces, iterations, 1)
}

// SmoothDamped is Smooth with a relaxation factor: each pass moves a vertex
// the fraction lambda of the way toward its neighbors' mean. lambda of 1 is
// plain Laplacian smoothing, smaller values keep more of the faceted look.
func SmoothDamped(vertices []r3.Vec, faces [][3]int, iterations int, lambda float64) error {
	if iterations < 0 {
		return configErrf("rounding", "smoothing iterations must be non-negative, got %d", iterations)
	}
	if lambda < 0 || lambda > 1 {
		return configErrf("lambda", "relaxation factor must be in [0,1], got %g", lambda)
	}
	if iterations == 0 || len(vertices) == 0 {
		return nil
	}
	adj := adjacency(len(vertices), faces)
	prev := make([]r3.Vec, len(vertices))
	for it := 0; it < iterations; it++ {
		copy(prev, vertices)
		for i, neighbors := range adj {
			if len(neighbors) == 0 {
				continue
			}
			var sum r3.Vec
			for _, n := range neighbors {
				sum = r3.Add(sum, prev[n])
			}
			mean := r3.Scale(1/float64(len(neighbors)), sum)
			vertices[i] = r3.Add(prev[i], r3.Scale(lambda, r3.Sub(mean, prev[i])))
		}
	}
	return nil
}
