package lowpoly

// RebuildFaces maps each face through the vertex remapping produced by
// Cluster and returns the faces that survive. A face is dropped when two
// of its remapped indices coincide (zero area after the merge) or when the
// same index set was already emitted (overlapping duplicate). Index order
// inside surviving faces is untouched, preserving the original winding and
// with it the surface normals. Output order is the order faces are first
// accepted.
func RebuildFaces(faces [][3]int, remap []int) [][3]int {
	out := make([][3]int, 0, len(faces))
	seen := make(map[[3]int]struct{}, len(faces))
	for _, f := range faces {
		a, b, c := remap[f[0]], remap[f[1]], remap[f[2]]
		if a == b || b == c || a == c {
			continue
		}
		key := sortedTriple(a, b, c)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, [3]int{a, b, c})
	}
	return out
}

// sortedTriple orders three indices ascending so that faces differing only
// in winding or rotation compare equal as index sets.
func sortedTriple(a, b, c int) [3]int {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return [3]int{a, b, c}
}
