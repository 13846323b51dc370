package lowpoly_test

import (
	"errors"
	"testing"

	"github.com/soypat/lowpoly"
	"gonum.org/v1/gonum/spatial/r3"
)

// cubeMesh returns the 8 corner vertices and 12 triangulated faces of the
// unit cube, all on component 0.
func cubeMesh() lowpoly.Mesh {
	var verts []r3.Vec
	for _, x := range []float64{0, 1} {
		for _, y := range []float64{0, 1} {
			for _, z := range []float64{0, 1} {
				verts = append(verts, r3.Vec{X: x, Y: y, Z: z})
			}
		}
	}
	// Vertex index is a 3 bit code: x<<2 | y<<1 | z.
	faces := [][3]int{
		{0, 1, 3}, {0, 3, 2}, // x = 0
		{4, 7, 5}, {4, 6, 7}, // x = 1
		{0, 5, 1}, {0, 4, 5}, // y = 0
		{2, 3, 7}, {2, 7, 6}, // y = 1
		{0, 2, 6}, {0, 6, 4}, // z = 0
		{1, 5, 7}, {1, 7, 3}, // z = 1
	}
	return lowpoly.Mesh{
		Vertices: verts,
		Tags:     make([]lowpoly.Tag, len(verts)),
		Faces:    faces,
	}
}

func TestSimplifyCubeTotalCollapse(t *testing.T) {
	m := cubeMesh()
	// Factor larger than the cube diagonal collapses everything into one
	// cluster. That is a valid result, not an error.
	got, err := lowpoly.Simplify(m, lowpoly.Config{Factor: 10, Rounding: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Vertices) != 1 {
		t.Fatalf("got %d vertices, want 1", len(got.Vertices))
	}
	if len(got.Faces) != 0 {
		t.Fatalf("got %d faces, want 0", len(got.Faces))
	}
	if !equalWithin(got.Vertices[0], r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}, tol) {
		t.Errorf("representative at %v, want cube center", got.Vertices[0])
	}
	if len(got.Colors) != 1 {
		t.Errorf("got %d colors, want 1", len(got.Colors))
	}
}

func TestSimplifySmallFactorKeepsShape(t *testing.T) {
	m := cubeMesh()
	got, err := lowpoly.Simplify(m, lowpoly.Config{Factor: 0.5})
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Vertices) != 8 {
		t.Errorf("got %d vertices, want 8", len(got.Vertices))
	}
	if len(got.Faces) != 12 {
		t.Errorf("got %d faces, want 12", len(got.Faces))
	}
	for _, f := range got.Faces {
		if f[0] == f[1] || f[1] == f[2] || f[0] == f[2] {
			t.Errorf("degenerate face %v in output", f)
		}
	}
}

func TestSimplifyConfigErrorsLeaveInputUntouched(t *testing.T) {
	for _, cfg := range []lowpoly.Config{
		{Factor: 0},
		{Factor: -2},
		{Factor: 1, Rounding: -1},
		{Factor: 1, Color: lowpoly.SingleColor("nosuchcolor")},
	} {
		m := cubeMesh()
		orig := append([]r3.Vec(nil), m.Vertices...)
		_, err := lowpoly.Simplify(m, cfg)
		var cerr *lowpoly.ConfigError
		if !errors.As(err, &cerr) {
			t.Fatalf("cfg %+v: got %v, want ConfigError", cfg, err)
		}
		for i := range m.Vertices {
			if m.Vertices[i] != orig[i] {
				t.Errorf("cfg %+v: input vertex %d modified", cfg, i)
			}
		}
	}
}

func TestSimplifyInputErrors(t *testing.T) {
	m := cubeMesh()
	m.Faces = append(m.Faces, [3]int{0, 1, 99})
	_, err := lowpoly.Simplify(m, lowpoly.Config{Factor: 1})
	var ierr *lowpoly.InputError
	if !errors.As(err, &ierr) {
		t.Fatalf("out of range face index: got %v, want InputError", err)
	}
	if ierr.Index != len(m.Faces)-1 {
		t.Errorf("got offending index %d, want %d", ierr.Index, len(m.Faces)-1)
	}

	m = cubeMesh()
	m.Tags = m.Tags[:3]
	_, err = lowpoly.Simplify(m, lowpoly.Config{Factor: 1})
	if !errors.As(err, &ierr) {
		t.Fatalf("tag length mismatch: got %v, want InputError", err)
	}
}

func TestSimplifyDoesNotModifyInput(t *testing.T) {
	m := cubeMesh()
	origVerts := append([]r3.Vec(nil), m.Vertices...)
	origFaces := append([][3]int(nil), m.Faces...)
	_, err := lowpoly.Simplify(m, lowpoly.Config{Factor: 0.5, Rounding: 3})
	if err != nil {
		t.Fatal(err)
	}
	for i := range m.Vertices {
		if m.Vertices[i] != origVerts[i] {
			t.Errorf("input vertex %d modified", i)
		}
	}
	for i := range m.Faces {
		if m.Faces[i] != origFaces[i] {
			t.Errorf("input face %d modified", i)
		}
	}
}

func TestSimplifyPaletteAcrossComponents(t *testing.T) {
	// Two well separated blobs on different components.
	m := lowpoly.Mesh{
		Vertices: []r3.Vec{
			{X: 0.1}, {X: 0.2}, {X: 0.3},
			{X: 50.1}, {X: 50.2}, {X: 50.3},
		},
		Tags:  []lowpoly.Tag{9, 9, 9, 4, 4, 4},
		Faces: [][3]int{{0, 1, 2}, {3, 4, 5}},
	}
	got, err := lowpoly.Simplify(m, lowpoly.Config{
		Factor: 1,
		Color:  lowpoly.ParseColorSpec("red blue"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Vertices) != 2 {
		t.Fatalf("got %d vertices, want 2", len(got.Vertices))
	}
	red := lowpoly.Color{R: 1}
	blue := lowpoly.Color{B: 1}
	if got.Colors[0] != red {
		t.Errorf("first-seen component got %v, want red", got.Colors[0])
	}
	if got.Colors[1] != blue {
		t.Errorf("second component got %v, want blue", got.Colors[1])
	}
}

func TestMeshBounds(t *testing.T) {
	m := cubeMesh()
	bb := m.Bounds()
	if !equalWithin(bb.Min, r3.Vec{}, tol) || !equalWithin(bb.Max, r3.Vec{X: 1, Y: 1, Z: 1}, tol) {
		t.Errorf("bounds = %+v, want unit cube", bb)
	}
}
