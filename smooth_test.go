package lowpoly_test

import (
	"errors"
	"testing"

	"github.com/soypat/lowpoly"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestSmoothZeroIterationsIsIdentity(t *testing.T) {
	verts := []r3.Vec{
		{X: 0.123456789},
		{Y: 9.87654321},
		{Z: -3.14159},
	}
	orig := append([]r3.Vec(nil), verts...)
	faces := [][3]int{{0, 1, 2}}
	if err := lowpoly.Smooth(verts, faces, 0); err != nil {
		t.Fatal(err)
	}
	for i := range verts {
		if verts[i] != orig[i] {
			t.Errorf("vertex %d moved with zero iterations: %v != %v", i, verts[i], orig[i])
		}
	}
}

func TestSmoothFixedPoint(t *testing.T) {
	// All vertices share one position, so each already equals its
	// neighbors' mean. Any iteration count must leave them bit-identical.
	p := r3.Vec{X: 1.5, Y: -2.25, Z: 0.75}
	verts := []r3.Vec{p, p, p}
	faces := [][3]int{{0, 1, 2}}
	if err := lowpoly.Smooth(verts, faces, 10); err != nil {
		t.Fatal(err)
	}
	for i := range verts {
		if verts[i] != p {
			t.Errorf("fixed point vertex %d moved to %v", i, verts[i])
		}
	}
}

func TestSmoothSimultaneousUpdate(t *testing.T) {
	// One pass over a triangle: every vertex must move to the mean of the
	// other two as they were before the pass began.
	verts := []r3.Vec{
		{X: 0},
		{X: 1},
		{X: 0, Y: 1},
	}
	orig := append([]r3.Vec(nil), verts...)
	faces := [][3]int{{0, 1, 2}}
	if err := lowpoly.Smooth(verts, faces, 1); err != nil {
		t.Fatal(err)
	}
	want := []r3.Vec{
		r3.Scale(0.5, r3.Add(orig[1], orig[2])),
		r3.Scale(0.5, r3.Add(orig[0], orig[2])),
		r3.Scale(0.5, r3.Add(orig[0], orig[1])),
	}
	for i := range verts {
		if !equalWithin(verts[i], want[i], tol) {
			t.Errorf("vertex %d = %v, want %v", i, verts[i], want[i])
		}
	}
}

func TestSmoothIsolatedVertexUnmoved(t *testing.T) {
	lone := r3.Vec{X: 42, Y: -42, Z: 42}
	verts := []r3.Vec{
		{X: 0},
		{X: 1},
		{Y: 1},
		lone, // referenced by no face
	}
	faces := [][3]int{{0, 1, 2}}
	if err := lowpoly.Smooth(verts, faces, 5); err != nil {
		t.Fatal(err)
	}
	if verts[3] != lone {
		t.Errorf("isolated vertex moved to %v", verts[3])
	}
}

func TestSmoothNegativeIterations(t *testing.T) {
	verts := []r3.Vec{{X: 1}, {X: 2}, {X: 3}}
	orig := append([]r3.Vec(nil), verts...)
	err := lowpoly.Smooth(verts, [][3]int{{0, 1, 2}}, -1)
	var cerr *lowpoly.ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("got %v, want ConfigError", err)
	}
	if cerr.Param != "rounding" {
		t.Errorf("got param %q, want \"rounding\"", cerr.Param)
	}
	for i := range verts {
		if verts[i] != orig[i] {
			t.Errorf("vertex %d touched despite error", i)
		}
	}
}

func TestSmoothDamped(t *testing.T) {
	faces := [][3]int{{0, 1, 2}}
	mk := func() []r3.Vec {
		return []r3.Vec{{X: 0}, {X: 1}, {X: 0, Y: 1}}
	}

	// lambda 0 never moves anything.
	verts := mk()
	orig := mk()
	if err := lowpoly.SmoothDamped(verts, faces, 3, 0); err != nil {
		t.Fatal(err)
	}
	for i := range verts {
		if verts[i] != orig[i] {
			t.Errorf("lambda=0 moved vertex %d", i)
		}
	}

	// lambda 1 equals plain Smooth.
	damped, plain := mk(), mk()
	if err := lowpoly.SmoothDamped(damped, faces, 2, 1); err != nil {
		t.Fatal(err)
	}
	if err := lowpoly.Smooth(plain, faces, 2); err != nil {
		t.Fatal(err)
	}
	for i := range damped {
		if !equalWithin(damped[i], plain[i], tol) {
			t.Errorf("lambda=1 differs from Smooth at vertex %d: %v != %v", i, damped[i], plain[i])
		}
	}

	// lambda 0.5 lands halfway between start and neighbor mean.
	verts = mk()
	if err := lowpoly.SmoothDamped(verts, faces, 1, 0.5); err != nil {
		t.Fatal(err)
	}
	mean0 := r3.Scale(0.5, r3.Add(orig[1], orig[2]))
	want0 := r3.Add(orig[0], r3.Scale(0.5, r3.Sub(mean0, orig[0])))
	if !equalWithin(verts[0], want0, tol) {
		t.Errorf("lambda=0.5 vertex 0 = %v, want %v", verts[0], want0)
	}

	// Out of range lambda is a configuration error.
	if err := lowpoly.SmoothDamped(mk(), faces, 1, 1.5); err == nil {
		t.Error("lambda=1.5 accepted, want error")
	}
}
