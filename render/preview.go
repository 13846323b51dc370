package render

import (
	"image"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"github.com/soypat/lowpoly"
	"github.com/soypat/lowpoly/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// View describes the camera used for PNG previews.
type View struct {
	// what position (point) to look at
	Lookat r3.Vec
	// which way is up (direction)
	Up r3.Vec
	// where the camera/eye is located at (point)
	Eyepos r3.Vec
	Far    float64
	Near   float64
}

// DefaultView frames the mesh from a three-quarter angle at a distance
// proportional to its bounding box.
func DefaultView(m lowpoly.Mesh) View {
	bb := d3.Box(m.Bounds())
	size := d3.Max(bb.Size())
	if size <= 0 {
		size = 1
	}
	center := bb.Center()
	return View{
		Lookat: center,
		Up:     r3.Vec{Z: 1},
		Eyepos: r3.Add(center, r3.Scale(1.5*size, r3.Unit(d3.Elem(1)))),
		Near:   0.01 * size,
		Far:    10 * size,
	}
}

// PreviewStyle carries the host's cosmetic rendering settings. The
// pipeline never interprets these; they only shape the preview raster.
type PreviewStyle struct {
	// Cartoon flattens the lighting to a high ambient term and draws
	// facet edges in the outline color.
	Cartoon bool
	Outline lowpoly.Color
}

// Preview rasterizes the mesh to an image with a simple Phong pipeline.
// Baked vertex colors are used when present, otherwise a single neutral
// object color. Normals are per-face so facets render flat.
func Preview(m lowpoly.Mesh, width, height int, view View, style PreviewStyle) image.Image {
	const (
		scale = 2  // supersampling
		fovy  = 30 // vertical field of view in degrees
	)
	var (
		eye    = toFauxgl(view.Eyepos)
		center = toFauxgl(view.Lookat)
		up     = toFauxgl(view.Up)
		light  = fauxgl.Vector{X: -0.75, Y: 1, Z: 0.25}.Normalize()
	)
	context := fauxgl.NewContext(width*scale, height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	aspect := float64(width) / float64(height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, view.Near, view.Far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	if m.Colors == nil {
		shader.ObjectColor = fauxgl.HexColor("#468966")
	}
	if style.Cartoon {
		shader.AmbientColor = fauxgl.Color{R: 0.9, G: 0.9, B: 0.9, A: 1}
		shader.DiffuseColor = fauxgl.Color{R: 0.25, G: 0.25, B: 0.25, A: 1}
		shader.SpecularPower = 0
	}
	context.Shader = shader
	context.DrawTriangles(previewTriangles(m))
	if style.Cartoon {
		o := style.Outline
		context.Shader = fauxgl.NewSolidColorShader(matrix, fauxgl.Color{R: o.R, G: o.G, B: o.B, A: 1})
		context.LineWidth = float64(scale)
		context.DrawLines(edgeLines(m))
	}
	img := context.Image()
	return resize.Resize(uint(width), uint(height), img, resize.Bilinear)
}

// SavePreviewPNG renders the mesh and writes the raster to path.
func SavePreviewPNG(path string, m lowpoly.Mesh, width, height int, view View, style PreviewStyle) error {
	return fauxgl.SavePNG(path, Preview(m, width, height, view, style))
}

// previewTriangles converts the mesh to fauxgl triangles with flat per-face
// normals and baked vertex colors when present.
func previewTriangles(m lowpoly.Mesh) []*fauxgl.Triangle {
	tris := make([]*fauxgl.Triangle, len(m.Faces))
	for i, f := range m.Faces {
		t3 := Triangle3{V: [3]r3.Vec{m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]}}
		normal := toFauxgl(t3.Normal())
		tri := new(fauxgl.Triangle)
		for j, vi := range f {
			vert := fauxgl.Vertex{
				Position: toFauxgl(m.Vertices[vi]),
				Normal:   normal,
			}
			if m.Colors != nil {
				c := m.Colors[vi]
				vert.Color = fauxgl.Color{R: c.R, G: c.G, B: c.B, A: 1}
			}
			switch j {
			case 0:
				tri.V1 = vert
			case 1:
				tri.V2 = vert
			case 2:
				tri.V3 = vert
			}
		}
		tris[i] = tri
	}
	return tris
}

// edgeLines returns one line per unique mesh edge for outline drawing.
func edgeLines(m lowpoly.Mesh) []*fauxgl.Line {
	seen := make(map[[2]int]struct{}, 3*len(m.Faces))
	lines := make([]*fauxgl.Line, 0, 3*len(m.Faces))
	for _, f := range m.Faces {
		for j := 0; j < 3; j++ {
			edge := [2]int{f[j], f[(j+1)%3]}
			if edge[0] > edge[1] {
				edge[0], edge[1] = edge[1], edge[0]
			}
			if _, ok := seen[edge]; ok {
				continue
			}
			seen[edge] = struct{}{}
			lines = append(lines, fauxgl.NewLineForPoints(
				toFauxgl(m.Vertices[edge[0]]),
				toFauxgl(m.Vertices[edge[1]]),
			))
		}
	}
	return lines
}
