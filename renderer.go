package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/panelgrid/common"
	"github.com/milk9111/panelgrid/ecs"
	"github.com/milk9111/panelgrid/ecs/render"
)

var whiteImage = ebiten.NewImage(3, 3)

// whiteSubImage is the 1x1 center of whiteImage, so sampling never bleeds.
var whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

func init() {
	whiteImage.Fill(color.White)
}

// Renderer draws every panel as two vertex-colored triangles.
type Renderer struct {
	camera     *common.OrthoCamera
	background color.Color
	quads      []render.Quad
	verts      []ebiten.Vertex
	inds       []uint32
}

func NewRenderer(camera *common.OrthoCamera, background common.Color) *Renderer {
	return &Renderer{camera: camera, background: background.NRGBA()}
}

func (r *Renderer) Draw(screen *ebiten.Image, w *ecs.World) {
	if r == nil || r.camera == nil {
		return
	}
	screen.Fill(r.background)

	cam := *r.camera
	r.quads = render.Quads(w, cam.Forward(), r.quads)
	if len(r.quads) == 0 {
		return
	}

	r.verts = r.verts[:0]
	r.inds = r.inds[:0]
	for _, q := range r.quads {
		base := uint32(len(r.verts))
		c := q.Color
		for _, corner := range q.Corners {
			x, y := cam.WorldToScreen(corner)
			r.verts = append(r.verts, ebiten.Vertex{
				DstX:   float32(x),
				DstY:   float32(y),
				SrcX:   1.5,
				SrcY:   1.5,
				ColorR: float32(c.R),
				ColorG: float32(c.G),
				ColorB: float32(c.B),
				ColorA: float32(c.A),
			})
		}
		r.inds = append(r.inds, base, base+1, base+2, base, base+2, base+3)
	}

	var op ebiten.DrawTrianglesOptions
	op.AntiAlias = false
	screen.DrawTriangles32(r.verts, r.inds, whiteSubImage, &op)
}
