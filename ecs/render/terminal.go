package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/panelgrid/common"
	"github.com/milk9111/panelgrid/ecs"
)

// CellScreen is the part of tcell.Screen the painter draws on.
type CellScreen interface {
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// TerminalPainter paints panels as cell backgrounds. Panels covering a cell's
// center are blended over the background from back to front.
type TerminalPainter struct {
	camera     *common.OrthoCamera
	background common.Color
	quads      []Quad
	cells      []common.Color
}

func NewTerminalPainter(camera *common.OrthoCamera, background common.Color) *TerminalPainter {
	return &TerminalPainter{camera: camera, background: background}
}

func (p *TerminalPainter) Paint(screen CellScreen, w *ecs.World) {
	if p == nil || screen == nil || p.camera == nil {
		return
	}

	width, height := screen.Size()
	if width <= 0 || height <= 0 {
		return
	}
	cam := *p.camera
	cam.ViewWidth, cam.ViewHeight = float64(width), float64(height)

	n := width * height
	if cap(p.cells) < n {
		p.cells = make([]common.Color, n)
	}
	p.cells = p.cells[:n]
	for i := range p.cells {
		p.cells[i] = p.background
	}

	p.quads = Quads(w, cam.Forward(), p.quads)
	for _, q := range p.quads {
		var pts [4][2]float64
		minX, minY := math.Inf(1), math.Inf(1)
		maxX, maxY := math.Inf(-1), math.Inf(-1)
		for i, c := range q.Corners {
			x, y := cam.WorldToScreen(c)
			pts[i] = [2]float64{x, y}
			minX, maxX = math.Min(minX, x), math.Max(maxX, x)
			minY, maxY = math.Min(minY, y), math.Max(maxY, y)
		}

		x0 := max(int(math.Floor(minX)), 0)
		y0 := max(int(math.Floor(minY)), 0)
		x1 := min(int(math.Ceil(maxX)), width-1)
		y1 := min(int(math.Ceil(maxY)), height-1)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				if insideQuad(pts, float64(x)+0.5, float64(y)+0.5) {
					cell := &p.cells[y*width+x]
					*cell = blend(*cell, q.Color)
				}
			}
		}
	}

	for i, c := range p.cells {
		screen.SetContent(i%width, i/width, ' ', nil, CellStyle(c))
	}
}

// CellStyle returns a style whose background is c, ignoring alpha.
func CellStyle(c common.Color) tcell.Style {
	n := c.NRGBA()
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B)))
}

// blend composites c over an opaque dst.
func blend(dst, c common.Color) common.Color {
	r, g, b := c.Over(dst)
	return common.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: 1}
}

// insideQuad reports whether (x, y) lies inside the convex quad pts, for
// either winding.
func insideQuad(pts [4][2]float64, x, y float64) bool {
	var pos, neg bool
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		cross := (b[0]-a[0])*(y-a[1]) - (b[1]-a[1])*(x-a[0])
		switch {
		case cross > 0:
			pos = true
		case cross < 0:
			neg = true
		}
		if pos && neg {
			return false
		}
	}
	return pos || neg
}
