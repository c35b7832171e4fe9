// pkg/render/hex_renderer.go
package render

import (
	"image/color"
	"math"
	"strings"

	"hexnav/pkg/hexmap"
	"hexnav/pkg/screen"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Scene — всё, что нужно нарисовать поверх карты в этом кадре
type Scene struct {
	Blocked  []hexmap.Hex
	Path     []hexmap.Hex
	Hover    hexmap.Hex
	HasHover bool

	HasActor       bool
	ActorX, ActorZ float64
	ActorHeading   float64

	HUD []string
}

type HexRenderer struct {
	layout   hexmap.Layout
	view     screen.Viewport
	colors   MapColors
	cells    []hexmap.Hex
	fillImg  *ebiten.Image
	fillVs   []ebiten.Vertex
	fillIs   []uint16
	strokeVs []ebiten.Vertex
	strokeIs []uint16
	face     text.Face
	mapImage *ebiten.Image // предрендеренная карта
}

func NewHexRenderer(layout hexmap.Layout, view screen.Viewport, cells []hexmap.Hex, colors MapColors) *HexRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	r := &HexRenderer{
		layout:   layout,
		view:     view,
		colors:   colors,
		cells:    cells,
		fillImg:  fillImg,
		fillVs:   make([]ebiten.Vertex, 0, 18),
		fillIs:   make([]uint16, 0, 18),
		strokeVs: make([]ebiten.Vertex, 0, 36),
		strokeIs: make([]uint16, 0, 36),
		face:     text.NewGoXFace(basicfont.Face7x13),
		mapImage: ebiten.NewImage(view.Width, view.Height),
	}
	r.RenderMapImage()
	return r
}

// RenderMapImage рисует фон и все ячейки как проходимые. Блокировки и путь
// рисуются поверх в Draw, поэтому перерисовка нужна только при смене окна.
func (r *HexRenderer) RenderMapImage() {
	r.mapImage.Fill(r.colors.BackgroundColor)
	for _, h := range r.cells {
		r.drawHexFill(r.mapImage, h, r.colors.WalkableColor)
	}
	stroke := LightenColor(r.colors.WalkableColor, 40)
	for _, h := range r.cells {
		r.drawHexOutline(r.mapImage, h, stroke, r.colors.StrokeWidth)
	}
}

func (r *HexRenderer) Draw(dst *ebiten.Image, scene Scene) {
	dst.DrawImage(r.mapImage, nil)

	for _, h := range scene.Blocked {
		r.drawHexFill(dst, h, r.colors.BlockedColor)
		r.drawHexOutline(dst, h, LightenColor(r.colors.BlockedColor, 40), r.colors.StrokeWidth)
	}
	for _, h := range scene.Path {
		r.drawHexFill(dst, h, r.colors.PathColor)
	}
	if scene.HasHover {
		r.drawHexFill(dst, scene.Hover, r.colors.HoverColor)
	}
	if scene.HasActor {
		r.drawActor(dst, scene.ActorX, scene.ActorZ, scene.ActorHeading)
	}
	r.drawHUD(dst, scene.HUD)
}

func (r *HexRenderer) hexPath(h hexmap.Hex) vector.Path {
	path := vector.Path{}
	for i, c := range r.layout.Corners(h) {
		px, py := r.view.WorldToScreen(c[0], c[1])
		if i == 0 {
			path.MoveTo(float32(px), float32(py))
		} else {
			path.LineTo(float32(px), float32(py))
		}
	}
	path.Close()
	return path
}

func (r *HexRenderer) drawHexFill(target *ebiten.Image, h hexmap.Hex, fillColor color.RGBA) {
	path := r.hexPath(h)
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	paint(r.fillVs, fillColor)
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *HexRenderer) drawHexOutline(target *ebiten.Image, h hexmap.Hex, strokeColor color.RGBA, width float32) {
	path := r.hexPath(h)
	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: width,
	})
	paint(r.strokeVs, strokeColor)
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// drawActor рисует персонажа кругом и линией направления взгляда.
// Угол 0 смотрит вдоль +Z, то есть вниз по экрану.
func (r *HexRenderer) drawActor(dst *ebiten.Image, x, z, heading float64) {
	sx, sy := r.view.WorldToScreen(x, z)
	radius := r.view.Scale(r.layout.Size * 0.45)
	vector.DrawFilledCircle(dst, float32(sx), float32(sy), float32(radius), r.colors.ActorColor, true)

	hx := sx + math.Sin(heading)*radius*1.6
	hy := sy + math.Cos(heading)*radius*1.6
	vector.StrokeLine(dst, float32(sx), float32(sy), float32(hx), float32(hy), 2, r.colors.HeadingColor, true)
}

func (r *HexRenderer) drawHUD(dst *ebiten.Image, lines []string) {
	if len(lines) == 0 {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(10, 10)
	op.LineSpacing = 16
	op.ColorScale.ScaleWithColor(r.colors.TextColor)
	text.Draw(dst, strings.Join(lines, "\n"), r.face, op)
}

func paint(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}
