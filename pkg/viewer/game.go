// Package viewer shows the control polygon of a document in an ebiten window.
package viewer

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	pathedit "github.com/gucio321/pathedit/pkg"
	"github.com/gucio321/pathedit/pkg/geometry"
)

var _ ebiten.Game = &Viewer{}

const (
	baseScale  = 3.0
	pathMargin = 20.0
	nodeSize   = 4.0

	// HighlightWidth is added to the stroke of the selected segment.
	HighlightWidth = 4
)

var (
	backgroundColor = colornames.Black
	originColor     = colornames.White
	travelColor     = colornames.Gray
	controlColor    = colornames.Dimgray
	nodeColor       = colornames.Lightblue
	selectedColor   = colornames.Yellow
)

// Viewer renders a pathedit.Document into an image and displays it.
// Arrow keys change the selection, Delete removes the selected command and the
// mouse wheel zooms.
type Viewer struct {
	scale       float64
	doc         *pathedit.Document
	current     *ebiten.Image
	showOrigin  bool
	strokeWidth float32
}

func NewViewer(d *pathedit.Document) *Viewer {
	result := &Viewer{
		scale:       1,
		doc:         d,
		showOrigin:  true,
		strokeWidth: 1,
	}

	result.current = result.render()

	return result
}

// ShowOrigin toggles the origin axes.
func (v *Viewer) ShowOrigin(b bool) *Viewer {
	v.showOrigin = b
	v.current = v.render()

	return v
}

// StrokeWidth sets the stroke of path segments.
func (v *Viewer) StrokeWidth(w float32) *Viewer {
	v.strokeWidth = w
	v.current = v.render()

	return v
}

func (v *Viewer) render() *ebiten.Image {
	segments := geometry.Segments(v.doc.Commands())
	bounds := geometry.PathBounds(v.doc.Commands())
	selected := v.doc.Selected()

	// 1.0: canvas covers the bounds plus a margin on every side
	w := int(math.Ceil((bounds.Width()+2*pathMargin)*baseScale)) + 1
	h := int(math.Ceil((bounds.Height()+2*pathMargin)*baseScale)) + 1
	dest := ebiten.NewImage(w, h)
	dest.Fill(backgroundColor)

	tr := func(p geometry.Point) (float32, float32) {
		return float32((p.X - bounds.MinX + pathMargin) * baseScale), float32((p.Y - bounds.MinY + pathMargin) * baseScale)
	}

	// 2.0: origin axes
	if v.showOrigin {
		ox, oy := tr(geometry.Point{})
		ebitenutil.DrawLine(dest, float64(ox), 0, float64(ox), float64(h), originColor)
		ebitenutil.DrawLine(dest, 0, float64(oy), float64(w), float64(oy), originColor)
	}

	// 3.0: segments, colored from green (first) to red (last)
	for _, s := range segments {
		x0, y0 := tr(s.From)
		x1, y1 := tr(s.To)

		// 3.1: control lines
		prevX, prevY := x0, y0
		for _, c := range s.Controls {
			cx, cy := tr(c)
			vector.StrokeLine(dest, prevX, prevY, cx, cy, 1, controlColor, true)
			vector.DrawFilledRect(dest, cx-nodeSize/2, cy-nodeSize/2, nodeSize, nodeSize, controlColor, false)
			prevX, prevY = cx, cy
		}

		if len(s.Controls) > 0 {
			vector.StrokeLine(dest, prevX, prevY, x1, y1, 1, controlColor, true)
		}

		// 3.2: the segment itself
		width := v.strokeWidth
		c := SegmentColor(s.Index, len(segments))
		switch {
		case s.Index == selected:
			width += HighlightWidth
			vector.StrokeLine(dest, x0, y0, x1, y1, width, selectedColor, true)
		case !s.Pen:
			vector.StrokeLine(dest, x0, y0, x1, y1, width, travelColor, true)
		default:
			vector.StrokeLine(dest, x0, y0, x1, y1, width, c, true)
		}

		// 3.3: end node
		vector.DrawFilledRect(dest, x1-nodeSize/2, y1-nodeSize/2, nodeSize, nodeSize, nodeColor, false)
	}

	return dest
}

func (v *Viewer) Update() error {
	_, wheelY := ebiten.Wheel()
	v.scale += wheelY * 0.1
	if v.scale < 1 {
		v.scale = 1
	}

	changed := true
	selected := v.doc.Selected()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown), inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		v.doc.Select(NextSelection(selected, v.doc.Len(), 1))
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp), inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		v.doc.Select(NextSelection(selected, v.doc.Len(), -1))
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		v.doc.Select(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyDelete):
		v.doc.Delete()
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		v.doc.MoveUp()
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		v.doc.MoveDown()
	default:
		changed = false
	}

	if changed {
		v.current = v.render()
	}

	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	mouseX, mouseY := ebiten.CursorPosition()
	if mouseX < 0 {
		mouseX = 0
	}

	if mouseY < 0 {
		mouseY = 0
	}

	renderable := v.current.SubImage(image.Rect(
		int((v.scale-1)*float64(mouseX)), int((v.scale-1)*float64(mouseY)),
		int(float64(w)+(v.scale-1)*float64(mouseX)), int(float64(h)+(v.scale-1)*float64(mouseY))))

	if renderable.Bounds().Dx() == 0 || renderable.Bounds().Dy() == 0 {
		renderable = v.current
	}

	geom := ebiten.GeoM{}
	geom.Scale(v.scale, v.scale)
	screen.DrawImage(ebiten.NewImageFromImage(renderable),
		&ebiten.DrawImageOptions{
			GeoM: geom,
		})

	if d := v.doc.SelectedData(); d != "" {
		ebitenutil.DebugPrint(screen, d)
	}
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return outsideWidth, outsideHeight
}
