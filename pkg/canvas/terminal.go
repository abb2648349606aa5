package canvas

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/gcardoso89/fireworks-canvas/pkg/utils"
)

// Default number of canvas units covered by one terminal cell. Terminal
// cells are roughly twice as tall as wide.
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

// particleRune is painted for every circle that lands in a cell.
const particleRune = '●'

// Terminal renders onto a tcell screen. Canvas coordinates are scaled down
// to cells so that scenes authored for pixel canvases keep their shape.
type Terminal struct {
	screen     tcell.Screen
	cellWidth  float64
	cellHeight float64
}

// NewTerminal wraps an initialized tcell screen.
func NewTerminal(screen tcell.Screen, cellWidth, cellHeight float64) *Terminal {
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}
	if cellHeight <= 0 {
		cellHeight = DefaultCellHeight
	}
	return &Terminal{
		screen:     screen,
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
	}
}

// Size implements Canvas. It follows the current terminal size; element
// origins are still fixed when the scene is loaded.
func (t *Terminal) Size() (int, int) {
	cols, rows := t.screen.Size()
	return int(float64(cols) * t.cellWidth), int(float64(rows) * t.cellHeight)
}

// Clear implements Canvas.
func (t *Terminal) Clear() {
	t.screen.Clear()
}

// FillCircle implements Canvas. Opacity is emulated by blending the colour
// towards the black background.
func (t *Terminal) FillCircle(x, y, radius float64, clr color.Color) {
	col, row, ok := t.Cell(x, y)
	if !ok {
		return
	}
	c := color.NRGBAModel.Convert(clr).(color.NRGBA)
	if c.A == 0 {
		return
	}
	rgb := utils.RGB{R: c.R, G: c.G, B: c.B}.Blend(utils.RGB{}, 1-float64(c.A)/255)
	style := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B)))
	t.screen.SetContent(col, row, particleRune, nil, style)
}

// Cell maps a canvas position to a terminal cell.
func (t *Terminal) Cell(x, y float64) (col, row int, ok bool) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return 0, 0, false
	}
	col = int(math.Floor(x / t.cellWidth))
	row = int(math.Floor(y / t.cellHeight))
	cols, rows := t.screen.Size()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return 0, 0, false
	}
	return col, row, true
}

// Present flushes the frame to the terminal.
func (t *Terminal) Present() {
	t.screen.Show()
}
