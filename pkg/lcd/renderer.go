package lcd

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/potatoeggy/ece198/pkg/device"
)

var (
	backlightColor = color.RGBA{R: 40, G: 90, B: 200, A: 255}
	cellColor      = color.RGBA{R: 50, G: 105, B: 220, A: 255}
	pixelColor     = color.RGBA{R: 230, G: 240, B: 255, A: 255}
)

const (
	cellWidth  = float32(18)
	cellHeight = float32(28)
	cellGap    = float32(2)
	padding    = float32(12)
	textSize   = float32(20)
)

// lcdRenderer draws one rectangle and one text object per character cell.
type lcdRenderer struct {
	lcd *LCDWidget

	background *canvas.Rectangle
	cells      [2][]*canvas.Rectangle
	chars      [2][]*canvas.Text
	cursor     *canvas.Rectangle

	objects []fyne.CanvasObject
}

func (r *lcdRenderer) build() {
	width := r.lcd.Width()

	r.background = canvas.NewRectangle(backlightColor)
	r.background.CornerRadius = 4
	r.objects = []fyne.CanvasObject{r.background}

	for row := range r.cells {
		r.cells[row] = make([]*canvas.Rectangle, width)
		r.chars[row] = make([]*canvas.Text, width)
		for col := 0; col < width; col++ {
			cell := canvas.NewRectangle(cellColor)
			text := canvas.NewText(" ", pixelColor)
			text.TextSize = textSize
			text.TextStyle = fyne.TextStyle{Monospace: true}
			text.Alignment = fyne.TextAlignCenter

			r.cells[row][col] = cell
			r.chars[row][col] = text
			r.objects = append(r.objects, cell, text)
		}
	}

	r.cursor = canvas.NewRectangle(pixelColor)
	r.objects = append(r.objects, r.cursor)
}

// MinSize returns the size of the full character grid.
func (r *lcdRenderer) MinSize() fyne.Size {
	width := float32(r.lcd.Width())
	return fyne.NewSize(
		2*padding+width*cellWidth+(width-1)*cellGap,
		2*padding+2*cellHeight+cellGap,
	)
}

// Layout centers the character grid in size.
func (r *lcdRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)

	grid := r.MinSize()
	originX := (size.Width - grid.Width) / 2
	originY := (size.Height - grid.Height) / 2

	for row := range r.cells {
		for col := range r.cells[row] {
			pos := r.cellPos(originX, originY, row, col)
			r.cells[row][col].Move(pos)
			r.cells[row][col].Resize(fyne.NewSize(cellWidth, cellHeight))
			r.chars[row][col].Move(pos)
			r.chars[row][col].Resize(fyne.NewSize(cellWidth, cellHeight))
		}
	}
	r.placeCursor(originX, originY)
}

// Refresh copies the frame contents into the text objects.
func (r *lcdRenderer) Refresh() {
	lines := r.lcd.Lines()
	for row := range r.chars {
		for col, text := range r.chars[row] {
			c := " "
			if col < len(lines[row]) {
				c = lines[row][col : col+1]
			}
			if text.Text != c {
				text.Text = c
				text.Refresh()
			}
		}
	}

	size := r.lcd.Size()
	grid := r.MinSize()
	r.placeCursor((size.Width-grid.Width)/2, (size.Height-grid.Height)/2)
	r.cursor.Refresh()
}

// placeCursor draws an underline below the cell at the cursor address.
// The cursor is hidden when it sits past the visible columns.
func (r *lcdRenderer) placeCursor(originX, originY float32) {
	addr := r.lcd.Cursor()
	row, col := 0, int(addr)
	if addr >= device.SecondLine {
		row, col = 1, int(addr-device.SecondLine)
	}
	if col >= r.lcd.Width() {
		r.cursor.Hide()
		return
	}

	pos := r.cellPos(originX, originY, row, col)
	r.cursor.Move(fyne.NewPos(pos.X+2, pos.Y+cellHeight-4))
	r.cursor.Resize(fyne.NewSize(cellWidth-4, 2))
	r.cursor.Show()
}

func (r *lcdRenderer) cellPos(originX, originY float32, row, col int) fyne.Position {
	return fyne.NewPos(
		originX+padding+float32(col)*(cellWidth+cellGap),
		originY+padding+float32(row)*(cellHeight+cellGap),
	)
}

// Objects returns all canvas objects for rendering.
func (r *lcdRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *lcdRenderer) Destroy() {}
