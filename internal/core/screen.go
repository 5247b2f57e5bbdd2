package core

import (
	"image/color"
	"strings"
)

// HalfBlock is the rune used for cells that carry two stacked pixels:
// the foreground paints the upper half and the background the lower half.
const HalfBlock = '▀'

// Default cell colors.
var (
	DefaultFG = color.RGBA{R: 0xe5, G: 0xe7, B: 0xeb, A: 0xff}
	DefaultBG = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
)

// Cell is a single terminal character with its colors.
type Cell struct {
	Rune rune
	FG   color.RGBA
	BG   color.RGBA
}

// Screen is a 2D cell buffer for rendering game graphics in a terminal.
// Each cell is either a text glyph or a pair of vertically stacked pixels
// drawn with HalfBlock, which doubles the vertical resolution.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  Max(width, 0),
		height: Max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	width, height = Max(width, 0), Max(height, 0)
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := Min(oldW, width)
	copyH := Min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with blank default-colored cells.
func (s *Screen) Clear() {
	s.Fill(' ')
}

// Fill fills the entire screen with the given rune in default colors.
func (s *Screen) Fill(r rune) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: r, FG: DefaultFG, BG: DefaultBG}
		}
	}
}

// inBounds reports whether (x, y) addresses a cell.
func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// GetCell returns the cell at the given position.
// Returns a blank default cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return Cell{Rune: ' ', FG: DefaultFG, BG: DefaultBG}
	}
	return s.cells[y][x]
}

// PixelRows returns the number of pixel rows (twice the cell rows).
func (s *Screen) PixelRows() int {
	return s.height * 2
}

// pixel returns the color of pixel (px, py), where py counts half-cells.
// Text cells report their background for both halves.
func (s *Screen) pixel(px, py int) color.RGBA {
	cell := s.GetCell(px, py/2)
	if cell.Rune == HalfBlock && py%2 == 0 {
		return cell.FG
	}
	return cell.BG
}

// SetPixel paints one half of a cell. Text in the cell is replaced by pixels.
func (s *Screen) SetPixel(px, py int, c color.RGBA) {
	y := py / 2
	if py < 0 || !s.inBounds(px, y) {
		return
	}
	cell := &s.cells[y][px]
	if cell.Rune != HalfBlock {
		cell.Rune = HalfBlock
		cell.FG = cell.BG
	}
	if py%2 == 0 {
		cell.FG = c
	} else {
		cell.BG = c
	}
}

// BlendPixel composites c over pixel (px, py). Unlike SetPixel it keeps
// text glyphs, tinting both their colors.
func (s *Screen) BlendPixel(px, py int, c color.Color) {
	y := py / 2
	if py < 0 || !s.inBounds(px, y) {
		return
	}
	cell := &s.cells[y][px]
	switch {
	case cell.Rune != HalfBlock:
		// Text or blank cell: tint once, on the upper half pass only.
		if py%2 == 0 {
			cell.FG = Over(cell.FG, c)
			cell.BG = Over(cell.BG, c)
		}
	case py%2 == 0:
		cell.FG = Over(cell.FG, c)
	default:
		cell.BG = Over(cell.BG, c)
	}
}

// DrawText writes a string horizontally starting at (x, y) in default colors.
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, DefaultFG)
}

// DrawTextColored writes text with the given foreground, keeping each
// cell's current background so text floats over drawn pixels.
func (s *Screen) DrawTextColored(x, y int, text string, fg color.RGBA) {
	i := 0
	for _, r := range text {
		cx := x + i
		i++
		if !s.inBounds(cx, y) {
			continue
		}
		cell := &s.cells[y][cx]
		cell.Rune = r
		cell.FG = fg
	}
}

// String converts the screen buffer to a plain string without colors.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}
