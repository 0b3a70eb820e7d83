//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package drawing

import (
	"github.com/mattn/go-runewidth"

	nora "github.com/timburks/noradraw/pkg/types"
)

// Surface dimensions, big enough for a fullscreen terminal on a large screen.
const (
	SurfaceRows = 128
	SurfaceCols = 368
)

// A Surface is a fixed-size grid of cells that wraps around at its edges.
// The cursor is always a valid cell.
type Surface struct {
	size   nora.Size
	cells  []nora.Cell
	cursor nora.Point
}

func NewSurface(size nora.Size) *Surface {
	if size.Rows <= 0 || size.Cols <= 0 {
		size = nora.Size{Rows: SurfaceRows, Cols: SurfaceCols}
	}
	return &Surface{
		size:  size,
		cells: make([]nora.Cell, size.Rows*size.Cols),
	}
}

func (s *Surface) Size() nora.Size {
	return s.size
}

func (s *Surface) Cursor() nora.Point {
	return s.cursor
}

// MoveBy moves the cursor, wrapping around the edges of the surface.
func (s *Surface) MoveBy(dy, dx int) nora.Point {
	return s.MoveTo(nora.Point{Row: s.cursor.Row + dy, Col: s.cursor.Col + dx})
}

func (s *Surface) MoveTo(p nora.Point) nora.Point {
	s.cursor = nora.Wrap(p, s.size)
	return s.cursor
}

// Cell returns the cell at a location. Locations outside the surface
// are not wrapped; they report false.
func (s *Surface) Cell(row, col int) (nora.Cell, bool) {
	if row < 0 || row >= s.size.Rows || col < 0 || col >= s.size.Cols {
		return nora.Cell{}, false
	}
	return s.cells[row*s.size.Cols+col], true
}

func (s *Surface) index(row, col int) int {
	p := nora.Wrap(nora.Point{Row: row, Col: col}, s.size)
	return p.Row*s.size.Cols + p.Col
}

// GlyphWidth returns the number of columns a glyph occupies.
func GlyphWidth(glyph string) int {
	w := runewidth.StringWidth(glyph)
	if w < 1 {
		return 1
	}
	return w
}

// StampAt writes a point's glyph and style and leaves the cursor on it.
func (s *Surface) StampAt(p nora.StampedPoint) {
	at := s.MoveTo(p.Position())
	glyph := p.Glyph
	if glyph == "" {
		glyph = " "
	}
	width := GlyphWidth(glyph)
	style := nora.Style{Pair: p.Style}
	for i := 0; i < width; i++ {
		s.release(at.Row, at.Col+i)
	}
	s.cells[s.index(at.Row, at.Col)] = nora.Cell{Glyph: glyph, Style: style, Width: width}
	for i := 1; i < width; i++ {
		s.cells[s.index(at.Row, at.Col+i)] = nora.Cell{Style: style, Cont: true}
	}
}

// ClearCell blanks a cell with the default style.
// The cursor does not move.
func (s *Surface) ClearCell(row, col int) {
	s.release(row, col)
	s.cells[s.index(row, col)] = nora.Cell{Glyph: " ", Width: 1}
}

// Clear blanks every cell. The cursor does not move.
func (s *Surface) Clear() {
	for i := range s.cells {
		s.cells[i] = nora.Cell{}
	}
}

// release removes the wide glyph, if any, that covers a cell.
func (s *Surface) release(row, col int) {
	c := s.cells[s.index(row, col)]
	if c.Cont {
		// walk left to the glyph that owns this cell
		for i := 1; i < s.size.Cols; i++ {
			head := s.cells[s.index(row, col-i)]
			if !head.Cont {
				if head.Width > i {
					s.blank(row, col-i, head.Width)
				}
				return
			}
		}
		return
	}
	if c.Width > 1 {
		s.blank(row, col, c.Width)
	}
}

func (s *Surface) blank(row, col, width int) {
	for i := 0; i < width; i++ {
		s.cells[s.index(row, col+i)] = nora.Cell{}
	}
}
