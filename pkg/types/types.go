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

package types

import "context"

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// Number of color pairs a pen can select. Pair 0 is the terminal default.
const ColorPairs = 8

// PenTips lists the glyphs that can be selected as a pen tip from the keyboard.
const PenTips = " ~`!@#$%^&*()-_+=vVxXoO|\\/[]{}'.:<>\""

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

type Rect struct {
	Origin Point
	Size   Size
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.Row >= r.Origin.Row && p.Row < r.Origin.Row+r.Size.Rows &&
		p.Col >= r.Origin.Col && p.Col < r.Origin.Col+r.Size.Cols
}

// Style selects a color pair and optional emphasis for a cell.
type Style struct {
	Pair int
	Bold bool
}

// A Cell is one character position of a surface or display.
type Cell struct {
	Glyph string
	Style Style
	Width int  // columns occupied by the glyph, 0 for an empty cell
	Cont  bool // true if this cell is covered by a wide glyph to its left
}

// Blank reports whether the cell shows nothing but the default background.
func (c Cell) Blank() bool {
	return (c.Glyph == "" || c.Glyph == " ") && c.Style.Pair == 0 && !c.Cont
}

// A SlotID names one saved drawing in a drawing store.
type SlotID string

// A StampedPoint is one pen stamp in surface coordinates.
type StampedPoint struct {
	Row   int
	Col   int
	Glyph string
	Style int
}

// Position returns the surface location of the stamp.
func (p StampedPoint) Position() Point {
	return Point{Row: p.Row, Col: p.Col}
}

// Pen holds the drawing state that is applied to every stamp.
type Pen struct {
	Down  bool
	Tip   string
	Color int
}

// Mod returns the non-negative remainder of a divided by n.
func Mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// Wrap folds p onto a torus of the given size.
func Wrap(p Point, size Size) Point {
	return Point{Row: Mod(p.Row, size.Rows), Col: Mod(p.Col, size.Cols)}
}

// A CellSource provides cells in surface coordinates.
type CellSource interface {
	Cell(row, col int) (Cell, bool)
}

// A Frame is everything a display needs to draw one screen.
type Frame struct {
	Surface CellSource
	Corner  Point // surface coordinate shown at the top left of the display
	Cursor  Point // cursor in surface coordinates
	Status  string
}

// Editor is the set of drawing commands available to the commander.
type Editor interface {
	GetCursor() Point
	GetCorner() Point
	GetSlot() SlotID
	PointCount() int

	MoveCursor(direction int) Point
	MoveBy(dy, dx int) Point
	Draw() bool
	Erase()
	TogglePen() bool
	SetTip(tip string)
	SetColor(pair int) int
	NextColor() int

	NewDrawing()
	Save() (SlotID, error)
	Load(ctx context.Context) error
	Delete() error
	TakeTurn(ctx context.Context) error
	Recenter()
	Help()
}

// Display is the terminal backend used by the editor.
type Display interface {
	Size() Size
	Render(f Frame)
	Sync()
	OpenOverlay(rows int) Overlay
	WaitForKey()
}

// Overlay is a transient window drawn over the display.
// Closing it restores the region it covered.
type Overlay interface {
	Print(row, col int, text string, style Style) int
	Flush()
	Close()
}

// Commander modes
const (
	ModeDraw = 0
	ModeQuit = 9999
)
