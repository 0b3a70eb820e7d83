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
	"errors"

	nora "github.com/timburks/noradraw/pkg/types"
)

// ErrEmptyLog is returned when there is nothing to erase.
var ErrEmptyLog = errors.New("nothing to erase")

// A Drawing is a point log together with the surface it is rendered on,
// the pen and the slot it was last saved to or loaded from.
type Drawing struct {
	Log     *PointLog
	Surface *Surface
	Pen     nora.Pen
	Slot    nora.SlotID // empty until the drawing is first saved or loaded
}

// NewDrawing creates an empty drawing with the cursor in the middle of
// a display of the given size.
func NewDrawing(display nora.Size) *Drawing {
	d := &Drawing{
		Log:     NewPointLog(),
		Surface: NewSurface(nora.Size{Rows: SurfaceRows, Cols: SurfaceCols}),
		Pen:     nora.Pen{Down: true, Tip: " ", Color: 1},
	}
	d.Surface.MoveTo(nora.Point{Row: display.Rows / 2, Col: display.Cols / 2})
	return d
}

// Load replaces the contents of the drawing with a point log and
// stamps every point onto the surface.
func (d *Drawing) Load(log *PointLog, slot nora.SlotID) {
	d.Log = log
	d.Slot = slot
	d.Surface.Clear()
	log.Each(func(i int, p nora.StampedPoint) {
		d.Surface.StampAt(p)
	})
}

func (d *Drawing) Cursor() nora.Point {
	return d.Surface.Cursor()
}

func (d *Drawing) MoveBy(dy, dx int) nora.Point {
	return d.Surface.MoveBy(dy, dx)
}

func (d *Drawing) MoveCursor(direction int) nora.Point {
	switch direction {
	case nora.MoveUp:
		return d.MoveBy(-1, 0)
	case nora.MoveDown:
		return d.MoveBy(1, 0)
	case nora.MoveLeft:
		return d.MoveBy(0, -1)
	case nora.MoveRight:
		return d.MoveBy(0, 1)
	}
	return d.Cursor()
}

// Draw stamps the pen tip at the cursor if the pen is down.
func (d *Drawing) Draw() (nora.StampedPoint, bool) {
	if !d.Pen.Down {
		return nora.StampedPoint{}, false
	}
	cursor := d.Cursor()
	p := nora.StampedPoint{
		Row:   cursor.Row,
		Col:   cursor.Col,
		Glyph: d.Pen.Tip,
		Style: d.Pen.Color,
	}
	d.Log.Append(p)
	d.Surface.StampAt(p)
	return p, true
}

// EraseLast removes the most recent stamp and blanks its cell.
// If points remain, the cursor moves to the new last point.
func (d *Drawing) EraseLast() (nora.StampedPoint, error) {
	p, ok := d.Log.PopLast()
	if !ok {
		return p, ErrEmptyLog
	}
	for i := 0; i < GlyphWidth(p.Glyph); i++ {
		d.Surface.ClearCell(p.Row, p.Col+i)
	}
	if previous, ok := d.Log.Last(); ok {
		d.Surface.MoveTo(previous.Position())
	}
	return p, nil
}

func (d *Drawing) TogglePen() bool {
	d.Pen.Down = !d.Pen.Down
	return d.Pen.Down
}

func (d *Drawing) SetTip(tip string) {
	d.Pen.Tip = tip
}

// SetColor selects a color pair, folding the value into the valid range.
func (d *Drawing) SetColor(pair int) int {
	d.Pen.Color = nora.Mod(pair, nora.ColorPairs)
	return d.Pen.Color
}

func (d *Drawing) NextColor() int {
	return d.SetColor(d.Pen.Color + 1)
}
