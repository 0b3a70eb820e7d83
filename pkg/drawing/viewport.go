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
	nora "github.com/timburks/noradraw/pkg/types"
)

// Margin kept between a recentered drawing and the display edge.
const CornerMargin = 2

// A Viewport maps the surface onto the display. Corner is the surface
// location shown at the top left cell of the display.
type Viewport struct {
	Corner nora.Point
}

// Recompute returns the viewport that keeps log visible on a display.
func (v Viewport) Recompute(log *PointLog, display nora.Size) Viewport {
	return Viewport{Corner: FindCorner(log, v.Corner, display)}
}

// Clamp returns the cursor pulled back inside the visible region.
func (v Viewport) Clamp(cursor nora.Point, display nora.Size) nora.Point {
	return ClampCursor(cursor, v.Corner, display)
}

// Rect returns the region of the surface that is visible.
func (v Viewport) Rect(display nora.Size) nora.Rect {
	return nora.Rect{Origin: v.Corner, Size: display}
}

// FindCorner computes the display corner for a drawing.
// An empty drawing is shown from (0,0). Otherwise the corner only moves
// when the drawing extends past the bottom or right of the display; it
// is then placed a margin above and left of the drawing. A drawing that
// fits keeps the previous corner.
func FindCorner(log *PointLog, previous nora.Point, display nora.Size) nora.Point {
	if log == nil || log.Len() == 0 {
		return nora.Point{}
	}
	min, max := log.Bounds(display)
	if max.Row > display.Rows || max.Col > display.Cols {
		return nora.Point{
			Row: maxInt(min.Row-CornerMargin, 0),
			Col: maxInt(min.Col-CornerMargin, 0),
		}
	}
	return previous
}

// ClampCursor keeps the cursor from sitting below or right of the display.
func ClampCursor(cursor, corner nora.Point, display nora.Size) nora.Point {
	return nora.Point{
		Row: minInt(cursor.Row, display.Rows+corner.Row-1),
		Col: minInt(cursor.Col, display.Cols+corner.Col-1),
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
