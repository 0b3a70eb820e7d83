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

package screen

import (
	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	nora "github.com/timburks/noradraw/pkg/types"
)

// An overlay is a bordered window across the top of the terminal.
type overlay struct {
	screen *Screen
	rows   int
	cols   int
	closed bool
}

// OpenOverlay clears a bordered window of the given height.
// Closing the overlay redraws the frame underneath it.
func (s *Screen) OpenOverlay(rows int) nora.Overlay {
	cols, height := termbox.Size()
	if rows > height {
		rows = height
	}
	o := &overlay{screen: s, rows: rows, cols: cols}
	fg, bg := termbox.ColorDefault, termbox.ColorDefault
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			ch := ' '
			switch {
			case i == 0 && j == 0:
				ch = '┌'
			case i == 0 && j == cols-1:
				ch = '┐'
			case i == rows-1 && j == 0:
				ch = '└'
			case i == rows-1 && j == cols-1:
				ch = '┘'
			case i == 0 || i == rows-1:
				ch = '─'
			case j == 0 || j == cols-1:
				ch = '│'
			}
			termbox.SetCell(j, i, ch, fg, bg)
		}
	}
	termbox.HideCursor()
	return o
}

// Print writes text inside the border and returns the column after it.
func (o *overlay) Print(row, col int, text string, style nora.Style) int {
	if row <= 0 || row >= o.rows-1 {
		return col
	}
	fg, bg := attributes(style)
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if col+w > o.cols-1 {
			break
		}
		termbox.SetCell(col, row, ch, fg, bg)
		col += w
	}
	return col
}

func (o *overlay) Flush() {
	termbox.Flush()
}

func (o *overlay) Close() {
	if o.closed {
		return
	}
	o.closed = true
	if o.screen.rendered {
		o.screen.Render(o.screen.frame)
	} else {
		termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
		termbox.Flush()
	}
}
