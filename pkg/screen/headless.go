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
	"log"
	"strings"

	"github.com/mattn/go-runewidth"

	nora "github.com/timburks/noradraw/pkg/types"
)

// Headless is a display without a terminal. It is used to run scripts
// and it records what would have been shown.
type Headless struct {
	size     nora.Size
	frame    nora.Frame
	Frames   int      // number of renders
	Syncs    int      // number of full redraws
	Keys     int      // number of waits for a key
	Opened   int      // overlays opened
	Closed   int      // overlays closed
	Messages []string // text of every overlay, in order
}

func NewHeadless(size nora.Size) *Headless {
	return &Headless{size: size}
}

func (h *Headless) Size() nora.Size {
	return h.size
}

func (h *Headless) SetSize(size nora.Size) {
	h.size = size
}

func (h *Headless) Render(f nora.Frame) {
	h.frame = f
	h.Frames++
}

// LastFrame returns the most recently rendered frame.
func (h *Headless) LastFrame() nora.Frame {
	return h.frame
}

func (h *Headless) Sync() {
	h.Syncs++
}

func (h *Headless) WaitForKey() {
	h.Keys++
}

func (h *Headless) OpenOverlay(rows int) nora.Overlay {
	h.Opened++
	o := &headlessOverlay{display: h, rows: make([][]rune, rows)}
	return o
}

type headlessOverlay struct {
	display *Headless
	rows    [][]rune
	closed  bool
}

func (o *headlessOverlay) Print(row, col int, text string, style nora.Style) int {
	if row < 0 || row >= len(o.rows) {
		return col
	}
	line := o.rows[row]
	for len(line) < col {
		line = append(line, ' ')
	}
	for _, c := range text {
		if col < len(line) {
			line[col] = c
		} else {
			line = append(line, c)
		}
		col++
		// pad wide glyphs so columns keep lining up
		for i := 1; i < runewidth.RuneWidth(c); i++ {
			line = append(line, ' ')
			col++
		}
	}
	o.rows[row] = line
	return col
}

func (o *headlessOverlay) Flush() {}

func (o *headlessOverlay) Close() {
	if o.closed {
		return
	}
	o.closed = true
	lines := make([]string, 0)
	for _, row := range o.rows {
		line := strings.TrimRight(string(row), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	text := strings.Join(lines, "\n")
	o.display.Closed++
	o.display.Messages = append(o.display.Messages, text)
	log.Printf("overlay:\n%s", text)
}
