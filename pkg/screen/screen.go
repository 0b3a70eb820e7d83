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
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	nora "github.com/timburks/noradraw/pkg/types"
)

// Rows reserved below the drawing for the info bar.
const infoBarRows = 1

// The Screen draws frames on the terminal using termbox.
type Screen struct {
	frame    nora.Frame
	rendered bool
	poll     func() termbox.Event
	pending  *termbox.Event // resize seen while waiting for a key
}

func NewScreen() (*Screen, error) {
	// Open the terminal.
	err := termbox.Init()
	if err != nil {
		return nil, err
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.SetOutputMode(termbox.OutputNormal)
	return &Screen{poll: termbox.PollEvent}, nil
}

func (s *Screen) Close() {
	termbox.Close()
}

// Size returns the size of the drawing area.
func (s *Screen) Size() nora.Size {
	cols, rows := termbox.Size()
	rows -= infoBarRows
	if rows < 1 {
		rows = 1
	}
	return nora.Size{Rows: rows, Cols: cols}
}

// Render maps the visible part of the surface onto the terminal.
func (s *Screen) Render(f nora.Frame) {
	s.frame = f
	s.rendered = true
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	size := s.Size()
	for i := 0; i < size.Rows; i++ {
		for j := 0; j < size.Cols; j++ {
			cell, ok := f.Surface.Cell(f.Corner.Row+i, f.Corner.Col+j)
			if !ok || cell.Cont || cell.Glyph == "" {
				continue
			}
			fg, bg := attributes(cell.Style)
			ch, _ := utf8.DecodeRuneInString(cell.Glyph)
			termbox.SetCell(j, i, ch, fg, bg)
		}
	}
	s.renderInfoBar(f.Status, size)

	view := nora.Rect{Origin: f.Corner, Size: size}
	if view.Contains(f.Cursor) {
		termbox.SetCursor(f.Cursor.Col-f.Corner.Col, f.Cursor.Row-f.Corner.Row)
	} else {
		termbox.HideCursor()
	}
	if err := termbox.Flush(); err != nil {
		log.Printf("flush: %+v", err)
	}
}

func (s *Screen) renderInfoBar(text string, size nora.Size) {
	text = runewidth.Truncate(text, size.Cols, "")
	text = runewidth.FillRight(text, size.Cols)
	x := 0
	for _, ch := range text {
		termbox.SetCell(x, size.Rows, ch, termbox.ColorBlack, termbox.ColorWhite)
		x += runewidth.RuneWidth(ch)
	}
}

// Sync forces a complete redraw of the terminal.
func (s *Screen) Sync() {
	if err := termbox.Sync(); err != nil {
		log.Printf("sync: %+v", err)
	}
}

// WaitForKey blocks until a key is pressed. A resize also ends the wait
// and is delivered by the next call to GetNextEvent.
func (s *Screen) WaitForKey() {
	for {
		event := s.poll()
		switch event.Type {
		case termbox.EventKey, termbox.EventError, termbox.EventInterrupt:
			return
		case termbox.EventResize:
			s.pending = &event
			return
		}
	}
}

// Interrupt wakes a blocked GetNextEvent or WaitForKey.
func (s *Screen) Interrupt() {
	termbox.Interrupt()
}

func (s *Screen) GetNextEvent() *nora.Event {
	var event termbox.Event
	if s.pending != nil {
		event = *s.pending
		s.pending = nil
	} else {
		event = s.poll()
	}
	t := nora.EventOther
	switch event.Type {
	case termbox.EventKey:
		t = nora.EventKey
	case termbox.EventResize:
		t = nora.EventResize
	case termbox.EventError:
		log.Printf("event: %+v", event.Err)
		t = nora.EventError
	}
	return &nora.Event{
		Type: t,
		Key:  key(event.Key),
		Ch:   event.Ch,
	}
}

func key(k termbox.Key) nora.Key {
	switch k {
	case termbox.KeyArrowDown:
		return nora.KeyArrowDown
	case termbox.KeyArrowLeft:
		return nora.KeyArrowLeft
	case termbox.KeyArrowRight:
		return nora.KeyArrowRight
	case termbox.KeyArrowUp:
		return nora.KeyArrowUp
	case termbox.KeyBackspace2:
		return nora.KeyBackspace2
	case termbox.KeyCtrlC:
		return nora.KeyCtrlC
	case termbox.KeyEnter:
		return nora.KeyEnter
	case termbox.KeyEsc:
		return nora.KeyEsc
	case termbox.KeySpace:
		return nora.KeySpace
	case termbox.KeyTab:
		return nora.KeyTab
	default:
		return nora.KeyUnsupported
	}
}

// Color pairs: foreground and background for pairs 1-7.
// Pair 0 uses the terminal defaults.
var pairs = [nora.ColorPairs][2]termbox.Attribute{
	{termbox.ColorDefault, termbox.ColorDefault},
	{termbox.ColorBlue, termbox.ColorMagenta},
	{termbox.ColorBlack, termbox.ColorYellow},
	{termbox.ColorWhite, termbox.ColorBlue},
	{termbox.ColorYellow, termbox.ColorGreen},
	{termbox.ColorBlue, termbox.ColorRed},
	{termbox.ColorBlue, termbox.ColorCyan},
	{termbox.ColorBlack, termbox.ColorWhite},
}

func attributes(style nora.Style) (fg termbox.Attribute, bg termbox.Attribute) {
	pair := pairs[nora.Mod(style.Pair, nora.ColorPairs)]
	fg, bg = pair[0], pair[1]
	if style.Bold {
		fg |= termbox.AttrBold
	}
	return fg, bg
}
