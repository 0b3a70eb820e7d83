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
	"testing"

	"github.com/nsf/termbox-go"

	nora "github.com/timburks/noradraw/pkg/types"
)

func TestAttributes(t *testing.T) {
	fg, bg := attributes(nora.Style{Pair: 1})
	if fg != termbox.ColorBlue || bg != termbox.ColorMagenta {
		t.Errorf("Unexpected colors for pair 1: %v %v", fg, bg)
	}
	fg, bg = attributes(nora.Style{Pair: 0, Bold: true})
	if fg != termbox.ColorDefault|termbox.AttrBold || bg != termbox.ColorDefault {
		t.Errorf("Unexpected colors for bold pair 0: %v %v", fg, bg)
	}
	// out of range pairs wrap instead of panicking
	fg, _ = attributes(nora.Style{Pair: 9})
	if fg != termbox.ColorBlue {
		t.Errorf("Unexpected color for pair 9: %v", fg)
	}
}

func TestKeyMapping(t *testing.T) {
	if key(termbox.KeyArrowUp) != nora.KeyArrowUp {
		t.Errorf("Arrow up was not mapped")
	}
	if key(termbox.KeySpace) != nora.KeySpace {
		t.Errorf("Space was not mapped")
	}
	if key(termbox.KeyF1) != nora.KeyUnsupported {
		t.Errorf("F1 should be unsupported")
	}
}

func TestHeadlessOverlay(t *testing.T) {
	h := NewHeadless(nora.Size{Rows: 10, Cols: 40})
	o := h.OpenOverlay(3)
	col := o.Print(1, 2, "ab", nora.Style{})
	if col != 4 {
		t.Errorf("Unexpected column after print: %d", col)
	}
	o.Print(1, col, "世c", nora.Style{})
	o.Print(7, 0, "ignored", nora.Style{})
	o.Close()
	o.Close()
	if h.Opened != 1 || h.Closed != 1 {
		t.Errorf("Unexpected overlay counts: %d %d", h.Opened, h.Closed)
	}
	if len(h.Messages) != 1 || h.Messages[0] != "  ab世 c" {
		t.Errorf("Unexpected overlay text: %q", h.Messages)
	}
}

func queue(events ...termbox.Event) func() termbox.Event {
	return func() termbox.Event {
		if len(events) == 0 {
			return termbox.Event{Type: termbox.EventInterrupt}
		}
		event := events[0]
		events = events[1:]
		return event
	}
}

func TestResizeDuringWaitForKey(t *testing.T) {
	s := &Screen{poll: queue(
		termbox.Event{Type: termbox.EventMouse},
		termbox.Event{Type: termbox.EventResize, Width: 40, Height: 10},
		termbox.Event{Type: termbox.EventKey, Ch: 'x'},
	)}
	s.WaitForKey()
	event := s.GetNextEvent()
	if event.Type != nora.EventResize {
		t.Fatalf("Resize was lost while waiting for a key: %+v", event)
	}
	event = s.GetNextEvent()
	if event.Type != nora.EventKey || event.Ch != 'x' {
		t.Errorf("Unexpected event after resize: %+v", event)
	}
}

func TestWaitForKeyConsumesKey(t *testing.T) {
	s := &Screen{poll: queue(
		termbox.Event{Type: termbox.EventKey, Ch: 'h'},
		termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowUp},
	)}
	s.WaitForKey()
	event := s.GetNextEvent()
	if event.Type != nora.EventKey || event.Key != nora.KeyArrowUp {
		t.Errorf("Unexpected event: %+v", event)
	}
}
