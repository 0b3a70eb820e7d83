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

package commander

import (
	"context"
	"fmt"
	"strings"

	nora "github.com/timburks/noradraw/pkg/types"
)

// The Commander converts user input into commands to the editor.
type Commander struct {
	editor  nora.Editor
	ctx     context.Context // bounds blocking commands such as replay
	mode    int             // commander mode
	debug   bool            // debug mode displays information about events (key codes, etc)
	message string          // result of the last command
	lastKey nora.Key        // last key pressed
	lastCh  rune            // last character pressed (if key == 0)
}

func NewCommander(ctx context.Context, e nora.Editor) *Commander {
	c := &Commander{editor: e, ctx: ctx, mode: nora.ModeDraw}
	c.bindPrimitives()
	return c
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) SetMode(m int) {
	c.mode = m
}

func (c *Commander) SetDebug(debug bool) {
	c.debug = debug
}

func (c *Commander) GetMessage() string {
	return c.message
}

func (c *Commander) IsRunning() bool {
	return c.mode != nora.ModeQuit
}

func (c *Commander) ProcessEvent(event *nora.Event) error {
	if c.debug {
		c.message = fmt.Sprintf("event=%+v", event)
	}
	switch event.Type {
	case nora.EventKey:
		return c.processKey(event)
	case nora.EventResize:
		return c.processResize(event)
	default:
		return nil
	}
}

func (c *Commander) processResize(event *nora.Event) error {
	_, err := c.parseEval("(recenter)")
	return err
}

func (c *Commander) processKey(event *nora.Event) error {
	key := event.Key
	ch := event.Ch

	c.lastKey = event.Key
	c.lastCh = event.Ch

	var command string
	draw := true
	if key != 0 {
		switch key {
		case nora.KeyCtrlC:
			command = "(quit)"
		case nora.KeyArrowUp:
			command = "(up)"
		case nora.KeyArrowDown:
			command = "(down)"
		case nora.KeyArrowLeft:
			command = "(left)"
		case nora.KeyArrowRight:
			command = "(right)"
		case nora.KeySpace:
			command = penTip(' ')
		}
	}
	if ch != 0 {
		switch {
		case ch == 'q':
			command = "(quit)"
		case ch == 'c':
			command = "(next-color)"
		case ch == 'p':
			command = "(toggle-pen)"
		case ch == 's':
			command = "(save-drawing)"
		case ch == 'D':
			command = "(delete-drawing)"
		case ch == 'h' || ch == '?':
			command = "(show-help)"
		//
		// these commands don't stamp the pen afterwards
		//
		case ch == 'n':
			command = "(new-drawing)"
			draw = false
		case ch == 'e':
			// drawing would undo the erase
			command = "(erase)"
			draw = false
		case ch == 'r':
			command = "(replay)"
			draw = false
		case ch == 'l':
			command = "(load-drawing)"
			draw = false
		case strings.ContainsRune(nora.PenTips, ch):
			command = penTip(ch)
		case ch >= '0' && ch < '0'+nora.ColorPairs:
			command = fmt.Sprintf("(color %c)", ch)
		}
	}
	if command == "(quit)" {
		draw = false
	}

	var err error
	if command != "" {
		c.message, err = c.parseEval(command)
	}
	// every other key stamps the pen, even one that has no command
	if draw && c.IsRunning() {
		c.parseEval("(draw)")
	}
	return err
}

// pen tips are passed as character codes to avoid quoting
func penTip(ch rune) string {
	return fmt.Sprintf("(pen-tip %d)", ch)
}
