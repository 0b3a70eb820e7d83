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

package editor

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/timburks/noradraw/pkg/drawing"
	"github.com/timburks/noradraw/pkg/store"
	"github.com/timburks/noradraw/pkg/tutor"
	nora "github.com/timburks/noradraw/pkg/types"
)

// Owl messages
const (
	msgSaved      = "I saved your drawing!"
	msgSaveFailed = "Sorry, something went wrong.\nI couldn't save this drawing."
	msgLoaded     = "Here's a drawing you made!\n(Or someone made for you!)"
	msgLoadFailed = "Sorry, something went wrong.\nI couldn't load a drawing."
	msgNoDrawings = "There are no drawings to load!\nYou should save one first."
	msgMyTurn     = "OK, now it's my turn!"
	msgDeleted    = "Deleted %s"
	msgDelFailed  = "Sorry, something went wrong.\nI couldn't delete this drawing."
)

// The Editor holds the state of a drawing session: the current drawing,
// the viewport that shows it, the tutor and the drawing store.
// There is typically only one editor in a noradraw instance.
type Editor struct {
	display  nora.Display
	drawing  *drawing.Drawing
	viewport drawing.Viewport
	tutor    *tutor.Tutor
	gateway  *store.Gateway
	sleeper  drawing.Sleeper
}

var _ nora.Editor = (*Editor)(nil)

func NewEditor(d nora.Display, g *store.Gateway) *Editor {
	e := &Editor{
		display: d,
		tutor:   tutor.NewTutor(d),
		gateway: g,
		sleeper: drawing.WallClock,
	}
	e.drawing = drawing.NewDrawing(d.Size())
	return e
}

// SetSleeper replaces the clock used for replays and owl messages.
func (e *Editor) SetSleeper(s drawing.Sleeper) {
	e.sleeper = s
	e.tutor.SetSleep(func(d time.Duration) {
		// a background context never cancels
		_ = s.Sleep(context.Background(), d)
	})
}

func (e *Editor) Drawing() *drawing.Drawing {
	return e.drawing
}

func (e *Editor) Viewport() drawing.Viewport {
	return e.viewport
}

func (e *Editor) Tutor() *tutor.Tutor {
	return e.tutor
}

func (e *Editor) GetCursor() nora.Point {
	return e.drawing.Cursor()
}

func (e *Editor) GetCorner() nora.Point {
	return e.viewport.Corner
}

func (e *Editor) GetSlot() nora.SlotID {
	return e.drawing.Slot
}

func (e *Editor) PointCount() int {
	return e.drawing.Log.Len()
}

// Render draws the visible part of the drawing.
func (e *Editor) Render() {
	e.display.Render(nora.Frame{
		Surface: e.drawing.Surface,
		Corner:  e.viewport.Corner,
		Cursor:  e.drawing.Cursor(),
		Status:  e.status(),
	})
}

func (e *Editor) status() string {
	d := e.drawing
	name := "unsaved"
	if d.Slot != "" {
		name = "drawing " + string(d.Slot)
	}
	pen := "up"
	if d.Pen.Down {
		pen = "down"
	}
	cursor := d.Cursor()
	return fmt.Sprintf(" noradraw - %s | pen %s | tip %q | color %d | %d,%d | %d points ",
		name, pen, d.Pen.Tip, d.Pen.Color, cursor.Row, cursor.Col, d.Log.Len())
}

func (e *Editor) MoveCursor(direction int) nora.Point {
	return e.drawing.MoveCursor(direction)
}

func (e *Editor) MoveBy(dy, dx int) nora.Point {
	return e.drawing.MoveBy(dy, dx)
}

// Draw stamps the pen at the cursor if the pen is down.
func (e *Editor) Draw() bool {
	_, ok := e.drawing.Draw()
	return ok
}

// Erase removes the last stamp. Erasing an empty drawing does nothing.
func (e *Editor) Erase() {
	e.tutor.Trigger(tutor.HintErase)
	if _, err := e.drawing.EraseLast(); err != nil && !errors.Is(err, drawing.ErrEmptyLog) {
		log.Printf("erase: %+v", err)
	}
}

func (e *Editor) TogglePen() bool {
	down := e.drawing.TogglePen()
	e.tutor.Trigger(tutor.HintPen)
	return down
}

func (e *Editor) NextColor() int {
	color := e.drawing.NextColor()
	e.tutor.Trigger(tutor.HintChange)
	return color
}

func (e *Editor) SetColor(pair int) int {
	return e.drawing.SetColor(pair)
}

func (e *Editor) SetTip(tip string) {
	e.drawing.SetTip(tip)
}

func (e *Editor) reset() {
	e.display.Sync()
	e.drawing = drawing.NewDrawing(e.display.Size())
	e.viewport = drawing.Viewport{}
}

// NewDrawing discards the current drawing and starts an empty one.
func (e *Editor) NewDrawing() {
	e.reset()
	e.Render()
	e.tutor.Trigger(tutor.HintNew)
}

// Save writes the drawing to its slot. Failures are reported by the owl
// and leave the drawing unchanged.
func (e *Editor) Save() (nora.SlotID, error) {
	slot, err := e.gateway.Save(e.drawing)
	if err != nil {
		log.Printf("%+v", err)
		e.tutor.Message(msgSaveFailed, 0)
		return "", err
	}
	e.tutor.Message(msgSaved, 0)
	return slot, nil
}

// Load replaces the drawing with a random saved one and replays it.
// If nothing can be loaded the current drawing is kept.
func (e *Editor) Load(ctx context.Context) error {
	points, slot, err := e.gateway.LoadRandom()
	if errors.Is(err, store.ErrEmptyStore) {
		e.tutor.Message(msgNoDrawings, 0)
		return err
	} else if err != nil {
		log.Printf("%+v", err)
		e.tutor.Message(msgLoadFailed, 0)
		return err
	}
	e.tutor.Message(msgLoaded, 0)
	d := drawing.NewDrawing(e.display.Size())
	d.Load(points, slot)
	e.drawing = d
	e.viewport = drawing.Viewport{}
	e.Recenter()
	return e.Replay(ctx)
}

// Delete removes the current drawing from the store and starts a new one.
// A drawing that was never saved is left alone.
func (e *Editor) Delete() error {
	slot := e.drawing.Slot
	if err := e.gateway.Delete(e.drawing); err != nil {
		if !errors.Is(err, store.ErrNoSlot) {
			log.Printf("%+v", err)
			e.tutor.Message(msgDelFailed, 0)
		}
		return err
	}
	e.tutor.Message(fmt.Sprintf(msgDeleted, slot), 0)
	e.reset()
	return nil
}

// Replay redraws the drawing point by point.
func (e *Editor) Replay(ctx context.Context) error {
	return drawing.Replay(ctx, e.drawing.Log, e.drawing.Surface, e.Render, e.sleeper)
}

// TakeTurn announces a replay and performs it.
func (e *Editor) TakeTurn(ctx context.Context) error {
	e.tutor.Message(msgMyTurn, 0)
	return e.Replay(ctx)
}

// Recenter moves the viewport so the drawing is visible on the display,
// redraws everything and pulls the cursor back on screen.
func (e *Editor) Recenter() {
	size := e.display.Size()
	e.viewport = e.viewport.Recompute(e.drawing.Log, size)
	e.display.Sync()
	e.drawing.Surface.MoveTo(e.viewport.Clamp(e.drawing.Cursor(), size))
	e.Render()
}

func (e *Editor) Help() {
	e.tutor.Help()
}

func (e *Editor) Close() error {
	return e.gateway.Close()
}
