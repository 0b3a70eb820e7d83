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
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/timburks/noradraw/pkg/drawing"
	"github.com/timburks/noradraw/pkg/screen"
	"github.com/timburks/noradraw/pkg/store"
	"github.com/timburks/noradraw/pkg/tutor"
	nora "github.com/timburks/noradraw/pkg/types"
)

var noSleep = drawing.SleeperFunc(func(ctx context.Context, d time.Duration) error {
	return ctx.Err()
})

func setup(t *testing.T) (*Editor, *screen.Headless, string) {
	dir := filepath.Join(t.TempDir(), "drawings")
	s, err := store.NewDirStore(dir)
	if err != nil {
		t.Fatalf("Failed to create store: %+v", err)
	}
	display := screen.NewHeadless(nora.Size{Rows: 24, Cols: 80})
	e := NewEditor(display, store.NewGateway(s, rand.New(rand.NewSource(1))))
	e.SetSleeper(noSleep)
	return e, display, dir
}

func lastMessage(d *screen.Headless) string {
	if len(d.Messages) == 0 {
		return ""
	}
	return d.Messages[len(d.Messages)-1]
}

func TestDrawAndErase(t *testing.T) {
	e, display, _ := setup(t)
	e.SetTip("*")
	for i := 0; i < 3; i++ {
		e.MoveCursor(nora.MoveRight)
		e.Draw()
	}
	e.Erase()
	if e.Drawing().Log.Len() != 2 {
		t.Errorf("Unexpected point count: %d", e.Drawing().Log.Len())
	}
	if e.GetCursor() != e.Drawing().Log.At(1).Position() {
		t.Errorf("Cursor should be on the second point")
	}
	if !strings.Contains(lastMessage(display), "E is for ERASE") {
		t.Errorf("Erase hint was not shown")
	}
}

func TestEraseEmptyDrawing(t *testing.T) {
	e, _, _ := setup(t)
	cursor := e.GetCursor()
	e.Erase()
	e.Erase()
	if e.Drawing().Log.Len() != 0 || e.GetCursor() != cursor {
		t.Errorf("Erasing an empty drawing changed it")
	}
}

func TestLoadFromEmptyStore(t *testing.T) {
	e, display, _ := setup(t)
	e.SetTip("#")
	e.Draw()
	before := e.Drawing()
	err := e.Load(context.Background())
	if !errors.Is(err, store.ErrEmptyStore) {
		t.Errorf("Expected ErrEmptyStore, got %+v", err)
	}
	if e.Drawing() != before || before.Log.Len() != 1 {
		t.Errorf("Failed load replaced the drawing")
	}
	if !strings.Contains(lastMessage(display), "There are no drawings to load!") {
		t.Errorf("Unexpected message: %q", lastMessage(display))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	e, display, _ := setup(t)
	e.SetTip("*")
	e.SetColor(4)
	e.Draw()
	e.MoveBy(1, 1)
	e.SetTip("#")
	e.Draw()
	points := e.Drawing().Log.Points()
	slot, err := e.Save()
	if err != nil {
		t.Fatalf("Save failed: %+v", err)
	}
	if lastMessage(display) == "" || !strings.Contains(lastMessage(display), "I saved your drawing!") {
		t.Errorf("Save was not announced")
	}
	e.NewDrawing()
	if e.Drawing().Log.Len() != 0 {
		t.Fatalf("New drawing is not empty")
	}
	frames := display.Frames
	if err := e.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %+v", err)
	}
	if e.Drawing().Slot != slot {
		t.Errorf("Loaded drawing has slot %q, expected %q", e.Drawing().Slot, slot)
	}
	loaded := e.Drawing().Log.Points()
	if len(loaded) != len(points) {
		t.Fatalf("Unexpected loaded points: %+v", loaded)
	}
	for i := range points {
		if loaded[i] != points[i] {
			t.Errorf("Point %d: %+v, expected %+v", i, loaded[i], points[i])
		}
	}
	// recenter renders once, the replay once after clearing and once per point
	if display.Frames-frames != 1+1+len(points) {
		t.Errorf("Unexpected frame count: %d", display.Frames-frames)
	}
	// saving again keeps the slot
	e.Draw()
	again, _ := e.Save()
	if again != slot {
		t.Errorf("Loaded drawing saved to %q instead of %q", again, slot)
	}
}

func TestSaveFailure(t *testing.T) {
	e, display, dir := setup(t)
	os.RemoveAll(dir)
	os.WriteFile(dir, []byte("blocked"), 0644)
	e.Draw()
	if _, err := e.Save(); err == nil {
		t.Fatalf("Save should fail")
	}
	if e.Drawing().Slot != "" {
		t.Errorf("Failed save assigned a slot")
	}
	if !strings.Contains(lastMessage(display), "couldn't save") {
		t.Errorf("Failure was not reported: %q", lastMessage(display))
	}
}

func TestDelete(t *testing.T) {
	e, display, dir := setup(t)
	e.Draw()
	slot, _ := e.Save()
	if err := e.Delete(); err != nil {
		t.Fatalf("Delete failed: %+v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, string(slot)+".json")); !os.IsNotExist(err) {
		t.Errorf("Drawing file still exists")
	}
	if !strings.Contains(lastMessage(display), "Deleted 1") {
		t.Errorf("Unexpected message: %q", lastMessage(display))
	}
	if e.Drawing().Slot != "" || e.Drawing().Log.Len() != 0 {
		t.Errorf("Delete should start a new drawing")
	}
	// deleting an unsaved drawing does nothing
	messages := len(display.Messages)
	if err := e.Delete(); !errors.Is(err, store.ErrNoSlot) {
		t.Errorf("Expected ErrNoSlot, got %+v", err)
	}
	if len(display.Messages) != messages {
		t.Errorf("Deleting an unsaved drawing showed a message")
	}
}

func TestRecenterAfterResize(t *testing.T) {
	e, display, _ := setup(t)
	e.SetTip("x")
	// draw a diagonal that runs past the bottom right of a small display
	e.Drawing().Surface.MoveTo(nora.Point{Row: 5, Col: 10})
	for i := 0; i < 30; i++ {
		e.Draw()
		e.MoveBy(1, 3)
	}
	display.SetSize(nora.Size{Rows: 10, Cols: 40})
	syncs := display.Syncs
	e.Recenter()
	corner := e.Viewport().Corner
	if corner != (nora.Point{Row: 3, Col: 8}) {
		t.Errorf("Unexpected corner: %+v", corner)
	}
	if display.Syncs != syncs+1 {
		t.Errorf("Recenter should force a full redraw")
	}
	visible := e.Viewport().Rect(display.Size())
	cursor := e.GetCursor()
	if cursor.Row > visible.Origin.Row+visible.Size.Rows-1 || cursor.Col > visible.Origin.Col+visible.Size.Cols-1 {
		t.Errorf("Cursor %+v is below or right of the display %+v", cursor, visible)
	}
	if display.LastFrame().Corner != corner {
		t.Errorf("Frame was not rendered with the new corner")
	}
}

func TestNewDrawingResetsViewport(t *testing.T) {
	e, display, _ := setup(t)
	e.Drawing().Surface.MoveTo(nora.Point{Row: 100, Col: 300})
	e.Draw()
	e.Recenter()
	if e.Viewport().Corner == (nora.Point{}) {
		t.Fatalf("Corner should have moved")
	}
	e.NewDrawing()
	if e.Viewport().Corner != (nora.Point{}) {
		t.Errorf("New drawing kept the old corner")
	}
	if !strings.Contains(lastMessage(display), "N is for NORA") {
		t.Errorf("New drawing hint was not shown")
	}
}

func TestLoadShowsDrawingFromTheTopLeft(t *testing.T) {
	e, display, _ := setup(t)
	e.SetTip("*")
	e.Drawing().Surface.MoveTo(nora.Point{Row: 3, Col: 3})
	e.Draw()
	if _, err := e.Save(); err != nil {
		t.Fatalf("Save failed: %+v", err)
	}
	// scroll far away with another drawing
	e.NewDrawing()
	e.Drawing().Surface.MoveTo(nora.Point{Row: 60, Col: 200})
	e.Draw()
	e.Recenter()
	if e.Viewport().Corner == (nora.Point{}) {
		t.Fatalf("Corner should have moved")
	}
	if err := e.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %+v", err)
	}
	if e.Viewport().Corner != (nora.Point{}) {
		t.Errorf("Loaded drawing kept the old corner: %+v", e.Viewport().Corner)
	}
	visible := e.Viewport().Rect(display.Size())
	if !visible.Contains(nora.Point{Row: 3, Col: 3}) {
		t.Errorf("Loaded point is off screen: %+v", visible)
	}
	if display.LastFrame().Corner != e.Viewport().Corner {
		t.Errorf("Replay was rendered with a stale corner")
	}
}

func TestTakeTurn(t *testing.T) {
	e, display, _ := setup(t)
	e.Draw()
	if err := e.TakeTurn(context.Background()); err != nil {
		t.Fatalf("Replay failed: %+v", err)
	}
	if !strings.Contains(lastMessage(display), "OK, now it's my turn!") {
		t.Errorf("Replay was not announced")
	}
	if e.Drawing().Log.Len() != 1 {
		t.Errorf("Replay changed the drawing")
	}
}

func TestStatus(t *testing.T) {
	e, _, _ := setup(t)
	e.SetTip("*")
	e.Draw()
	status := e.status()
	for _, want := range []string{"unsaved", "pen down", `tip "*"`, "color 1", "12,40", "1 points"} {
		if !strings.Contains(status, want) {
			t.Errorf("Status %q is missing %q", status, want)
		}
	}
}

func TestMessagesUseTheSleeper(t *testing.T) {
	e, _, _ := setup(t)
	var waits []time.Duration
	e.SetSleeper(drawing.SleeperFunc(func(ctx context.Context, d time.Duration) error {
		waits = append(waits, d)
		// a failing sleep must not stop the message
		return context.Canceled
	}))
	e.Draw()
	if _, err := e.Save(); err != nil {
		t.Fatalf("Save failed: %+v", err)
	}
	if len(waits) != 1 || waits[0] != tutor.DefaultDuration {
		t.Errorf("Unexpected waits: %v", waits)
	}
}
