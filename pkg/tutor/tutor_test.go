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

package tutor

import (
	"strings"
	"testing"
	"time"

	"github.com/timburks/noradraw/pkg/screen"
	nora "github.com/timburks/noradraw/pkg/types"
)

func setup() (*Tutor, *screen.Headless, *[]time.Duration) {
	display := screen.NewHeadless(nora.Size{Rows: 40, Cols: 120})
	t := NewTutor(display)
	sleeps := make([]time.Duration, 0)
	t.SetSleep(func(d time.Duration) { sleeps = append(sleeps, d) })
	return t, display, &sleeps
}

func TestTriggerShowsHintOnce(t *testing.T) {
	tutor, display, sleeps := setup()
	if !tutor.Trigger(HintErase) {
		t.Errorf("First trigger should show the hint")
	}
	if tutor.Trigger(HintErase) {
		t.Errorf("Second trigger should be silent")
	}
	if len(display.Messages) != 1 || !strings.Contains(display.Messages[0], "E is for ERASE") {
		t.Errorf("Unexpected messages: %+v", display.Messages)
	}
	if len(*sleeps) != 1 || (*sleeps)[0] != DefaultDuration {
		t.Errorf("Unexpected sleeps: %+v", *sleeps)
	}
	if !tutor.Played(HintErase) || tutor.PlayedCount() != 1 {
		t.Errorf("Hint was not recorded")
	}
}

func TestTriggerUnknownHint(t *testing.T) {
	tutor, display, _ := setup()
	if tutor.Trigger("juggle") {
		t.Errorf("Unknown hint should not be shown")
	}
	if tutor.PlayedCount() != 0 || display.Opened != 0 {
		t.Errorf("Unknown hint changed the tutor")
	}
}

func TestMessageDuration(t *testing.T) {
	tutor, display, sleeps := setup()
	tutor.Message("I saved your drawing!", 5*time.Second)
	tutor.Message("OK, now it's my turn!", 0)
	if (*sleeps)[0] != 5*time.Second || (*sleeps)[1] != DefaultDuration {
		t.Errorf("Unexpected sleeps: %+v", *sleeps)
	}
	if display.Opened != 2 || display.Closed != 2 {
		t.Errorf("Overlays were not released: opened %d closed %d", display.Opened, display.Closed)
	}
}

func TestMessageShowsOwl(t *testing.T) {
	tutor, display, _ := setup()
	tutor.Message("hello", 0)
	if !strings.Contains(display.Messages[0], `/\___/\    hello`) {
		t.Errorf("Unexpected overlay text:\n%s", display.Messages[0])
	}
}

func TestHelpEncouragesBeginners(t *testing.T) {
	tutor, display, _ := setup()
	tutor.Trigger(HintPen)
	tutor.Help()
	last := display.Messages[len(display.Messages)-1]
	if !strings.Contains(last, "Play around a little more.") {
		t.Errorf("Expected encouragement, got:\n%s", last)
	}
	if display.Keys != 0 {
		t.Errorf("Encouragement should not wait for a key")
	}
	if display.Opened != display.Closed {
		t.Errorf("Overlay leaked on the encouragement path")
	}
}

func TestHelpShowsCommands(t *testing.T) {
	tutor, display, sleeps := setup()
	tutor.Trigger(HintPen)
	tutor.Trigger(HintNew)
	count := len(*sleeps)
	tutor.Help()
	last := display.Messages[len(display.Messages)-1]
	for _, want := range []string{"COLORS", "C: CHANGE COLOR", "S: SAVE DRAWING", "Q: QUIT", "Press any key"} {
		if !strings.Contains(last, want) {
			t.Errorf("Help card is missing %q:\n%s", want, last)
		}
	}
	if display.Keys != 1 {
		t.Errorf("Help card should wait for a key")
	}
	if len(*sleeps) != count {
		t.Errorf("Help card should not be timed")
	}
	if display.Opened != display.Closed {
		t.Errorf("Overlay leaked")
	}
}
