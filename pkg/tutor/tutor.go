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
	"fmt"
	"log"
	"strings"
	"time"

	nora "github.com/timburks/noradraw/pkg/types"
)

// How long a message stays up unless the caller says otherwise.
const DefaultDuration = 3 * time.Second

// Hint keys
const (
	HintNew    = "new"
	HintChange = "change"
	HintErase  = "erase"
	HintPen    = "pen"
)

var hints = map[string]string{
	HintNew:    "N is for NORA and also for NEW!\nLooks like you've got some drawing to do.",
	HintChange: "C is for CHANGE\nand also for COLOR\nPress C again when you want another",
	HintErase:  "E is for ERASE\nIt deletes your mistakes\nat a moderate pace",
	HintPen:    "P is for PEN which draws on the PAGE\nPress P to PICK up the pen\nAnd to PUT it back down",
}

const encouragement = "Play around a little more.\nYou'll soon figure everything out!\nYou can ask me for more help later."

// Layout of the owl window
const (
	owlRows       = 7
	messageRow    = 1
	messageCol    = 13
	messageLines  = 5
	helpThreshold = 2
)

var owl = []string{
	` /\___/\ `,
	`; ^   ^ :`,
	`|(o)^(o)|`,
	` \  V   /`,
	`  \    / `,
}

var bold = nora.Style{Bold: true}

// The Tutor shows each hint once per session and answers requests for help.
type Tutor struct {
	display nora.Display
	played  map[string]bool
	sleep   func(time.Duration)
}

func NewTutor(d nora.Display) *Tutor {
	return &Tutor{display: d, played: make(map[string]bool), sleep: time.Sleep}
}

// SetSleep replaces the function used to hold messages on screen.
func (t *Tutor) SetSleep(sleep func(time.Duration)) {
	t.sleep = sleep
}

// Trigger shows the hint for key the first time it is requested.
// It reports whether a hint was shown.
func (t *Tutor) Trigger(key string) bool {
	if t.played[key] {
		return false
	}
	msg, ok := hints[key]
	if !ok {
		log.Printf("tutor: no hint named %q", key)
		return false
	}
	t.Message(msg, 0)
	t.played[key] = true
	return true
}

func (t *Tutor) Played(key string) bool {
	return t.played[key]
}

// PlayedCount returns the number of distinct hints shown so far.
func (t *Tutor) PlayedCount() int {
	return len(t.played)
}

// openOwl draws the owl window and returns it.
func (t *Tutor) openOwl() nora.Overlay {
	o := t.display.OpenOverlay(owlRows)
	for i, line := range owl {
		o.Print(i+1, 1, line, bold)
	}
	return o
}

// Message shows text beside the owl for timeout, or DefaultDuration if
// timeout is not positive.
func (t *Tutor) Message(text string, timeout time.Duration) {
	if timeout <= 0 {
		timeout = DefaultDuration
	}
	o := t.openOwl()
	defer o.Close()
	for i, line := range strings.Split(text, "\n") {
		if i >= messageLines {
			break
		}
		o.Print(messageRow+i, messageCol, line, nora.Style{})
	}
	o.Flush()
	t.sleep(timeout)
}

// Help shows the command card, or some encouragement if the user has not
// seen enough hints yet. The card stays up until a key is pressed.
func (t *Tutor) Help() {
	if len(t.played) < helpThreshold {
		t.Message(encouragement, 0)
		return
	}
	o := t.openOwl()
	defer o.Close()

	row := messageRow
	col := messageCol
	for i := 0; i < nora.ColorPairs; i++ {
		col = o.Print(row, col, fmt.Sprintf(" %d ", i), nora.Style{Pair: i, Bold: true})
	}
	col = o.Print(row, col, ": COLORS    ", nora.Style{})
	col = o.Print(row, col, "/*|!", bold)
	o.Print(row, col, " etc. are PEN TIPS", nora.Style{})

	row++
	printCommands(o, row, []string{"C", "CHANGE COLOR   ", "P", "PEN UP/DOWN   ", "E", "ERASE   "})
	row++
	printCommands(o, row, []string{"N", "NEW DRAWING    ", "S", "SAVE DRAWING  ", "L", "LOAD DRAWING  ", "R", "OWL REPLAYS "})
	row++
	printCommands(o, row, []string{"D", "DELETE DRAWING  ", "Q", "QUIT"})
	row++
	o.Print(row, messageCol+18, "Press any key to go back to the drawing!", nora.Style{})
	o.Flush()

	t.display.WaitForKey()
}

// printCommands prints alternating keys and descriptions on one row.
func printCommands(o nora.Overlay, row int, pairs []string) {
	col := messageCol
	for i := 0; i+1 < len(pairs); i += 2 {
		col = o.Print(row, col, pairs[i], bold)
		col = o.Print(row, col, ": "+pairs[i+1], nora.Style{})
	}
}
