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

package types

// Event types
const (
	EventKey    = 0
	EventResize = 1
	EventError  = 2
	EventOther  = 3
)

type Key uint16

// Keys that are not delivered as characters
const (
	KeyUnsupported Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyBackspace2
	KeyCtrlC
	KeyEnter
	KeyEsc
	KeySpace
	KeyTab
)

// An Event is a key press or a terminal resize.
// Ch is set for printable characters; Key is set for everything else.
type Event struct {
	Type int
	Key  Key
	Ch   rune
}
