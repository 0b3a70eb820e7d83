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

// Package editor implements the drawing session of noradraw.
// The editor owns the current drawing and the viewport that maps it onto
// the display, and it performs every command the commander can issue:
// moving and drawing, erasing, replaying, and saving, loading and
// deleting drawings. A drawing is replaced, never mutated into another
// one, when a new drawing is started or a saved one is loaded.
package editor
