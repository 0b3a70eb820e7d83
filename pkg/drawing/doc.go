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

// Package drawing implements the picture model of noradraw.
// A drawing is an ordered log of stamped points rendered onto a fixed-size
// surface whose coordinates wrap around at the edges. The log is the only
// source of truth: erasing pops it, saving serializes it and replaying
// walks it in order. The viewport functions decide which part of the
// surface is mapped onto the physical display.
package drawing
