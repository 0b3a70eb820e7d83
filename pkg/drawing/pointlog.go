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

package drawing

import (
	nora "github.com/timburks/noradraw/pkg/types"
)

// A PointLog is the chronological list of stamps that make up a drawing.
// Points can only be appended or popped from the end.
type PointLog struct {
	points []nora.StampedPoint
}

func NewPointLog(points ...nora.StampedPoint) *PointLog {
	l := &PointLog{}
	l.points = append(l.points, points...)
	return l
}

func (l *PointLog) Append(p nora.StampedPoint) {
	l.points = append(l.points, p)
}

// PopLast removes and returns the most recent point.
// It returns false if the log is empty.
func (l *PointLog) PopLast() (nora.StampedPoint, bool) {
	if len(l.points) == 0 {
		return nora.StampedPoint{}, false
	}
	last := len(l.points) - 1
	p := l.points[last]
	l.points = l.points[0:last]
	return p, true
}

func (l *PointLog) Len() int {
	return len(l.points)
}

func (l *PointLog) At(i int) nora.StampedPoint {
	return l.points[i]
}

func (l *PointLog) Last() (nora.StampedPoint, bool) {
	if len(l.points) == 0 {
		return nora.StampedPoint{}, false
	}
	return l.points[len(l.points)-1], true
}

// Points returns a copy of the log contents in drawing order.
func (l *PointLog) Points() []nora.StampedPoint {
	points := make([]nora.StampedPoint, len(l.points))
	copy(points, l.points)
	return points
}

// Each calls f for every point in drawing order.
func (l *PointLog) Each(f func(i int, p nora.StampedPoint)) {
	for i, p := range l.points {
		f(i, p)
	}
}

// Bounds returns the top left and bottom right corners of the points.
// The minimums start at seed and the maximums start at zero, so a log
// that stays inside seed reports seed as its minimum.
func (l *PointLog) Bounds(seed nora.Size) (min nora.Point, max nora.Point) {
	min = nora.Point{Row: seed.Rows, Col: seed.Cols}
	for _, p := range l.points {
		if p.Row < min.Row {
			min.Row = p.Row
		}
		if p.Col < min.Col {
			min.Col = p.Col
		}
		if p.Row > max.Row {
			max.Row = p.Row
		}
		if p.Col > max.Col {
			max.Col = p.Col
		}
	}
	return min, max
}
