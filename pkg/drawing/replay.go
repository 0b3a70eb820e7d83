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
	"context"
	"time"
)

// Replay timing
const (
	ReplayPause    = time.Second            // before the first point
	MaxReplayDelay = 200 * time.Millisecond // between points of small drawings
	ReplayBudget   = 60 * time.Second       // approximate total for large drawings
)

// ReplayDelay returns the wait between points when replaying n points.
func ReplayDelay(n int) time.Duration {
	d := ReplayBudget / time.Duration(1+n)
	if d > MaxReplayDelay {
		return MaxReplayDelay
	}
	return d
}

// A Sleeper pauses between replay frames.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

type SleeperFunc func(ctx context.Context, d time.Duration) error

func (f SleeperFunc) Sleep(ctx context.Context, d time.Duration) error {
	return f(ctx, d)
}

// WallClock sleeps in real time and wakes early if ctx is cancelled.
var WallClock Sleeper = SleeperFunc(func(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
})

// Replay clears the surface and redraws the log one point at a time,
// calling render after each point. The log is not modified.
// If ctx is cancelled the remaining points are drawn at once and the
// context error is returned.
func Replay(ctx context.Context, log *PointLog, s *Surface, render func(), sleeper Sleeper) error {
	if sleeper == nil {
		sleeper = WallClock
	}
	s.Clear()
	render()
	if err := sleeper.Sleep(ctx, ReplayPause); err != nil {
		return finishReplay(log, 0, s, render, err)
	}
	wait := ReplayDelay(log.Len())
	for i := 0; i < log.Len(); i++ {
		s.StampAt(log.At(i))
		render()
		if err := sleeper.Sleep(ctx, wait); err != nil {
			return finishReplay(log, i+1, s, render, err)
		}
	}
	return nil
}

func finishReplay(log *PointLog, from int, s *Surface, render func(), err error) error {
	for i := from; i < log.Len(); i++ {
		s.StampAt(log.At(i))
	}
	render()
	return err
}

