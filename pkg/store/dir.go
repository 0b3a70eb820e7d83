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

package store

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/timburks/noradraw/pkg/drawing"
	nora "github.com/timburks/noradraw/pkg/types"
)

const drawingExtension = ".json"

// A DirStore keeps each drawing in its own file in a directory.
type DirStore struct {
	path string
}

// NewDirStore opens a drawing directory, creating it if needed.
func NewDirStore(path string) (*DirStore, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, err
	}
	return &DirStore{path: path}, nil
}

func (s *DirStore) Path() string {
	return s.path
}

func (s *DirStore) fileName(slot nora.SlotID) string {
	return filepath.Join(s.path, string(slot)+drawingExtension)
}

func (s *DirStore) Slots() ([]nora.SlotID, error) {
	entries, err := os.ReadDir(s.path)
	if err != nil {
		return nil, err
	}
	slots := make([]nora.SlotID, 0)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, drawingExtension) {
			continue
		}
		slots = append(slots, nora.SlotID(strings.TrimSuffix(name, drawingExtension)))
	}
	sortSlots(slots)
	return slots, nil
}

func (s *DirStore) Read(slot nora.SlotID) (*drawing.PointLog, error) {
	b, err := os.ReadFile(s.fileName(slot))
	if err != nil {
		return nil, err
	}
	return Decode(b)
}

// Write replaces a slot by writing a temporary file and renaming it,
// so a failed save never leaves a partial drawing behind.
func (s *DirStore) Write(slot nora.SlotID, log *drawing.PointLog) error {
	b, err := Encode(log)
	if err != nil {
		return err
	}
	f, err := os.CreateTemp(s.path, ".slot-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if _, err = f.Write(b); err == nil {
		err = f.Sync()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmp, s.fileName(slot))
	}
	if err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

func (s *DirStore) Remove(slot nora.SlotID) error {
	return os.Remove(s.fileName(slot))
}

func (s *DirStore) Close() error {
	return nil
}

// sortSlots orders numbered slots numerically, then everything else by name.
func sortSlots(slots []nora.SlotID) {
	sort.Slice(slots, func(i, j int) bool {
		a, aerr := strconv.Atoi(string(slots[i]))
		b, berr := strconv.Atoi(string(slots[j]))
		switch {
		case aerr == nil && berr == nil:
			return a < b
		case aerr == nil:
			return true
		case berr == nil:
			return false
		default:
			return slots[i] < slots[j]
		}
	})
}
