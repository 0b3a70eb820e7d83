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
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/timburks/noradraw/pkg/drawing"
	nora "github.com/timburks/noradraw/pkg/types"
)

var (
	// ErrEmptyStore is returned when there is no drawing to load.
	ErrEmptyStore = errors.New("there are no drawings to load")
	// ErrNoSlot is returned when a drawing has never been saved or loaded.
	ErrNoSlot = errors.New("drawing has not been saved")
)

// A Store keeps point logs in named slots.
// Write must replace a slot completely or not at all.
type Store interface {
	Slots() ([]nora.SlotID, error)
	Read(slot nora.SlotID) (*drawing.PointLog, error)
	Write(slot nora.SlotID, log *drawing.PointLog) error
	Remove(slot nora.SlotID) error
	Close() error
}

// The Gateway saves drawings to and loads drawings from a store.
type Gateway struct {
	store Store
	rand  *rand.Rand
}

func NewGateway(s Store, r *rand.Rand) *Gateway {
	if r == nil {
		r = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Gateway{store: s, rand: r}
}

func (g *Gateway) Store() Store {
	return g.store
}

// Save writes a drawing to its slot. A drawing without a slot gets the
// next free numbered slot, which it keeps for later saves.
func (g *Gateway) Save(d *drawing.Drawing) (nora.SlotID, error) {
	slot := d.Slot
	if slot == "" {
		var err error
		slot, err = g.nextSlot()
		if err != nil {
			return "", err
		}
	}
	if err := g.store.Write(slot, d.Log); err != nil {
		return "", fmt.Errorf("save %s: %w", slot, err)
	}
	d.Slot = slot
	return slot, nil
}

// nextSlot numbers slots from one more than the number already stored,
// skipping numbers that are taken.
func (g *Gateway) nextSlot() (nora.SlotID, error) {
	slots, err := g.store.Slots()
	if err != nil {
		return "", fmt.Errorf("list drawings: %w", err)
	}
	taken := make(map[nora.SlotID]bool)
	for _, s := range slots {
		taken[s] = true
	}
	n := len(slots) + 1
	for taken[nora.SlotID(strconv.Itoa(n))] {
		n++
	}
	return nora.SlotID(strconv.Itoa(n)), nil
}

// LoadRandom reads a randomly chosen drawing.
// It returns ErrEmptyStore if there is nothing to load.
func (g *Gateway) LoadRandom() (*drawing.PointLog, nora.SlotID, error) {
	slots, err := g.store.Slots()
	if err != nil {
		return nil, "", fmt.Errorf("list drawings: %w", err)
	}
	if len(slots) == 0 {
		return nil, "", ErrEmptyStore
	}
	slot := slots[g.rand.Intn(len(slots))]
	log, err := g.store.Read(slot)
	if err != nil {
		return nil, "", fmt.Errorf("load %s: %w", slot, err)
	}
	return log, slot, nil
}

// Delete removes the slot a drawing was saved to.
func (g *Gateway) Delete(d *drawing.Drawing) error {
	if d.Slot == "" {
		return ErrNoSlot
	}
	if err := g.store.Remove(d.Slot); err != nil {
		return fmt.Errorf("delete %s: %w", d.Slot, err)
	}
	return nil
}

func (g *Gateway) Close() error {
	return g.store.Close()
}
