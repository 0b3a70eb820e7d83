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
	"encoding/json"
	"fmt"

	"github.com/timburks/noradraw/pkg/drawing"
	nora "github.com/timburks/noradraw/pkg/types"
)

const formatVersion = 1

type document struct {
	Version int         `json:"version"`
	Points  []jsonPoint `json:"points"`
}

type jsonPoint struct {
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Glyph string `json:"glyph"`
	Style int    `json:"style"`
}

// Encode serializes a point log, keeping the drawing order.
func Encode(log *drawing.PointLog) ([]byte, error) {
	doc := document{Version: formatVersion, Points: make([]jsonPoint, 0, log.Len())}
	log.Each(func(i int, p nora.StampedPoint) {
		doc.Points = append(doc.Points, jsonPoint{Row: p.Row, Col: p.Col, Glyph: p.Glyph, Style: p.Style})
	})
	return json.Marshal(doc)
}

func Decode(b []byte) (*drawing.PointLog, error) {
	var doc document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	if doc.Version != formatVersion {
		return nil, fmt.Errorf("unsupported drawing format version %d", doc.Version)
	}
	log := drawing.NewPointLog()
	for _, p := range doc.Points {
		log.Append(nora.StampedPoint{Row: p.Row, Col: p.Col, Glyph: p.Glyph, Style: p.Style})
	}
	return log, nil
}
