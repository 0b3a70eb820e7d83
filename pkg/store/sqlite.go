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
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/timburks/noradraw/pkg/drawing"
	nora "github.com/timburks/noradraw/pkg/types"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS drawings (
    slot TEXT PRIMARY KEY,
    saved_at INTEGER NOT NULL      -- UnixNano of the last save
);

CREATE TABLE IF NOT EXISTS points (
    slot TEXT NOT NULL REFERENCES drawings(slot) ON DELETE CASCADE,
    seq INTEGER NOT NULL,          -- drawing order
    row_idx INTEGER NOT NULL,
    col_idx INTEGER NOT NULL,
    glyph TEXT NOT NULL,
    style INTEGER NOT NULL,
    PRIMARY KEY (slot, seq)
);
`

// A SQLiteStore keeps drawings in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates a drawing database.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Slots() ([]nora.SlotID, error) {
	rows, err := s.db.Query("SELECT slot FROM drawings")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	slots := make([]nora.SlotID, 0)
	for rows.Next() {
		var slot string
		if err := rows.Scan(&slot); err != nil {
			return nil, err
		}
		slots = append(slots, nora.SlotID(slot))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	sortSlots(slots)
	return slots, nil
}

func (s *SQLiteStore) Read(slot nora.SlotID) (*drawing.PointLog, error) {
	var savedAt int64
	err := s.db.QueryRow("SELECT saved_at FROM drawings WHERE slot = ?", string(slot)).Scan(&savedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("slot %s: %w", slot, fs.ErrNotExist)
	} else if err != nil {
		return nil, err
	}
	rows, err := s.db.Query(
		"SELECT row_idx, col_idx, glyph, style FROM points WHERE slot = ? ORDER BY seq",
		string(slot))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	log := drawing.NewPointLog()
	for rows.Next() {
		var p nora.StampedPoint
		if err := rows.Scan(&p.Row, &p.Col, &p.Glyph, &p.Style); err != nil {
			return nil, err
		}
		log.Append(p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return log, nil
}

// Write replaces a slot inside a single transaction.
func (s *SQLiteStore) Write(slot nora.SlotID, log *drawing.PointLog) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec("INSERT OR REPLACE INTO drawings (slot, saved_at) VALUES (?, ?)",
		string(slot), time.Now().UnixNano())
	if err != nil {
		return err
	}
	if _, err = tx.Exec("DELETE FROM points WHERE slot = ?", string(slot)); err != nil {
		return err
	}
	stmt, err := tx.Prepare(
		"INSERT INTO points (slot, seq, row_idx, col_idx, glyph, style) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i := 0; i < log.Len(); i++ {
		p := log.At(i)
		if _, err = stmt.Exec(string(slot), i, p.Row, p.Col, p.Glyph, p.Style); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) Remove(slot nora.SlotID) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err = tx.Exec("DELETE FROM points WHERE slot = ?", string(slot)); err != nil {
		return err
	}
	result, err := tx.Exec("DELETE FROM drawings WHERE slot = ?", string(slot))
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("slot %s: %w", slot, fs.ErrNotExist)
	}
	return tx.Commit()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
