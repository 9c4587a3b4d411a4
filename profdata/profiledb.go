// Copyright 2025 Sonic Labs
// This file is part of CASP (Coverage Approximation via Static Profiles)
//
// CASP is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// CASP is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with CASP. If not, see <http://www.gnu.org/licenses/>.

package profdata

import (
	"database/sql"
	"fmt"

	// The sql package requires this import to initialize the sqlite3 driver.
	_ "github.com/mattn/go-sqlite3"
)

const (
	// bufferSize of the in-memory buffer for storing profile records
	bufferSize = 1000

	// SQL statement for inserting a profile record
	insertRecordSQL = `
INSERT INTO record (
	name, hash, numCounters
) VALUES (
	?, ?, ?
)
`
	// SQL statement for inserting a single counter value of a record
	insertCounterSQL = `
INSERT INTO counter (
	name, idx, value
) VALUES (
	?, ?, ?
)
`

	// SQL statement for inserting metadata of the export run
	insertMetadataSQL = `
INSERT INTO metadata (
	module, entryCount
) VALUES (
	?, ?
)
`

	// SQL statement for creating the profile schema. The record hash is
	// stored hex-encoded because sqlite integers are signed 64-bit.
	createSQL = `
PRAGMA journal_mode = MEMORY;
CREATE TABLE IF NOT EXISTS record (
	name TEXT,
	hash TEXT,
	numCounters INTEGER
);
CREATE TABLE IF NOT EXISTS counter (
	name TEXT,
	idx INTEGER,
	value INTEGER
);
CREATE TABLE IF NOT EXISTS metadata (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	createTimestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
	module TEXT,
	entryCount INTEGER
);
`
)

//go:generate mockgen -source profiledb.go -destination profiledb_mock.go -package profdata
type ProfileDB interface {
	Close() error
	Add(r Record) error
	Flush() error
}

// profileDB is a sqlite database recording the produced profile
// records for offline inspection.
type profileDB struct {
	sql         *sql.DB   // Sqlite3 database
	recordStmt  *sql.Stmt // Prepared insert statement for a record
	counterStmt *sql.Stmt // Prepared insert statement for a counter value
	buffer      []Record  // record buffer
}

// NewProfileDB constructs a new profile record database.
func NewProfileDB(dbFile string, module string, entryCount uint64) (ProfileDB, error) {
	sqlDB, err := sql.Open("sqlite3", dbFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %v; %v", dbFile, err)
	}
	// create profile schema if not exists
	if _, err = sqlDB.Exec(createSQL); err != nil {
		return nil, fmt.Errorf("failed to create schema; %v", err)
	}
	// prepare INSERT statements for subsequent use
	recordStmt, err := sqlDB.Prepare(insertRecordSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare a SQL statement for a record; %v", err)
	}
	counterStmt, err := sqlDB.Prepare(insertCounterSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare a SQL statement for a counter; %v", err)
	}
	if _, err := sqlDB.Exec(insertMetadataSQL, module, int64(entryCount)); err != nil {
		return nil, fmt.Errorf("failed to insert metadata; %v", err)
	}

	return &profileDB{
		sql:         sqlDB,
		recordStmt:  recordStmt,
		counterStmt: counterStmt,
		buffer:      make([]Record, 0, bufferSize),
	}, nil
}

// Close flushes the record buffer and closes the database.
func (db *profileDB) Close() error {
	defer func() {
		db.counterStmt.Close()
		db.recordStmt.Close()
		db.sql.Close()
	}()
	return db.Flush()
}

// Add a profile record to the database.
func (db *profileDB) Add(r Record) error {
	db.buffer = append(db.buffer, r)
	if len(db.buffer) == cap(db.buffer) {
		if err := db.Flush(); err != nil {
			return fmt.Errorf("unable to flush profile records: %w", err)
		}
	}
	return nil
}

// Flush the buffered records into the database.
func (db *profileDB) Flush() error {
	tx, err := db.sql.Begin()
	if err != nil {
		return err
	}
	for _, r := range db.buffer {
		_, err := tx.Stmt(db.recordStmt).Exec(r.Name, fmt.Sprintf("%016x", r.Hash), len(r.Counters))
		if err != nil {
			_ = tx.Rollback()
			return err
		}
		for i, value := range r.Counters {
			_, err = tx.Stmt(db.counterStmt).Exec(r.Name, i, int64(value))
			if err != nil {
				_ = tx.Rollback()
				return err
			}
		}
	}
	db.buffer = db.buffer[:0]
	return tx.Commit()
}
