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

// Package profdata holds accumulated profile records and serializes
// them into the indexed profile container consumed by coverage and
// profile tooling.
package profdata

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/exp/maps"
)

// Record is one named, hashed profile record.
type Record struct {
	Name     string
	Hash     uint64
	Counters []uint64
}

// ErrDuplicateRecord is returned when a record for an already
// accumulated function name is inserted.
var ErrDuplicateRecord = errors.New("duplicate profile record")

// Accumulator collects the profile records of one module pass. It is
// owned by a single pass and not safe for concurrent use.
type Accumulator struct {
	records map[string]Record
}

// NewAccumulator creates an empty record accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{records: make(map[string]Record)}
}

// Add inserts a record, refusing name collisions.
func (a *Accumulator) Add(r Record) error {
	if _, found := a.records[r.Name]; found {
		return fmt.Errorf("%w: %v", ErrDuplicateRecord, r.Name)
	}
	a.records[r.Name] = r
	return nil
}

// Len returns the number of accumulated records.
func (a *Accumulator) Len() int {
	return len(a.records)
}

// Records returns the accumulated records sorted by function name, so
// that repeated passes over an unchanged module serialize identically.
func (a *Accumulator) Records() []Record {
	names := maps.Keys(a.records)
	sort.Strings(names)
	records := make([]Record, 0, len(names))
	for _, name := range names {
		records = append(records, a.records[name])
	}
	return records
}
