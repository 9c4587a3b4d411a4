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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulator_AddAndLen(t *testing.T) {
	acc := NewAccumulator()
	assert.Equal(t, 0, acc.Len())

	require.NoError(t, acc.Add(Record{Name: "main", Hash: 1, Counters: []uint64{100}}))
	require.NoError(t, acc.Add(Record{Name: "foo", Hash: 2, Counters: []uint64{100, 50}}))
	assert.Equal(t, 2, acc.Len())
}

func TestAccumulator_RefusesDuplicateNames(t *testing.T) {
	acc := NewAccumulator()
	require.NoError(t, acc.Add(Record{Name: "main", Hash: 1}))

	err := acc.Add(Record{Name: "main", Hash: 2})
	assert.ErrorIs(t, err, ErrDuplicateRecord)
	assert.Contains(t, err.Error(), "main")

	// The first record stays.
	records := acc.Records()
	require.Len(t, records, 1)
	assert.Equal(t, uint64(1), records[0].Hash)
}

func TestAccumulator_RecordsSortedByName(t *testing.T) {
	acc := NewAccumulator()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, acc.Add(Record{Name: name}))
	}

	records := acc.Records()
	require.Len(t, records, 3)
	assert.Equal(t, "alpha", records[0].Name)
	assert.Equal(t, "mid", records[1].Name)
	assert.Equal(t, "zeta", records[2].Name)
}
