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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteText_Format(t *testing.T) {
	records := []Record{
		{Name: "foo", Hash: 42, Counters: []uint64{100, 50}},
		{Name: "main", Hash: 7, Counters: []uint64{100}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, records))

	want := `foo
# Func Hash:
42
# Num Counters:
2
# Counter Values:
100
50

main
# Func Hash:
7
# Num Counters:
1
# Counter Values:
100
`
	assert.Equal(t, want, buf.String())
}

func TestWriteText_NoRecords(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestWriteTextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.proftext")
	require.NoError(t, WriteTextFile(path, []Record{{Name: "main", Hash: 1, Counters: []uint64{100}}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "main\n# Func Hash:\n1\n")
}

func TestWriteTextFile_BadPath(t *testing.T) {
	err := WriteTextFile(filepath.Join(t.TempDir(), "missing", "out.proftext"), nil)
	assert.ErrorContains(t, err, "cannot open output file")
}
