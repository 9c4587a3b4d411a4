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
	"encoding/binary"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRecords = []Record{
	{Name: "foo", Hash: 6699318081062747564, Counters: []uint64{100, 50}},
	{Name: "main", Hash: 15822663052811949562, Counters: []uint64{100, 700, 33}},
}

func TestWriteParse_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testRecords))

	got, err := Parse(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, testRecords, got)
}

func TestWrite_EmptyRecordList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))

	// Just the 24-byte header.
	assert.Equal(t, 24, buf.Len())
	got, err := Parse(buf.Bytes())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestWrite_Deterministic(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, Write(&a, testRecords))
	require.NoError(t, Write(&b, testRecords))
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestWrite_HeaderLayout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testRecords))
	data := buf.Bytes()

	assert.Equal(t, profileFileMagic[:], data[:8])
	assert.Equal(t, uint32(profileFileVersion), binary.LittleEndian.Uint32(data[8:12]))
	assert.Equal(t, uint32(hashTypeMD5Low64), binary.LittleEndian.Uint32(data[12:16]))
	assert.Equal(t, uint32(2), binary.LittleEndian.Uint32(data[16:20]))
	// Reserved padding stays zero.
	assert.Equal(t, []byte{0, 0, 0, 0}, data[20:24])
}

func TestParse_RejectsCorruptContainers(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testRecords))
	valid := buf.Bytes()

	t.Run("bad magic", func(t *testing.T) {
		data := append([]byte{}, valid...)
		data[0] = 0x00
		_, err := Parse(data)
		assert.ErrorContains(t, err, "magic")
	})

	t.Run("unsupported version", func(t *testing.T) {
		data := append([]byte{}, valid...)
		binary.LittleEndian.PutUint32(data[8:12], 99)
		_, err := Parse(data)
		assert.ErrorContains(t, err, "version")
	})

	t.Run("unsupported hash type", func(t *testing.T) {
		data := append([]byte{}, valid...)
		binary.LittleEndian.PutUint32(data[12:16], 7)
		_, err := Parse(data)
		assert.ErrorContains(t, err, "hash type")
	})

	t.Run("truncated header", func(t *testing.T) {
		_, err := Parse(valid[:10])
		assert.ErrorContains(t, err, "header")
	})

	t.Run("truncated record", func(t *testing.T) {
		_, err := Parse(valid[:len(valid)-4])
		assert.ErrorContains(t, err, "truncated")
	})

	t.Run("trailing bytes", func(t *testing.T) {
		data := append(append([]byte{}, valid...), 0x00)
		_, err := Parse(data)
		assert.ErrorContains(t, err, "trailing")
	})

	t.Run("record count beyond data", func(t *testing.T) {
		data := append([]byte{}, valid...)
		binary.LittleEndian.PutUint32(data[16:20], 3)
		_, err := Parse(data)
		assert.Error(t, err)
	})
}

func TestWriteFileReadFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.profdata")
	require.NoError(t, WriteFile(path, testRecords))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, testRecords, got)
}

func TestWriteFile_BadPath(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "out.profdata"), testRecords)
	assert.ErrorContains(t, err, "cannot open output file")
}

func TestReadFile_MissingFile(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.profdata"))
	assert.ErrorContains(t, err, "cannot read")
}
