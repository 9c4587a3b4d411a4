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

package profile

import (
	"testing"

	"github.com/0xsoniclabs/casp/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ComputeNameHash("main") is 0xDB956436E78DD5FA; the covrec identifier
// below embeds it in upper-case hex.
const metadataSummary = `{
	"module": "prog.ll",
	"functions": [
		{"name": "main", "blocks": [{"label": "entry", "frequency": 8}]},
		{"name": "foo", "blocks": [{"label": "entry", "frequency": 4}]},
		{"name": "wrapper", "linkage_name": "main", "blocks": [{"label": "entry", "frequency": 2}]}
	],
	"globals": [
		{
			"name": "__covrec_DB956436E78DD5FAu",
			"fields": [
				{"type": "i64", "value": 15822663052811949562},
				{"type": "i32", "value": 40},
				{"type": "i64", "value": 124296015237}
			]
		},
		{
			"name": "__profd_main",
			"fields": [
				{"type": "i64", "value": 15822663052811949562},
				{"type": "i64", "value": 124296015237},
				{"type": "i64", "value": 0},
				{"type": "ptr", "value": 0},
				{"type": "ptr", "value": 0},
				{"type": "i32", "value": 0},
				{"type": "i32", "value": 3}
			]
		}
	]
}`

func loadMetadataModule(t *testing.T) *ir.Module {
	t.Helper()
	m, err := ir.ParseModule([]byte(metadataSummary))
	require.NoError(t, err)
	return m
}

func TestExtractStructuralHash(t *testing.T) {
	m := loadMetadataModule(t)

	h, found := ExtractStructuralHash(m, &m.Functions[0])
	assert.True(t, found)
	assert.Equal(t, uint64(124296015237), h)

	// No coverage record for foo.
	_, found = ExtractStructuralHash(m, &m.Functions[1])
	assert.False(t, found)
}

func TestExtractStructuralHash_UsesLinkageName(t *testing.T) {
	m := loadMetadataModule(t)

	// wrapper's linkage name is "main", so it resolves the same record.
	h, found := ExtractStructuralHash(m, &m.Functions[2])
	assert.True(t, found)
	assert.Equal(t, uint64(124296015237), h)
}

func TestExtractStructuralHash_MalformedRecordReadsAsAbsent(t *testing.T) {
	malformed := []struct {
		name   string
		fields string
	}{
		{"wrong type", `[{"type": "i64", "value": 1}, {"type": "i32", "value": 40}, {"type": "i32", "value": 7}]`},
		{"too few fields", `[{"type": "i64", "value": 1}]`},
		{"no fields", `[]`},
	}
	for _, tc := range malformed {
		t.Run(tc.name, func(t *testing.T) {
			m, err := ir.ParseModule([]byte(`{
				"module": "prog.ll",
				"functions": [{"name": "main", "blocks": [{"label": "entry", "frequency": 1}]}],
				"globals": [{"name": "__covrec_DB956436E78DD5FAu", "fields": ` + tc.fields + `}]
			}`))
			require.NoError(t, err)
			_, found := ExtractStructuralHash(m, &m.Functions[0])
			assert.False(t, found)
		})
	}
}

func TestExtractCounterCount(t *testing.T) {
	m := loadMetadataModule(t)

	n, found := ExtractCounterCount(m, &m.Functions[0])
	assert.True(t, found)
	assert.Equal(t, 3, n)

	_, found = ExtractCounterCount(m, &m.Functions[1])
	assert.False(t, found)
}

func TestExtractCounterCount_MalformedRecordReadsAsAbsent(t *testing.T) {
	m, err := ir.ParseModule([]byte(`{
		"module": "prog.ll",
		"functions": [{"name": "main", "blocks": [{"label": "entry", "frequency": 1}]}],
		"globals": [{"name": "__profd_main", "fields": [
			{"type": "i64", "value": 1}, {"type": "i64", "value": 2},
			{"type": "i64", "value": 0}, {"type": "ptr", "value": 0},
			{"type": "ptr", "value": 0}, {"type": "i32", "value": 0},
			{"type": "i64", "value": 3}
		]}]
	}`))
	require.NoError(t, err)

	// Field 6 has the wrong type, so the record counts as absent.
	_, found := ExtractCounterCount(m, &m.Functions[0])
	assert.False(t, found)
}

func TestFunctionHash_PrefersStructuralHash(t *testing.T) {
	m := loadMetadataModule(t)
	assert.Equal(t, uint64(124296015237), FunctionHash(m, &m.Functions[0]))
}

func TestFunctionHash_FallsBackToNameHash(t *testing.T) {
	m := loadMetadataModule(t)
	assert.Equal(t, ComputeNameHash("foo"), FunctionHash(m, &m.Functions[1]))
}
