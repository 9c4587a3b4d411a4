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

// Package ir models the summary of a compiled module that the exporter
// analyzes: functions with their control-flow blocks and recorded
// block-frequency estimates, and the module-level auxiliary records
// left behind by coverage and profile instrumentation.
package ir

// Field type identifiers of auxiliary-record fields.
const (
	FieldTypeI64 = "i64"
	FieldTypeI32 = "i32"
	FieldTypePtr = "ptr"
)

// Field is one positionally indexed, typed field of an auxiliary record.
type Field struct {
	Type  string `json:"type"`
	Value uint64 `json:"value"`
}

// Global is a module-level auxiliary record addressed by its exact
// identifier, such as a coverage or instrumentation record.
type Global struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

// Uint64Field returns the value of the i-th field if it exists and is a
// 64-bit integer; any mismatch reads as absence.
func (g *Global) Uint64Field(i int) (uint64, bool) {
	if g == nil || i < 0 || i >= len(g.Fields) || g.Fields[i].Type != FieldTypeI64 {
		return 0, false
	}
	return g.Fields[i].Value, true
}

// Uint32Field returns the value of the i-th field if it exists and is a
// 32-bit integer; any mismatch reads as absence.
func (g *Global) Uint32Field(i int) (uint32, bool) {
	if g == nil || i < 0 || i >= len(g.Fields) || g.Fields[i].Type != FieldTypeI32 {
		return 0, false
	}
	return uint32(g.Fields[i].Value), true
}

// Block is a node of a function's control-flow graph. Frequency is the
// entry-relative execution-frequency estimate recorded by the
// block-frequency analysis that produced the summary.
type Block struct {
	Label     string `json:"label"`
	Frequency uint64 `json:"frequency"`
}

// Function is one unit of analysis.
type Function struct {
	Name        string  `json:"name"`
	LinkageName string  `json:"linkage_name,omitempty"`
	Declaration bool    `json:"declaration,omitempty"`
	Blocks      []Block `json:"blocks,omitempty"`
}

// ProfileName returns the canonical profiling name of the function.
func (f *Function) ProfileName() string {
	if f.LinkageName != "" {
		return f.LinkageName
	}
	return f.Name
}

// EntryBlock returns the function's entry block, or nil for a function
// without a body.
func (f *Function) EntryBlock() *Block {
	if len(f.Blocks) == 0 {
		return nil
	}
	return &f.Blocks[0]
}

// IsDeclaration reports whether the function has no body to analyze.
func (f *Function) IsDeclaration() bool {
	return f.Declaration || len(f.Blocks) == 0
}

// Module is a read-only view of one compiled module.
type Module struct {
	Name      string     `json:"module"`
	Functions []Function `json:"functions"`
	Globals   []Global   `json:"globals,omitempty"`

	globalIndex map[string]*Global
}

// NamedGlobal looks up an auxiliary record by its exact identifier.
func (m *Module) NamedGlobal(name string) (*Global, bool) {
	g, found := m.globalIndex[name]
	return g, found
}
