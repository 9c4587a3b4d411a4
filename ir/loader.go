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

package ir

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadModule reads a module summary from a file.
func LoadModule(path string) (*Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ir: cannot read module summary %v; %w", path, err)
	}
	m, err := ParseModule(data)
	if err != nil {
		return nil, fmt.Errorf("ir: cannot parse module summary %v; %w", path, err)
	}
	return m, nil
}

// ParseModule decodes and validates a module summary.
func ParseModule(data []byte) (*Module, error) {
	var m Module
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("malformed summary: %w", err)
	}
	if m.Name == "" {
		return nil, fmt.Errorf("summary has no module name")
	}

	seen := make(map[string]struct{}, len(m.Functions))
	for i := range m.Functions {
		fn := &m.Functions[i]
		if fn.Name == "" {
			return nil, fmt.Errorf("function %d has no name", i)
		}
		if _, found := seen[fn.Name]; found {
			return nil, fmt.Errorf("duplicate function %q", fn.Name)
		}
		seen[fn.Name] = struct{}{}
	}

	m.globalIndex = make(map[string]*Global, len(m.Globals))
	for i := range m.Globals {
		g := &m.Globals[i]
		if g.Name == "" {
			return nil, fmt.Errorf("global %d has no name", i)
		}
		if _, found := m.globalIndex[g.Name]; found {
			return nil, fmt.Errorf("duplicate global %q", g.Name)
		}
		m.globalIndex[g.Name] = g
	}

	return &m, nil
}
