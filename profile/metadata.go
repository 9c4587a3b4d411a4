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
	"fmt"

	"github.com/0xsoniclabs/casp/ir"
)

const (
	coverageRecordPrefix = "__covrec_"
	coverageRecordSuffix = "u"
	instrDataPrefix      = "__profd_"

	// Coverage record layout: {nameHash i64, dataSize i32, structHash i64, ...}
	structuralHashField = 2

	// Instrumentation record layout: {nameHash, cfgHash, counterPtrOffset,
	// functionPtr, values, numValueSites, numCounters i32, ...}
	numCountersField = 6
)

// coverageRecordName forms the identifier of a function's coverage
// record: the prefix, the name hash hex-encoded in upper case, and a
// trailing unit marker.
func coverageRecordName(nameHash uint64) string {
	return fmt.Sprintf("%v%016X%v", coverageRecordPrefix, nameHash, coverageRecordSuffix)
}

// ExtractStructuralHash reads the structural hash of the function's
// instrumented coverage layout from the module's coverage record.
// Absence of the record, or a malformed one, reads as absence.
func ExtractStructuralHash(m *ir.Module, fn *ir.Function) (uint64, bool) {
	nameHash := ComputeNameHash(fn.ProfileName())
	g, found := m.NamedGlobal(coverageRecordName(nameHash))
	if !found {
		return 0, false
	}
	return g.Uint64Field(structuralHashField)
}

// ExtractCounterCount reads the number of counters the function's
// instrumentation layout expects from the module's profile-data record.
// Absence of the record, or a malformed one, reads as absence.
func ExtractCounterCount(m *ir.Module, fn *ir.Function) (int, bool) {
	g, found := m.NamedGlobal(instrDataPrefix + fn.ProfileName())
	if !found {
		return 0, false
	}
	n, ok := g.Uint32Field(numCountersField)
	if !ok {
		return 0, false
	}
	return int(n), true
}

// FunctionHash returns the hash keying the function's profile record.
// The structural hash from the coverage record is preferred because
// coverage consumers validate it; without coverage metadata the name
// hash is a valid fallback for frequency-based profiling only.
func FunctionHash(m *ir.Module, fn *ir.Function) uint64 {
	if h, found := ExtractStructuralHash(m, fn); found {
		return h
	}
	return ComputeNameHash(fn.ProfileName())
}
