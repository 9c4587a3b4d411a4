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

// RecordedFrequencies reports the block-frequency estimates recorded in
// the module summary by the upstream mass-distribution analysis.
type RecordedFrequencies struct{}

func (RecordedFrequencies) BlockFrequency(_ *Function, b *Block) uint64 {
	return b.Frequency
}

// FlatFrequencies ignores the recorded branch-heuristic estimates and
// reports every block at the entry block's frequency. Selected when the
// Wu-Larus heuristic mode of the analysis is disabled.
type FlatFrequencies struct{}

func (FlatFrequencies) BlockFrequency(fn *Function, _ *Block) uint64 {
	entry := fn.EntryBlock()
	if entry == nil {
		return 0
	}
	return entry.Frequency
}
