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
	"errors"

	"github.com/0xsoniclabs/casp/ir"
)

//go:generate mockgen -source frequency.go -destination frequency_mock.go -package profile

// FrequencySource estimates how often a block executes. Values are
// relative; only the ratio against the entry block's value matters.
type FrequencySource interface {
	BlockFrequency(fn *ir.Function, b *ir.Block) uint64
}

// ErrZeroEntryFrequency marks a function whose entry block has no
// frequency estimate; such a function cannot be scaled and must be
// skipped.
var ErrZeroEntryFrequency = errors.New("entry block has zero frequency")

// NormalizeFrequencies scales the relative block frequencies of a
// function to absolute counts, assigning entryCount to the entry block
// and count(b) = entryCount * freq(b) / freq(entry) to every other
// block, truncating toward zero.
func NormalizeFrequencies(fn *ir.Function, src FrequencySource, entryCount uint64) ([]uint64, error) {
	entry := fn.EntryBlock()
	if entry == nil {
		return nil, ErrZeroEntryFrequency
	}
	entryFreq := src.BlockFrequency(fn, entry)
	if entryFreq == 0 {
		return nil, ErrZeroEntryFrequency
	}

	counts := make([]uint64, 0, len(fn.Blocks))
	for i := range fn.Blocks {
		freq := src.BlockFrequency(fn, &fn.Blocks[i])
		counts = append(counts, entryCount*freq/entryFreq)
	}
	return counts, nil
}
