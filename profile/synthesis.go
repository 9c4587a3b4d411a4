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

import "sort"

// SynthesizeCounters produces the final counter array of a function
// from its normalized per-block counts.
//
// Without an instrumentation record (numCounters < 0) the output is one
// counter per block in block order. With an expected counter count N,
// the block counts are assigned to counters by descending frequency:
// counter 0 always carries the entry count, the entry block's slot is
// considered consumed by it, and the remaining counts fill counters
// 1..N-1 highest first. Missing positions are padded with the strictly
// decreasing placeholder entryCount/(i+1); excess lowest-ranked counts
// are dropped.
//
// The frequency-to-counter assignment is a heuristic. The summary
// carries no region-to-counter table, so no correspondence to source
// regions is claimed; higher-frequency code is merely assumed to map to
// earlier counters.
func SynthesizeCounters(counts []uint64, numCounters int, entryCount uint64) []uint64 {
	if numCounters < 0 {
		out := make([]uint64, len(counts))
		copy(out, counts)
		return out
	}

	sorted := make([]uint64, len(counts))
	copy(sorted, counts)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i] > sorted[j] })

	// The entry block normalizes to exactly entryCount; counter 0
	// represents it, so one such occurrence is removed before the rest
	// are distributed.
	remaining := make([]uint64, 0, len(sorted))
	removed := false
	for _, v := range sorted {
		if !removed && v == entryCount {
			removed = true
			continue
		}
		remaining = append(remaining, v)
	}

	out := make([]uint64, 0, numCounters)
	if numCounters == 0 {
		return out
	}
	out = append(out, entryCount)
	for i := 1; i < numCounters; i++ {
		if i-1 < len(remaining) {
			out = append(out, remaining[i-1])
		} else {
			out = append(out, entryCount/uint64(i+1))
		}
	}
	return out
}
