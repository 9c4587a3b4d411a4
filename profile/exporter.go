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
	"github.com/0xsoniclabs/casp/ir"
	"github.com/0xsoniclabs/casp/logger"
	"github.com/0xsoniclabs/casp/profdata"
)

// Summary reports the outcome of one module pass.
type Summary struct {
	Processed int // functions with a produced profile record
	Skipped   int // functions skipped because of a local failure
}

// Exporter assembles one profile record per defined function of a
// module. All per-function failures are local; a pass never aborts.
type Exporter struct {
	module     *ir.Module
	freq       FrequencySource
	entryCount uint64
	log        logger.Logger
}

// NewExporter creates an exporter for one module pass.
func NewExporter(module *ir.Module, freq FrequencySource, entryCount uint64, log logger.Logger) *Exporter {
	return &Exporter{
		module:     module,
		freq:       freq,
		entryCount: entryCount,
		log:        log,
	}
}

// Run walks all functions of the module and inserts one record per
// analyzable function into the accumulator. Declarations are passed
// over silently; functions without a usable entry frequency and records
// refused by the accumulator are counted as skipped.
func (e *Exporter) Run(acc *profdata.Accumulator) Summary {
	var summary Summary
	for i := range e.module.Functions {
		fn := &e.module.Functions[i]
		if fn.IsDeclaration() {
			e.log.Debugf("Skipping declaration %v", fn.Name)
			continue
		}

		counts, err := NormalizeFrequencies(fn, e.freq, e.entryCount)
		if err != nil {
			e.log.Debugf("Cannot scale block frequencies of %v; %v", fn.Name, err)
			summary.Skipped++
			continue
		}

		numCounters := -1
		if n, found := ExtractCounterCount(e.module, fn); found {
			numCounters = n
			e.log.Debugf("Function %v has %d instrumented counters", fn.Name, n)
		}
		counters := SynthesizeCounters(counts, numCounters, e.entryCount)

		record := profdata.Record{
			Name:     fn.ProfileName(),
			Hash:     FunctionHash(e.module, fn),
			Counters: counters,
		}
		if err := acc.Add(record); err != nil {
			e.log.Warningf("Cannot add profile record for %v; %v", fn.Name, err)
			summary.Skipped++
			continue
		}
		summary.Processed++
	}
	return summary
}
