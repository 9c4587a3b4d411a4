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

package main

import (
	"fmt"
	"time"

	"github.com/0xsoniclabs/casp/ir"
	"github.com/0xsoniclabs/casp/logger"
	"github.com/0xsoniclabs/casp/profdata"
	"github.com/0xsoniclabs/casp/profile"
	"github.com/0xsoniclabs/casp/utils"
	"github.com/urfave/cli/v2"
)

// RunExport implements the profile export of one module. Failures of
// the export itself are reported as warnings and leave the process exit
// code untouched; only an unreadable or malformed input is an error.
func RunExport(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.InputOutputArgs)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "CaspExport")
	start := time.Now()

	module, err := ir.LoadModule(cfg.InputFile)
	if err != nil {
		return err
	}

	var freq profile.FrequencySource = ir.RecordedFrequencies{}
	if !cfg.WuLarusHeuristics {
		log.Info("Wu-Larus branch heuristics disabled; assuming flat block frequencies")
		freq = ir.FlatFrequencies{}
	}

	acc := profdata.NewAccumulator()
	exporter := profile.NewExporter(module, freq, cfg.EntryCount, log)
	summary := exporter.Run(acc)
	if summary.Skipped > 0 {
		log.Warningf("%d function(s) were skipped", summary.Skipped)
	}
	if summary.Processed == 0 {
		log.Warning("No functions processed for static profile generation; no output written")
		return nil
	}
	log.Infof("Produced %d profile record(s) for module %v", acc.Len(), module.Name)

	records := acc.Records()
	if cfg.ProfileDb != "" {
		writeProfileDb(cfg, module, records, log)
	}

	if err := writeContainer(cfg, records); err != nil {
		log.Warningf("Cannot write profile data; %v", err)
		return nil
	}

	hours, minutes, seconds := logger.ParseTime(time.Since(start))
	log.Noticef("Total elapsed time: %vh %vm %vs", hours, minutes, seconds)
	fmt.Printf("Static profile written to: %v\n", cfg.OutputFile)
	return nil
}

// writeContainer serializes the records in the configured format.
func writeContainer(cfg *utils.Config, records []profdata.Record) error {
	if cfg.TextFormat {
		return profdata.WriteTextFile(cfg.OutputFile, records)
	}
	return profdata.WriteFile(cfg.OutputFile, records)
}

// writeProfileDb records the produced profile in the sqlite inspection
// database. Failures degrade to warnings; the export continues.
func writeProfileDb(cfg *utils.Config, module *ir.Module, records []profdata.Record, log logger.Logger) {
	db, err := profdata.NewProfileDB(cfg.ProfileDb, module.Name, cfg.EntryCount)
	if err != nil {
		log.Warningf("Cannot open profile database %v; %v", cfg.ProfileDb, err)
		return
	}
	for _, r := range records {
		if err := db.Add(r); err != nil {
			log.Warningf("Cannot record profile of %v; %v", r.Name, err)
		}
	}
	if err := db.Close(); err != nil {
		log.Warningf("Cannot close profile database %v; %v", cfg.ProfileDb, err)
	}
}
