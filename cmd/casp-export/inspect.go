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
	"strings"

	"github.com/0xsoniclabs/casp/profdata"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
)

// InspectCommand data structure for the container inspection app
var InspectCommand = cli.Command{
	Action:    inspectAction,
	Name:      "inspect",
	Usage:     "print the records of an indexed profile container",
	ArgsUsage: "<profile.profdata>",
	Description: `
The inspect command requires one argument: <profile.profdata>

It decodes a container written by casp-export and prints one row per
profile record.`,
}

// inspectAction decodes a container and renders a per-function table.
func inspectAction(ctx *cli.Context) error {
	if ctx.Args().Len() != 1 {
		return fmt.Errorf("usage: %v inspect <profile.profdata>", ctx.App.HelpName)
	}

	records, err := profdata.ReadFile(ctx.Args().Get(0))
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(ctx.App.Writer)
	t.AppendHeader(table.Row{"Function", "Hash", "Counters", "Entry Count", "Values"})
	for _, r := range records {
		t.AppendRow(table.Row{r.Name, fmt.Sprintf("%016x", r.Hash), len(r.Counters), entryCount(r), formatCounters(r.Counters, 8)})
	}
	t.AppendFooter(table.Row{"Records", len(records), "", "", ""})
	t.Render()

	return nil
}

func entryCount(r profdata.Record) string {
	if len(r.Counters) == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", r.Counters[0])
}

// formatCounters renders a short preview of a counter array.
func formatCounters(counters []uint64, max int) string {
	parts := make([]string, 0, max+1)
	for i, c := range counters {
		if i == max {
			parts = append(parts, "...")
			break
		}
		parts = append(parts, fmt.Sprintf("%d", c))
	}
	return strings.Join(parts, " ")
}
