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
	"os"

	"github.com/0xsoniclabs/casp/logger"
	"github.com/0xsoniclabs/casp/utils"
	"github.com/urfave/cli/v2"
)

var exportApp = &cli.App{
	Action:    RunExport,
	Name:      "CASP static profile exporter",
	HelpName:  "casp-export",
	Usage:     "generate static profile data from a compiled-module summary",
	Copyright: "(c) 2025 Sonic Labs",
	ArgsUsage: "<input.json> [output.profdata]",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&utils.WuLarusHeuristicsFlag,
		&utils.DumpFlag,
		&utils.DumpPathFlag,
		&utils.TextFormatFlag,
		&utils.ProfileDbFlag,
		&utils.EntryCountFlag,
	},
	Commands: []*cli.Command{
		&InspectCommand,
	},
	Description: `
The casp-export command requires one argument: <input.json>

<input.json> is a module summary produced by the block-frequency
analysis of the compiler: per function its control-flow blocks with
relative frequency estimates, and the module's coverage and profile
instrumentation records. The output is an indexed profile container
compatible with profile and coverage tooling; when <output.profdata>
is omitted, the output path defaults to output.profdata.`,
}

func main() {
	if err := exportApp.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
