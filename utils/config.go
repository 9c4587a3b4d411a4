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

package utils

import (
	"fmt"

	"github.com/0xsoniclabs/casp/logger"
	"github.com/urfave/cli/v2"
)

// ArgMode determines the arity of positional arguments of an app action.
type ArgMode int

const (
	NoArgs ArgMode = iota
	InputOutputArgs
)

const (
	// DefaultOutputFile is used when neither an output argument nor a
	// dump flag selects a path.
	DefaultOutputFile = "output.profdata"

	// PluginOutputFile is the output path of the always-on dump mode
	// when no explicit dump path is given.
	PluginOutputFile = "default.profdata"

	// DefaultEntryCount is the synthetic absolute execution count
	// assigned to a function's entry block when scaling relative
	// block-frequency estimates.
	DefaultEntryCount = 100
)

var (
	WuLarusHeuristicsFlag = cli.BoolFlag{
		Name:  "wu-larus-heuristics",
		Usage: "trust the Wu-Larus branch heuristic estimates recorded by the block-frequency analysis",
		Value: true,
	}
	DumpFlag = cli.BoolFlag{
		Name:  "dump",
		Usage: fmt.Sprintf("enable always-on profile dump mode; writes to %v when --dump-path is unset", PluginOutputFile),
	}
	DumpPathFlag = cli.StringFlag{
		Name:  "dump-path",
		Usage: "path to write static profile data in dump mode",
	}
	TextFormatFlag = cli.BoolFlag{
		Name:  "text",
		Usage: "write the profile in text format instead of the indexed binary container",
	}
	ProfileDbFlag = cli.StringFlag{
		Name:  "profile-db",
		Usage: "path to a sqlite3 database recording the produced profile records",
	}
	EntryCountFlag = cli.Uint64Flag{
		Name:  "entry-count",
		Usage: "synthetic execution count of a function entry used for scaling block frequencies",
		Value: DefaultEntryCount,
	}
)

// Config of the profile-export run, derived from command-line flags and
// positional arguments.
type Config struct {
	AppName     string
	CommandName string

	InputFile  string // module summary to analyze
	OutputFile string // resolved profile output path

	LogLevel          string
	WuLarusHeuristics bool   // trust recorded heuristic frequency estimates
	Dump              bool   // always-on dump mode
	DumpPath          string // dump mode output path
	TextFormat        bool   // text container instead of binary
	ProfileDb         string // optional sqlite record sink
	EntryCount        uint64 // reference entry count K
}

// NewConfig creates a config instance from the cli context of an app action.
func NewConfig(ctx *cli.Context, mode ArgMode) (*Config, error) {
	cfg := &Config{
		AppName:           ctx.App.HelpName,
		CommandName:       ctx.Command.Name,
		LogLevel:          ctx.String(logger.LogLevelFlag.Name),
		WuLarusHeuristics: ctx.Bool(WuLarusHeuristicsFlag.Name),
		Dump:              ctx.Bool(DumpFlag.Name),
		DumpPath:          ctx.String(DumpPathFlag.Name),
		TextFormat:        ctx.Bool(TextFormatFlag.Name),
		ProfileDb:         ctx.String(ProfileDbFlag.Name),
		EntryCount:        ctx.Uint64(EntryCountFlag.Name),
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = logger.LogLevelFlag.Value
	}
	if cfg.EntryCount == 0 {
		return nil, fmt.Errorf("entry-count must be greater than zero")
	}

	switch mode {
	case NoArgs:
		if ctx.Args().Len() != 0 {
			return nil, fmt.Errorf("command %q expects no arguments", cfg.CommandName)
		}
	case InputOutputArgs:
		if ctx.Args().Len() < 1 || ctx.Args().Len() > 2 {
			return nil, fmt.Errorf("usage: %v <input> [output]", cfg.AppName)
		}
		cfg.InputFile = ctx.Args().Get(0)
		cfg.OutputFile = ctx.Args().Get(1)
	default:
		return nil, fmt.Errorf("unknown argument mode %v", mode)
	}

	cfg.OutputFile = resolveOutputFile(cfg)
	return cfg, nil
}

// resolveOutputFile implements the output-path precedence: an explicit
// positional argument wins, then the dump path, then the dump-mode
// default, then the regular default.
func resolveOutputFile(cfg *Config) string {
	if cfg.OutputFile != "" {
		return cfg.OutputFile
	}
	if cfg.DumpPath != "" {
		return cfg.DumpPath
	}
	if cfg.Dump {
		return PluginOutputFile
	}
	return DefaultOutputFile
}
