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
	"flag"
	"testing"

	"github.com/0xsoniclabs/casp/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func prepareMockCliContext(t *testing.T, args []string, setFlags map[string]string) *cli.Context {
	t.Helper()

	flagSet := flag.NewFlagSet("utils_config_test", 0)
	flagSet.String(logger.LogLevelFlag.Name, "info", "log level")
	flagSet.Bool(WuLarusHeuristicsFlag.Name, true, "wu-larus heuristics")
	flagSet.Bool(DumpFlag.Name, false, "dump mode")
	flagSet.String(DumpPathFlag.Name, "", "dump path")
	flagSet.Bool(TextFormatFlag.Name, false, "text format")
	flagSet.String(ProfileDbFlag.Name, "", "profile db")
	flagSet.Uint64(EntryCountFlag.Name, DefaultEntryCount, "entry count")
	require.NoError(t, flagSet.Parse(args))
	for name, value := range setFlags {
		require.NoError(t, flagSet.Set(name, value))
	}

	ctx := cli.NewContext(cli.NewApp(), flagSet, nil)
	ctx.Command = &cli.Command{Name: "test_command"}
	return ctx
}

func TestUtilsConfig_InputOutputArgs(t *testing.T) {
	ctx := prepareMockCliContext(t, []string{"module.json", "custom.profdata"}, nil)

	cfg, err := NewConfig(ctx, InputOutputArgs)
	require.NoError(t, err)
	assert.Equal(t, "module.json", cfg.InputFile)
	assert.Equal(t, "custom.profdata", cfg.OutputFile)
	assert.True(t, cfg.WuLarusHeuristics)
	assert.Equal(t, uint64(DefaultEntryCount), cfg.EntryCount)
}

func TestUtilsConfig_ArgumentArity(t *testing.T) {
	tests := []struct {
		name string
		args []string
		mode ArgMode
		ok   bool
	}{
		{"no args for input-output mode", []string{}, InputOutputArgs, false},
		{"one arg", []string{"module.json"}, InputOutputArgs, true},
		{"two args", []string{"module.json", "out"}, InputOutputArgs, true},
		{"three args", []string{"a", "b", "c"}, InputOutputArgs, false},
		{"no args mode", []string{}, NoArgs, true},
		{"unexpected arg in no-args mode", []string{"x"}, NoArgs, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctx := prepareMockCliContext(t, test.args, nil)
			_, err := NewConfig(ctx, test.mode)
			if test.ok {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestUtilsConfig_OutputFilePrecedence(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		setFlags map[string]string
		want     string
	}{
		{"explicit argument wins", []string{"m.json", "explicit.profdata"},
			map[string]string{DumpPathFlag.Name: "dumped.profdata", DumpFlag.Name: "true"}, "explicit.profdata"},
		{"dump path beats dump default", []string{"m.json"},
			map[string]string{DumpPathFlag.Name: "dumped.profdata", DumpFlag.Name: "true"}, "dumped.profdata"},
		{"dump mode default", []string{"m.json"},
			map[string]string{DumpFlag.Name: "true"}, PluginOutputFile},
		{"regular default", []string{"m.json"}, nil, DefaultOutputFile},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctx := prepareMockCliContext(t, test.args, test.setFlags)
			cfg, err := NewConfig(ctx, InputOutputArgs)
			require.NoError(t, err)
			assert.Equal(t, test.want, cfg.OutputFile)
		})
	}
}

func TestUtilsConfig_ZeroEntryCountRejected(t *testing.T) {
	ctx := prepareMockCliContext(t, []string{"m.json"}, map[string]string{EntryCountFlag.Name: "0"})
	_, err := NewConfig(ctx, InputOutputArgs)
	require.ErrorContains(t, err, "entry-count")
}
