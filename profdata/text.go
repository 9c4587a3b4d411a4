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

package profdata

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WriteText serializes the records in the text profile format: per
// record the function name, its hash, the counter count and one counter
// per line, with records separated by a blank line. Comment lines start
// with '#'.
func WriteText(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)

	for i, r := range records {
		if i > 0 {
			if _, err := fmt.Fprintln(bw); err != nil {
				return fmt.Errorf("profdata: write record separator: %w", err)
			}
		}
		if _, err := fmt.Fprintln(bw, r.Name); err != nil {
			return fmt.Errorf("profdata: write name of %v: %w", r.Name, err)
		}
		if _, err := fmt.Fprintf(bw, "# Func Hash:\n%d\n", r.Hash); err != nil {
			return fmt.Errorf("profdata: write hash of %v: %w", r.Name, err)
		}
		if _, err := fmt.Fprintf(bw, "# Num Counters:\n%d\n", len(r.Counters)); err != nil {
			return fmt.Errorf("profdata: write counter count of %v: %w", r.Name, err)
		}
		if _, err := fmt.Fprintln(bw, "# Counter Values:"); err != nil {
			return fmt.Errorf("profdata: write counter values of %v: %w", r.Name, err)
		}
		for _, c := range r.Counters {
			if _, err := fmt.Fprintln(bw, c); err != nil {
				return fmt.Errorf("profdata: write counter of %v: %w", r.Name, err)
			}
		}
	}

	return bw.Flush()
}

// WriteTextFile serializes the records into a text profile at path.
func WriteTextFile(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("profdata: cannot open output file %v; %w", path, err)
	}
	if err := WriteText(f, records); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
