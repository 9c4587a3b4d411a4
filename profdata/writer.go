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

// The indexed profile container is a little-endian binary file holding
// zero or more (name, hash, counter array) records behind a fixed
// header. Readers accept counter 0 as the entry count of a function and
// validate the record hash against their own structural-hash
// expectation.

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

var profileFileMagic = [8]byte{0xff, 'c', 'a', 's', 'p', 'r', 'o', 'f'}

const (
	profileFileVersion = 1

	// hashTypeMD5Low64 identifies the record hash function: the low 64
	// bits of an MD5 digest.
	hashTypeMD5Low64 = 1
)

type profileFileHeader struct {
	Magic    [8]byte
	Version  uint32
	HashType uint32
	Records  uint32
	_        [4]byte
}

// Write serializes the records to w in container order.
func Write(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)

	hdr := profileFileHeader{
		Magic:    profileFileMagic,
		Version:  profileFileVersion,
		HashType: hashTypeMD5Low64,
		Records:  uint32(len(records)),
	}
	if err := binary.Write(bw, binary.LittleEndian, hdr); err != nil {
		return fmt.Errorf("profdata: write header: %w", err)
	}

	for _, r := range records {
		if err := binary.Write(bw, binary.LittleEndian, uint32(len(r.Name))); err != nil {
			return fmt.Errorf("profdata: write name length of %v: %w", r.Name, err)
		}
		if _, err := bw.WriteString(r.Name); err != nil {
			return fmt.Errorf("profdata: write name of %v: %w", r.Name, err)
		}
		if err := binary.Write(bw, binary.LittleEndian, r.Hash); err != nil {
			return fmt.Errorf("profdata: write hash of %v: %w", r.Name, err)
		}
		if err := binary.Write(bw, binary.LittleEndian, uint32(len(r.Counters))); err != nil {
			return fmt.Errorf("profdata: write counter count of %v: %w", r.Name, err)
		}
		if err := binary.Write(bw, binary.LittleEndian, r.Counters); err != nil {
			return fmt.Errorf("profdata: write counters of %v: %w", r.Name, err)
		}
	}

	return bw.Flush()
}

// WriteFile serializes the records into a container file at path.
func WriteFile(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("profdata: cannot open output file %v; %w", path, err)
	}
	if err := Write(f, records); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
