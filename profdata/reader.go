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
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
)

// Parse decodes an indexed profile container.
func Parse(data []byte) ([]Record, error) {
	reader := bytes.NewReader(data)

	var hdr profileFileHeader
	if err := binary.Read(reader, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("profdata: read header: %w", err)
	}
	if hdr.Magic != profileFileMagic {
		return nil, fmt.Errorf("profdata: invalid container magic")
	}
	if hdr.Version != profileFileVersion {
		return nil, fmt.Errorf("profdata: unsupported container version %d", hdr.Version)
	}
	if hdr.HashType != hashTypeMD5Low64 {
		return nil, fmt.Errorf("profdata: unsupported hash type %d", hdr.HashType)
	}

	records := make([]Record, 0, hdr.Records)
	for i := uint32(0); i < hdr.Records; i++ {
		var nameLen uint32
		if err := binary.Read(reader, binary.LittleEndian, &nameLen); err != nil {
			return nil, fmt.Errorf("profdata: read name length of record %d: %w", i, err)
		}
		if int(nameLen) > reader.Len() {
			return nil, fmt.Errorf("profdata: truncated name of record %d", i)
		}
		name := make([]byte, nameLen)
		if _, err := reader.Read(name); err != nil {
			return nil, fmt.Errorf("profdata: read name of record %d: %w", i, err)
		}

		var hash uint64
		if err := binary.Read(reader, binary.LittleEndian, &hash); err != nil {
			return nil, fmt.Errorf("profdata: read hash of record %d: %w", i, err)
		}

		var numCounters uint32
		if err := binary.Read(reader, binary.LittleEndian, &numCounters); err != nil {
			return nil, fmt.Errorf("profdata: read counter count of record %d: %w", i, err)
		}
		if int(numCounters)*8 > reader.Len() {
			return nil, fmt.Errorf("profdata: truncated counters of record %d", i)
		}
		counters := make([]uint64, numCounters)
		if err := binary.Read(reader, binary.LittleEndian, counters); err != nil {
			return nil, fmt.Errorf("profdata: read counters of record %d: %w", i, err)
		}

		records = append(records, Record{Name: string(name), Hash: hash, Counters: counters})
	}

	if reader.Len() != 0 {
		return nil, fmt.Errorf("profdata: %d trailing bytes after last record", reader.Len())
	}

	return records, nil
}

// ReadFile reads and decodes a container file.
func ReadFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("profdata: cannot read %v; %w", path, err)
	}
	return Parse(data)
}
