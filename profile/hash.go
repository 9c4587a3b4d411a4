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

// Package profile implements the frequency-to-counter synthesis engine:
// it locates the structural hash and expected counter count in a
// module's instrumentation metadata and converts relative block
// frequencies into counter arrays in the layout profile consumers
// expect.
package profile

import (
	"crypto/md5"
	"encoding/binary"
)

// ComputeNameHash returns the indexed-profile hash of a canonical
// profiling name: the low eight bytes of the name's MD5 digest, read in
// little-endian order.
func ComputeNameHash(name string) uint64 {
	sum := md5.Sum([]byte(name))
	return binary.LittleEndian.Uint64(sum[:8])
}
