// Copyright 2020 ConsenSys AG
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package toeplitz implements the Toeplitz-via-circulant reduction FK20
// relies on: a length-n Toeplitz matrix-vector product is computed as an
// FFT-domain pointwise product against a length-2n circulant embedding,
// in O(n log n) instead of the naive O(n^2).
package toeplitz

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// CoeffsFromPoly builds the length-2k "toeplitz coefficients" vector for
// a length-k polynomial column, following the reverse-and-pad layout the
// FK20 single-proof reduction uses: out[0] = poly[k-1], out[1..k+1] are
// zero, out[k+2..2k) = poly[1..k-1).
func CoeffsFromPoly(poly []fr.Element) []fr.Element {
	k := uint64(len(poly))
	out := make([]fr.Element, 2*k)
	out[0] = poly[k-1]
	// out[1..k+1] already zero-valued
	for i := k + 2; i < 2*k; i++ {
		out[i] = poly[i-(k+1)]
	}
	return out
}

// CoeffsFromPolyStrided builds the same length-2k vector as
// CoeffsFromPoly, but for the length-k "column" subsequence of poly
// sampled at stride l starting at offset: poly[offset], poly[offset+l],
// poly[offset+2l], ... This is what FK20 multi uses to decompose the
// quotient computation into l independent Toeplitz products, one per
// residue class mod l.
func CoeffsFromPolyStrided(poly []fr.Element, offset, stride uint64) []fr.Element {
	n := uint64(len(poly))
	k := n / stride
	column := make([]fr.Element, k)
	for i := uint64(0); i < k; i++ {
		column[i] = poly[offset+i*stride]
	}
	return CoeffsFromPoly(column)
}
