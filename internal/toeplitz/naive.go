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

package toeplitz

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// NaiveMultiply computes the O(n^2) Toeplitz matrix-vector product
// directly from its generating column/row, for cross-checking the FFT
// based reduction on small inputs per the design note in spec §9. The
// matrix T is n x n with T[i][j] = gen[n-1+i-j] (the standard Toeplitz
// indexing by diagonal), and vec has length n.
func NaiveMultiply(gen []bls12381.G1Affine, vec []fr.Element) []bls12381.G1Affine {
	n := len(vec)
	out := make([]bls12381.G1Affine, n)
	for i := 0; i < n; i++ {
		var acc bls12381.G1Jac
		for j := 0; j < n; j++ {
			d := n - 1 + i - j
			if vec[j].IsZero() {
				continue
			}
			var scalar big.Int
			vec[j].BigInt(&scalar)
			var term bls12381.G1Jac
			term.FromAffine(&gen[d])
			term.ScalarMultiplication(&term, &scalar)
			acc.AddAssign(&term)
		}
		out[i].FromJacobian(&acc)
	}
	return out
}
