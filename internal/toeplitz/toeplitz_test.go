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
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/require"

	"github.com/nume-crypto/kzg/internal/fft"
)

// TestCirculantReductionMatchesNaive exercises the Toeplitz-via-circulant
// trick directly: embeds a small strictly upper-triangular 4x4 Toeplitz
// matrix (the shape FK20 reduces to) into an 8x8 circulant, computes the
// product via FFT, and checks it against the
// textbook O(n^2) product. This is the design-note-mandated cross-check
// for the reduction FK20 single/multi both build on.
func TestCirculantReductionMatchesNaive(t *testing.T) {
	assert := require.New(t)

	_, _, g1Aff, _ := bls12381.Generators()

	n := uint64(4)
	// Generating sequence for a Toeplitz matrix with 2n-1 = 7 diagonals;
	// gen[n-1..2n-1) (the main diagonal and everything below it) stays at
	// the G1 identity, leaving the n-1 = 3 strict upper diagonals.
	gen := make([]bls12381.G1Affine, 2*n-1)
	for i := 0; i < int(n)-1; i++ {
		var s fr.Element
		s.SetUint64(uint64(i) + 1)
		var sBig big.Int
		s.BigInt(&sBig)
		gen[i].ScalarMultiplication(&g1Aff, &sBig)
	}

	vec := make([]fr.Element, n)
	for i := range vec {
		vec[i].SetUint64(uint64(i)*3 + 1)
	}

	want := NaiveMultiply(gen, vec)

	// Circulant embedding: extend the strict upper diagonals to length 2n
	// (matching the x_ext construction FK20 single uses, where the
	// diagonal gen[d] is secret_g1[n-2-d]), FFT both sides, multiply
	// pointwise, inverse FFT, and keep the first n entries.
	s, err := fft.NewSettings(3) // max width 8 = 2n
	assert.NoError(err)

	xExt := make([]bls12381.G1Affine, 2*n)
	for i := uint64(0); i < n-1; i++ {
		xExt[i] = gen[i]
	}
	// xExt[n-1 .. 2n) stays identity.

	toeplitzCoeffs := CoeffsFromPoly(vec)

	xExtFFT, err := s.FFTG1(xExt, false)
	assert.NoError(err)
	coeffsFFT, err := s.FFT(toeplitzCoeffs, false)
	assert.NoError(err)

	hExtFFT := make([]bls12381.G1Affine, 2*n)
	for i := range hExtFFT {
		var sBig big.Int
		coeffsFFT[i].BigInt(&sBig)
		hExtFFT[i].ScalarMultiplication(&xExtFFT[i], &sBig)
	}

	hExt, err := s.FFTG1(hExtFFT, true)
	assert.NoError(err)

	got := hExt[:n]
	for i := range want {
		assert.True(want[i].Equal(&got[i]), "diagonal %d mismatch", i)
	}
}
