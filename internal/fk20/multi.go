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

package fk20

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/nume-crypto/kzg/internal/fft"
	"github.com/nume-crypto/kzg/internal/toeplitz"
	"github.com/nume-crypto/kzg/log"
)

// MultiSettings holds the precomputed artefacts for the multi-proof
// (coset) FK20 engine: one extended-setup FFT-G1 vector per Toeplitz
// column, ChunkLen of them.
type MultiSettings struct {
	FS *fft.Settings

	SecretG1 []bls12381.G1Affine

	// N2 is the domain width this engine was built for.
	N2 uint64

	// ChunkLen is l, the coset size each combined proof covers.
	ChunkLen uint64

	// ChunkCount is n2/(2*ChunkLen) = n/l, the number of Toeplitz
	// products each column reduces to, and half the output length.
	ChunkCount uint64

	// XExtFFT[c] is the length-2*ChunkCount extended setup vector for
	// column c, already FFT'd over G1.
	XExtFFT [][]bls12381.G1Affine
}

// NewMultiSettings builds the FK20 multi-proof engine for a domain of
// width n2 and coset length chunkLen. n2 and chunkLen must both be
// powers of two, and chunkLen must divide n2/2.
func NewMultiSettings(fs *fft.Settings, secretG1 []bls12381.G1Affine, n2, chunkLen uint64) (*MultiSettings, error) {
	if !fft.IsPowerOfTwo(n2) || n2 > fs.MaxWidth {
		return nil, ErrBadArgs
	}
	if !fft.IsPowerOfTwo(chunkLen) || chunkLen == 0 {
		return nil, ErrBadArgs
	}
	n := n2 / 2
	if chunkLen > n || n%chunkLen != 0 {
		return nil, ErrBadArgs
	}

	chunkCount := n / chunkLen

	logger := log.Component("fk20-multi")
	logger.Debug().Uint64("n2", n2).Uint64("chunk_len", chunkLen).Uint64("chunk_count", chunkCount).Msg("building fk20 multi settings")

	xExtFFT := make([][]bls12381.G1Affine, chunkLen)
	for c := uint64(0); c < chunkLen; c++ {
		col, err := buildColumnXExt(fs, secretG1, n, chunkLen, chunkCount, c)
		if err != nil {
			return nil, err
		}
		xExtFFT[c] = col
	}

	return &MultiSettings{
		FS:         fs,
		SecretG1:   secretG1,
		N2:         n2,
		ChunkLen:   chunkLen,
		ChunkCount: chunkCount,
		XExtFFT:    xExtFFT,
	}, nil
}

// buildColumnXExt constructs the extended setup vector for Toeplitz
// column c: the canonical FK20-multi window secret_g1[n-l-1-c-j*l],
// which reduces to the single-proof reduction's x_ext[i] =
// secret_g1[n-2-i] at l=1, c=0, chunk_count=n.
func buildColumnXExt(fs *fft.Settings, secretG1 []bls12381.G1Affine, n, chunkLen, chunkCount, c uint64) ([]bls12381.G1Affine, error) {
	x := make([]bls12381.G1Affine, 2*chunkCount)
	for j := uint64(0); j < chunkCount-1; j++ {
		idx := n - chunkLen - 1 - c - j*chunkLen
		if idx >= uint64(len(secretG1)) {
			return nil, ErrBadArgs
		}
		x[j] = secretG1[idx]
	}
	// x[chunk_count-1 .. 2*chunk_count) stays at the G1 identity.

	return fs.FFTG1(x, false)
}

// ProveAll computes all 2*ChunkCount combined coset opening proofs for p,
// one per disjoint coset of size ChunkLen, at total cost
// O((n/l)*l*log(n/l)) group operations. len(p) must equal fk.N2/2.
//
// When bitReversed is false, proofs are returned in natural coset-index
// order, the order the final FFT produces; when true, they are permuted
// into bit-reversed order — the same choice the single-proof engine
// exposes, per the ordering design note in spec §9.
//
// The setup window of column c (see buildColumnXExt) is paired with the
// coefficients whose index is congruent to ChunkLen-1-c mod ChunkLen.
func (fk *MultiSettings) ProveAll(p []fr.Element, bitReversed bool) ([]bls12381.G1Affine, error) {
	n := fk.N2 / 2
	if uint64(len(p)) != n {
		return nil, ErrBadArgs
	}

	k2 := 2 * fk.ChunkCount
	hExtFFT := make([]bls12381.G1Affine, k2)
	for i := range hExtFFT {
		hExtFFT[i] = fft.Identity
	}

	for c := uint64(0); c < fk.ChunkLen; c++ {
		columnCoeffs := toeplitz.CoeffsFromPolyStrided(p, fk.ChunkLen-1-c, fk.ChunkLen)

		columnFFT, err := fk.FS.FFT(columnCoeffs, false)
		if err != nil {
			return nil, err
		}

		for i := uint64(0); i < k2; i++ {
			term := scalarMulG1(&fk.XExtFFT[c][i], &columnFFT[i])
			hExtFFT[i] = g1AddAffine(&hExtFFT[i], &term)
		}
	}

	hExt, err := fk.FS.FFTG1(hExtFFT, true)
	if err != nil {
		return nil, err
	}

	h := make([]bls12381.G1Affine, k2)
	copy(h[:fk.ChunkCount], hExt[:fk.ChunkCount])
	// h[chunk_count..k2) stays at the G1 identity.

	proofs, err := fk.FS.FFTG1(h, false)
	if err != nil {
		return nil, err
	}

	if !bitReversed {
		return proofs, nil
	}
	return undoBitReversal(proofs), nil
}

func g1AddAffine(a, b *bls12381.G1Affine) bls12381.G1Affine {
	var jac bls12381.G1Jac
	jac.FromAffine(a)
	jac.AddMixed(b)
	var res bls12381.G1Affine
	res.FromJacobian(&jac)
	return res
}
