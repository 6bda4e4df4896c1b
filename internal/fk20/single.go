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

// Package fk20 implements the FK20 single- and multi-proof batch-opening
// engines: given a polynomial and a trusted setup, it produces all
// opening proofs on a subgroup of roots of unity in O(n log n) group
// operations via the Toeplitz-via-circulant reduction, instead of the
// naive O(n^2) of computing each proof independently.
package fk20

import (
	"errors"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/nume-crypto/kzg/internal/fft"
	"github.com/nume-crypto/kzg/internal/toeplitz"
	"github.com/nume-crypto/kzg/log"
)

func scalarMulG1(p *bls12381.G1Affine, s *fr.Element) bls12381.G1Affine {
	var sBig big.Int
	s.BigInt(&sBig)
	var res bls12381.G1Affine
	res.ScalarMultiplication(p, &sBig)
	return res
}

// ErrBadArgs mirrors the engine-wide BadArgs discriminant: a
// non-power-of-two polynomial length, a request wider than the
// precomputed settings, or settings wider than the backing FFT domain.
var ErrBadArgs = errors.New("fk20: bad arguments")

// SingleSettings holds the precomputed artefacts for the single-proof
// FK20 engine over a domain of width N2 = 2n: the extended, FFT'd
// trusted-setup vector x_ext_fft used by every invocation.
type SingleSettings struct {
	FS *fft.Settings

	// SecretG1 is the trusted setup's G1 powers, referenced (not owned)
	// from the enclosing KZG settings.
	SecretG1 []bls12381.G1Affine

	// N2 is the domain width 2n this engine was built for.
	N2 uint64

	// XExtFFT is the length-N2 extended setup vector, already FFT'd over G1.
	XExtFFT []bls12381.G1Affine
}

// NewSingleSettings builds the FK20 single-proof engine for a domain of
// width n2, given the fft settings and trusted setup G1 powers it draws
// on. n2 must be a power of two and at most fs.MaxWidth.
func NewSingleSettings(fs *fft.Settings, secretG1 []bls12381.G1Affine, n2 uint64) (*SingleSettings, error) {
	if !fft.IsPowerOfTwo(n2) || n2 > fs.MaxWidth {
		return nil, ErrBadArgs
	}
	n := n2 / 2
	if n < 1 || uint64(len(secretG1)) < n-1 {
		return nil, ErrBadArgs
	}

	logger := log.Component("fk20-single")
	logger.Debug().Uint64("n2", n2).Msg("building fk20 single settings")

	x := make([]bls12381.G1Affine, n2)
	for i := uint64(0); i < n-1; i++ {
		x[i] = secretG1[n-2-i]
	}
	// x[n-1 .. n2) stays at the G1 identity.

	xExtFFT, err := fs.FFTG1(x, false)
	if err != nil {
		return nil, err
	}

	return &SingleSettings{
		FS:       fs,
		SecretG1: secretG1,
		N2:       n2,
		XExtFFT:  xExtFFT,
	}, nil
}

// ProveAll computes all N2 single-point opening proofs for p, one per
// N2-th root of unity, in O(n log n) group operations. len(p) must be a
// power of two with 2*len(p) <= fk.N2; a shorter p is zero-padded to
// fk.N2/2 coefficients.
//
// When bitReversed is false, proofs are returned in natural FFT
// (evaluation-domain) order, the order the final FFT produces:
// ProveAll(p, false)[j] == single-point proof at ω^j, ω the primitive
// N2-th root of unity. When true, they are permuted into bit-reversed
// order.
func (fk *SingleSettings) ProveAll(p []fr.Element, bitReversed bool) ([]bls12381.G1Affine, error) {
	n := uint64(len(p))
	if !fft.IsPowerOfTwo(n) || 2*n > fk.N2 {
		return nil, ErrBadArgs
	}
	if 2*n < fk.N2 {
		padded := make([]fr.Element, fk.N2/2)
		copy(padded, p)
		p = padded
		n = fk.N2 / 2
	}

	toeplitzCoeffs := toeplitz.CoeffsFromPoly(p)

	coeffsFFT, err := fk.FS.FFT(toeplitzCoeffs, false)
	if err != nil {
		return nil, err
	}

	n2 := fk.N2
	hExtFFT := make([]bls12381.G1Affine, n2)
	for i := uint64(0); i < n2; i++ {
		hExtFFT[i] = scalarMulG1(&fk.XExtFFT[i], &coeffsFFT[i])
	}

	hExt, err := fk.FS.FFTG1(hExtFFT, true)
	if err != nil {
		return nil, err
	}

	h := make([]bls12381.G1Affine, n2)
	copy(h[:n], hExt[:n])
	// h[n..n2) stays at the G1 identity.

	proofs, err := fk.FS.FFTG1(h, false)
	if err != nil {
		return nil, err
	}

	if !bitReversed {
		return proofs, nil
	}
	return undoBitReversal(proofs), nil
}

func undoBitReversal(vals []bls12381.G1Affine) []bls12381.G1Affine {
	n := uint64(len(vals))
	width := bitLen(n) - 1
	out := make([]bls12381.G1Affine, n)
	for i := uint64(0); i < n; i++ {
		out[reverseBits(width, i)] = vals[i]
	}
	return out
}

func bitLen(v uint64) uint64 {
	n := uint64(0)
	for v > 0 {
		v >>= 1
		n++
	}
	return n
}

func reverseBits(width, v uint64) uint64 {
	var out uint64
	for i := uint64(0); i < width; i++ {
		out |= ((v >> i) & 1) << (width - 1 - i)
	}
	return out
}
