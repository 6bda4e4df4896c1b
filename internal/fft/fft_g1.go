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

package fft

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Identity is the G1 identity element (point at infinity).
var Identity = bls12381.G1Affine{}

// FFTG1 computes the forward (inv=false) or inverse (inv=true) FFT of
// vals over G1, substituting scalar multiplication for field
// multiplication and group addition for field addition. len(vals) must
// be a power of two no larger than s.MaxWidth.
func (s *Settings) FFTG1(vals []bls12381.G1Affine, inv bool) ([]bls12381.G1Affine, error) {
	n := uint64(len(vals))
	if !IsPowerOfTwo(n) {
		return nil, ErrNotPowerOfTwo
	}
	if n > s.MaxWidth {
		return nil, ErrTooWide
	}

	stride := s.MaxWidth / n
	out := make([]bls12381.G1Affine, n)

	if inv {
		roots := s.ReverseRootsOfUnity
		fftG1Recurse(vals, 0, 1, roots, stride, out)

		var invLen fr.Element
		invLen.SetUint64(n)
		invLen.Inverse(&invLen)
		for i := range out {
			out[i] = g1Mul(&out[i], &invLen)
		}
		return out, nil
	}

	roots := s.ExpandedRootsOfUnity
	fftG1Recurse(vals, 0, 1, roots, stride, out)
	return out, nil
}

func fftG1Recurse(vals []bls12381.G1Affine, valsOffset, valsStride uint64, roots []fr.Element, rootsStride uint64, out []bls12381.G1Affine) {
	if len(out) <= 4 {
		simpleDFTG1(vals, valsOffset, valsStride, roots, rootsStride, out)
		return
	}

	half := uint64(len(out)) >> 1

	fftG1Recurse(vals, valsOffset, valsStride<<1, roots, rootsStride<<1, out[:half])
	fftG1Recurse(vals, valsOffset+valsStride, valsStride<<1, roots, rootsStride<<1, out[half:])

	for i := uint64(0); i < half; i++ {
		yTimesRoot := g1Mul(&out[i+half], &roots[i*rootsStride])

		x := out[i]
		out[i] = g1Add(&x, &yTimesRoot)
		out[i+half] = g1Sub(&x, &yTimesRoot)
	}
}

func simpleDFTG1(vals []bls12381.G1Affine, valsOffset, valsStride uint64, roots []fr.Element, rootsStride uint64, out []bls12381.G1Affine) {
	l := uint64(len(out))
	for i := uint64(0); i < l; i++ {
		acc := g1Mul(&vals[valsOffset], &roots[0])
		for j := uint64(1); j < l; j++ {
			root := &roots[((i*j)%l)*rootsStride]
			v := g1Mul(&vals[valsOffset+j*valsStride], root)
			acc = g1Add(&acc, &v)
		}
		out[i] = acc
	}
}

func g1Mul(p *bls12381.G1Affine, s *fr.Element) bls12381.G1Affine {
	var sBig big.Int
	s.BigInt(&sBig)
	var res bls12381.G1Affine
	res.ScalarMultiplication(p, &sBig)
	return res
}

func g1Add(a, b *bls12381.G1Affine) bls12381.G1Affine {
	var jac bls12381.G1Jac
	jac.FromAffine(a)
	jac.AddMixed(b)
	var res bls12381.G1Affine
	res.FromJacobian(&jac)
	return res
}

func g1Sub(a, b *bls12381.G1Affine) bls12381.G1Affine {
	var negB bls12381.G1Affine
	negB.Neg(b)
	return g1Add(a, &negB)
}
