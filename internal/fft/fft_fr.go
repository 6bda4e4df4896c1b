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
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// FFT computes the forward (inv=false) or inverse (inv=true) FFT of vals
// over F_r. len(vals) must be a power of two no larger than s.MaxWidth.
func (s *Settings) FFT(vals []fr.Element, inv bool) ([]fr.Element, error) {
	n := uint64(len(vals))
	if !IsPowerOfTwo(n) {
		return nil, ErrNotPowerOfTwo
	}
	if n > s.MaxWidth {
		return nil, ErrTooWide
	}

	stride := s.MaxWidth / n
	out := make([]fr.Element, n)

	if inv {
		roots := s.ReverseRootsOfUnity
		fftFrRecurse(vals, 0, 1, roots, stride, out)

		var invLen fr.Element
		invLen.SetUint64(n)
		invLen.Inverse(&invLen)
		for i := range out {
			out[i].Mul(&out[i], &invLen)
		}
		return out, nil
	}

	roots := s.ExpandedRootsOfUnity
	fftFrRecurse(vals, 0, 1, roots, stride, out)
	return out, nil
}

// fftFrRecurse implements radix-2 decimation-in-time: at recursion depth
// d the j-th butterfly multiplies by roots[j*rootsStride], where
// rootsStride doubles with each level of recursion and valsStride mirrors
// it on the input side. Below a small cutoff it falls back to the naive
// O(n^2) DFT, which is faster for tiny inputs and serves as the base case.
func fftFrRecurse(vals []fr.Element, valsOffset, valsStride uint64, roots []fr.Element, rootsStride uint64, out []fr.Element) {
	if len(out) <= 4 {
		simpleDFTFr(vals, valsOffset, valsStride, roots, rootsStride, out)
		return
	}

	half := uint64(len(out)) >> 1

	fftFrRecurse(vals, valsOffset, valsStride<<1, roots, rootsStride<<1, out[:half])
	fftFrRecurse(vals, valsOffset+valsStride, valsStride<<1, roots, rootsStride<<1, out[half:])

	for i := uint64(0); i < half; i++ {
		var yTimesRoot fr.Element
		yTimesRoot.Mul(&out[i+half], &roots[i*rootsStride])

		x := out[i]
		out[i].Add(&x, &yTimesRoot)
		out[i+half].Sub(&x, &yTimesRoot)
	}
}

// simpleDFTFr is the O(n^2) base case of fftFrRecurse.
func simpleDFTFr(vals []fr.Element, valsOffset, valsStride uint64, roots []fr.Element, rootsStride uint64, out []fr.Element) {
	l := uint64(len(out))
	for i := uint64(0); i < l; i++ {
		var v, acc fr.Element
		acc.Mul(&vals[valsOffset], &roots[0])
		for j := uint64(1); j < l; j++ {
			root := &roots[((i*j)%l)*rootsStride]
			v.Mul(&vals[valsOffset+j*valsStride], root)
			acc.Add(&acc, &v)
		}
		out[i] = acc
	}
}
