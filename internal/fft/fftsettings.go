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

// Package fft precomputes a power-of-two FFT domain over the BLS12-381
// scalar field and implements radix-2 Cooley-Tukey FFT/IFFT over that
// field and over G1, driven by the precomputed roots of unity.
package fft

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	gnarkfft "github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"
	"golang.org/x/exp/slices"

	"github.com/nume-crypto/kzg/log"
)

// ErrNotPowerOfTwo is returned when an FFT input length isn't a power of two.
var ErrNotPowerOfTwo = errors.New("fft: length is not a power of two")

// ErrTooWide is returned when an FFT input length exceeds the domain's MaxWidth.
var ErrTooWide = errors.New("fft: length exceeds domain max width")

// ErrBadScale is returned when a requested domain scale is unusable.
var ErrBadScale = errors.New("fft: scale must be > 0")

// Settings precomputes the power-of-two FFT domain of width MaxWidth =
// 2^scale: the expanded (forward) and reversed (inverse) root-of-unity
// tables, plus a bit-reversed roots table for callers that need natural
// subgroup order. All three arrays are owned by Settings and never
// mutated after construction.
type Settings struct {
	// MaxWidth is 2^scale, the largest domain this Settings supports.
	MaxWidth uint64

	// ExpandedRootsOfUnity[i] = ω^i for i in [0, MaxWidth], ω a primitive
	// MaxWidth-th root of unity. The table closes with ExpandedRootsOfUnity[MaxWidth] == 1.
	ExpandedRootsOfUnity []fr.Element

	// ReverseRootsOfUnity is ExpandedRootsOfUnity in reverse order, used
	// as the root table for the inverse transform.
	ReverseRootsOfUnity []fr.Element

	// RootsOfUnity is ExpandedRootsOfUnity[:MaxWidth] permuted into
	// bit-reversed order, for callers that need the roots in that order.
	// FFT and FFTG1 outputs arrive in natural order, matching
	// ExpandedRootsOfUnity.
	RootsOfUnity []fr.Element
}

// NewSettings builds the FFT domain of width 2^scale.
func NewSettings(scale uint8) (*Settings, error) {
	if scale == 0 {
		return nil, ErrBadScale
	}
	maxWidth := uint64(1) << scale

	logger := log.Component("fft")
	logger.Debug().Uint8("scale", scale).Uint64("max_width", maxWidth).Msg("building fft settings")

	root := primitiveRootOfUnity(maxWidth)

	expanded := make([]fr.Element, maxWidth+1)
	expanded[0].SetOne()
	for i := uint64(1); i <= maxWidth; i++ {
		expanded[i].Mul(&expanded[i-1], &root)
	}
	var one fr.Element
	one.SetOne()
	if !expanded[maxWidth].Equal(&one) {
		return nil, errors.New("fft: root of unity did not close the domain")
	}

	// ReverseRootsOfUnity is exactly ExpandedRootsOfUnity reversed.
	reverse := slices.Clone(expanded)
	for i, j := 0, len(reverse)-1; i < j; i, j = i+1, j-1 {
		reverse[i], reverse[j] = reverse[j], reverse[i]
	}

	rootsOfUnity := make([]fr.Element, maxWidth)
	width := bitLen(maxWidth) - 1
	for i := uint64(0); i < maxWidth; i++ {
		rootsOfUnity[i] = expanded[reverseBitsLimited(width, i)]
	}

	return &Settings{
		MaxWidth:             maxWidth,
		ExpandedRootsOfUnity: expanded,
		ReverseRootsOfUnity:  reverse,
		RootsOfUnity:         rootsOfUnity,
	}, nil
}

// primitiveRootOfUnity derives the canonical primitive root of unity of
// the given power-of-two order from gnark-crypto's own domain
// construction, rather than re-deriving it from the field's 2-adicity by
// hand.
func primitiveRootOfUnity(order uint64) fr.Element {
	d := gnarkfft.NewDomain(order)
	return d.Generator
}

func bitLen(v uint64) uint64 {
	n := uint64(0)
	for v > 0 {
		v >>= 1
		n++
	}
	return n
}

// reverseBitsLimited reverses the low `width` bits of v.
func reverseBitsLimited(width uint64, v uint64) uint64 {
	var out uint64
	for i := uint64(0); i < width; i++ {
		out |= ((v >> i) & 1) << (width - 1 - i)
	}
	return out
}

// IsPowerOfTwo reports whether v is a nonzero power of two.
func IsPowerOfTwo(v uint64) bool {
	return v > 0 && v&(v-1) == 0
}
