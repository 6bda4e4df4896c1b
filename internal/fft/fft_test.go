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
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/require"
)

func TestNewSettingsClosesDomain(t *testing.T) {
	assert := require.New(t)
	s, err := NewSettings(4)
	assert.NoError(err)
	assert.Equal(uint64(16), s.MaxWidth)
	assert.Len(s.ExpandedRootsOfUnity, 17)
	assert.Len(s.ReverseRootsOfUnity, 17)
	assert.Len(s.RootsOfUnity, 16)

	var one fr.Element
	one.SetOne()
	assert.True(s.ExpandedRootsOfUnity[0].Equal(&one))
	assert.True(s.ExpandedRootsOfUnity[16].Equal(&one))
	assert.True(s.ReverseRootsOfUnity[0].Equal(&one))
}

func TestFFTFrRoundTrip(t *testing.T) {
	assert := require.New(t)
	s, err := NewSettings(5)
	assert.NoError(err)

	for _, n := range []uint64{1, 2, 4, 8, 16, 32} {
		vals := make([]fr.Element, n)
		for i := range vals {
			vals[i].SetUint64(uint64(i)*7 + 3)
		}

		coeffs, err := s.FFT(vals, false)
		assert.NoError(err)
		back, err := s.FFT(coeffs, true)
		assert.NoError(err)

		for i := range vals {
			assert.True(vals[i].Equal(&back[i]), "n=%d i=%d: %s != %s", n, i, vals[i].String(), back[i].String())
		}
	}
}

func TestFFTFrBadLength(t *testing.T) {
	assert := require.New(t)
	s, err := NewSettings(4)
	assert.NoError(err)

	_, err = s.FFT(make([]fr.Element, 3), false)
	assert.ErrorIs(err, ErrNotPowerOfTwo)

	_, err = s.FFT(make([]fr.Element, 32), false)
	assert.ErrorIs(err, ErrTooWide)
}

func TestFFTG1RoundTrip(t *testing.T) {
	assert := require.New(t)
	s, err := NewSettings(4)
	assert.NoError(err)

	_, _, g1Aff, _ := bls12381.Generators()

	n := uint64(8)
	vals := make([]bls12381.G1Affine, n)
	for i := range vals {
		var scalar fr.Element
		scalar.SetUint64(uint64(i) + 1)
		vals[i] = g1Mul(&g1Aff, &scalar)
	}

	coeffs, err := s.FFTG1(vals, false)
	assert.NoError(err)
	back, err := s.FFTG1(coeffs, true)
	assert.NoError(err)

	for i := range vals {
		assert.True(vals[i].Equal(&back[i]), "i=%d", i)
	}
}

func TestReverseBitsLimited(t *testing.T) {
	assert := require.New(t)
	assert.Equal(uint64(0), reverseBitsLimited(3, 0))
	assert.Equal(uint64(4), reverseBitsLimited(3, 1))
	assert.Equal(uint64(1), reverseBitsLimited(3, 4))
	assert.Equal(uint64(7), reverseBitsLimited(3, 7))
}

func TestIsPowerOfTwo(t *testing.T) {
	assert := require.New(t)
	assert.True(IsPowerOfTwo(1))
	assert.True(IsPowerOfTwo(2))
	assert.True(IsPowerOfTwo(1024))
	assert.False(IsPowerOfTwo(0))
	assert.False(IsPowerOfTwo(3))
	assert.False(IsPowerOfTwo(6))
}
