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
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/require"

	"github.com/nume-crypto/kzg/internal/fft"
	"github.com/nume-crypto/kzg/internal/testsetup"
)

func TestNewSingleSettingsBadArgs(t *testing.T) {
	assert := require.New(t)
	fs, err := fft.NewSettings(4)
	assert.NoError(err)

	setup, err := testsetup.GenerateDeterministic("fk20-single-badargs", fs.MaxWidth+1)
	assert.NoError(err)

	// n2 not a power of two.
	_, err = NewSingleSettings(fs, setup.SecretG1, 6)
	assert.ErrorIs(err, ErrBadArgs)

	// n2 wider than the fft domain.
	_, err = NewSingleSettings(fs, setup.SecretG1, fs.MaxWidth*2)
	assert.ErrorIs(err, ErrBadArgs)
}

func TestSingleProveAllShapeAndDeterminism(t *testing.T) {
	assert := require.New(t)
	fs, err := fft.NewSettings(4)
	assert.NoError(err)

	setup, err := testsetup.GenerateDeterministic("fk20-single-shape", fs.MaxWidth+1)
	assert.NoError(err)

	n2 := uint64(16)
	fk, err := NewSingleSettings(fs, setup.SecretG1, n2)
	assert.NoError(err)

	p := make([]fr.Element, 8)
	for i := range p {
		p[i].SetUint64(uint64(i) + 1)
	}

	proofs1, err := fk.ProveAll(p, false)
	assert.NoError(err)
	assert.Len(proofs1, int(n2))

	proofs2, err := fk.ProveAll(p, false)
	assert.NoError(err)
	for i := range proofs1 {
		assert.True(proofs1[i].Equal(&proofs2[i]), "fk20 single must be deterministic at index %d", i)
	}
}

func TestSingleProveAllBadLength(t *testing.T) {
	assert := require.New(t)
	fs, err := fft.NewSettings(4)
	assert.NoError(err)
	setup, err := testsetup.GenerateDeterministic("fk20-single-badlen", fs.MaxWidth+1)
	assert.NoError(err)

	fk, err := NewSingleSettings(fs, setup.SecretG1, 16)
	assert.NoError(err)

	_, err = fk.ProveAll(make([]fr.Element, 3), false)
	assert.ErrorIs(err, ErrBadArgs)

	_, err = fk.ProveAll(make([]fr.Element, 16), false)
	assert.ErrorIs(err, ErrBadArgs)
}

func TestNewMultiSettingsBadArgs(t *testing.T) {
	assert := require.New(t)
	fs, err := fft.NewSettings(5)
	assert.NoError(err)
	setup, err := testsetup.GenerateDeterministic("fk20-multi-badargs", fs.MaxWidth+1)
	assert.NoError(err)

	// chunkLen not a power of two.
	_, err = NewMultiSettings(fs, setup.SecretG1, 32, 3)
	assert.ErrorIs(err, ErrBadArgs)

	// chunkLen doesn't divide n/2.
	_, err = NewMultiSettings(fs, setup.SecretG1, 32, 32)
	assert.ErrorIs(err, ErrBadArgs)
}

func TestMultiProveAllDegenerateSingleChunk(t *testing.T) {
	assert := require.New(t)
	fs, err := fft.NewSettings(5)
	assert.NoError(err)
	setup, err := testsetup.GenerateDeterministic("fk20-multi-degenerate", fs.MaxWidth+1)
	assert.NoError(err)

	n2 := uint64(32)
	chunkLen := uint64(16) // chunk_count = 1, degenerate: 2 outputs
	fk, err := NewMultiSettings(fs, setup.SecretG1, n2, chunkLen)
	assert.NoError(err)
	assert.Equal(uint64(1), fk.ChunkCount)

	p := make([]fr.Element, 16)
	for i := range p {
		p[i].SetUint64(uint64(i) + 1)
	}

	proofs, err := fk.ProveAll(p, false)
	assert.NoError(err)
	assert.Len(proofs, 2)
}

// TestMultiProveAllNonDegenerateShapeAndDeterminism exercises chunk_count
// > 1, where each Toeplitz column window is non-empty and the result
// depends on buildColumnXExt actually picking the right setup powers
// (see TestFK20MultiAgreesWithBaselineNonDegenerate in the top-level
// package for the baseline-agreement check against compute_proof_multi).
func TestMultiProveAllNonDegenerateShapeAndDeterminism(t *testing.T) {
	assert := require.New(t)
	fs, err := fft.NewSettings(5)
	assert.NoError(err)
	setup, err := testsetup.GenerateDeterministic("fk20-multi-nondegenerate", fs.MaxWidth+1)
	assert.NoError(err)

	n2 := uint64(32)
	chunkLen := uint64(4) // chunk_count = 4: 8 outputs
	fk, err := NewMultiSettings(fs, setup.SecretG1, n2, chunkLen)
	assert.NoError(err)
	assert.Equal(uint64(4), fk.ChunkCount)

	p := make([]fr.Element, 16)
	for i := range p {
		p[i].SetUint64(uint64(i) + 1)
	}

	proofs1, err := fk.ProveAll(p, false)
	assert.NoError(err)
	assert.Len(proofs1, 8)

	proofs2, err := fk.ProveAll(p, false)
	assert.NoError(err)
	for i := range proofs1 {
		assert.True(proofs1[i].Equal(&proofs2[i]), "fk20 multi must be deterministic at index %d", i)
	}
}
