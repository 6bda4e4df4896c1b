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

package kzg

import (
	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/nume-crypto/kzg/internal/fft"
	"github.com/nume-crypto/kzg/internal/polynomial"
	"github.com/nume-crypto/kzg/kzgconfig"
	"github.com/nume-crypto/kzg/log"
)

// multiExpConfig is shared by every multi-scalar multiplication in the
// package: coefficients are already in Montgomery form coming out of
// fr.Element arithmetic, matching gnark-crypto's own KZG commitment code.
var multiExpConfig = ecc.MultiExpConfig{ScalarsMont: true}

// Settings bundles a trusted setup with the FFT domain its coset proofs
// are built over. It is immutable after construction: every public
// operation takes a *Settings receiver and never mutates it, so one
// Settings value can be shared across concurrent callers (see
// package kzgbatch).
type Settings struct {
	FS *fft.Settings

	// SecretG1 is {[s^i]_1 : i in [0, SecretLength)}.
	SecretG1 []bls12381.G1Affine

	// SecretG2 is {[s^i]_2 : i in [0, SecretLength)}. Only the first two
	// entries ([1]_2 and [s]_2) are needed for single-point proofs; coset
	// proofs of width n need SecretG2[n] as well.
	SecretG2 []bls12381.G2Affine
}

// NewSettings builds a Settings from a trusted setup and sizing config.
// The setup's SecretG1/SecretG2 must each carry at least cfg.SecretLength
// entries, and cfg.SecretLength must be at least the FFT domain width.
// With exactly that width, CheckProofMulti rejects a full-width coset
// (it needs SecretG2[n]) with ErrBadArgs.
func NewSettings(cfg kzgconfig.Config, secretG1 []bls12381.G1Affine, secretG2 []bls12381.G2Affine) (*Settings, error) {
	if uint64(len(secretG1)) < cfg.SecretLength || uint64(len(secretG2)) < cfg.SecretLength {
		return nil, ErrBadArgs
	}

	fs, err := fft.NewSettings(cfg.FFTScale)
	if err != nil {
		return nil, err
	}
	if cfg.SecretLength < fs.MaxWidth {
		return nil, ErrBadArgs
	}

	logger := log.Component("kzg")
	logger.Debug().
		Uint8("fft_scale", cfg.FFTScale).
		Uint64("secret_length", cfg.SecretLength).
		Msg("building kzg settings")

	return &Settings{
		FS:       fs,
		SecretG1: secretG1[:cfg.SecretLength],
		SecretG2: secretG2[:cfg.SecretLength],
	}, nil
}

// CommitToPoly commits to p via a multi-scalar multiplication against the
// trusted setup: [p(s)]_1 = sum_i p.Coeffs[i] * [s^i]_1. The zero
// polynomial (Len() == 0) commits to the G1 identity.
func (s *Settings) CommitToPoly(p polynomial.Polynomial) (bls12381.G1Affine, error) {
	if p.Len() == 0 {
		return fft.Identity, nil
	}
	if p.Len() > len(s.SecretG1) {
		return bls12381.G1Affine{}, ErrBadArgs
	}

	var commitment bls12381.G1Affine
	if _, err := commitment.MultiExp(s.SecretG1[:p.Len()], p.Coeffs, multiExpConfig); err != nil {
		return bls12381.G1Affine{}, ErrInternal
	}
	return commitment, nil
}
