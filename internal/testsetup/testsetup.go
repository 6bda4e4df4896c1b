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

// Package testsetup builds test-only trusted setups. Per the design note
// in spec §9, the toxic-waste secret scalar used here must never leak
// into production code paths: nothing outside _test.go files and this
// package imports it, and this package has no production caller.
package testsetup

import (
	"crypto/rand"
	"crypto/sha256"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/fxamacker/cbor/v2"
)

// Setup is a test-only trusted setup: {[sⁱ]₁, [sⁱ]₂} for i in [0, length),
// for a toxic-waste secret scalar s known only to the generator.
type Setup struct {
	SecretG1 []bls12381.G1Affine
	SecretG2 []bls12381.G2Affine
}

// GenerateDeterministic derives a reproducible test setup from seed, so
// test fixtures are stable across runs without persisting a secret to
// disk. Not suitable for anything but tests.
func GenerateDeterministic(seed string, length uint64) (*Setup, error) {
	h := sha256.Sum256([]byte(seed))
	var secret fr.Element
	secret.SetBytes(h[:])
	return generate(secret, length)
}

// GenerateRandom derives a one-off test setup from crypto/rand. Every
// call discards its secret after deriving the public powers.
func GenerateRandom(length uint64) (*Setup, error) {
	max := fr.Modulus()
	secretBig, err := rand.Int(rand.Reader, max)
	if err != nil {
		return nil, err
	}
	var secret fr.Element
	secret.SetBigInt(secretBig)
	return generate(secret, length)
}

func generate(secret fr.Element, length uint64) (*Setup, error) {
	_, _, g1Aff, g2Aff := bls12381.Generators()

	secretG1 := make([]bls12381.G1Affine, length)
	secretG2 := make([]bls12381.G2Affine, length)

	var power fr.Element
	power.SetOne()
	for i := uint64(0); i < length; i++ {
		var powerBig big.Int
		power.BigInt(&powerBig)

		secretG1[i].ScalarMultiplication(&g1Aff, &powerBig)
		secretG2[i].ScalarMultiplication(&g2Aff, &powerBig)

		power.Mul(&power, &secret)
	}

	return &Setup{SecretG1: secretG1, SecretG2: secretG2}, nil
}

// cborSetup is the wire shape cached fixtures are (de)serialized as:
// gnark-crypto's G1Affine/G2Affine marshal their coordinates directly,
// so cbor only needs to round-trip the slices.
type cborSetup struct {
	SecretG1 [][]byte `cbor:"g1"`
	SecretG2 [][]byte `cbor:"g2"`
}

// Encode serializes a Setup for test-fixture caching. This is test
// tooling only — the production KZG core never serializes points, per
// spec §1's non-goals.
func Encode(s *Setup) ([]byte, error) {
	out := cborSetup{
		SecretG1: make([][]byte, len(s.SecretG1)),
		SecretG2: make([][]byte, len(s.SecretG2)),
	}
	for i := range s.SecretG1 {
		b := s.SecretG1[i].Bytes()
		out.SecretG1[i] = b[:]
	}
	for i := range s.SecretG2 {
		b := s.SecretG2[i].Bytes()
		out.SecretG2[i] = b[:]
	}
	return cbor.Marshal(out)
}

// Decode restores a Setup encoded by Encode.
func Decode(data []byte) (*Setup, error) {
	var in cborSetup
	if err := cbor.Unmarshal(data, &in); err != nil {
		return nil, err
	}

	out := &Setup{
		SecretG1: make([]bls12381.G1Affine, len(in.SecretG1)),
		SecretG2: make([]bls12381.G2Affine, len(in.SecretG2)),
	}
	for i, b := range in.SecretG1 {
		if _, err := out.SecretG1[i].SetBytes(b); err != nil {
			return nil, err
		}
	}
	for i, b := range in.SecretG2 {
		if _, err := out.SecretG2[i].SetBytes(b); err != nil {
			return nil, err
		}
	}
	return out, nil
}
