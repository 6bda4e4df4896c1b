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
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/nume-crypto/kzg/internal/fft"
	"github.com/nume-crypto/kzg/internal/polynomial"
)

// Proof is a KZG opening proof: the commitment to the quotient
// polynomial (f(x) - f(x0)) / (x - x0), or its coset generalization.
type Proof = bls12381.G1Affine

func scalarToBigInt(s *fr.Element) big.Int {
	var b big.Int
	s.BigInt(&b)
	return b
}

// ComputeProofSingle computes the opening proof of p at the single point
// x0: the commitment to q(x) = (p(x) - p(x0)) / (x - x0), which is a
// polynomial (with zero remainder) exactly because x0 is a root of the
// numerator.
func (s *Settings) ComputeProofSingle(p polynomial.Polynomial, x0 fr.Element) (Proof, error) {
	y0 := p.Eval(x0)

	numerator := p.Clone()
	if numerator.Len() == 0 {
		numerator = polynomial.New(make([]fr.Element, 1))
	}
	numerator.Coeffs[0].Sub(&numerator.Coeffs[0], &y0)

	q, err := polynomial.LongDiv(numerator, polynomial.LinearDivisor(x0))
	if err != nil {
		return Proof{}, err
	}

	return s.CommitToPoly(q)
}

// ComputeProofMulti computes the combined opening proof of p at the n
// points of the coset x0*<ω_n>, where n is a power of two dividing the
// FFT domain and ω_n is the canonical n-th root of unity: the commitment
// to q(x) = (p(x) - I(x)) / (x^n - x0^n), where I is the unique
// polynomial of degree < n interpolating p over that coset.
func (s *Settings) ComputeProofMulti(p polynomial.Polynomial, x0 fr.Element, n uint64) (Proof, error) {
	if !fft.IsPowerOfTwo(n) || n > s.FS.MaxWidth {
		return Proof{}, ErrBadArgs
	}

	ys, err := s.evalCoset(p, x0, n)
	if err != nil {
		return Proof{}, err
	}

	interp, err := s.interpolateCoset(ys, x0)
	if err != nil {
		return Proof{}, err
	}

	numerator := p.Clone()
	if numerator.Len() < interp.Len() {
		padded := make([]fr.Element, interp.Len())
		copy(padded, numerator.Coeffs)
		numerator = polynomial.New(padded)
	}
	for i := range interp.Coeffs {
		numerator.Coeffs[i].Sub(&numerator.Coeffs[i], &interp.Coeffs[i])
	}

	q, err := polynomial.LongDiv(numerator, polynomial.VanishingDivisor(x0, n))
	if err != nil {
		return Proof{}, err
	}

	return s.CommitToPoly(q)
}

// evalCoset evaluates p at the n points x0*ω_n^i, i in [0,n).
func (s *Settings) evalCoset(p polynomial.Polynomial, x0 fr.Element, n uint64) ([]fr.Element, error) {
	stride := s.FS.MaxWidth / n
	ys := make([]fr.Element, n)
	for i := uint64(0); i < n; i++ {
		var xi fr.Element
		xi.Mul(&x0, &s.FS.ExpandedRootsOfUnity[i*stride])
		ys[i] = p.Eval(xi)
	}
	return ys, nil
}

// interpolateCoset recovers, in monomial form, the degree-<n polynomial
// I with I(x0*ω_n^i) = ys[i]. Writing I(x) = sum_j c_j x^j and
// d_j = c_j * x0^j, the coset points reduce to the ordinary n-th roots of
// unity: I(x0*ω^i) = sum_j d_j ω^(ij), so d = IFFT(ys) and c_j = d_j *
// x0^-j.
func (s *Settings) interpolateCoset(ys []fr.Element, x0 fr.Element) (polynomial.Polynomial, error) {
	d, err := s.FS.FFT(ys, true)
	if err != nil {
		return polynomial.Polynomial{}, err
	}

	var x0Inv fr.Element
	x0Inv.Inverse(&x0)

	c := make([]fr.Element, len(d))
	var x0InvPow fr.Element
	x0InvPow.SetOne()
	for j := range d {
		c[j].Mul(&d[j], &x0InvPow)
		x0InvPow.Mul(&x0InvPow, &x0Inv)
	}
	return polynomial.New(c), nil
}

// CheckProofSingle verifies that commitment opens to y0 at x0 via proof,
// using the pairing check
//
//	e(proof, [s]_2 - x0*[1]_2) == e(commitment - y0*[1]_1, [1]_2)
//
// rearranged as a single product-of-pairings-equals-one check.
func (s *Settings) CheckProofSingle(commitment Proof, x0, y0 fr.Element, proof Proof) (bool, error) {
	_, _, g1Gen, g2Gen := bls12381.Generators()

	y0Big := scalarToBigInt(&y0)
	var y0G1 bls12381.G1Affine
	y0G1.ScalarMultiplication(&g1Gen, &y0Big)

	var commMinusY0Jac bls12381.G1Jac
	commMinusY0Jac.FromAffine(&commitment)
	var y0G1Jac bls12381.G1Jac
	y0G1Jac.FromAffine(&y0G1)
	commMinusY0Jac.SubAssign(&y0G1Jac)
	var commMinusY0 bls12381.G1Affine
	commMinusY0.FromJacobian(&commMinusY0Jac)

	x0Big := scalarToBigInt(&x0)
	var sMinusX0Jac, gen2Jac, sG2Jac bls12381.G2Jac
	gen2Jac.FromAffine(&g2Gen)
	sG2Jac.FromAffine(&s.SecretG2[1])
	sMinusX0Jac.ScalarMultiplication(&gen2Jac, &x0Big).
		Neg(&sMinusX0Jac).
		AddAssign(&sG2Jac)
	var sMinusX0 bls12381.G2Affine
	sMinusX0.FromJacobian(&sMinusX0Jac)

	var negComm bls12381.G1Affine
	negComm.Neg(&commMinusY0)

	ok, err := bls12381.PairingCheck(
		[]bls12381.G1Affine{proof, negComm},
		[]bls12381.G2Affine{sMinusX0, g2Gen},
	)
	if err != nil {
		return false, err
	}
	return ok, nil
}

// CheckProofMulti verifies that commitment opens to ys (the claimed
// evaluations, in coset order) on the coset x0*<ω_n> via proof, using the
// coset generalization of the single-point pairing check:
//
//	e(proof, [s^n]_2 - x0^n*[1]_2) == e(commitment - [I]_1, [1]_2)
//
// where I is the interpolation of ys over the coset and n = len(ys).
func (s *Settings) CheckProofMulti(commitment Proof, x0 fr.Element, ys []fr.Element, proof Proof) (bool, error) {
	n := uint64(len(ys))
	if !fft.IsPowerOfTwo(n) || n > s.FS.MaxWidth {
		return false, ErrBadArgs
	}
	if n >= uint64(len(s.SecretG2)) {
		return false, ErrBadArgs
	}

	interp, err := s.interpolateCoset(ys, x0)
	if err != nil {
		return false, err
	}
	interpCommit, err := s.CommitToPoly(interp)
	if err != nil {
		return false, err
	}

	_, _, _, g2Gen := bls12381.Generators()

	var commMinusIJac, interpJac bls12381.G1Jac
	commMinusIJac.FromAffine(&commitment)
	interpJac.FromAffine(&interpCommit)
	commMinusIJac.SubAssign(&interpJac)
	var commMinusI bls12381.G1Affine
	commMinusI.FromJacobian(&commMinusIJac)

	var x0n fr.Element
	x0n.Exp(x0, new(big.Int).SetUint64(n))
	x0nBig := scalarToBigInt(&x0n)

	var snMinusX0nJac, gen2Jac, snG2Jac bls12381.G2Jac
	gen2Jac.FromAffine(&g2Gen)
	snG2Jac.FromAffine(&s.SecretG2[n])
	snMinusX0nJac.ScalarMultiplication(&gen2Jac, &x0nBig).
		Neg(&snMinusX0nJac).
		AddAssign(&snG2Jac)
	var snMinusX0n bls12381.G2Affine
	snMinusX0n.FromJacobian(&snMinusX0nJac)

	var negComm bls12381.G1Affine
	negComm.Neg(&commMinusI)

	ok, err := bls12381.PairingCheck(
		[]bls12381.G1Affine{proof, negComm},
		[]bls12381.G2Affine{snMinusX0n, g2Gen},
	)
	if err != nil {
		return false, err
	}
	return ok, nil
}
