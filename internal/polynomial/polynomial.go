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

// Package polynomial implements dense polynomial evaluation and long
// division over the scalar field, the building blocks quotient proofs
// are formed from.
package polynomial

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// ErrBadDivisor is returned by LongDiv when the divisor is empty or the
// zero polynomial.
var ErrBadDivisor = errors.New("polynomial: divisor is empty or zero")

// ErrNonExactDivision is returned by LongDiv when a nonzero remainder is
// left after the required division — an algebraic inconsistency, not a
// caller error.
var ErrNonExactDivision = errors.New("polynomial: division left a nonzero remainder")

// Polynomial is a dense, ordered coefficient sequence: Coeffs[i] is the
// coefficient of x^i. A nil or empty Coeffs represents the zero
// polynomial.
type Polynomial struct {
	Coeffs []fr.Element
}

// New wraps coeffs as a Polynomial without copying.
func New(coeffs []fr.Element) Polynomial {
	return Polynomial{Coeffs: coeffs}
}

// Len returns the number of coefficients.
func (p Polynomial) Len() int {
	return len(p.Coeffs)
}

// Clone returns a deep copy of p.
func (p Polynomial) Clone() Polynomial {
	out := make([]fr.Element, len(p.Coeffs))
	copy(out, p.Coeffs)
	return Polynomial{Coeffs: out}
}

// Eval evaluates p at x using Horner's method. The zero polynomial
// evaluates to zero everywhere.
func (p Polynomial) Eval(x fr.Element) fr.Element {
	var result fr.Element
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		result.Mul(&result, &x)
		result.Add(&result, &p.Coeffs[i])
	}
	return result
}

// LongDiv performs dense polynomial long division of p by divisor,
// requiring an exact (zero-remainder) result.
//
// Returns ErrBadDivisor when divisor is empty or identically zero. When
// p.Len() < divisor.Len() the result is the zero polynomial and the
// remainder is not checked; KZG reaches this when the opened coset is at
// least as large as p (the numerator p - I is then zero), or when
// opening the zero polynomial. Returns ErrNonExactDivision if the remainder is
// nonzero, signaling the caller's invariant (p(x0) = 0, or p vanishes
// on the coset) did not hold.
func LongDiv(p, divisor Polynomial) (Polynomial, error) {
	d := divisor.Coeffs
	if len(d) == 0 || isZero(d) {
		return Polynomial{}, ErrBadDivisor
	}

	n := len(p.Coeffs)
	dLen := len(d)
	if n < dLen {
		return Polynomial{}, nil
	}

	// Work on a scratch copy: the algorithm subtracts in place.
	a := make([]fr.Element, n)
	copy(a, p.Coeffs)

	var leadInv fr.Element
	leadInv.Inverse(&d[dLen-1])

	qLen := n - dLen + 1
	q := make([]fr.Element, qLen)

	for i := n - 1; i >= dLen-1; i-- {
		var c fr.Element
		c.Mul(&a[i], &leadInv)
		q[i-dLen+1] = c

		if c.IsZero() {
			continue
		}
		for j := 0; j < dLen; j++ {
			var t fr.Element
			t.Mul(&c, &d[j])
			a[i-dLen+1+j].Sub(&a[i-dLen+1+j], &t)
		}
	}

	for i := 0; i < dLen-1; i++ {
		if !a[i].IsZero() {
			return Polynomial{}, ErrNonExactDivision
		}
	}

	return Polynomial{Coeffs: q}, nil
}

func isZero(coeffs []fr.Element) bool {
	for i := range coeffs {
		if !coeffs[i].IsZero() {
			return false
		}
	}
	return true
}

// LinearDivisor builds the monic divisor (x - x0), used by
// compute_proof_single.
func LinearDivisor(x0 fr.Element) Polynomial {
	var negX0 fr.Element
	negX0.Neg(&x0)
	var one fr.Element
	one.SetOne()
	return Polynomial{Coeffs: []fr.Element{negX0, one}}
}

// VanishingDivisor builds the monic divisor x^n - x0^n, used by
// compute_proof_multi to open a coset of n points at x0·ωⁱ.
func VanishingDivisor(x0 fr.Element, n uint64) Polynomial {
	coeffs := make([]fr.Element, n+1)
	var xn fr.Element
	xn.Exp(x0, new(big.Int).SetUint64(n))
	coeffs[0].Neg(&xn)
	coeffs[n].SetOne()
	return Polynomial{Coeffs: coeffs}
}
