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

import "errors"

// Sentinel errors mirror the four-way result discriminant of the
// underlying C API this package is modeled on: Ok is the nil error,
// the three cases below cover the remaining outcomes.
var (
	// ErrBadArgs signals a caller-violated precondition: a non-power-of-two
	// size, a polynomial longer than the trusted setup, a zero divisor, a
	// domain too small for the request, or a chunk length that doesn't
	// divide the requested half-width.
	ErrBadArgs = errors.New("kzg: bad arguments")

	// ErrMalloc signals an allocation failure while building a settings value.
	ErrMalloc = errors.New("kzg: allocation failed")

	// ErrInternal signals an algebraic inconsistency the caller could not
	// have foreseen, such as a polynomial division with nonzero remainder
	// where one was required to be exact. Treated as a library bug.
	ErrInternal = errors.New("kzg: internal algebraic inconsistency")
)
