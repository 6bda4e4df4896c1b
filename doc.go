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

// Package kzg implements a KZG polynomial commitment scheme over the
// BLS12-381 pairing and its FK20 batch-opening accelerations.
//
// A Settings, built from a trusted setup and a kzgconfig.Config that
// fixes its FFT domain, commits to dense polynomials over the scalar field and produces evaluation
// proofs at a single point or at a coset of roots of unity. The FK20
// engines in internal/fk20 compute all opening proofs on a subgroup in
// O(n log n) group operations instead of the naive O(n²).
//
// # See also
//
// https://dankradfeist.de/ethereum/2020/06/16/kate-polynomial-commitments.html
package kzg
