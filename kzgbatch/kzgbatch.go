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

// Package kzgbatch fans independent commitment and proof computations
// out across goroutines with golang.org/x/sync/errgroup, the way the
// teacher's provers parallelize their own multi-exponentiations and
// commitment rounds.
package kzgbatch

import (
	"context"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"golang.org/x/sync/errgroup"

	"github.com/nume-crypto/kzg"
	"github.com/nume-crypto/kzg/internal/polynomial"
)

// ParallelCommit commits to every polynomial in ps concurrently, one
// goroutine per entry, and returns the commitments in the same order. If
// any commitment fails, the first error encountered is returned and the
// remaining goroutines are left to finish without affecting the result.
func ParallelCommit(ctx context.Context, s *kzg.Settings, ps []polynomial.Polynomial) ([]bls12381.G1Affine, error) {
	out := make([]bls12381.G1Affine, len(ps))

	g, _ := errgroup.WithContext(ctx)
	for i := range ps {
		i := i
		g.Go(func() error {
			c, err := s.CommitToPoly(ps[i])
			if err != nil {
				return err
			}
			out[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// ParallelComputeProofSingle computes the single-point opening proof of
// every (polynomial, point) pair concurrently, one goroutine per entry.
// ps and xs must be the same length.
func ParallelComputeProofSingle(ctx context.Context, s *kzg.Settings, ps []polynomial.Polynomial, xs []fr.Element) ([]kzg.Proof, error) {
	if len(ps) != len(xs) {
		return nil, kzg.ErrBadArgs
	}

	out := make([]kzg.Proof, len(ps))

	g, _ := errgroup.WithContext(ctx)
	for i := range ps {
		i := i
		g.Go(func() error {
			p, err := s.ComputeProofSingle(ps[i], xs[i])
			if err != nil {
				return err
			}
			out[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
