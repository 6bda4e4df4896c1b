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

// Package kzgconfig provides the functional-option configuration surface
// consumed by the settings constructors. Following the teacher's
// frontend.CompileOption pattern, the core never parses environment
// variables or files itself: the caller builds a Config explicitly.
package kzgconfig

// Config collects the sizing parameters for a KZG/FFT setup.
type Config struct {
	// FFTScale is k in max_width = 2^k for the FFTSettings domain.
	FFTScale uint8

	// SecretLength is the number of {[sⁱ]₁, [sⁱ]₂} pairs to retain from
	// the trusted setup. Must be at least 2^FFTScale.
	SecretLength uint64
}

// Option mutates a Config under construction.
type Option func(*Config)

// WithFFTScale sets the FFT domain width to 2^scale.
func WithFFTScale(scale uint8) Option {
	return func(c *Config) { c.FFTScale = scale }
}

// WithSecretLength sets the number of retained trusted-setup powers.
func WithSecretLength(length uint64) Option {
	return func(c *Config) { c.SecretLength = length }
}

// New builds a Config from the given options, defaulting to a scale-4
// domain (matching the size used by the spec's worked examples) with a
// secret length one larger than the domain width.
func New(opts ...Option) Config {
	c := Config{
		FFTScale:     4,
		SecretLength: 1<<4 + 1,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
