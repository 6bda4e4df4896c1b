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

package testsetup

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateDeterministicIsReproducible(t *testing.T) {
	assert := require.New(t)

	a, err := GenerateDeterministic("fixture-seed", 5)
	assert.NoError(err)
	b, err := GenerateDeterministic("fixture-seed", 5)
	assert.NoError(err)

	for i := range a.SecretG1 {
		assert.True(a.SecretG1[i].Equal(&b.SecretG1[i]))
		assert.True(a.SecretG2[i].Equal(&b.SecretG2[i]))
	}

	c, err := GenerateDeterministic("different-seed", 5)
	assert.NoError(err)
	assert.False(a.SecretG1[1].Equal(&c.SecretG1[1]), "distinct seeds must not collide")
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	assert := require.New(t)

	setup, err := GenerateDeterministic("encode-roundtrip", 9)
	assert.NoError(err)

	data, err := Encode(setup)
	assert.NoError(err)

	decoded, err := Decode(data)
	assert.NoError(err)

	assert.Len(decoded.SecretG1, len(setup.SecretG1))
	assert.Len(decoded.SecretG2, len(setup.SecretG2))
	for i := range setup.SecretG1 {
		assert.True(setup.SecretG1[i].Equal(&decoded.SecretG1[i]))
		assert.True(setup.SecretG2[i].Equal(&decoded.SecretG2[i]))
	}
}
