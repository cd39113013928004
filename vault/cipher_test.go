// Copyright (c) 2024 - for information on the respective copyright owner
// see the NOTICE file and/or the repository at
// https://github.com/zeus-wallet/zeus-go
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

package vault_test

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	zeus "github.com/zeus-wallet/zeus-go"
	"github.com/zeus-wallet/zeus-go/vault"
)

func Test_Seal_Open_RoundTrip(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, vault.KeySize)
	nonce := vault.Nonce("alice")
	plaintext := []byte("attack at dawn")

	ciphertext, err := vault.Seal(key, nonce, plaintext)
	require.NoError(t, err)
	require.Greater(t, len(ciphertext), len(plaintext)) // includes the tag

	got, err := vault.Open(key, nonce, ciphertext)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func Test_Seal_Deterministic(t *testing.T) {
	// Same key, nonce and plaintext always produce bit-identical output;
	// there is no per-call randomness in the design.
	key := bytes.Repeat([]byte{0x42}, vault.KeySize)
	nonce := vault.Nonce("alice")
	plaintext := []byte("attack at dawn")

	ct1, err := vault.Seal(key, nonce, plaintext)
	require.NoError(t, err)
	ct2, err := vault.Seal(key, nonce, plaintext)
	require.NoError(t, err)
	assert.Equal(t, ct1, ct2)
}

func Test_Open_TamperedCiphertext(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, vault.KeySize)
	nonce := vault.Nonce("alice")

	ciphertext, err := vault.Seal(key, nonce, []byte("attack at dawn"))
	require.NoError(t, err)

	// Flipping any single bit must fail authentication, never yield a
	// silently wrong plaintext.
	for _, pos := range []int{0, len(ciphertext) / 2, len(ciphertext) - 1} {
		tampered := append([]byte(nil), ciphertext...)
		tampered[pos] ^= 0x01

		got, err := vault.Open(key, nonce, tampered)
		assert.True(t, errors.Is(err, zeus.ErrAuthenticationFailed), "bit flip at %d", pos)
		assert.Nil(t, got)
	}
}

func Test_Open_WrongKey(t *testing.T) {
	nonce := vault.Nonce("alice")
	ciphertext, err := vault.Seal(bytes.Repeat([]byte{0x42}, vault.KeySize), nonce, []byte("payload"))
	require.NoError(t, err)

	got, err := vault.Open(bytes.Repeat([]byte{0x43}, vault.KeySize), nonce, ciphertext)
	assert.True(t, errors.Is(err, zeus.ErrAuthenticationFailed))
	assert.Nil(t, got)
}

func Test_Seal_Open_BadSizes(t *testing.T) {
	_, err := vault.Seal(make([]byte, vault.KeySize-1), vault.Nonce("alice"), []byte("x"))
	assert.Error(t, err)

	_, err = vault.Seal(make([]byte, vault.KeySize), make([]byte, vault.NonceSize-1), []byte("x"))
	assert.Error(t, err)

	_, err = vault.Open(make([]byte, vault.KeySize-1), vault.Nonce("alice"), []byte("x"))
	assert.Error(t, err)
}
