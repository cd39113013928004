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
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	zeus "github.com/zeus-wallet/zeus-go"
	"github.com/zeus-wallet/zeus-go/vault"
)

// Weak cost parameters, for fast test runs only.
func weakParams() zeus.CipherParams {
	return zeus.CipherParams{
		MemoryCost:   64,
		TimeCost:     1,
		Parallelism:  1,
		OutputLength: 64,
	}
}

func aliceCredentials() zeus.Credentials {
	return zeus.Credentials{
		Username:        "alice",
		Password:        "pw1",
		ConfirmPassword: "pw1",
	}
}

func Test_Salt_DeterministicFromUsername(t *testing.T) {
	// The salt is the ASCII hex of sha256(username), so it is 64 bytes and
	// identical on every call.
	want := "2bd806c97f0e00af1a1fc3328fa763a9269723c8db8fac4f93af71db186d6e90"
	assert.Equal(t, []byte(want), vault.Salt("alice"))
	assert.Equal(t, vault.Salt("alice"), vault.Salt("alice"))
	assert.NotEqual(t, vault.Salt("alice"), vault.Salt("bob"))
}

func Test_Nonce_DeterministicFromUsername(t *testing.T) {
	nonce := vault.Nonce("alice")
	require.Len(t, nonce, vault.NonceSize)
	assert.Equal(t, nonce, vault.Nonce("alice"))
	assert.NotEqual(t, nonce, vault.Nonce("bob"))
}

func Test_DeriveKey_Deterministic(t *testing.T) {
	key1, err := vault.DeriveKey(aliceCredentials(), weakParams())
	require.NoError(t, err)
	key2, err := vault.DeriveKey(aliceCredentials(), weakParams())
	require.NoError(t, err)

	assert.Equal(t, key1, key2)
	assert.Len(t, key1, int(weakParams().OutputLength))
}

func Test_DeriveKey_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name  string
		creds zeus.Credentials
	}{
		{"empty_username", zeus.Credentials{Password: "pw", ConfirmPassword: "pw"}},
		{"empty_password", zeus.Credentials{Username: "alice", ConfirmPassword: "pw"}},
		{"empty_confirmation", zeus.Credentials{Username: "alice", Password: "pw"}},
		{"mismatched_confirmation", zeus.Credentials{Username: "alice", Password: "pw", ConfirmPassword: "other"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := vault.DeriveKey(tt.creds, weakParams())
			assert.True(t, errors.Is(err, zeus.ErrInvalidCredentials))
		})
	}
}

func Test_DeriveKey_InvalidParams(t *testing.T) {
	modify := func(f func(*zeus.CipherParams)) zeus.CipherParams {
		p := weakParams()
		f(&p)
		return p
	}
	tests := []struct {
		name   string
		params zeus.CipherParams
	}{
		{"zero_time_cost", modify(func(p *zeus.CipherParams) { p.TimeCost = 0 })},
		{"zero_parallelism", modify(func(p *zeus.CipherParams) { p.Parallelism = 0 })},
		{"parallelism_too_large", modify(func(p *zeus.CipherParams) { p.Parallelism = 256 })},
		{"memory_too_small", modify(func(p *zeus.CipherParams) { p.MemoryCost = 4 })},
		{"output_below_key_size", modify(func(p *zeus.CipherParams) { p.OutputLength = 16 })},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := vault.DeriveKey(aliceCredentials(), tt.params)
			assert.True(t, errors.Is(err, zeus.ErrDerivationFailed))
		})
	}
}
