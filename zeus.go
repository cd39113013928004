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

// Package zeus defines the domain types shared by the vault, profile and cmd
// packages.
package zeus

import (
	"math/big"
)

// Default cost parameters for the password hash. Deriving a key with these
// takes noticeable time on purpose; callers should run vault operations off
// any latency-sensitive goroutine.
const (
	DefaultMemoryCost   = 500
	DefaultTimeCost     = 200
	DefaultParallelism  = 1
	DefaultOutputLength = 64
)

// Credentials holds the username and password pair that protects a profile.
// It is kept in memory only for the duration of an unlock, create or export
// operation and is never persisted in plaintext.
type Credentials struct {
	Username        string
	Password        string
	ConfirmPassword string
}

// Validate checks that all fields are set and that the password confirmation
// matches. It runs before every key derivation, on both the encrypt and the
// decrypt path.
func (c Credentials) Validate() error {
	if c.Username == "" || c.Password == "" || c.ConfirmPassword == "" {
		return ErrInvalidCredentials
	}
	if c.Password != c.ConfirmPassword {
		return ErrInvalidCredentials
	}
	return nil
}

// CipherParams are the cost knobs used for one specific encryption. They are
// persisted alongside the ciphertext so that a vault file remains decryptable
// even if the compiled-in defaults change later.
//
// OutputLength is the exact byte length of the derived key material. On disk
// it occupies an 8-byte field, reserved for growth.
type CipherParams struct {
	MemoryCost   uint32
	TimeCost     uint32
	Parallelism  uint32
	OutputLength uint32
}

// DefaultCipherParams returns the recommended cost parameters for new
// profiles.
func DefaultCipherParams() CipherParams {
	return CipherParams{
		MemoryCost:   DefaultMemoryCost,
		TimeCost:     DefaultTimeCost,
		Parallelism:  DefaultParallelism,
		OutputLength: DefaultOutputLength,
	}
}

// Balance is the last known balance of a wallet on one chain, together with
// the block at which it was observed. The block number lets callers detect
// staleness; the vault itself never refreshes balances.
type Balance struct {
	Amount *big.Int
	Block  uint64
}
