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

package vault

import (
	"crypto/sha256"
	"encoding/hex"
	"math"

	"github.com/pkg/errors"
	"golang.org/x/crypto/argon2"

	zeus "github.com/zeus-wallet/zeus-go"
)

// Salt returns the password-hash salt for the given username: the ASCII hex
// encoding of its SHA-256 digest. The salt is fully determined by the
// username so that decryption needs no separately stored salt value. The
// vault is single-user and never compared against other users' vaults, so
// the cross-user collision resistance a random salt would add is not needed.
func Salt(username string) []byte {
	digest := sha256.Sum256([]byte(username))
	salt := make([]byte, hex.EncodedLen(len(digest)))
	hex.Encode(salt, digest[:])
	return salt
}

// DeriveKey derives p.OutputLength bytes of key material from the
// credentials using Argon2id with the given cost parameters. Only the first
// KeySize bytes are used as the cipher key; the rest is reserved.
//
// Invalid cost parameters fail with ErrDerivationFailed. The derivation is
// deterministic, so a failure is never retried.
func DeriveKey(c zeus.Credentials, p zeus.CipherParams) ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := checkParams(p); err != nil {
		return nil, err
	}
	return argon2.IDKey(
		[]byte(c.Password), Salt(c.Username),
		p.TimeCost, p.MemoryCost, uint8(p.Parallelism), p.OutputLength,
	), nil
}

func checkParams(p zeus.CipherParams) error {
	if p.TimeCost == 0 {
		return errors.WithMessage(zeus.ErrDerivationFailed, "time cost must be positive")
	}
	if p.Parallelism == 0 || p.Parallelism > math.MaxUint8 {
		return errors.WithMessagef(zeus.ErrDerivationFailed, "parallelism must be in [1,%d]", math.MaxUint8)
	}
	if p.MemoryCost < 8*p.Parallelism {
		return errors.WithMessage(zeus.ErrDerivationFailed, "memory cost too small for the given parallelism")
	}
	if p.OutputLength < KeySize {
		return errors.WithMessagef(zeus.ErrDerivationFailed, "output length must be at least %d bytes", KeySize)
	}
	return nil
}
