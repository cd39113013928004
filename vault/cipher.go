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
	"crypto/cipher"
	"crypto/sha256"

	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20poly1305"

	zeus "github.com/zeus-wallet/zeus-go"
)

// Key and nonce sizes of the AEAD used to seal vault payloads.
const (
	KeySize   = chacha20poly1305.KeySize
	NonceSize = chacha20poly1305.NonceSizeX
)

// Nonce returns the AEAD nonce for the given username: the first NonceSize
// bytes of its SHA-256 digest. The nonce is deterministic per username and
// is not re-randomized per save; XChaCha20-Poly1305 was chosen because its
// 24-byte nonce space makes a derived nonce usable here. See the package
// documentation for the consequences.
func Nonce(username string) []byte {
	digest := sha256.Sum256([]byte(username))
	return digest[:NonceSize]
}

// Seal encrypts and authenticates plaintext under the given key and nonce
// using XChaCha20-Poly1305. The returned ciphertext includes the
// authentication tag.
func Seal(key, nonce, plaintext []byte) ([]byte, error) {
	aead, err := newAEAD(key, nonce)
	if err != nil {
		return nil, err
	}
	return aead.Seal(nil, nonce, plaintext, nil), nil
}

// Open decrypts and verifies a ciphertext produced by Seal. A wrong key or a
// tampered ciphertext fails with ErrAuthenticationFailed and no plaintext.
func Open(key, nonce, ciphertext []byte) ([]byte, error) {
	aead, err := newAEAD(key, nonce)
	if err != nil {
		return nil, err
	}
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, errors.WithMessage(zeus.ErrAuthenticationFailed, "opening vault ciphertext")
	}
	return plaintext, nil
}

func newAEAD(key, nonce []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, errors.Errorf("cipher key must be %d bytes", KeySize)
	}
	if len(nonce) != NonceSize {
		return nil, errors.Errorf("cipher nonce must be %d bytes", NonceSize)
	}
	return chacha20poly1305.NewX(key)
}
