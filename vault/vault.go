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
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	zeus "github.com/zeus-wallet/zeus-go"
)

// Encrypt validates the credentials, derives the key, seals data and frames
// the result into a container buffer.
func Encrypt(c zeus.Credentials, p zeus.CipherParams, data []byte) ([]byte, error) {
	keyMaterial, err := DeriveKey(c, p)
	if err != nil {
		return nil, err
	}
	ciphertext, err := Seal(keyMaterial[:KeySize], Nonce(c.Username), data)
	if err != nil {
		return nil, err
	}
	return EncodeContainer(ciphertext, p), nil
}

// Decrypt parses a container buffer, re-derives the key using the cost
// parameters recovered from it and opens the ciphertext.
func Decrypt(c zeus.Credentials, data []byte) ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	ciphertext, p, err := DecodeContainer(data)
	if err != nil {
		return nil, err
	}
	keyMaterial, err := DeriveKey(c, p)
	if err != nil {
		return nil, err
	}
	return Open(keyMaterial[:KeySize], Nonce(c.Username), ciphertext)
}

// EncryptToFile encrypts data and replaces the file at path with the new
// container. The container is written to a temporary file in the same
// directory and renamed over the target, so a failed save leaves any
// previous file untouched.
func EncryptToFile(path string, c zeus.Credentials, p zeus.CipherParams, data []byte) error {
	container, err := Encrypt(c, p, data)
	if err != nil {
		return err
	}
	return writeFileReplace(path, container)
}

// DecryptFromFile reads the container at path and decrypts it.
func DecryptFromFile(path string, c zeus.Credentials) ([]byte, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, errors.Wrap(err, "reading vault file")
	}
	return Decrypt(c, data)
}

func writeFileReplace(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".vault-*")
	if err != nil {
		return errors.Wrap(err, "creating temp vault file")
	}
	tmpPath := tmp.Name()
	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.Wrap(err, "writing temp vault file")
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.Wrap(err, "closing temp vault file")
	}
	if err = os.Chmod(tmpPath, 0o600); err != nil {
		os.Remove(tmpPath)
		return errors.Wrap(err, "setting vault file permissions")
	}
	if err = os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return errors.Wrap(err, "replacing vault file")
	}
	return nil
}
