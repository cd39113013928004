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

// Package profile implements the domain object protected by the vault: a
// credential record plus an ordered list of wallets, persisted as a single
// encrypted file.
package profile

import (
	"math/big"

	"github.com/pkg/errors"

	zeus "github.com/zeus-wallet/zeus-go"
	"github.com/zeus-wallet/zeus-go/vault"
)

// FileName is the default vault file name, relative to the working
// directory. One file holds one profile.
const FileName = "profile.data"

// Profile holds the credentials and wallets of one user. It is created empty
// for the new-profile flow or populated by DecryptAndLoad, and persisted as
// a whole by EncryptAndSave. Callers must serialize concurrent operations on
// the same profile.
type Profile struct {
	Credentials zeus.Credentials

	// Params are the cost parameters used for the next save. Loading a
	// profile does not change them; the parameters recovered from the
	// file are used for that decryption only.
	Params zeus.CipherParams

	path    string
	wallets []Wallet
	current int // index into wallets, -1 when unset
}

// New returns an empty profile persisted at the given path. An empty path
// selects FileName in the working directory.
func New(path string, c zeus.Credentials) *Profile {
	if path == "" {
		path = FileName
	}
	return &Profile{
		Credentials: c,
		Params:      zeus.DefaultCipherParams(),
		path:        path,
		current:     -1,
	}
}

// Path returns the location of the profile's vault file.
func (p *Profile) Path() string {
	return p.path
}

// Wallets returns the profile's wallets in insertion order.
func (p *Profile) Wallets() []Wallet {
	return p.wallets
}

// Wallet returns the wallet with the given name, if present.
func (p *Profile) Wallet(name string) (Wallet, bool) {
	for i := range p.wallets {
		if p.wallets[i].Name == name {
			return p.wallets[i], true
		}
	}
	return Wallet{}, false
}

// NewWallet generates a wallet with a fresh random key and adds it to the
// profile. An empty name defaults to the wallet's address string. The
// resulting name must not already be in use.
func (p *Profile) NewWallet(name string) (Wallet, error) {
	w, err := NewWallet(name)
	if err != nil {
		return Wallet{}, err
	}
	if err := p.AddWallet(w); err != nil {
		return Wallet{}, err
	}
	return w, nil
}

// ImportWallet adds a wallet constructed from a hex-encoded private key.
func (p *Profile) ImportWallet(name, keyHex string) (Wallet, error) {
	w, err := NewWalletFromHex(name, keyHex)
	if err != nil {
		return Wallet{}, err
	}
	if err := p.AddWallet(w); err != nil {
		return Wallet{}, err
	}
	return w, nil
}

// AddWallet appends an already constructed wallet, rejecting duplicate
// names.
func (p *Profile) AddWallet(w Wallet) error {
	if _, ok := p.Wallet(w.Name); ok {
		return errors.WithMessagef(zeus.ErrDuplicateName, "wallet %q", w.Name)
	}
	p.wallets = append(p.wallets, w)
	return nil
}

// SetCurrentWallet makes the named wallet the current one.
func (p *Profile) SetCurrentWallet(name string) error {
	for i := range p.wallets {
		if p.wallets[i].Name == name {
			p.current = i
			return nil
		}
	}
	return errors.WithMessagef(zeus.ErrNotFound, "wallet %q", name)
}

// CurrentWallet returns the currently selected wallet, if any.
func (p *Profile) CurrentWallet() (Wallet, bool) {
	if p.current < 0 || p.current >= len(p.wallets) {
		return Wallet{}, false
	}
	return p.wallets[p.current], true
}

// CurrentWalletName returns the name of the current wallet, or "No Wallet".
func (p *Profile) CurrentWalletName() string {
	w, ok := p.CurrentWallet()
	if !ok {
		return "No Wallet"
	}
	return w.Name
}

// UpdateBalance records the balance observed for the named wallet on the
// given chain at the given block. Intended for the external balance refresh
// collaborator; the profile itself never queries a chain.
func (p *Profile) UpdateBalance(name string, chainID uint64, amount *big.Int, block uint64) error {
	for i := range p.wallets {
		if p.wallets[i].Name == name {
			p.wallets[i].SetBalance(chainID, amount, block)
			return nil
		}
	}
	return errors.WithMessagef(zeus.ErrNotFound, "wallet %q", name)
}

// EncryptAndSave serializes all wallets, seals them under the profile's
// credentials and replaces the vault file. A failed save leaves any previous
// file untouched.
func (p *Profile) EncryptAndSave() error {
	data, err := marshalWallets(p.wallets)
	if err != nil {
		return err
	}
	return vault.EncryptToFile(p.path, p.Credentials, p.Params, data)
}

// DecryptAndLoad reads the vault file, opens it with the profile's
// credentials and replaces the in-memory wallet list. When the loaded list
// is non-empty, the first wallet becomes the current one.
func (p *Profile) DecryptAndLoad() error {
	data, err := vault.DecryptFromFile(p.path, p.Credentials)
	if err != nil {
		return err
	}
	wallets, err := unmarshalWallets(data)
	if err != nil {
		return err
	}
	p.wallets = wallets
	if len(p.wallets) > 0 {
		p.current = 0
	}
	return nil
}

// ExportWallet returns the hex-encoded private key of the named wallet. The
// supplied credentials are validated by a full decrypt of the on-disk vault,
// never by comparison against in-memory state, so stale cached credentials
// cannot satisfy an export.
func (p *Profile) ExportWallet(name string, c zeus.Credentials) (string, error) {
	data, err := vault.DecryptFromFile(p.path, c)
	if err != nil {
		return "", err
	}
	wallets, err := unmarshalWallets(data)
	if err != nil {
		return "", err
	}
	for i := range wallets {
		if wallets[i].Name == name {
			return wallets[i].KeyHex(), nil
		}
	}
	return "", errors.WithMessagef(zeus.ErrNotFound, "wallet %q", name)
}
