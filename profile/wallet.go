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

package profile

import (
	"crypto/ecdsa"
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	zeus "github.com/zeus-wallet/zeus-go"
)

// Wallet is a named private key together with its cached per-chain balances.
type Wallet struct {
	// Name assigned by the user for referring to this wallet. It is unique
	// within a profile and defaults to the wallet's address string.
	Name string

	// Balances caches the last observed balance per chain ID. An external
	// collaborator refreshes it via SetBalance.
	Balances map[uint64]zeus.Balance

	Key *ecdsa.PrivateKey
}

// NewWallet creates a wallet with a fresh random private key. If name is
// empty, the wallet's address string is used instead.
func NewWallet(name string) (Wallet, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return Wallet{}, errors.Wrap(err, "generating private key")
	}
	return newWallet(name, key), nil
}

// NewWalletFromHex creates a wallet from a hex-encoded private key, with or
// without a 0x prefix. An unparseable key fails with ErrInvalidKey.
func NewWalletFromHex(name, keyHex string) (Wallet, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(keyHex, "0x"))
	if err != nil {
		return Wallet{}, errors.WithMessage(zeus.ErrInvalidKey, err.Error())
	}
	return newWallet(name, key), nil
}

func newWallet(name string, key *ecdsa.PrivateKey) Wallet {
	w := Wallet{
		Name:     name,
		Balances: make(map[uint64]zeus.Balance),
		Key:      key,
	}
	if w.Name == "" {
		w.Name = w.Address().Hex()
	}
	return w
}

// Address returns the address derived from the wallet's key.
func (w Wallet) Address() common.Address {
	return crypto.PubkeyToAddress(w.Key.PublicKey)
}

// KeyHex returns the wallet's private key as a hex string without prefix.
func (w Wallet) KeyHex() string {
	return hex.EncodeToString(crypto.FromECDSA(w.Key))
}

// SetBalance records the balance observed for this wallet on the given chain
// at the given block.
func (w *Wallet) SetBalance(chainID uint64, amount *big.Int, block uint64) {
	if w.Balances == nil {
		w.Balances = make(map[uint64]zeus.Balance)
	}
	w.Balances[chainID] = zeus.Balance{Amount: new(big.Int).Set(amount), Block: block}
}

// BalanceOn returns the cached balance for the given chain, if any.
func (w Wallet) BalanceOn(chainID uint64) (zeus.Balance, bool) {
	b, ok := w.Balances[chainID]
	return b, ok
}
