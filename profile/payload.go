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
	"encoding/json"
	"math/big"

	"github.com/pkg/errors"
)

// walletRecord is the plaintext form of a wallet inside the vault payload.
// The payload is a JSON array of these records; field names are part of the
// on-disk format and must round-trip losslessly.
type walletRecord struct {
	Name     string                   `json:"name"`
	Balances map[uint64]balanceRecord `json:"balances"`
	Key      string                   `json:"key"`
}

type balanceRecord struct {
	Amount *big.Int `json:"amount"`
	Block  uint64   `json:"block"`
}

func marshalWallets(wallets []Wallet) ([]byte, error) {
	records := make([]walletRecord, 0, len(wallets))
	for i := range wallets {
		balances := make(map[uint64]balanceRecord, len(wallets[i].Balances))
		for chainID, b := range wallets[i].Balances {
			balances[chainID] = balanceRecord{Amount: b.Amount, Block: b.Block}
		}
		records = append(records, walletRecord{
			Name:     wallets[i].Name,
			Balances: balances,
			Key:      wallets[i].KeyHex(),
		})
	}
	data, err := json.Marshal(records)
	return data, errors.Wrap(err, "serializing wallets")
}

func unmarshalWallets(data []byte) ([]Wallet, error) {
	var records []walletRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Wrap(err, "deserializing wallets")
	}
	wallets := make([]Wallet, 0, len(records))
	for _, r := range records {
		w, err := NewWalletFromHex(r.Name, r.Key)
		if err != nil {
			return nil, errors.WithMessagef(err, "wallet %q", r.Name)
		}
		for chainID, b := range r.Balances {
			amount := b.Amount
			if amount == nil {
				amount = new(big.Int)
			}
			w.SetBalance(chainID, amount, b.Block)
		}
		wallets = append(wallets, w)
	}
	return wallets, nil
}
