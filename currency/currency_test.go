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

package currency_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeus-wallet/zeus-go/currency"
)

func Test_ETH_Parse(t *testing.T) {
	require.True(t, currency.IsSupported(currency.ETH))
	parser := currency.NewParser(currency.ETH)
	require.NotNil(t, parser)

	tests := []struct {
		name    string
		input   string
		want    *big.Int
		wantErr bool
	}{
		{"whole", "1", big.NewInt(1e18), false},
		{"fraction", "0.5", big.NewInt(5e17), false},
		{"min_unit", "0.000000000000000001", big.NewInt(1), false},
		{"too_small", "0.0000000000000000001", nil, true},
		{"not_a_number", "abc", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Zero(t, tt.want.Cmp(got))
		})
	}
}

func Test_ETH_Print(t *testing.T) {
	parser := currency.NewParser(currency.ETH)
	require.NotNil(t, parser)

	assert.Equal(t, "1.000000", parser.Print(big.NewInt(1e18)))
	assert.Equal(t, "0.500000", parser.Print(big.NewInt(5e17)))
	assert.Equal(t, "0.000000", parser.Print(big.NewInt(1)))
}
