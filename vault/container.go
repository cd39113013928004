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
	"bytes"
	"encoding/binary"
	"math"

	"github.com/pkg/errors"

	zeus "github.com/zeus-wallet/zeus-go"
)

// identifier marks the start of the parameter record inside a container.
var identifier = []byte("params")

// paramsRecordSize is the serialized size of CipherParams: three u32 fields
// and the output length as a u64, all big-endian.
const paramsRecordSize = 20

// EncodeContainer frames a ciphertext and the cost parameters that produced
// it into a single buffer: ciphertext || "params" || 20-byte record. The
// ciphertext carries no length prefix; its end is implied by the identifier.
func EncodeContainer(ciphertext []byte, p zeus.CipherParams) []byte {
	buf := make([]byte, 0, len(ciphertext)+len(identifier)+paramsRecordSize)
	buf = append(buf, ciphertext...)
	buf = append(buf, identifier...)

	var record [paramsRecordSize]byte
	binary.BigEndian.PutUint32(record[0:4], p.MemoryCost)
	binary.BigEndian.PutUint32(record[4:8], p.TimeCost)
	binary.BigEndian.PutUint32(record[8:12], p.Parallelism)
	binary.BigEndian.PutUint64(record[12:20], uint64(p.OutputLength))
	return append(buf, record[:]...)
}

// DecodeContainer splits a container back into ciphertext and cost
// parameters. It locates the parameter record at the LAST occurrence of the
// identifier: the ciphertext is high entropy and could coincidentally
// contain the marker bytes, and the right-most match reduces that risk.
//
// Known limitation: if the ciphertext reproduces the marker after the true
// split point, decoding picks the wrong position. The only defense is the
// exact-size check on the trailing record.
func DecodeContainer(data []byte) ([]byte, zeus.CipherParams, error) {
	i := bytes.LastIndex(data, identifier)
	if i < 0 {
		return nil, zeus.CipherParams{}, errors.WithMessage(
			zeus.ErrMalformedContainer, "parameter identifier not found")
	}
	record := data[i+len(identifier):]
	if len(record) != paramsRecordSize {
		return nil, zeus.CipherParams{}, errors.WithMessagef(
			zeus.ErrMalformedContainer, "parameter record is %d bytes, want %d",
			len(record), paramsRecordSize)
	}
	outLen := binary.BigEndian.Uint64(record[12:20])
	if outLen > math.MaxUint32 {
		return nil, zeus.CipherParams{}, errors.WithMessage(
			zeus.ErrMalformedContainer, "output length out of range")
	}
	p := zeus.CipherParams{
		MemoryCost:   binary.BigEndian.Uint32(record[0:4]),
		TimeCost:     binary.BigEndian.Uint32(record[4:8]),
		Parallelism:  binary.BigEndian.Uint32(record[8:12]),
		OutputLength: uint32(outLen),
	}
	return data[:i], p, nil
}
