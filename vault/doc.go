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

// Package vault seals byte payloads under a key derived from user
// credentials and frames the result into a self-describing container file.
//
// The salt and the nonce are both derived deterministically from the
// username, so decryption needs nothing beyond the vault file and the
// credentials themselves. The trade-off: re-encrypting the same plaintext
// under unchanged credentials produces a bit-identical file, so there is no
// semantic security against an adversary who can compare multiple saves.
// The vault is local and single-user, which is why this was accepted.
//
// The vault is stateless between calls and performs no network I/O. Key
// derivation is intentionally slow; callers must treat every operation as
// blocking and serialize concurrent saves to the same file themselves.
package vault
