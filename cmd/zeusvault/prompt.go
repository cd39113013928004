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

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/term"

	zeus "github.com/zeus-wallet/zeus-go"
)

// readCredentials prompts for the username and password on the terminal.
// Passwords are read without echo. When confirm is false, the confirmation
// is taken from the password itself (unlock and export flows).
func readCredentials(confirm bool) (zeus.Credentials, error) {
	fmt.Print("Username: ")
	reader := bufio.NewReader(os.Stdin)
	username, err := reader.ReadString('\n')
	if err != nil {
		return zeus.Credentials{}, errors.Wrap(err, "reading username")
	}

	password, err := readSecret("Password: ")
	if err != nil {
		return zeus.Credentials{}, err
	}

	confirmation := password
	if confirm {
		if confirmation, err = readSecret("Confirm password: "); err != nil {
			return zeus.Credentials{}, err
		}
	}

	return zeus.Credentials{
		Username:        strings.TrimSpace(username),
		Password:        password,
		ConfirmPassword: confirmation,
	}, nil
}

// readSecret reads one line from the terminal with echo disabled.
func readSecret(prompt string) (string, error) {
	fmt.Print(prompt)
	secret, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", errors.Wrap(err, "reading secret input")
	}
	return strings.TrimSpace(string(secret)), nil
}
