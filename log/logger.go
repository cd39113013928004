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

// Package log provides the logger used by the zeus command line tools.
// Vault and profile code never logs; in particular no key bytes, derived
// keys or passwords ever reach a logger.
package log

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Logger is, for now, a type alias of logrus.Logger.
type Logger = logrus.Logger

// NewLogger returns a logger set to the given level and log file.
// Supported log levels are "debug", "info" and "error".
// Logs to stderr if logFile is an empty string.
func NewLogger(levelStr, logFile string) (*Logger, error) {
	if levelStr != "debug" && levelStr != "info" && levelStr != "error" {
		return nil, errors.New("unsupported log level, use debug, info or error")
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	logger := logrus.New()
	logger.SetLevel(level)

	if logFile == "" {
		logger.SetOutput(os.Stderr)
	} else {
		f, err := os.OpenFile(filepath.Clean(logFile), os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o600)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		logger.SetOutput(f)
	}

	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:          true,
		TimestampFormat:        "2006-01-02 15:04:05 Z0700",
		DisableLevelTruncation: true,
	})
	return logger, nil
}
