// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// SessionFile persists the session cookie between client invocations. A
// token is only reused against the server it was issued by.
type SessionFile struct {
	path   string
	server string
}

type sessionFileContent struct {
	Server string `json:"server"`
	Token  string `json:"token"`
}

func NewSessionFile(path, server string) *SessionFile {
	return &SessionFile{path: path, server: server}
}

// Load returns the stored token, or "" when there is none for this server.
func (s *SessionFile) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("error reading session file: %w", err)
	}

	var content sessionFileContent
	if err = json.Unmarshal(data, &content); err != nil {
		return "", fmt.Errorf("error decoding session file: %w", err)
	}
	if content.Server != s.server {
		return "", nil
	}

	return content.Token, nil
}

// Save stores token, or removes the file when token is empty.
func (s *SessionFile) Save(token string) error {
	if token == "" {
		if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error removing session file: %w", err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("error creating session directory: %w", err)
	}

	data, err := json.Marshal(sessionFileContent{Server: s.server, Token: token})
	if err != nil {
		return fmt.Errorf("error encoding session file: %w", err)
	}

	if err = os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("error writing session file: %w", err)
	}
	return nil
}
