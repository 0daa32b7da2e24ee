// Package overlay streams fired action events to websocket clients,
// for debug HUDs and stream overlays. It is off unless a listen
// address is configured; access is gated by a generated token kept in
// the config directory.
package overlay

import (
	"crypto/rand"
	"os"
	"path/filepath"
	"strings"
)

const (
	tokenLength = 16
	base62Chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
)

// GenerateToken creates a random 16-char base62 token.
func GenerateToken() (string, error) {
	raw := make([]byte, tokenLength)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	tok := make([]byte, tokenLength)
	for i, b := range raw {
		tok[i] = base62Chars[int(b)%62]
	}
	return string(tok), nil
}

// LoadOrCreateToken reads the overlay token from path, generating and
// persisting a fresh one when the file does not exist yet.
func LoadOrCreateToken(path string) (token string, created bool, err error) {
	if data, err := os.ReadFile(path); err == nil {
		return strings.TrimSpace(string(data)), false, nil
	}
	token, err = GenerateToken()
	if err != nil {
		return "", false, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", false, err
	}
	if err := os.WriteFile(path, []byte(token), 0o600); err != nil {
		return "", false, err
	}
	return token, true, nil
}
