// Package common provides shared utilities for the auctionPal CLI commands:
// key loading, protocol identity parsing, and audit store selection.
package common

import (
	"encoding/hex"
	"fmt"

	"github.com/solanadevsnest/auctionPal/crypto"
	"github.com/solanadevsnest/auctionPal/services"
)

// LoadOrGenerateSigningKey loads an Ed25519 private key from a hex string,
// or generates a new key pair if hexKey is empty.
func LoadOrGenerateSigningKey(hexKey string) (crypto.PrivateKey, error) {
	if hexKey != "" {
		keyBytes, err := hex.DecodeString(hexKey)
		if err != nil {
			return nil, fmt.Errorf("invalid hex: %w", err)
		}
		return crypto.NewPrivateKeyFromBytes(keyBytes), nil
	}
	_, privKey, err := crypto.GenerateKeyPair()
	return privKey, err
}

// LoadOrGenerateProgramID parses the protocol identity from a hex string, or
// generates a fresh identity if hexID is empty.
func LoadOrGenerateProgramID(hexID string) (crypto.Identity, error) {
	if hexID != "" {
		return crypto.NewIdentityFromString(hexID)
	}
	id, _, err := crypto.GenerateKeyPair()
	return id, err
}

// NewTransitionStore creates a PostgreSQL-backed audit store when a DSN is
// configured, and falls back to the in-memory store otherwise.
func NewTransitionStore(postgresDSN string) (services.TransitionStore, error) {
	if postgresDSN != "" {
		return services.NewPostgresStore(postgresDSN)
	}
	return services.NewMemoryStore(), nil
}
