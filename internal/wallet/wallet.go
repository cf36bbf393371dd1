// Package wallet loads the signing keypair and signs aggregator transactions.
package wallet

import (
	"crypto/ed25519"
	"fmt"

	solana "github.com/gagliardetto/solana-go"
)

// Load decodes a base58 private key into a signing keypair. The decoded bytes
// must be a full ed25519 secret (64 bytes).
func Load(base58Key string) (solana.PrivateKey, error) {
	key, err := solana.PrivateKeyFromBase58(base58Key)
	if err != nil {
		return nil, fmt.Errorf("decode private key: %w", err)
	}
	if len(key) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("private key is %d bytes, want %d", len(key), ed25519.PrivateKeySize)
	}
	return key, nil
}
