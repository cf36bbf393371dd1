package wallet

import (
	"encoding/base64"
	"fmt"

	bin "github.com/gagliardetto/binary"
	solana "github.com/gagliardetto/solana-go"
)

// SignOrderTransaction decodes the aggregator's base64 transaction blob, signs
// it with key, and returns the signed wire form re-encoded as base64.
//
// The aggregator builds the transaction, so before signing we assert that the
// message wants exactly one signature and that its fee payer is our wallet;
// anything else would sail through signing and produce an invalid transaction.
func SignOrderTransaction(txBase64 string, key solana.PrivateKey) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(txBase64)
	if err != nil {
		return "", fmt.Errorf("decode tx: %w", err)
	}

	tx, err := solana.TransactionFromDecoder(bin.NewBinDecoder(raw))
	if err != nil {
		return "", fmt.Errorf("unmarshal tx: %w", err)
	}

	if n := int(tx.Message.Header.NumRequiredSignatures); n != 1 {
		return "", fmt.Errorf("transaction requires %d signers, only one keypair is loaded", n)
	}
	if len(tx.Message.AccountKeys) == 0 {
		return "", fmt.Errorf("transaction has no account keys")
	}
	if feePayer := tx.Message.AccountKeys[0]; !feePayer.Equals(key.PublicKey()) {
		return "", fmt.Errorf("transaction fee payer %s is not our wallet %s", feePayer, key.PublicKey())
	}

	// Drop any placeholder signatures the aggregator serialized.
	tx.Signatures = nil

	if _, err := tx.Sign(func(pub solana.PublicKey) *solana.PrivateKey {
		if pub.Equals(key.PublicKey()) {
			return &key
		}
		return nil
	}); err != nil {
		return "", fmt.Errorf("sign: %w", err)
	}

	signed, err := tx.MarshalBinary()
	if err != nil {
		return "", fmt.Errorf("marshal signed tx: %w", err)
	}
	return base64.StdEncoding.EncodeToString(signed), nil
}
