package services

import (
	"crypto/ecdsa"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signChallenge signs the nonce the way a browser wallet does, with V in {27, 28}.
func signChallenge(t *testing.T, key *ecdsa.PrivateKey, nonce string) string {
	t.Helper()
	sig, err := crypto.Sign(HashChallenge(nonce), key)
	require.NoError(t, err)
	sig[64] += 27
	return hexutil.Encode(sig)
}

func TestHashChallenge_MatchesPersonalMessageHash(t *testing.T) {
	nonce := "3f8a1c2b9d0e4f5a6b7c8d9e0f1a2b3c"
	assert.Equal(t, accounts.TextHash([]byte(nonce)), HashChallenge(nonce))
	assert.Len(t, HashChallenge(""), 32)
}

func TestRecoverAddress(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	expected := crypto.PubkeyToAddress(key.PublicKey)

	nonce := "a1b2c3d4e5f60718293a4b5c6d7e8f90"
	signature := signChallenge(t, key, nonce)
	recoverer := NewEthereumSignatureRecoverer()

	t.Run("wallet recovery id", func(t *testing.T) {
		address, err := recoverer.RecoverAddress(HashChallenge(nonce), signature)
		require.NoError(t, err)
		assert.Equal(t, expected, address)
	})

	t.Run("raw recovery id", func(t *testing.T) {
		raw, err := crypto.Sign(HashChallenge(nonce), key)
		require.NoError(t, err)

		address, err := recoverer.RecoverAddress(HashChallenge(nonce), hexutil.Encode(raw))
		require.NoError(t, err)
		assert.Equal(t, expected, address)
	})

	t.Run("without prefix", func(t *testing.T) {
		address, err := recoverer.RecoverAddress(HashChallenge(nonce), strings.TrimPrefix(signature, "0x"))
		require.NoError(t, err)
		assert.Equal(t, expected, address)
	})

	t.Run("other message recovers another address", func(t *testing.T) {
		address, err := recoverer.RecoverAddress(HashChallenge("different"), signature)
		if err == nil {
			assert.NotEqual(t, expected, address)
		}
	})

	t.Run("does not mutate input", func(t *testing.T) {
		before := signature
		_, _ = recoverer.RecoverAddress(HashChallenge(nonce), signature)
		assert.Equal(t, before, signature)
	})
}

func TestRecoverAddress_Malformed(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	valid := signChallenge(t, key, "nonce")
	recoverer := NewEthereumSignatureRecoverer()

	badRecoveryID, err := hexutil.Decode(valid)
	require.NoError(t, err)
	badRecoveryID[64] = 35

	tests := []struct {
		name      string
		signature string
	}{
		{name: "empty", signature: ""},
		{name: "not hex", signature: "0xzz"},
		{name: "too short", signature: valid[:len(valid)-2]},
		{name: "too long", signature: valid + "00"},
		{name: "bad recovery id", signature: hexutil.Encode(badRecoveryID)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := recoverer.RecoverAddress(HashChallenge("nonce"), tt.signature)
			assert.ErrorIs(t, err, ErrMalformedSignature)
		})
	}
}
