package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/sha3"
)

const (
	signatureLength = 65
	recoveryIDIndex = 64

	personalMessagePrefix = "\x19Ethereum Signed Message:\n"
)

var ErrMalformedSignature = errors.New("malformed signature")

// HashChallenge returns the personal-message digest a wallet signs for nonce.
func HashChallenge(nonce string) []byte {
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write([]byte(personalMessagePrefix + strconv.Itoa(len(nonce)) + nonce))
	return hasher.Sum(nil)
}

// EthereumSignatureRecoverer recovers the signer address of a secp256k1 signature.
type EthereumSignatureRecoverer struct{}

func NewEthereumSignatureRecoverer() SignatureRecovererInterface {
	return &EthereumSignatureRecoverer{}
}

// RecoverAddress accepts a 0x-prefixed hex signature of 65 bytes with V in {0, 1, 27, 28}.
func (r *EthereumSignatureRecoverer) RecoverAddress(hash []byte, signature string) (common.Address, error) {
	encoded := strings.TrimSpace(signature)
	if !strings.HasPrefix(encoded, "0x") && !strings.HasPrefix(encoded, "0X") {
		encoded = "0x" + encoded
	}

	raw, err := hexutil.Decode(encoded)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", ErrMalformedSignature, err)
	}
	if len(raw) != signatureLength {
		return common.Address{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrMalformedSignature, signatureLength, len(raw))
	}

	sig := make([]byte, signatureLength)
	copy(sig, raw)
	if sig[recoveryIDIndex] >= 27 {
		sig[recoveryIDIndex] -= 27
	}
	if sig[recoveryIDIndex] > 1 {
		return common.Address{}, fmt.Errorf("%w: invalid recovery id %d", ErrMalformedSignature, raw[recoveryIDIndex])
	}

	publicKey, err := crypto.SigToPub(hash, sig)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to recover public key: %w", err)
	}

	return crypto.PubkeyToAddress(*publicKey), nil
}
