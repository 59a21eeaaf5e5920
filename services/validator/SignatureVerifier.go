package validator

import (
	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	bec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	"github.com/bsv-blockchain/txhandler/errors"
)

// SignatureVerifier checks that signature was produced over message by the holder of owner.
// An error means the owner or signature could not be interpreted; the validator treats it
// the same as a failed verification.
type SignatureVerifier interface {
	Verify(owner, message, signature []byte) (bool, error)
}

// SignatureVerifierFunc adapts a plain function to SignatureVerifier.
type SignatureVerifierFunc func(owner, message, signature []byte) (bool, error)

func (f SignatureVerifierFunc) Verify(owner, message, signature []byte) (bool, error) {
	return f(owner, message, signature)
}

// ECDSAVerifier verifies DER encoded secp256k1 signatures over the double sha256 of the
// message. Owners are serialized public keys, compressed or uncompressed.
type ECDSAVerifier struct{}

func (ECDSAVerifier) Verify(owner, message, signature []byte) (bool, error) {
	pubKey, err := bec.ParsePubKey(owner)
	if err != nil {
		return false, errors.NewInvalidArgumentError("invalid owner public key", err)
	}

	sig, err := bec.ParseDERSignature(signature)
	if err != nil {
		return false, errors.NewInvalidArgumentError("invalid DER signature", err)
	}

	return sig.Verify(chainhash.DoubleHashB(message), pubKey), nil
}
