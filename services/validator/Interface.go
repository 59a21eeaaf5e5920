/*
Package validator decides whether a single transaction may be applied to a utxo pool.

A transaction is valid against a pool when every input claims an unspent output, every
input is signed by the owner of the output it claims, no output is claimed twice by the
same transaction, no output value is negative and the claimed value covers the created
value. Validation only reads the pool; applying an accepted transaction is the job of the
txhandler service.
*/
package validator

import (
	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	"github.com/bsv-blockchain/txhandler/model"
	"github.com/bsv-blockchain/txhandler/stores/utxo"
)

// Tx is the view of a transaction the validator works on.
type Tx interface {
	// Hash is the content hash of the transaction, used as its identity and as the txid of
	// the outputs it creates.
	Hash() chainhash.Hash

	Inputs() []*model.Input
	Outputs() []*model.Output

	// SignablePayload returns the bytes that the signature of input i must cover.
	SignablePayload(i int) []byte
}

var _ Tx = (*model.Transaction)(nil)

// TxValidatorI defines the interface for transaction validation operations.
type TxValidatorI interface {
	// ValidateTransaction checks tx against pool and returns the first rule it breaks as a
	// coded error, or nil when the transaction is valid. The pool is never modified.
	ValidateTransaction(tx Tx, pool utxo.Pool) error

	// IsValid collapses ValidateTransaction to a boolean.
	IsValid(tx Tx, pool utxo.Pool) bool
}

var _ TxValidatorI = (*TxValidator)(nil)
