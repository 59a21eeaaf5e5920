// Package transactions builds signed transactions for tests.
package transactions

import (
	"testing"

	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	bec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	"github.com/bsv-blockchain/txhandler/model"
	"github.com/bsv-blockchain/txhandler/stores/utxo"
	"github.com/stretchr/testify/require"
)

// PrivateKey and PublicKey are the fallback key pair used when an input or output does not
// name its own.
var PrivateKey, PublicKey = bec.PrivateKeyFromBytes([]byte("THIS_IS_A_DETERMINISTIC_PRIVATE_KEY"))

// Key derives a deterministic key pair from seed, so tests can name parties like "alice".
func Key(seed string) (*bec.PrivateKey, *bec.PublicKey) {
	return bec.PrivateKeyFromBytes(chainhash.HashB([]byte(seed)))
}

// TxOption is a function that modifies a transaction creation options
type TxOption func(*TxOptions)

type input struct {
	outpoint  model.Outpoint
	privKey   *bec.PrivateKey
	signature []byte
	unsigned  bool
}

type output struct {
	value  int64
	pubKey *bec.PublicKey
	owner  []byte
}

// TxOptions holds all the configurable options for transaction creation
type TxOptions struct {
	fallbackPrivKey *bec.PrivateKey
	inputs          []input
	outputs         []output
}

// WithPrivateKey specifies a fallback private key to use for signing inputs and as owner of
// outputs when no specific key is provided.
func WithPrivateKey(privKey *bec.PrivateKey) TxOption {
	return func(opts *TxOptions) {
		opts.fallbackPrivKey = privKey
	}
}

// WithInput spends output vout of tx. You can add this option multiple times to add multiple inputs.
func WithInput(tx *model.Transaction, vout uint32, priv ...*bec.PrivateKey) TxOption {
	return WithOutpoint(model.NewOutpoint(tx.Hash(), vout), priv...)
}

// WithOutpoint spends op, which does not have to exist anywhere.
func WithOutpoint(op model.Outpoint, priv ...*bec.PrivateKey) TxOption {
	var p *bec.PrivateKey
	if len(priv) > 0 {
		p = priv[0]
	}

	return func(opts *TxOptions) {
		opts.inputs = append(opts.inputs, input{outpoint: op, privKey: p})
	}
}

// WithUnsignedInput spends output vout of tx without signing it.
func WithUnsignedInput(tx *model.Transaction, vout uint32) TxOption {
	return func(opts *TxOptions) {
		opts.inputs = append(opts.inputs, input{outpoint: model.NewOutpoint(tx.Hash(), vout), unsigned: true})
	}
}

// WithSignature replaces the signature of the most recently added input.
func WithSignature(signature []byte) TxOption {
	return func(opts *TxOptions) {
		if len(opts.inputs) == 0 {
			return
		}

		last := &opts.inputs[len(opts.inputs)-1]
		last.signature = signature
		last.unsigned = true
	}
}

// WithOutput adds an output of value owned by pubKey, or by the fallback key.
func WithOutput(value int64, pubKey ...*bec.PublicKey) TxOption {
	var p *bec.PublicKey
	if len(pubKey) > 0 {
		p = pubKey[0]
	}

	return func(opts *TxOptions) {
		opts.outputs = append(opts.outputs, output{value: value, pubKey: p})
	}
}

// WithOwnerOutput adds an output with raw owner bytes.
func WithOwnerOutput(value int64, owner []byte) TxOption {
	return func(opts *TxOptions) {
		opts.outputs = append(opts.outputs, output{value: value, owner: owner})
	}
}

// Create creates a new transaction with configurable options and signs every input that was
// not added unsigned.
func Create(t *testing.T, options ...TxOption) *model.Transaction {
	t.Helper()

	opts := &TxOptions{
		fallbackPrivKey: PrivateKey,
	}

	for _, option := range options {
		option(opts)
	}

	inputs := make([]*model.Input, 0, len(opts.inputs))
	for _, in := range opts.inputs {
		inputs = append(inputs, &model.Input{
			PrevTxID:  in.outpoint.TxID,
			PrevIndex: in.outpoint.Index,
			Signature: in.signature,
		})
	}

	outputs := make([]*model.Output, 0, len(opts.outputs))
	for _, out := range opts.outputs {
		owner := out.owner

		if owner == nil {
			pubKey := out.pubKey
			if pubKey == nil {
				pubKey = opts.fallbackPrivKey.PubKey()
			}

			owner = pubKey.Compressed()
		}

		outputs = append(outputs, &model.Output{Value: out.value, Owner: owner})
	}

	tx := model.NewTransaction(inputs, outputs)

	for i, in := range opts.inputs {
		if in.unsigned {
			continue
		}

		privKey := in.privKey
		if privKey == nil {
			privKey = opts.fallbackPrivKey
		}

		require.NoError(t, tx.Sign(i, privKey))
	}

	return tx
}

// Seed adds every output of txs to pool, as if the transactions had been accepted earlier.
func Seed(t *testing.T, pool utxo.Pool, txs ...*model.Transaction) {
	t.Helper()

	for _, tx := range txs {
		for i, out := range tx.Outputs() {
			op, err := tx.OutputOutpoint(i)
			require.NoError(t, err)

			pool.Add(op, out.Clone())
		}
	}
}
