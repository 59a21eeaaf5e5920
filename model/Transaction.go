package model

import (
	"bytes"

	"github.com/bsv-blockchain/go-bt/v2"
	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	safeconversion "github.com/bsv-blockchain/go-safe-conversion"
	bec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	"github.com/bsv-blockchain/txhandler/errors"
	"golang.org/x/exp/slices"
)

const (
	entryNil     byte = 0
	entryPresent byte = 1
)

// Output is a spendable amount owned by a public key.
type Output struct {
	// Value in minor units. Signed so that negative outputs can be represented and rejected.
	Value int64

	// Owner is the serialized public key allowed to spend this output.
	Owner []byte
}

func (o *Output) Clone() *Output {
	if o == nil {
		return nil
	}

	return &Output{
		Value: o.Value,
		Owner: bytes.Clone(o.Owner),
	}
}

func (o *Output) Equal(other *Output) bool {
	if o == nil || other == nil {
		return o == other
	}

	return o.Value == other.Value && bytes.Equal(o.Owner, other.Owner)
}

// Input claims a previous output. Signature is a DER encoded ECDSA signature, nil when unsigned.
type Input struct {
	PrevTxID  chainhash.Hash
	PrevIndex uint32
	Signature []byte
}

func (i *Input) Outpoint() Outpoint {
	return Outpoint{TxID: i.PrevTxID, Index: i.PrevIndex}
}

// Transaction is identified by the double sha256 of its serialization. The hash is cached on first
// use and only reset by Sign, so inputs and outputs must not be modified once it has been hashed.
type Transaction struct {
	inputs  []*Input
	outputs []*Output
	hash    *chainhash.Hash
}

// NewTransaction copies the slices but not the entries they point to.
func NewTransaction(inputs []*Input, outputs []*Output) *Transaction {
	return &Transaction{
		inputs:  slices.Clone(inputs),
		outputs: slices.Clone(outputs),
	}
}

func (tx *Transaction) Inputs() []*Input {
	return tx.inputs
}

func (tx *Transaction) Outputs() []*Output {
	return tx.outputs
}

// SignablePayload returns the bytes covered by the signature of input i: the claimed outpoint
// followed by every output of the transaction. Returns nil when i is out of range or input i is nil.
func (tx *Transaction) SignablePayload(i int) []byte {
	if i < 0 || i >= len(tx.inputs) || tx.inputs[i] == nil {
		return nil
	}

	in := tx.inputs[i]

	payload := make([]byte, 0, chainhash.HashSize+9+len(tx.outputs)*48)
	payload = append(payload, in.PrevTxID[:]...)
	payload = append(payload, bt.VarInt(in.PrevIndex).Bytes()...)

	return tx.appendOutputs(payload)
}

// Sign signs input i with privKey and stores the DER signature on the input.
func (tx *Transaction) Sign(i int, privKey *bec.PrivateKey) error {
	payload := tx.SignablePayload(i)
	if payload == nil {
		return errors.NewInvalidArgumentError("input %d is nil or out of range, transaction has %d inputs", i, len(tx.inputs))
	}

	signature, err := privKey.Sign(chainhash.DoubleHashB(payload))
	if err != nil {
		return errors.NewProcessingError("failed to sign input %d", i, err)
	}

	tx.inputs[i].Signature = signature.Serialize()
	tx.hash = nil

	return nil
}

// Bytes returns the full serialization of the transaction including signatures. Every entry is
// prefixed with a presence flag so that malformed transactions with nil entries still serialize.
func (tx *Transaction) Bytes() []byte {
	b := make([]byte, 0, 1+len(tx.inputs)*113+len(tx.outputs)*49)
	b = append(b, bt.VarInt(uint64(len(tx.inputs))).Bytes()...)

	for _, in := range tx.inputs {
		if in == nil {
			b = append(b, entryNil)
			continue
		}

		b = append(b, entryPresent)
		b = append(b, in.PrevTxID[:]...)
		b = append(b, bt.VarInt(in.PrevIndex).Bytes()...)
		b = append(b, bt.VarInt(uint64(len(in.Signature))).Bytes()...)
		b = append(b, in.Signature...)
	}

	return tx.appendOutputs(b)
}

// Hash is the double sha256 of Bytes. The result is cached until the transaction is re-signed.
func (tx *Transaction) Hash() chainhash.Hash {
	if tx.hash == nil {
		h := chainhash.DoubleHashH(tx.Bytes())
		tx.hash = &h
	}

	return *tx.hash
}

func (tx *Transaction) TxID() string {
	return tx.Hash().String()
}

// OutputOutpoint returns the outpoint that output i will occupy once the transaction is accepted.
func (tx *Transaction) OutputOutpoint(i int) (Outpoint, error) {
	if i < 0 || i >= len(tx.outputs) {
		return Outpoint{}, errors.NewInvalidArgumentError("output %d out of range, transaction has %d outputs", i, len(tx.outputs))
	}

	index, err := safeconversion.IntToUint32(i)
	if err != nil {
		return Outpoint{}, errors.NewInvalidArgumentError("output index %d", i, err)
	}

	return Outpoint{TxID: tx.Hash(), Index: index}, nil
}

func (tx *Transaction) appendOutputs(b []byte) []byte {
	b = append(b, bt.VarInt(uint64(len(tx.outputs))).Bytes()...)

	for _, out := range tx.outputs {
		if out == nil {
			b = append(b, entryNil)
			continue
		}

		b = append(b, entryPresent)
		b = append(b, bt.VarInt(zigzag(out.Value)).Bytes()...)
		b = append(b, bt.VarInt(uint64(len(out.Owner))).Bytes()...)
		b = append(b, out.Owner...)
	}

	return b
}

// zigzag maps signed values onto unsigned ones so small negatives stay short.
func zigzag(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63)) //nolint:gosec // intended bit reinterpretation
}
