package main

import (
	"encoding/hex"
	"io"
	"os"

	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	"github.com/bsv-blockchain/txhandler/errors"
	"github.com/bsv-blockchain/txhandler/model"
	"github.com/bsv-blockchain/txhandler/services/validator"
	"github.com/bsv-blockchain/txhandler/stores/utxo"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// epochFile is the on-disk form of one epoch: the seed pool and the candidate batch.
type epochFile struct {
	Pool         []poolEntry `json:"pool"`
	Transactions []txEntry   `json:"transactions"`
}

type poolEntry struct {
	TxID  string `json:"txid"`
	Vout  uint32 `json:"vout"`
	Value int64  `json:"value"`
	Owner string `json:"owner"`
}

type txEntry struct {
	Inputs  []inputEntry  `json:"inputs"`
	Outputs []outputEntry `json:"outputs"`
}

type inputEntry struct {
	TxID      string `json:"txid"`
	Vout      uint32 `json:"vout"`
	Signature string `json:"signature,omitempty"`
}

type outputEntry struct {
	Value int64  `json:"value"`
	Owner string `json:"owner"`
}

func readEpochFile(path string) (*epochFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewProcessingError("failed to open epoch file %s", path, err)
	}

	defer f.Close()

	return decodeEpoch(f)
}

func decodeEpoch(r io.Reader) (*epochFile, error) {
	var epoch epochFile

	if err := json.NewDecoder(r).Decode(&epoch); err != nil {
		return nil, errors.NewInvalidArgumentError("failed to decode epoch file", err)
	}

	return &epoch, nil
}

// fillPool adds the seed entries of the epoch to pool.
func (e *epochFile) fillPool(pool utxo.Pool) error {
	for i, entry := range e.Pool {
		txID, err := chainhash.NewHashFromStr(entry.TxID)
		if err != nil {
			return errors.NewInvalidArgumentError("pool entry %d: invalid txid %q", i, entry.TxID, err)
		}

		owner, err := hex.DecodeString(entry.Owner)
		if err != nil {
			return errors.NewInvalidArgumentError("pool entry %d: invalid owner", i, err)
		}

		pool.Add(model.NewOutpoint(*txID, entry.Vout), &model.Output{Value: entry.Value, Owner: owner})
	}

	return nil
}

func (e *epochFile) transactions() ([]validator.Tx, error) {
	txs := make([]validator.Tx, 0, len(e.Transactions))

	for i, entry := range e.Transactions {
		tx, err := entry.toTransaction()
		if err != nil {
			return nil, errors.NewInvalidArgumentError("transaction %d", i, err)
		}

		txs = append(txs, tx)
	}

	return txs, nil
}

func (t txEntry) toTransaction() (*model.Transaction, error) {
	inputs := make([]*model.Input, 0, len(t.Inputs))

	for i, in := range t.Inputs {
		txID, err := chainhash.NewHashFromStr(in.TxID)
		if err != nil {
			return nil, errors.NewInvalidArgumentError("input %d: invalid txid %q", i, in.TxID, err)
		}

		var signature []byte

		if in.Signature != "" {
			if signature, err = hex.DecodeString(in.Signature); err != nil {
				return nil, errors.NewInvalidArgumentError("input %d: invalid signature", i, err)
			}
		}

		inputs = append(inputs, &model.Input{PrevTxID: *txID, PrevIndex: in.Vout, Signature: signature})
	}

	outputs := make([]*model.Output, 0, len(t.Outputs))

	for i, out := range t.Outputs {
		owner, err := hex.DecodeString(out.Owner)
		if err != nil {
			return nil, errors.NewInvalidArgumentError("output %d: invalid owner", i, err)
		}

		outputs = append(outputs, &model.Output{Value: out.Value, Owner: owner})
	}

	return model.NewTransaction(inputs, outputs), nil
}

func newTxEntry(tx validator.Tx) txEntry {
	entry := txEntry{
		Inputs:  make([]inputEntry, 0, len(tx.Inputs())),
		Outputs: make([]outputEntry, 0, len(tx.Outputs())),
	}

	for _, in := range tx.Inputs() {
		entry.Inputs = append(entry.Inputs, inputEntry{
			TxID:      in.PrevTxID.String(),
			Vout:      in.PrevIndex,
			Signature: hex.EncodeToString(in.Signature),
		})
	}

	for _, out := range tx.Outputs() {
		entry.Outputs = append(entry.Outputs, outputEntry{Value: out.Value, Owner: hex.EncodeToString(out.Owner)})
	}

	return entry
}

func poolEntries(pool utxo.Pool) []poolEntry {
	entries := make([]poolEntry, 0, pool.Len())

	for _, op := range pool.Outpoints() {
		out, _ := pool.Get(op)

		entries = append(entries, poolEntry{
			TxID:  op.TxID.String(),
			Vout:  op.Index,
			Value: out.Value,
			Owner: hex.EncodeToString(out.Owner),
		})
	}

	return entries
}
