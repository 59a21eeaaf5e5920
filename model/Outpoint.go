package model

import (
	"bytes"
	"fmt"

	"github.com/bsv-blockchain/go-bt/v2/chainhash"
)

// Outpoint identifies a single output of a transaction. It is a value type and is used directly
// as a map key by the utxo pools.
type Outpoint struct {
	TxID  chainhash.Hash
	Index uint32
}

func NewOutpoint(txID chainhash.Hash, index uint32) Outpoint {
	return Outpoint{TxID: txID, Index: index}
}

// Compare orders outpoints by transaction id bytes and then by index.
func (o Outpoint) Compare(other Outpoint) int {
	if c := bytes.Compare(o.TxID[:], other.TxID[:]); c != 0 {
		return c
	}

	switch {
	case o.Index < other.Index:
		return -1
	case o.Index > other.Index:
		return 1
	default:
		return 0
	}
}

func (o Outpoint) Less(other Outpoint) bool {
	return o.Compare(other) < 0
}

func (o Outpoint) String() string {
	return fmt.Sprintf("%s:%d", o.TxID.String(), o.Index)
}
