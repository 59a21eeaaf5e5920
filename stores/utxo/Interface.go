// Package utxo defines the pool of unspent outputs that transactions are validated against.
//
// A pool maps outpoints to the outputs they reference. Every key is an output that was
// produced and has not yet been consumed by an accepted transaction. Pools are owned by a
// single handling session at a time and perform no locking.
package utxo

import (
	"github.com/bsv-blockchain/txhandler/model"
)

// Pool is the set of unspent outputs.
type Pool interface {
	// Contains reports whether op is unspent.
	Contains(op model.Outpoint) bool

	// Get returns the output referenced by op.
	Get(op model.Outpoint) (*model.Output, bool)

	// Add inserts out at op, overwriting any existing entry.
	Add(op model.Outpoint, out *model.Output)

	// Remove deletes op. Removing an absent outpoint is a no-op.
	Remove(op model.Outpoint)

	Len() int

	// Outpoints returns a snapshot of all keys ordered by model.Outpoint.Compare.
	Outpoints() []model.Outpoint

	// Clone returns an independent deep copy of the pool.
	Clone() Pool
}
