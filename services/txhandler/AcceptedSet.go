package txhandler

import (
	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	"github.com/bsv-blockchain/txhandler/services/validator"
)

// AcceptedSet holds the transactions accepted in one call, keyed by content hash, in the
// order they were committed to the pool.
type AcceptedSet struct {
	index map[chainhash.Hash]int
	txs   []validator.Tx
}

func NewAcceptedSet() *AcceptedSet {
	return &AcceptedSet{
		index: make(map[chainhash.Hash]int),
	}
}

// Add records tx and reports whether it was not already present.
func (s *AcceptedSet) Add(tx validator.Tx) bool {
	hash := tx.Hash()

	if _, ok := s.index[hash]; ok {
		return false
	}

	s.index[hash] = len(s.txs)
	s.txs = append(s.txs, tx)

	return true
}

func (s *AcceptedSet) Contains(hash chainhash.Hash) bool {
	_, ok := s.index[hash]
	return ok
}

func (s *AcceptedSet) Len() int {
	return len(s.txs)
}

// Transactions returns the accepted transactions in commit order.
func (s *AcceptedSet) Transactions() []validator.Tx {
	txs := make([]validator.Tx, len(s.txs))
	copy(txs, s.txs)

	return txs
}

// Hashes returns the accepted transaction hashes in commit order.
func (s *AcceptedSet) Hashes() []chainhash.Hash {
	hashes := make([]chainhash.Hash, len(s.txs))
	for i, tx := range s.txs {
		hashes[i] = tx.Hash()
	}

	return hashes
}
