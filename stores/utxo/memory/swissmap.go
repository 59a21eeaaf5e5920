package memory

import (
	safeconversion "github.com/bsv-blockchain/go-safe-conversion"
	"github.com/bsv-blockchain/txhandler/model"
	"github.com/bsv-blockchain/txhandler/stores/utxo"
	"github.com/dolthub/swiss"
)

// SwissMap is a pool backed by a swiss table, which uses a lot less memory than the standard
// map for large pools.
type SwissMap struct {
	m *swiss.Map[model.Outpoint, *model.Output]
}

func NewSwissMap(initialCapacity int) *SwissMap {
	capacity, err := safeconversion.IntToUint32(initialCapacity)
	if err != nil {
		capacity = 0
	}

	return &SwissMap{
		m: swiss.NewMap[model.Outpoint, *model.Output](capacity),
	}
}

func (m *SwissMap) Contains(op model.Outpoint) bool {
	return m.m.Has(op)
}

func (m *SwissMap) Get(op model.Outpoint) (*model.Output, bool) {
	return m.m.Get(op)
}

func (m *SwissMap) Add(op model.Outpoint, out *model.Output) {
	m.m.Put(op, out)
}

func (m *SwissMap) Remove(op model.Outpoint) {
	m.m.Delete(op)
}

func (m *SwissMap) Len() int {
	return m.m.Count()
}

func (m *SwissMap) Outpoints() []model.Outpoint {
	ops := make([]model.Outpoint, 0, m.m.Count())

	m.m.Iter(func(op model.Outpoint, _ *model.Output) bool {
		ops = append(ops, op)
		return false
	})

	return utxo.SortOutpoints(ops)
}

func (m *SwissMap) Clone() utxo.Pool {
	c := NewSwissMap(m.m.Count())

	m.m.Iter(func(op model.Outpoint, out *model.Output) bool {
		c.m.Put(op, out.Clone())
		return false
	})

	return c
}
