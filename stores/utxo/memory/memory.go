// Package memory provides in-memory utxo pools.
package memory

import (
	"github.com/bsv-blockchain/txhandler/model"
	"github.com/bsv-blockchain/txhandler/stores/utxo"
)

// Map is a pool backed by a native Go map.
type Map struct {
	m map[model.Outpoint]*model.Output
}

func New(initialCapacity int) *Map {
	if initialCapacity < 0 {
		initialCapacity = 0
	}

	return &Map{
		m: make(map[model.Outpoint]*model.Output, initialCapacity),
	}
}

func (m *Map) Contains(op model.Outpoint) bool {
	_, ok := m.m[op]
	return ok
}

func (m *Map) Get(op model.Outpoint) (*model.Output, bool) {
	out, ok := m.m[op]
	return out, ok
}

func (m *Map) Add(op model.Outpoint, out *model.Output) {
	m.m[op] = out
}

func (m *Map) Remove(op model.Outpoint) {
	delete(m.m, op)
}

func (m *Map) Len() int {
	return len(m.m)
}

func (m *Map) Outpoints() []model.Outpoint {
	ops := make([]model.Outpoint, 0, len(m.m))
	for op := range m.m {
		ops = append(ops, op)
	}

	return utxo.SortOutpoints(ops)
}

func (m *Map) Clone() utxo.Pool {
	c := New(len(m.m))

	for op, out := range m.m {
		c.m[op] = out.Clone()
	}

	return c
}
