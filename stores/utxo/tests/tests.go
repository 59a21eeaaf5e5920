// Package tests holds the conformance suite every utxo.Pool implementation must pass.
package tests

import (
	"testing"

	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	"github.com/bsv-blockchain/txhandler/model"
	"github.com/bsv-blockchain/txhandler/stores/utxo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	Hash, _  = chainhash.NewHashFromStr("5e3bc5947f48cec766090aa17f309fd16259de029dcef5d306b514848c9687c7")
	Hash2, _ = chainhash.NewHashFromStr("663bc5947f48cec766090aa17f309fd16259de029dcef5d306b514848c9687c8")

	Outpoint0 = model.NewOutpoint(*Hash, 0)
	Outpoint1 = model.NewOutpoint(*Hash, 1)
	Outpoint2 = model.NewOutpoint(*Hash2, 0)

	Output0 = &model.Output{Value: 100, Owner: []byte{0x02, 0x01}}
	Output1 = &model.Output{Value: 50, Owner: []byte{0x02, 0x02}}
	Output2 = &model.Output{Value: 0, Owner: []byte{0x03, 0x03}}
)

// Seed adds the three well known outputs to pool.
func Seed(pool utxo.Pool) {
	pool.Add(Outpoint2, Output2.Clone())
	pool.Add(Outpoint1, Output1.Clone())
	pool.Add(Outpoint0, Output0.Clone())
}

// RunAll runs every conformance test against fresh pools built by newPool.
func RunAll(t *testing.T, newPool func() utxo.Pool) {
	t.Run("add and get", func(t *testing.T) {
		AddGet(t, newPool())
	})

	t.Run("remove", func(t *testing.T) {
		Remove(t, newPool())
	})

	t.Run("overwrite", func(t *testing.T) {
		Overwrite(t, newPool())
	})

	t.Run("outpoints", func(t *testing.T) {
		Outpoints(t, newPool())
	})

	t.Run("clone", func(t *testing.T) {
		Clone(t, newPool())
	})
}

func AddGet(t *testing.T, pool utxo.Pool) {
	require.Equal(t, 0, pool.Len())
	require.False(t, pool.Contains(Outpoint0))

	out, ok := pool.Get(Outpoint0)
	require.False(t, ok)
	require.Nil(t, out)

	Seed(pool)
	require.Equal(t, 3, pool.Len())

	for op, expected := range map[model.Outpoint]*model.Output{Outpoint0: Output0, Outpoint1: Output1, Outpoint2: Output2} {
		require.True(t, pool.Contains(op))

		out, ok = pool.Get(op)
		require.True(t, ok)
		assert.True(t, expected.Equal(out), op.String())
	}

	// same txid, unknown index
	assert.False(t, pool.Contains(model.NewOutpoint(*Hash, 9)))
}

func Remove(t *testing.T, pool utxo.Pool) {
	Seed(pool)

	pool.Remove(Outpoint1)
	require.False(t, pool.Contains(Outpoint1))
	require.Equal(t, 2, pool.Len())

	// absent keys are ignored
	pool.Remove(Outpoint1)
	pool.Remove(model.NewOutpoint(*Hash2, 7))
	require.Equal(t, 2, pool.Len())
	require.True(t, pool.Contains(Outpoint0))
	require.True(t, pool.Contains(Outpoint2))
}

func Overwrite(t *testing.T, pool utxo.Pool) {
	pool.Add(Outpoint0, Output0.Clone())
	pool.Add(Outpoint0, Output1.Clone())

	require.Equal(t, 1, pool.Len())

	out, ok := pool.Get(Outpoint0)
	require.True(t, ok)
	assert.True(t, Output1.Equal(out))
}

func Outpoints(t *testing.T, pool utxo.Pool) {
	require.Empty(t, pool.Outpoints())

	Seed(pool)

	ops := pool.Outpoints()
	require.Len(t, ops, 3)

	for i := 1; i < len(ops); i++ {
		assert.True(t, ops[i-1].Less(ops[i]), "outpoints not sorted: %v", ops)
	}

	// snapshot is detached from the pool
	pool.Remove(ops[0])
	assert.Len(t, ops, 3)
}

func Clone(t *testing.T, pool utxo.Pool) {
	Seed(pool)

	c := pool.Clone()
	require.True(t, utxo.Equal(pool, c))

	c.Remove(Outpoint0)
	c.Add(model.NewOutpoint(*Hash2, 5), &model.Output{Value: 1})
	assert.True(t, pool.Contains(Outpoint0))
	assert.False(t, pool.Contains(model.NewOutpoint(*Hash2, 5)))

	// outputs are deep copied
	out, _ := c.Get(Outpoint1)
	out.Value = 999
	out.Owner[0] = 0xff

	orig, _ := pool.Get(Outpoint1)
	assert.Equal(t, int64(50), orig.Value)
	assert.Equal(t, byte(0x02), orig.Owner[0])
	assert.False(t, utxo.Equal(pool, c))
}
