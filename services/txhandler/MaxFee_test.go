package txhandler

import (
	"testing"

	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	"github.com/bsv-blockchain/txhandler/errors"
	"github.com/bsv-blockchain/txhandler/model"
	"github.com/bsv-blockchain/txhandler/stores/utxo/memory"
	"github.com/bsv-blockchain/txhandler/test/utils/transactions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Of two conflicting transactions the one paying more wins, whatever the batch order.
func TestHandleMaxFeeTxs_HigherFeeWins(t *testing.T) {
	parent := transactions.Create(t, transactions.WithOutput(100))

	pool := memory.New(0)
	transactions.Seed(t, pool, parent)

	fee10 := transactions.Create(t, transactions.WithInput(parent, 0), transactions.WithOutput(90))
	fee5 := transactions.Create(t, transactions.WithInput(parent, 0), transactions.WithOutput(95))

	for name, batch := range map[string][]*model.Transaction{
		"low fee first":  {fee5, fee10},
		"high fee first": {fee10, fee5},
	} {
		t.Run(name, func(t *testing.T) {
			h := newTestHandler(t, pool)
			result := h.HandleMaxFeeTxs(txs(batch...))

			assert.Equal(t, []chainhash.Hash{fee10.Hash()}, result.Accepted.Hashes())

			require.Len(t, result.Rejected, 1)
			assert.Same(t, fee5, result.Rejected[0].Tx)
			assert.True(t, errors.Is(result.Rejected[0].Err, errors.ErrTxUnknownInput))
		})
	}
}

func TestHandleMaxFeeTxs_Scenario(t *testing.T) {
	aPriv, a := transactions.Key("A")
	_, b := transactions.Key("B")
	_, c := transactions.Key("C")

	u1 := model.NewOutpoint(chainhash.HashH([]byte("U1")), 0)

	pool := memory.New(0)
	pool.Add(u1, &model.Output{Value: 100, Owner: a.Compressed()})

	t1 := transactions.Create(t, transactions.WithOutpoint(u1, aPriv), transactions.WithOutput(60, b))
	t2 := transactions.Create(t, transactions.WithOutpoint(u1, aPriv), transactions.WithOutput(90, c))

	h := newTestHandler(t, pool)
	result := h.HandleMaxFeeTxs(txs(t1, t2))

	assert.Equal(t, []chainhash.Hash{t1.Hash()}, result.Accepted.Hashes())

	expected := memory.New(0)
	expected.Add(model.NewOutpoint(t1.Hash(), 0), &model.Output{Value: 60, Owner: b.Compressed()})

	assert.Equal(t, expected.Outpoints(), result.Pool.Outpoints())

	out, ok := result.Pool.Get(model.NewOutpoint(t1.Hash(), 0))
	require.True(t, ok)
	assert.Equal(t, int64(60), out.Value)
	assert.Equal(t, b.Compressed(), out.Owner)

	// the caller's pool still holds U1
	assert.True(t, pool.Contains(u1))
}

func TestHandleMaxFeeTxs_TiesKeepBatchOrder(t *testing.T) {
	parent := transactions.Create(t, transactions.WithOutput(100))

	pool := memory.New(0)
	transactions.Seed(t, pool, parent)

	_, alice := transactions.Key("alice")
	_, bob := transactions.Key("bob")

	// same fee, different content
	toAlice := transactions.Create(t, transactions.WithInput(parent, 0), transactions.WithOutput(90, alice))
	toBob := transactions.Create(t, transactions.WithInput(parent, 0), transactions.WithOutput(90, bob))

	h := newTestHandler(t, pool)
	result := h.HandleMaxFeeTxs(txs(toBob, toAlice))
	assert.Equal(t, []chainhash.Hash{toBob.Hash()}, result.Accepted.Hashes())

	h = newTestHandler(t, pool)
	result = h.HandleMaxFeeTxs(txs(toAlice, toBob))
	assert.Equal(t, []chainhash.Hash{toAlice.Hash()}, result.Accepted.Hashes())
}

func TestHandleMaxFeeTxs_FeesFromStartingPool(t *testing.T) {
	parent := transactions.Create(t, transactions.WithOutput(100))

	pool := memory.New(0)
	transactions.Seed(t, pool, parent)

	// the child's input does not exist yet, so its fee counts only its outputs and sorts last
	t1 := transactions.Create(t, transactions.WithInput(parent, 0), transactions.WithOutput(90))
	child := transactions.Create(t, transactions.WithInput(t1, 0), transactions.WithOutput(10))

	h := newTestHandler(t, pool)
	result := h.HandleMaxFeeTxs(txs(child, t1))

	// it is still validated against the pool as t1 left it
	assert.Equal(t, []chainhash.Hash{t1.Hash(), child.Hash()}, result.Accepted.Hashes())
	assertAppliedExactly(t, pool, result.Pool, result.Accepted.Transactions())
}

// The greedy walk is not an optimal solver: one wide transaction can shut out two narrower
// ones that pay more together.
func TestHandleMaxFeeTxs_Greedy(t *testing.T) {
	parent := transactions.Create(t, transactions.WithOutput(100), transactions.WithOutput(100))

	pool := memory.New(0)
	transactions.Seed(t, pool, parent)

	wide := transactions.Create(t, transactions.WithInput(parent, 0), transactions.WithInput(parent, 1), transactions.WithOutput(190))
	left := transactions.Create(t, transactions.WithInput(parent, 0), transactions.WithOutput(94))
	right := transactions.Create(t, transactions.WithInput(parent, 1), transactions.WithOutput(94))

	h := newTestHandler(t, pool)
	result := h.HandleMaxFeeTxs(txs(left, right, wide))

	assert.Equal(t, []chainhash.Hash{wide.Hash()}, result.Accepted.Hashes())
	assert.Len(t, result.Rejected, 2)
}

func TestHandleMaxFeeTxs_Duplicates(t *testing.T) {
	parent := transactions.Create(t, transactions.WithOutput(100))

	pool := memory.New(0)
	transactions.Seed(t, pool, parent)

	tx := transactions.Create(t, transactions.WithInput(parent, 0), transactions.WithOutput(50))
	twin := model.NewTransaction(tx.Inputs(), tx.Outputs())

	h := newTestHandler(t, pool)
	result := h.HandleMaxFeeTxs(txs(tx, twin))

	require.Equal(t, 1, result.Accepted.Len())
	require.Len(t, result.Rejected, 1)
	assert.Same(t, twin, result.Rejected[0].Tx)
	assert.True(t, errors.Is(result.Rejected[0].Err, errors.ErrTxAlreadyExists))
}
