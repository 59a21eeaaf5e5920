package validator

import (
	"math"
	"testing"

	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	"github.com/bsv-blockchain/txhandler/model"
	"github.com/bsv-blockchain/txhandler/stores/utxo/memory"
	"github.com/bsv-blockchain/txhandler/test/utils/transactions"
	"github.com/stretchr/testify/assert"
)

func TestCalculateFee(t *testing.T) {
	pool, parent := seededPool(t)
	missing := model.NewOutpoint(chainhash.HashH([]byte("missing")), 0)

	tests := []struct {
		name     string
		tx       *model.Transaction
		expected int64
	}{
		{"all resolved", transactions.Create(t,
			transactions.WithInput(parent, 0),
			transactions.WithInput(parent, 1),
			transactions.WithOutput(140),
		), 10},
		{"unresolved input contributes nothing", transactions.Create(t,
			transactions.WithInput(parent, 0),
			transactions.WithOutpoint(missing),
			transactions.WithOutput(60),
		), 40},
		{"nothing resolved", transactions.Create(t,
			transactions.WithOutpoint(missing),
			transactions.WithOutput(60),
		), -60},
		{"negative output raises the fee", transactions.Create(t,
			transactions.WithInput(parent, 1),
			transactions.WithOutput(-10),
		), 60},
		{"no inputs or outputs", transactions.Create(t), 0},
		{"output sum saturates", transactions.Create(t,
			transactions.WithOutput(math.MaxInt64),
			transactions.WithOutput(math.MaxInt64),
		), -math.MaxInt64},
		{"saturates high", transactions.Create(t,
			transactions.WithInput(parent, 0),
			transactions.WithOutput(math.MinInt64),
		), math.MaxInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateFee(tt.tx, pool))
		})
	}

	t.Run("nil", func(t *testing.T) {
		assert.Equal(t, int64(0), CalculateFee(nil, pool))

		tx := transactions.Create(t, transactions.WithInput(parent, 0), transactions.WithOutput(5))
		assert.Equal(t, int64(-5), CalculateFee(tx, nil))
	})

	t.Run("pool is read at call time", func(t *testing.T) {
		p := memory.New(0)
		tx := transactions.Create(t, transactions.WithInput(parent, 0), transactions.WithOutput(5))

		assert.Equal(t, int64(-5), CalculateFee(tx, p))

		transactions.Seed(t, p, parent)
		assert.Equal(t, int64(95), CalculateFee(tx, p))
	})
}
