package validator

import (
	"math"

	"github.com/bsv-blockchain/txhandler/stores/utxo"
	"github.com/bsv-blockchain/txhandler/util"
)

// CalculateFee returns the sum of the input values that resolve in pool minus the sum of the
// output values. Inputs that do not resolve contribute nothing, so the fee of an invalid
// transaction can be negative. The result saturates instead of overflowing.
func CalculateFee(tx Tx, pool utxo.Pool) int64 {
	if util.IsNil(tx) {
		return 0
	}

	var inputSum, outputSum int64

	if !util.IsNil(pool) {
		for _, input := range tx.Inputs() {
			if input == nil {
				continue
			}

			if output, found := pool.Get(input.Outpoint()); found && output != nil {
				inputSum = saturatingAdd(inputSum, output.Value)
			}
		}
	}

	for _, output := range tx.Outputs() {
		if output != nil {
			outputSum = saturatingAdd(outputSum, output.Value)
		}
	}

	if outputSum == math.MinInt64 {
		return saturatingAdd(saturatingAdd(inputSum, math.MaxInt64), 1)
	}

	return saturatingAdd(inputSum, -outputSum)
}

func saturatingAdd(a, b int64) int64 {
	sum, ok := addValues(a, b)
	if ok {
		return sum
	}

	if b > 0 {
		return math.MaxInt64
	}

	return math.MinInt64
}
