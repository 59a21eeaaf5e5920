package txhandler

import (
	"github.com/bsv-blockchain/txhandler/services/validator"
	"github.com/ordishs/gocore"
	"golang.org/x/exp/slices"
)

type feeCandidate struct {
	tx  validator.Tx
	fee int64
}

// HandleMaxFeeTxs accepts candidates in descending fee order, aiming for a high total fee.
//
// Fees are computed once, against the pool as it stands when the call starts. Candidates with
// equal fees keep their relative order from possibleTxs. The walk itself is the same as
// HandleTxs, so every candidate is still validated against the pool as changed by the ones
// accepted before it.
//
// This is a greedy heuristic, not an exact solver: one high-fee transaction can shut out
// several conflicting ones whose combined fee is larger.
func (h *Handler) HandleMaxFeeTxs(possibleTxs []validator.Tx) *Result {
	start := gocore.CurrentTime()
	defer func() {
		h.stats.NewStat("HandleMaxFeeTxs").AddTime(start)
	}()

	if len(possibleTxs) == 0 {
		return h.handle("HandleMaxFeeTxs", PolicyMaxFee, nil)
	}

	candidates := make([]feeCandidate, len(possibleTxs))
	for i, tx := range possibleTxs {
		candidates[i] = feeCandidate{tx: tx, fee: validator.CalculateFee(tx, h.pool)}
	}

	slices.SortStableFunc(candidates, func(a, b feeCandidate) int {
		switch {
		case a.fee > b.fee:
			return -1
		case a.fee < b.fee:
			return 1
		default:
			return 0
		}
	})

	ordered := make([]validator.Tx, len(candidates))
	for i, c := range candidates {
		ordered[i] = c.tx

		h.logger.Debugf("[HandleMaxFeeTxs] candidate %d: %s fee %d", i, txIDString(c.tx), c.fee)
	}

	return h.handle("HandleMaxFeeTxs", PolicyMaxFee, ordered)
}
