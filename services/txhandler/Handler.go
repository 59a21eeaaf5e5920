/*
Package txhandler turns unordered batches of candidate transactions into accepted sets.

A Handler owns a utxo pool. Each call walks the candidates once, validates every candidate
against the pool as it stands at that moment, and commits the valid ones: their inputs are
removed from the pool and their outputs are added under the transaction's hash. Because each
candidate sees the effects of those committed before it, the outcome depends on the order
of the walk. HandleTxs keeps the order of the batch, HandleMaxFeeTxs visits the most
profitable candidates first. Rejected candidates are not retried within the call.
*/
package txhandler

import (
	"time"

	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	safeconversion "github.com/bsv-blockchain/go-safe-conversion"
	"github.com/bsv-blockchain/txhandler/errors"
	"github.com/bsv-blockchain/txhandler/model"
	"github.com/bsv-blockchain/txhandler/services/validator"
	"github.com/bsv-blockchain/txhandler/settings"
	"github.com/bsv-blockchain/txhandler/stores/utxo"
	"github.com/bsv-blockchain/txhandler/stores/utxo/factory"
	"github.com/bsv-blockchain/txhandler/ulogger"
	"github.com/bsv-blockchain/txhandler/util"
	"github.com/ordishs/gocore"
)

// Rejection is a candidate that was not accepted, with the reason.
type Rejection struct {
	Tx  validator.Tx
	Err error
}

// Result of handling one batch.
type Result struct {
	Accepted *AcceptedSet

	// Rejected lists the rejected candidates in the order they were processed.
	Rejected []Rejection

	// Pool is the handler's pool after the batch. It is the seed for the next batch and keeps
	// changing if the handler is used again; Clone it to keep a snapshot.
	Pool utxo.Pool
}

type Handler struct {
	logger         ulogger.Logger
	settings       *settings.Settings
	validator      validator.TxValidatorI
	pool           utxo.Pool
	policy         Policy
	metricsEnabled bool
	stats          *gocore.Stat
}

// New creates a handler working on a deep copy of pool, so the caller's pool is never
// modified. A nil pool starts the handler with an empty pool built from settings.
func New(logger ulogger.Logger, tSettings *settings.Settings, pool utxo.Pool, opts ...Option) (*Handler, error) {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	policy, err := ParsePolicy(tSettings.TxHandler.Policy)
	if err != nil {
		return nil, err
	}

	if util.IsNil(pool) {
		if pool, err = factory.NewPool(logger, tSettings); err != nil {
			return nil, errors.NewConfigurationError("[txhandler] failed to create utxo pool", err)
		}
	} else {
		pool = pool.Clone()
	}

	h := &Handler{
		logger:         logger,
		settings:       tSettings,
		validator:      options.validator,
		pool:           pool,
		policy:         policy,
		metricsEnabled: tSettings.TxHandler.MetricsEnabled,
		stats:          gocore.NewStat("txhandler"),
	}

	if options.metricsEnabled != nil {
		h.metricsEnabled = *options.metricsEnabled
	}

	if util.IsNil(h.validator) {
		h.validator = validator.NewTxValidator(logger, tSettings)
	}

	if h.metricsEnabled {
		initPrometheusMetrics()
	}

	return h, nil
}

// Pool returns the handler's current pool.
func (h *Handler) Pool() utxo.Pool {
	return h.pool
}

// Policy returns the policy configured with the txhandler_policy setting.
func (h *Handler) Policy() Policy {
	return h.policy
}

// IsValid checks tx against the handler's current pool without changing it.
func (h *Handler) IsValid(tx validator.Tx) bool {
	return h.validator.IsValid(tx, h.pool)
}

// Process handles possibleTxs with the configured policy.
func (h *Handler) Process(possibleTxs []validator.Tx) *Result {
	result, _ := h.Handle(h.policy, possibleTxs)
	return result
}

// Handle handles possibleTxs with the given policy.
func (h *Handler) Handle(policy Policy, possibleTxs []validator.Tx) (*Result, error) {
	switch policy {
	case PolicyFirstValid:
		return h.HandleTxs(possibleTxs), nil
	case PolicyMaxFee:
		return h.HandleMaxFeeTxs(possibleTxs), nil
	default:
		return nil, errors.NewInvalidArgumentError("unknown txhandler policy %d", int(policy))
	}
}

// HandleTxs walks possibleTxs in the given order and accepts every candidate that is valid
// against the pool at the moment it is visited. A nil or empty batch leaves the pool as it is.
func (h *Handler) HandleTxs(possibleTxs []validator.Tx) *Result {
	start := gocore.CurrentTime()
	defer func() {
		h.stats.NewStat("HandleTxs").AddTime(start)
	}()

	return h.handle("HandleTxs", PolicyFirstValid, possibleTxs)
}

func (h *Handler) handle(tag string, policy Policy, candidates []validator.Tx) *Result {
	timeStart := time.Now()

	result := &Result{
		Accepted: NewAcceptedSet(),
		Pool:     h.pool,
	}

	if len(candidates) == 0 {
		h.logger.Debugf("[%s] empty batch", tag)
		return result
	}

	for _, tx := range candidates {
		if err := h.accept(tx, result.Accepted); err != nil {
			result.Rejected = append(result.Rejected, Rejection{Tx: tx, Err: err})

			if h.settings.TxHandler.LogRejections {
				h.logger.Infof("[%s] rejected %s: %v", tag, txIDString(tx), err)
			}

			continue
		}

		h.logger.Debugf("[%s] accepted %s", tag, txIDString(tx))
	}

	h.logger.Infof("[%s] accepted %d of %d transactions, %d rejected, pool size %d", tag,
		result.Accepted.Len(), len(candidates), len(result.Rejected), h.pool.Len())

	if h.metricsEnabled {
		prometheusHandleBatch.WithLabelValues(policy.String()).Observe(time.Since(timeStart).Seconds())
		prometheusBatchSize.Observe(float64(len(candidates)))
		prometheusAcceptedTransactions.WithLabelValues(policy.String()).Add(float64(result.Accepted.Len()))

		for _, rejection := range result.Rejected {
			prometheusRejectedTransactions.WithLabelValues(errors.RejectionReason(rejection.Err)).Inc()
		}

		prometheusPoolSize.Set(float64(h.pool.Len()))
	}

	return result
}

// accept validates tx against the current pool and commits it.
func (h *Handler) accept(tx validator.Tx, accepted *AcceptedSet) error {
	if err := validator.CheckStructure(tx); err != nil {
		return err
	}

	hash := tx.Hash()

	if accepted.Contains(hash) {
		return errors.NewTxAlreadyExistsError("transaction %s already accepted in this batch", hash)
	}

	if err := h.validator.ValidateTransaction(tx, h.pool); err != nil {
		return err
	}

	return h.commit(tx, hash, accepted)
}

// commit consumes the inputs of tx and adds its outputs to the pool.
func (h *Handler) commit(tx validator.Tx, hash chainhash.Hash, accepted *AcceptedSet) error {
	outputs := tx.Outputs()
	created := make([]model.Outpoint, len(outputs))

	// resolve every new outpoint before touching the pool, so a failure leaves it untouched
	for i := range outputs {
		index, err := safeconversion.IntToUint32(i)
		if err != nil {
			return errors.NewProcessingError("transaction %s output %d index out of range", hash, i, err)
		}

		created[i] = model.NewOutpoint(hash, index)
	}

	for _, input := range tx.Inputs() {
		h.pool.Remove(input.Outpoint())
	}

	for i, output := range outputs {
		h.pool.Add(created[i], output.Clone())
	}

	accepted.Add(tx)

	return nil
}

func txIDString(tx validator.Tx) string {
	if validator.CheckStructure(tx) != nil {
		return "<malformed>"
	}

	return tx.Hash().String()
}
