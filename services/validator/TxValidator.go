package validator

import (
	"math"
	"time"

	"github.com/bsv-blockchain/txhandler/errors"
	"github.com/bsv-blockchain/txhandler/model"
	"github.com/bsv-blockchain/txhandler/settings"
	"github.com/bsv-blockchain/txhandler/stores/utxo"
	"github.com/bsv-blockchain/txhandler/ulogger"
	"github.com/bsv-blockchain/txhandler/util"
)

// TxValidator implements transaction validation logic
type TxValidator struct {
	logger   ulogger.Logger
	settings *settings.Settings
	options  *TxValidatorOptions
}

// NewTxValidator creates a validator. Signatures are checked with ECDSAVerifier unless
// WithSignatureVerifier is given.
func NewTxValidator(logger ulogger.Logger, tSettings *settings.Settings, opts ...TxValidatorOption) *TxValidator {
	options := &TxValidatorOptions{
		verifier:       ECDSAVerifier{},
		metricsEnabled: tSettings.Validator.MetricsEnabled,
	}

	for _, opt := range opts {
		opt(options)
	}

	if options.verifier == nil {
		options.verifier = ECDSAVerifier{}
	}

	if options.metricsEnabled {
		initPrometheusMetrics()
	}

	return &TxValidator{
		logger:   logger,
		settings: tSettings,
		options:  options,
	}
}

func (tv *TxValidator) IsValid(tx Tx, pool utxo.Pool) bool {
	return tv.ValidateTransaction(tx, pool) == nil
}

func (tv *TxValidator) ValidateTransaction(tx Tx, pool utxo.Pool) error {
	start := time.Now()

	err := tv.validateTransaction(tx, pool)

	if tv.options.metricsEnabled {
		prometheusTransactionValidate.Observe(time.Since(start).Seconds())

		if err != nil {
			prometheusInvalidTransactions.WithLabelValues(errors.RejectionReason(err)).Inc()
		} else {
			prometheusValidTransactions.Inc()
		}
	}

	if err != nil {
		tv.logger.Debugf("[ValidateTransaction] transaction rejected: %v", err)
	}

	return err
}

// CheckStructure rejects transactions that cannot be hashed or checked rule by rule: a nil
// transaction, or one holding nil inputs or outputs. It must pass before Hash is called on tx.
func CheckStructure(tx Tx) error {
	if util.IsNil(tx) {
		return errors.NewTxInvalidError("transaction is nil")
	}

	for index, input := range tx.Inputs() {
		if input == nil {
			return errors.NewTxInvalidError("transaction input %d is nil", index)
		}
	}

	for index, output := range tx.Outputs() {
		if output == nil {
			return errors.NewTxInvalidError("transaction output %d is nil", index)
		}
	}

	return nil
}

func (tv *TxValidator) validateTransaction(tx Tx, pool utxo.Pool) error {
	if err := CheckStructure(tx); err != nil {
		return err
	}

	if util.IsNil(pool) {
		return errors.NewInvalidArgumentError("utxo pool is nil")
	}

	// 1) to 3) every input claims an unspent output, is signed by its owner, and claims it only once
	inputSum, err := tv.checkInputs(tx, pool)
	if err != nil {
		return err
	}

	// 4) no output value is negative
	outputSum, err := checkOutputs(tx)
	if err != nil {
		return err
	}

	// 5) the claimed value covers the created value
	if inputSum < outputSum {
		return errors.NewTxValueDeficitError("transaction input value is less than output value: %d < %d", inputSum, outputSum)
	}

	return nil
}

func (tv *TxValidator) checkInputs(tx Tx, pool utxo.Pool) (int64, error) {
	var (
		inputSum int64
		ok       bool
	)

	claimed := make(map[model.Outpoint]int, len(tx.Inputs()))

	for index, input := range tx.Inputs() {
		outpoint := input.Outpoint()

		output, found := pool.Get(outpoint)
		if !found || output == nil {
			return 0, rejection(errors.ERR_TX_UNKNOWN_INPUT, index, outpoint,
				"transaction input %d spends unknown or spent output %s", index, outpoint)
		}

		if err := tv.checkSignature(tx, index, input, output); err != nil {
			return 0, err
		}

		if first, seen := claimed[outpoint]; seen {
			return 0, rejection(errors.ERR_TX_INVALID_DOUBLE_SPEND, index, outpoint,
				"transaction input %d claims output %s already claimed by input %d", index, outpoint, first)
		}

		claimed[outpoint] = index

		if inputSum, ok = addValues(inputSum, output.Value); !ok {
			return 0, errors.NewTxValueDeficitError("transaction input values overflow at input %d", index)
		}
	}

	return inputSum, nil
}

func (tv *TxValidator) checkSignature(tx Tx, index int, input *model.Input, output *model.Output) error {
	outpoint := input.Outpoint()

	if len(input.Signature) == 0 {
		return rejection(errors.ERR_TX_BAD_SIGNATURE, index, outpoint, "transaction input %d is not signed", index)
	}

	payload := tx.SignablePayload(index)
	if payload == nil {
		return rejection(errors.ERR_TX_BAD_SIGNATURE, index, outpoint, "transaction input %d has no signable payload", index)
	}

	verified, err := tv.options.verifier.Verify(output.Owner, payload, input.Signature)
	if err != nil {
		return rejection(errors.ERR_TX_BAD_SIGNATURE, index, outpoint, "transaction input %d signature could not be verified", index, err)
	}

	if !verified {
		return rejection(errors.ERR_TX_BAD_SIGNATURE, index, outpoint, "transaction input %d signature does not match owner of %s", index, outpoint)
	}

	return nil
}

func checkOutputs(tx Tx) (int64, error) {
	var (
		outputSum int64
		ok        bool
	)

	for index, output := range tx.Outputs() {
		if output.Value < 0 {
			e := errors.New(errors.ERR_TX_NEGATIVE_OUTPUT, "transaction output %d value %d is negative", index, output.Value)
			e.SetData("output", index)

			return 0, e
		}

		if outputSum, ok = addValues(outputSum, output.Value); !ok {
			return 0, errors.NewTxValueDeficitError("transaction output values overflow at output %d", index)
		}
	}

	return outputSum, nil
}

func rejection(code errors.ERR, index int, outpoint model.Outpoint, message string, params ...interface{}) *errors.Error {
	e := errors.New(code, message, params...)
	e.SetData("input", index)
	e.SetData("outpoint", outpoint.String())

	return e
}

// addValues returns a+b, or false when the sum does not fit in an int64.
func addValues(a, b int64) (int64, bool) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, false
	}

	return a + b, true
}
