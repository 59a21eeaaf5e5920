package validator

type TxValidatorOptions struct {
	verifier       SignatureVerifier
	metricsEnabled bool
}

// TxValidatorOption is a function that sets some option on the TxValidatorOptions struct
type TxValidatorOption func(*TxValidatorOptions)

// WithSignatureVerifier replaces the default ECDSA verifier.
func WithSignatureVerifier(verifier SignatureVerifier) TxValidatorOption {
	return func(o *TxValidatorOptions) {
		o.verifier = verifier
	}
}

// WithMetrics overrides the validator_metrics setting.
func WithMetrics(enabled bool) TxValidatorOption {
	return func(o *TxValidatorOptions) {
		o.metricsEnabled = enabled
	}
}
