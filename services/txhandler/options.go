package txhandler

import (
	"github.com/bsv-blockchain/txhandler/services/validator"
)

type Options struct {
	validator      validator.TxValidatorI
	metricsEnabled *bool
}

// Option is a function that sets some option on the Options struct
type Option func(*Options)

// WithValidator replaces the validator built from settings.
func WithValidator(v validator.TxValidatorI) Option {
	return func(o *Options) {
		o.validator = v
	}
}

// WithMetrics overrides the txhandler_metrics setting.
func WithMetrics(enabled bool) Option {
	return func(o *Options) {
		o.metricsEnabled = &enabled
	}
}
