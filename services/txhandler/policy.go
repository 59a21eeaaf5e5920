package txhandler

import (
	"strings"

	"github.com/bsv-blockchain/txhandler/errors"
)

// Policy selects how a batch is turned into an accepted set.
type Policy int

const (
	// PolicyFirstValid accepts candidates in the order they were given.
	PolicyFirstValid Policy = iota

	// PolicyMaxFee accepts candidates in descending fee order.
	PolicyMaxFee
)

func (p Policy) String() string {
	switch p {
	case PolicyFirstValid:
		return "firstvalid"
	case PolicyMaxFee:
		return "maxfee"
	default:
		return "unknown"
	}
}

func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "firstvalid":
		return PolicyFirstValid, nil
	case "maxfee":
		return PolicyMaxFee, nil
	default:
		return PolicyFirstValid, errors.NewConfigurationError("unknown txhandler policy %q, expected firstvalid or maxfee", s)
	}
}
