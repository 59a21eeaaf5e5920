// Package factory creates utxo pools from settings.
//
// The pool implementation is picked with the utxopool_type setting:
//   - "map" (default): native Go map
//   - "swiss": swiss table, smaller memory footprint for large pools
//
// Setting utxopool_logging=true wraps the pool so every mutation is logged at debug level.
package factory

import (
	"strings"

	"github.com/bsv-blockchain/txhandler/errors"
	"github.com/bsv-blockchain/txhandler/settings"
	"github.com/bsv-blockchain/txhandler/stores/utxo"
	"github.com/bsv-blockchain/txhandler/stores/utxo/logger"
	"github.com/bsv-blockchain/txhandler/stores/utxo/memory"
	"github.com/bsv-blockchain/txhandler/ulogger"
)

type poolFactory func(initialCapacity int) utxo.Pool

var availablePools = map[string]poolFactory{
	"map": func(initialCapacity int) utxo.Pool {
		return memory.New(initialCapacity)
	},
	"swiss": func(initialCapacity int) utxo.Pool {
		return memory.NewSwissMap(initialCapacity)
	},
}

func NewPool(l ulogger.Logger, tSettings *settings.Settings) (utxo.Pool, error) {
	poolType := strings.ToLower(tSettings.UtxoPool.Type)
	if poolType == "" {
		poolType = "map"
	}

	newPool, ok := availablePools[poolType]
	if !ok {
		return nil, errors.NewConfigurationError("unknown utxo pool type: %s", tSettings.UtxoPool.Type)
	}

	pool := newPool(tSettings.UtxoPool.InitialCapacity)

	if tSettings.UtxoPool.Logging {
		pool = logger.New(l.New("utxo"), pool)
	}

	l.Infof("[UtxoPool] created %s pool, initial capacity %d, logging %t", poolType, tSettings.UtxoPool.InitialCapacity, tSettings.UtxoPool.Logging)

	return pool, nil
}
