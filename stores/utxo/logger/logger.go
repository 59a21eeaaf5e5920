// Package logger wraps a utxo pool and logs every mutation.
package logger

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bsv-blockchain/txhandler/model"
	"github.com/bsv-blockchain/txhandler/stores/utxo"
	"github.com/bsv-blockchain/txhandler/ulogger"
)

type Pool struct {
	logger ulogger.Logger
	pool   utxo.Pool
}

func New(logger ulogger.Logger, pool utxo.Pool) *Pool {
	return &Pool{
		logger: logger,
		pool:   pool,
	}
}

func caller() string {
	var callers []string

	depth := 3

	for i := 0; i < depth; i++ {
		pc, file, line, ok := runtime.Caller(2 + i)
		if !ok {
			break
		}

		// keep the last two path elements, the full path is too long to be readable
		folders := strings.Split(file, string(filepath.Separator))
		if len(folders) > 2 {
			folders = folders[len(folders)-2:]
		}

		file = filepath.Join(folders...)

		funcName := runtime.FuncForPC(pc).Name()
		funcPaths := strings.Split(funcName, "/")
		funcName = funcPaths[len(funcPaths)-1]

		callers = append(callers, fmt.Sprintf("called from %s: %s:%d", funcName, file, line))
	}

	return strings.Join(callers, ",")
}

func (p *Pool) Contains(op model.Outpoint) bool {
	return p.pool.Contains(op)
}

func (p *Pool) Get(op model.Outpoint) (*model.Output, bool) {
	return p.pool.Get(op)
}

func (p *Pool) Add(op model.Outpoint, out *model.Output) {
	p.pool.Add(op, out)

	if out == nil {
		p.logger.Debugf("[UtxoPool][logger][Add] outpoint %s, output <nil>, len %d : %s", op, p.pool.Len(), caller())
		return
	}

	p.logger.Debugf("[UtxoPool][logger][Add] outpoint %s, value %d, owner %x, len %d : %s", op, out.Value, out.Owner, p.pool.Len(), caller())
}

func (p *Pool) Remove(op model.Outpoint) {
	existed := p.pool.Contains(op)
	p.pool.Remove(op)

	p.logger.Debugf("[UtxoPool][logger][Remove] outpoint %s, existed %t, len %d : %s", op, existed, p.pool.Len(), caller())
}

func (p *Pool) Len() int {
	return p.pool.Len()
}

func (p *Pool) Outpoints() []model.Outpoint {
	return p.pool.Outpoints()
}

// Clone copies the wrapped pool and keeps logging on the copy.
func (p *Pool) Clone() utxo.Pool {
	c := p.pool.Clone()
	p.logger.Debugf("[UtxoPool][logger][Clone] len %d : %s", c.Len(), caller())

	return New(p.logger, c)
}

// Unwrap returns the decorated pool.
func (p *Pool) Unwrap() utxo.Pool {
	return p.pool
}
