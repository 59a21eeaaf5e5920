package utxo

import (
	"github.com/bsv-blockchain/txhandler/model"
	"github.com/bsv-blockchain/txhandler/util"
	"golang.org/x/exp/slices"
)

// Equal reports whether both pools hold the same outpoints with equal outputs. Two nil pools are
// equal, including typed nils.
func Equal(a, b Pool) bool {
	if nilA, nilB := util.IsNil(a), util.IsNil(b); nilA || nilB {
		return nilA && nilB
	}

	if a.Len() != b.Len() {
		return false
	}

	for _, op := range a.Outpoints() {
		outA, _ := a.Get(op)

		outB, ok := b.Get(op)
		if !ok || !outA.Equal(outB) {
			return false
		}
	}

	return true
}

// SortOutpoints sorts ops in place by model.Outpoint.Compare and returns it.
func SortOutpoints(ops []model.Outpoint) []model.Outpoint {
	slices.SortFunc(ops, func(a, b model.Outpoint) int {
		return a.Compare(b)
	})

	return ops
}

// CopyInto deep copies every entry of src into dst.
func CopyInto(dst, src Pool) {
	for _, op := range src.Outpoints() {
		out, _ := src.Get(op)
		dst.Add(op, out.Clone())
	}
}
