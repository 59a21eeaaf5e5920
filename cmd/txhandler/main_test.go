package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	"github.com/bsv-blockchain/txhandler/errors"
	"github.com/bsv-blockchain/txhandler/model"
	"github.com/bsv-blockchain/txhandler/settings"
	"github.com/bsv-blockchain/txhandler/stores/utxo"
	"github.com/bsv-blockchain/txhandler/stores/utxo/memory"
	"github.com/bsv-blockchain/txhandler/test/utils/transactions"
	"github.com/bsv-blockchain/txhandler/ulogger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEpoch struct {
	path string
	pool utxo.Pool
	t1   *model.Transaction
	t2   *model.Transaction
}

// writeTestEpoch writes the epoch U1 -> 100 owned by A, with T1 paying 60 to B and T2 paying
// 90 to C from the same output.
func writeTestEpoch(t *testing.T) *testEpoch {
	aPriv, a := transactions.Key("A")
	_, b := transactions.Key("B")
	_, c := transactions.Key("C")

	u1 := model.NewOutpoint(chainhash.HashH([]byte("U1")), 0)

	pool := memory.New(0)
	pool.Add(u1, &model.Output{Value: 100, Owner: a.Compressed()})

	t1 := transactions.Create(t, transactions.WithOutpoint(u1, aPriv), transactions.WithOutput(60, b))
	t2 := transactions.Create(t, transactions.WithOutpoint(u1, aPriv), transactions.WithOutput(90, c))

	epoch := epochFile{
		Pool:         poolEntries(pool),
		Transactions: []txEntry{newTxEntry(t1), newTxEntry(t2)},
	}

	b2, err := json.Marshal(epoch)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "epoch.json")
	require.NoError(t, os.WriteFile(path, b2, 0o600))

	return &testEpoch{path: path, pool: pool, t1: t1, t2: t2}
}

func testSettings() *settings.Settings {
	tSettings := settings.NewSettings()
	tSettings.Validator.MetricsEnabled = false
	tSettings.TxHandler.MetricsEnabled = false

	return tSettings
}

func run(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer

	app := newApp(ulogger.TestLogger{}, testSettings(), &out)
	err := app.Run(append([]string{"txhandler"}, args...))

	return out.String(), err
}

func TestEpochRoundTrip(t *testing.T) {
	e := writeTestEpoch(t)

	epoch, err := readEpochFile(e.path)
	require.NoError(t, err)

	pool := memory.New(0)
	require.NoError(t, epoch.fillPool(pool))
	assert.True(t, utxo.Equal(e.pool, pool))

	txs, err := epoch.transactions()
	require.NoError(t, err)
	require.Len(t, txs, 2)

	// hashes cover signatures, so identical hashes mean nothing was lost
	assert.Equal(t, e.t1.Hash(), txs[0].Hash())
	assert.Equal(t, e.t2.Hash(), txs[1].Hash())
}

func TestHandleCommand(t *testing.T) {
	e := writeTestEpoch(t)

	t.Run("maxfee", func(t *testing.T) {
		out, err := run(t, "handle", "--file", e.path, "--policy", "maxfee")
		require.NoError(t, err)

		var report handleReport
		require.NoError(t, json.Unmarshal([]byte(out), &report))

		assert.Equal(t, "maxfee", report.Policy)
		assert.Equal(t, []string{e.t1.Hash().String()}, report.Accepted)

		require.Len(t, report.Rejected, 1)
		assert.Equal(t, e.t2.Hash().String(), report.Rejected[0].TxID)
		assert.Equal(t, "unknown_input", report.Rejected[0].Reason)

		require.Len(t, report.Pool, 1)
		assert.Equal(t, e.t1.Hash().String(), report.Pool[0].TxID)
		assert.Equal(t, int64(60), report.Pool[0].Value)
	})

	t.Run("firstvalid by default", func(t *testing.T) {
		out, err := run(t, "handle", "--file", e.path)
		require.NoError(t, err)

		var report handleReport
		require.NoError(t, json.Unmarshal([]byte(out), &report))

		assert.Equal(t, "firstvalid", report.Policy)
		assert.Equal(t, []string{e.t1.Hash().String()}, report.Accepted)
	})

	t.Run("unknown policy", func(t *testing.T) {
		_, err := run(t, "handle", "--file", e.path, "--policy", "best")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrConfiguration))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := run(t, "handle", "--file", filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
	})
}

func TestValidateCommand(t *testing.T) {
	e := writeTestEpoch(t)

	out, err := run(t, "validate", "--file", e.path)
	require.NoError(t, err)

	var reports []validationReport
	require.NoError(t, json.Unmarshal([]byte(out), &reports))

	// both are valid on their own against the seed pool
	require.Len(t, reports, 2)
	assert.Equal(t, validationReport{TxID: e.t1.Hash().String(), Valid: true, Fee: 40}, reports[0])
	assert.Equal(t, validationReport{TxID: e.t2.Hash().String(), Valid: true, Fee: 10}, reports[1])
}

func TestDecodeEpochErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `{"pool": [`},
		{"bad pool txid", `{"pool": [{"txid": "zz", "vout": 0, "value": 1, "owner": ""}]}`},
		{"bad pool owner", `{"pool": [{"txid": "00", "vout": 0, "value": 1, "owner": "xyz"}]}`},
		{"bad input txid", `{"transactions": [{"inputs": [{"txid": "qq", "vout": 0}], "outputs": []}]}`},
		{"bad signature", `{"transactions": [{"inputs": [{"txid": "00", "vout": 0, "signature": "g"}], "outputs": []}]}`},
		{"bad output owner", `{"transactions": [{"inputs": [], "outputs": [{"value": 1, "owner": "0"}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			epoch, err := decodeEpoch(strings.NewReader(tt.body))
			if err == nil {
				err = epoch.fillPool(memory.New(0))
			}

			if err == nil {
				_, err = epoch.transactions()
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrInvalidArgument))
		})
	}
}
