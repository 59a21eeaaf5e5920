// Package main provides the txhandler command line tool.
//
// It runs one epoch from a JSON file: the file holds the seed utxo pool and a batch of
// candidate transactions, and the tool prints the accepted set, the rejections and the
// resulting pool.
//
// Usage:
//
//	txhandler handle --file epoch.json [--policy firstvalid|maxfee]
//	txhandler validate --file epoch.json
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bsv-blockchain/txhandler/errors"
	"github.com/bsv-blockchain/txhandler/services/txhandler"
	"github.com/bsv-blockchain/txhandler/services/validator"
	"github.com/bsv-blockchain/txhandler/settings"
	"github.com/bsv-blockchain/txhandler/stores/utxo/factory"
	"github.com/bsv-blockchain/txhandler/ulogger"
	"github.com/urfave/cli/v2"
)

type rejectionReport struct {
	TxID   string `json:"txid"`
	Reason string `json:"reason"`
	Error  string `json:"error"`
}

type handleReport struct {
	Policy   string            `json:"policy"`
	Accepted []string          `json:"accepted"`
	Rejected []rejectionReport `json:"rejected"`
	Pool     []poolEntry       `json:"pool"`
}

type validationReport struct {
	TxID   string `json:"txid"`
	Valid  bool   `json:"valid"`
	Fee    int64  `json:"fee"`
	Reason string `json:"reason,omitempty"`
}

func main() {
	tSettings := settings.NewSettings()

	logger := ulogger.New(tSettings.ClientName,
		ulogger.WithLevel(tSettings.LogLevel),
		ulogger.WithLoggerType(tSettings.LoggerType),
		ulogger.WithWriter(os.Stderr),
	)

	app := newApp(logger, tSettings, os.Stdout)

	if err := app.Run(os.Args); err != nil {
		logger.Fatalf("%v", err)
	}
}

func newApp(logger ulogger.Logger, tSettings *settings.Settings, out io.Writer) *cli.App {
	return &cli.App{
		Name:      "txhandler",
		Usage:     "Validate and accept batches of UTXO transactions",
		Writer:    out,
		ErrWriter: os.Stderr,
		Commands: []*cli.Command{
			{
				Name:  "handle",
				Usage: "Run one epoch and print the accepted set and the resulting pool",
				Flags: []cli.Flag{
					fileFlag(),
					&cli.StringFlag{
						Name:  "policy",
						Usage: "Selection policy: firstvalid or maxfee",
						Value: tSettings.TxHandler.Policy,
					},
				},
				Action: func(c *cli.Context) error {
					return handle(logger, tSettings, c.String("file"), c.String("policy"), c.App.Writer)
				},
			},
			{
				Name:  "validate",
				Usage: "Validate every transaction against the seed pool independently",
				Flags: []cli.Flag{fileFlag()},
				Action: func(c *cli.Context) error {
					return validate(logger, tSettings, c.String("file"), c.App.Writer)
				},
			},
		},
	}
}

func fileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "file",
		Aliases:  []string{"f"},
		Usage:    "Path of the epoch JSON file",
		Required: true,
	}
}

func handle(logger ulogger.Logger, tSettings *settings.Settings, path, policyName string, out io.Writer) error {
	policy, err := txhandler.ParsePolicy(policyName)
	if err != nil {
		return err
	}

	epoch, err := readEpochFile(path)
	if err != nil {
		return err
	}

	pool, err := factory.NewPool(logger, tSettings)
	if err != nil {
		return err
	}

	if err = epoch.fillPool(pool); err != nil {
		return err
	}

	txs, err := epoch.transactions()
	if err != nil {
		return err
	}

	h, err := txhandler.New(logger, tSettings, pool)
	if err != nil {
		return err
	}

	result, err := h.Handle(policy, txs)
	if err != nil {
		return err
	}

	report := handleReport{
		Policy:   policy.String(),
		Accepted: make([]string, 0, result.Accepted.Len()),
		Rejected: make([]rejectionReport, 0, len(result.Rejected)),
		Pool:     poolEntries(result.Pool),
	}

	for _, hash := range result.Accepted.Hashes() {
		report.Accepted = append(report.Accepted, hash.String())
	}

	for _, rejection := range result.Rejected {
		report.Rejected = append(report.Rejected, rejectionReport{
			TxID:   txID(rejection.Tx),
			Reason: errors.RejectionReason(rejection.Err),
			Error:  rejection.Err.Error(),
		})
	}

	return writeJSON(out, report)
}

func validate(logger ulogger.Logger, tSettings *settings.Settings, path string, out io.Writer) error {
	epoch, err := readEpochFile(path)
	if err != nil {
		return err
	}

	pool, err := factory.NewPool(logger, tSettings)
	if err != nil {
		return err
	}

	if err = epoch.fillPool(pool); err != nil {
		return err
	}

	txs, err := epoch.transactions()
	if err != nil {
		return err
	}

	tv := validator.NewTxValidator(logger, tSettings)

	reports := make([]validationReport, 0, len(txs))

	for _, tx := range txs {
		verr := tv.ValidateTransaction(tx, pool)

		reports = append(reports, validationReport{
			TxID:   txID(tx),
			Valid:  verr == nil,
			Fee:    validator.CalculateFee(tx, pool),
			Reason: errors.RejectionReason(verr),
		})
	}

	return writeJSON(out, reports)
}

func txID(tx validator.Tx) string {
	if tx == nil {
		return ""
	}

	return tx.Hash().String()
}

func writeJSON(out io.Writer, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.NewProcessingError("failed to encode output", err)
	}

	_, err = fmt.Fprintln(out, string(b))

	return err
}
