// Package cli implements receiptsctl, an offline front end to the receipts calculations.
// Results are printed as JSON on stdout; logs go to stderr.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var version = "1.0.0"

type app struct {
	out io.Writer
	in  io.Reader
	log zerolog.Logger
}

// NewRootCmd builds the command tree. Results go to out, logs to errOut, and
// "statement -f -" reads from in.
func NewRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, in: in, log: zerolog.Nop()}
	logCfg := DefaultLogConfig()

	rootCmd := &cobra.Command{
		Use:   "receiptsctl",
		Short: "Split invoices, allocate payments and build statements offline",
		Long: `receiptsctl runs the receivables rules without a database.

Every invoice total is split into one third cash debt and two thirds cheque debt.
Cash payments (and exception-flagged payments) retire cash debt first and spill
into cheque debt; other payments retire cheque debt only. Anything left over is
reported as surplus.

Amounts are decimal strings such as 100 or 33.33.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := NewLogger(logCfg, errOut)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", logCfg.Level, err)
			}
			a.log = log
			return nil
		},
	}
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.PersistentFlags().StringVar(&logCfg.Level, "log-level", logCfg.Level, "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logCfg.Format, "log-format", logCfg.Format, "Log format (console, json)")

	rootCmd.AddCommand(
		a.newSplitCmd(),
		a.newApplyCmd(),
		a.newResolveCmd(),
		a.newStatementCmd(),
	)
	return rootCmd
}

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseAmount(name, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	return d, nil
}
