package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/SscSPs/receipts_ledger/internal/core/domain"
	"github.com/SscSPs/receipts_ledger/internal/core/receipts"
	"github.com/SscSPs/receipts_ledger/internal/dto"
	"github.com/spf13/cobra"
)

func (a *app) newSplitCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "split TOTAL",
		Short:   "Split an invoice total into cash and cheque debt",
		Example: "  receiptsctl split 100",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := withComponent(a.log, "split")

			total, err := parseAmount("total", args[0])
			if err != nil {
				return err
			}
			pair, err := receipts.Split(total)
			if err != nil {
				return err
			}

			log.Debug().Str("total", total.String()).Str("cash", pair.Cash.String()).Str("cheque", pair.Cheque.String()).Msg("Split total")
			return a.printJSON(pair)
		},
	}
}

func (a *app) newApplyCmd() *cobra.Command {
	var cash, cheque, amount, method string
	var exception bool

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Allocate one payment against outstanding cash and cheque debt",
		Example: `  # Cash spills into cheque once cash debt is cleared
  receiptsctl apply --cash 100 --cheque 200 --amount 150 --method CASH

  # An exception-flagged cheque is treated as a cash fund
  receiptsctl apply --cash 100 --cheque 200 --amount 50 --method CHEQUE --exception`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := withComponent(a.log, "apply")

			cashDebt, err := parseAmount("cash", cash)
			if err != nil {
				return err
			}
			chequeDebt, err := parseAmount("cheque", cheque)
			if err != nil {
				return err
			}
			paid, err := parseAmount("amount", amount)
			if err != nil {
				return err
			}

			payment := domain.PaymentInput{
				Amount:      paid,
				Method:      domain.PaymentMethod(strings.ToUpper(method)),
				IsException: exception,
			}
			res, err := receipts.Apply(domain.DebtPair{Cash: cashDebt, Cheque: chequeDebt}, payment)
			if err != nil {
				return err
			}

			if res.Surplus.IsPositive() {
				log.Info().Str("surplus", res.Surplus.String()).Msg("Payment exceeds the debt it may cover")
			}
			return a.printJSON(res)
		},
	}

	cmd.Flags().StringVar(&cash, "cash", "0", "Outstanding cash debt")
	cmd.Flags().StringVar(&cheque, "cheque", "0", "Outstanding cheque debt")
	cmd.Flags().StringVar(&amount, "amount", "", "Payment amount")
	cmd.Flags().StringVar(&method, "method", string(domain.MethodCash), "Payment method (CASH, CHEQUE, BANK_TRANSFER)")
	cmd.Flags().BoolVar(&exception, "exception", false, "Treat the payment as a cash fund whatever its method")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func (a *app) newResolveCmd() *cobra.Command {
	var total, remaining string

	cmd := &cobra.Command{
		Use:     "resolve",
		Short:   "Derive an invoice status from its total and what remains unpaid",
		Example: "  receiptsctl resolve --total 300 --remaining 120",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseAmount("total", total)
			if err != nil {
				return err
			}
			r, err := parseAmount("remaining", remaining)
			if err != nil {
				return err
			}
			return a.printJSON(dto.ResolveResponse{Status: receipts.Resolve(t, r)})
		},
	}

	cmd.Flags().StringVar(&total, "total", "", "Invoice total")
	cmd.Flags().StringVar(&remaining, "remaining", "", "Amount still unpaid; negative when overpaid")
	_ = cmd.MarkFlagRequired("total")
	_ = cmd.MarkFlagRequired("remaining")
	return cmd
}

func (a *app) newStatementCmd() *cobra.Command {
	var file string
	var reconcile bool

	cmd := &cobra.Command{
		Use:   "statement",
		Short: "Build a running-balance statement from a JSON file of ledger events",
		Long: `Reads {"events": [...], "aggregate": {...}} and prints the ordered history with
running cash, cheque, credit and total after every event. When aggregate is
omitted it is summed from the events.`,
		Example: `  receiptsctl statement -f events.json --reconcile
  cat events.json | receiptsctl statement -f -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := withComponent(a.log, "statement")

			req, err := a.readStatementRequest(file)
			if err != nil {
				return err
			}

			aggregate := req.Aggregate
			if aggregate == nil {
				derived, err := receipts.AggregateOf(req.Events)
				if err != nil {
					return err
				}
				aggregate = &derived
			}

			stmt, err := receipts.BuildStatement(req.Events, *aggregate)
			if err != nil {
				return err
			}
			if reconcile {
				if err := receipts.Reconcile(stmt); err != nil {
					return err
				}
				log.Info().Int("events", len(stmt.History)).Msg("Statement reconciles with aggregate balance")
			}
			return a.printJSON(stmt)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", `Events file, or "-" for stdin`)
	cmd.Flags().BoolVar(&reconcile, "reconcile", false, "Fail unless the replayed total matches the aggregate balance")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func (a *app) readStatementRequest(file string) (dto.StatementRequest, error) {
	var r io.Reader = a.in
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return dto.StatementRequest{}, fmt.Errorf("failed to open events file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var req dto.StatementRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return dto.StatementRequest{}, fmt.Errorf("failed to decode events: %w", err)
	}
	return req, nil
}
