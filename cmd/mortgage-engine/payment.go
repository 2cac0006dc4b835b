package main

import (
	"github.com/iwvelando/mortgage-engine/pkg/loans"
	"github.com/iwvelando/mortgage-engine/pkg/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type paymentOptions struct {
	rate      float64
	periods   int
	principal float64
}

func newPaymentCmd(a *app) *cobra.Command {
	opts := &paymentOptions{}
	cmd := &cobra.Command{
		Use:   "payment",
		Short: "Calculate a fixed monthly annuity payment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			payment, err := loans.MonthlyPayment(opts.rate, opts.periods, opts.principal)
			if err != nil {
				a.logger.Error("payment calculation failed",
					zap.String("op", "main.payment"),
					zap.Float64("rate", opts.rate),
					zap.Int("periods", opts.periods),
					zap.Error(err),
				)
				return err
			}
			return output.PaymentFormat(cmd.OutOrStdout(), a.conf.Output.Format, payment)
		},
	}

	cmd.Flags().Float64Var(&opts.rate, "rate", 0, "annual interest rate as a decimal")
	cmd.Flags().IntVar(&opts.periods, "periods", 0, "number of monthly payments")
	cmd.Flags().Float64Var(&opts.principal, "principal", 0, "loan principal")
	_ = cmd.MarkFlagRequired("periods")
	_ = cmd.MarkFlagRequired("principal")
	return cmd
}
