package cmd

import (
	"context"
	"strconv"

	"issuance-engine/internal/domain/sequence"
	"issuance-engine/internal/usecase/commands"

	"github.com/spf13/cobra"
)

type counterOutput struct {
	Domain string `json:"domain" yaml:"domain"`
	Period string `json:"period" yaml:"period"`
	Count  int64  `json:"count" yaml:"count"`
}

func newCounterCmd() *cobra.Command {
	counterCmd := &cobra.Command{
		Use:   "counter",
		Short: "Inspect or reset sequence counters",
		Long: `Inspect or reset sequence counters.

Examples:
  issuance-admin counter get offers 2025
  issuance-admin counter get coupons 202505 -o json
  issuance-admin counter reset coupons 202505 --yes`,
	}

	getCmd := &cobra.Command{
		Use:   "get <domain> <period>",
		Short: "Show the last number handed out for a counter",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			key, err := sequence.NewCounterKey(sequence.Domain(args[0]), args[1])
			if err != nil {
				return err
			}
			return withMaintenance(func(ctx context.Context, m commands.MaintenanceCommands) error {
				count, err := m.CounterValue(ctx, key)
				if err != nil {
					return err
				}
				return renderCounter(key, count)
			})
		},
	}

	var yes bool
	resetCmd := &cobra.Command{
		Use:   "reset <domain> <period>",
		Short: "Recreate an unused counter at zero",
		Long: `Recreate a counter at zero. The reset is refused while any offer or batch
coupon numbered from the counter still exists, since the next allocation would
collide with it. To start a coupon month over, use "coupon purge", which deletes
the month's coupons and resets the counter in one transaction.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			key, err := sequence.NewCounterKey(sequence.Domain(args[0]), args[1])
			if err != nil {
				return err
			}
			if !yes {
				return errConfirmationRequired
			}
			return withMaintenance(func(ctx context.Context, m commands.MaintenanceCommands) error {
				if err := m.ResetCounter(ctx, key); err != nil {
					return err
				}
				return renderCounter(key, 0)
			})
		},
	}
	resetCmd.Flags().BoolVar(&yes, "yes", false, "Confirm the reset")

	counterCmd.AddCommand(getCmd, resetCmd)
	return counterCmd
}

func renderCounter(key sequence.CounterKey, count int64) error {
	out := counterOutput{Domain: key.Domain.String(), Period: key.Period, Count: count}
	return formatter.Render(out,
		[]string{"DOMAIN", "PERIOD", "COUNT"},
		[][]string{{out.Domain, out.Period, strconv.FormatInt(out.Count, 10)}},
	)
}
