package cmd

import (
	"context"
	"strconv"

	"issuance-engine/internal/usecase/commands"

	"github.com/spf13/cobra"
)

func newCouponCmd() *cobra.Command {
	couponCmd := &cobra.Command{
		Use:   "coupon",
		Short: "Bulk coupon maintenance",
	}

	var yes bool
	purgeCmd := &cobra.Command{
		Use:   "purge <period>",
		Short: "Delete every coupon of a month and reset its counter",
		Long: `Delete every coupon of a month (YYYYMM) and reset the coupons counter for
that month in a single transaction. Redeemed coupons are deleted too.

Example:
  issuance-admin coupon purge 202505 --yes`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if !yes {
				return errConfirmationRequired
			}
			return withMaintenance(func(ctx context.Context, m commands.MaintenanceCommands) error {
				res, err := m.PurgeCoupons(ctx, args[0])
				if err != nil {
					return err
				}
				return formatter.Render(res,
					[]string{"PERIOD", "DELETED"},
					[][]string{{res.Period, strconv.FormatInt(res.DeletedCoupons, 10)}},
				)
			})
		},
	}
	purgeCmd.Flags().BoolVar(&yes, "yes", false, "Confirm the purge")

	couponCmd.AddCommand(purgeCmd)
	return couponCmd
}
