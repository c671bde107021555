// Package cmd is the operator CLI. It talks to the database directly and
// shares the service's transaction rules, so counters it touches stay
// consistent with concurrent API traffic.
package cmd

import (
	"context"
	"io"
	"os"
	"time"

	"issuance-engine/internal/infra/db"
	sqlc "issuance-engine/internal/infra/sqlc/generated"
	"issuance-engine/internal/infra/uow"
	"issuance-engine/internal/pkg/config"
	"issuance-engine/internal/pkg/errs"
	"issuance-engine/internal/pkg/metrics"
	"issuance-engine/internal/usecase/commands"

	"github.com/spf13/cobra"
)

var (
	outputFlag  string
	timeoutFlag time.Duration

	formatter *Formatter
)

// openMaintenance is replaced in tests with an in-memory backend.
var openMaintenance = func(ctx context.Context, cfg config.Config) (commands.MaintenanceCommands, func(), error) {
	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, nil, errs.Wrap(err, "connect database")
	}
	u := uow.NewPostgresUoW(pool, sqlc.New(), cfg.Store, metrics.NewRegistry(false))
	return commands.NewMaintenanceUseCase(u, commands.NewPolicy(cfg.Issuance)), cleanup, nil
}

// loadConfig is replaced in tests.
var loadConfig = config.LoadConfig

var rootCmd = newRootCmd(os.Stdout)

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "issuance-admin",
		Short: "Operator tooling for the issuance engine",
		Long: `issuance-admin inspects and repairs sequence counters and coupon periods.

Destructive commands require --yes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			format, err := ParseOutputFormat(outputFlag)
			if err != nil {
				return err
			}
			formatter = NewFormatter(format)
			formatter.SetWriter(cmd.OutOrStdout())
			return nil
		},
	}
	root.SetOut(out)

	root.PersistentFlags().StringVarP(&outputFlag, "output", "o", "table", "Output format: table, json, yaml")
	root.PersistentFlags().DurationVar(&timeoutFlag, "timeout", 30*time.Second, "Command timeout")

	root.AddCommand(newCounterCmd())
	root.AddCommand(newCouponCmd())
	root.AddCommand(newTokenCmd())
	return root
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func getContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeoutFlag)
}

// withMaintenance opens the backend for one command and always releases it.
func withMaintenance(fn func(ctx context.Context, m commands.MaintenanceCommands) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx, cancel := getContext()
	defer cancel()

	m, cleanup, err := openMaintenance(ctx, cfg)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}
	return fn(ctx, m)
}

var errConfirmationRequired = errs.New("refusing to modify data without --yes")
