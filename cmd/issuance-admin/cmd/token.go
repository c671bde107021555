package cmd

import (
	"time"

	"issuance-engine/internal/domain/actor"
	"issuance-engine/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type tokenOutput struct {
	Subject   string    `json:"subject" yaml:"subject"`
	Role      string    `json:"role" yaml:"role"`
	ExpiresAt time.Time `json:"expires_at" yaml:"expires_at"`
	Token     string    `json:"token" yaml:"token"`
}

// newTokenCmd mints bearer tokens for local runs and smoke tests. Production
// tokens come from the identity provider sharing JWT_SECRET.
func newTokenCmd() *cobra.Command {
	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Bearer token utilities",
	}

	var (
		subject string
		role    string
		ttl     time.Duration
	)
	issueCmd := &cobra.Command{
		Use:   "issue",
		Short: "Sign a bearer token with the configured JWT secret",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			r, err := actor.NewRole(role)
			if err != nil {
				return err
			}
			id := uuid.New()
			if subject != "" {
				if id, err = uuid.Parse(subject); err != nil {
					return err
				}
			}
			token, err := jwt.NewService(cfg.JWT.Secret, cfg.JWT.Issuer).GenerateToken(id, r, ttl)
			if err != nil {
				return err
			}
			out := tokenOutput{
				Subject:   id.String(),
				Role:      string(r),
				ExpiresAt: time.Now().Add(ttl).UTC().Truncate(time.Second),
				Token:     token,
			}
			return formatter.Render(out,
				[]string{"SUBJECT", "ROLE", "EXPIRES", "TOKEN"},
				[][]string{{out.Subject, out.Role, out.ExpiresAt.Format(time.RFC3339), out.Token}},
			)
		},
	}
	issueCmd.Flags().StringVar(&subject, "subject", "", "Subject id (random when empty)")
	issueCmd.Flags().StringVar(&role, "role", string(actor.RoleOperator), "viewer, operator or admin")
	issueCmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "Token lifetime")

	tokenCmd.AddCommand(issueCmd)
	return tokenCmd
}
