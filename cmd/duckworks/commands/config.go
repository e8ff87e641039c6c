package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goduckworks/duckworks/config"
	"github.com/goduckworks/duckworks/contact"
)

// settings reports which settings are present. Values are never printed.
type settings struct {
	contact.Status
	SentryDSN bool `json:"SENTRY_DSN"`
	RedisURL  bool `json:"REDIS_URL"`
	RateLimit int  `json:"CONTACT_RATE_LIMIT"`
}

func configCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show which settings are configured",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			s := currentSettings(cfg)
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(s)
			}
			fmt.Fprintf(out, "RESEND_API_KEY     %t\n", s.APIKey)
			fmt.Fprintf(out, "EMAIL_TO           %t\n", s.To)
			fmt.Fprintf(out, "EMAIL_FROM         %t\n", s.From)
			fmt.Fprintf(out, "EMAIL_BCC          %t\n", s.BCC)
			fmt.Fprintf(out, "SENTRY_DSN         %t\n", s.SentryDSN)
			fmt.Fprintf(out, "REDIS_URL          %t\n", s.RedisURL)
			fmt.Fprintf(out, "CONTACT_RATE_LIMIT %d\n", s.RateLimit)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func currentSettings(cfg config.Config) settings {
	return settings{
		Status:    contact.NewService(nil, cfg.Contact()).Status(),
		SentryDSN: cfg.SentryDSN != "",
		RedisURL:  cfg.RedisURL != "",
		RateLimit: cfg.ContactRateLimit,
	}
}
