package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/goduckworks/duckworks/contact"
	"github.com/goduckworks/duckworks/web/views"
)

func submitCmd() *cobra.Command {
	var (
		baseURL string
		timeout time.Duration
		sub     contact.Submission
		service string
	)
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Send a quote request to a running site",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(baseURL) == "" {
				return errNoBaseURL
			}
			sub.Service = contact.ParseServiceType(service)
			form := contact.NewForm(strings.TrimRight(baseURL, "/") + views.ContactEndpoint)
			form.Fill(sub)

			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			resp, err := form.Submit(ctx)
			out := cmd.OutOrStdout()
			if err != nil {
				if resp != nil && resp.Error != "" {
					fmt.Fprintln(cmd.ErrOrStderr(), resp.Error)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), form.Message())
				return err
			}
			fmt.Fprintln(out, form.Message())
			if resp.ID != "" {
				fmt.Fprintf(out, "id: %s\n", resp.ID)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&baseURL, "url", "http://localhost:8080", "site base URL")
	f.DurationVar(&timeout, "timeout", 30*time.Second, "request timeout, 0 to disable")
	f.StringVar(&sub.Name, "name", "", "your name")
	f.StringVar(&sub.Email, "email", "", "reply-to email")
	f.StringVar(&sub.Phone, "phone", "", "phone number")
	f.StringVar(&sub.Address, "address", "", "property address")
	f.StringVar(&service, "service", string(contact.ServiceInstall), "service type")
	f.StringVar(&sub.Message, "message", "", "what you need")
	return cmd
}

var errNoBaseURL = errors.New("commands: --url is required")
