package commands

import (
	"context"
	"fmt"

	"StoreFront/internal/cli/api"
	"StoreFront/internal/config"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show current API configuration and token state" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fmt.Fprintf(Out, "API URL:     %s\n", cfg.APIURL)
	fmt.Fprintf(Out, "Project key: %s\n", cfg.ProjectKey)
	fmt.Fprintf(Out, "Locale:      %s\n", cfg.Locale)

	if _, ok := newTokenStore(cfg).Get(api.TokenKey); ok {
		fmt.Fprintln(Out, "App token:   cached")
	} else {
		fmt.Fprintln(Out, "App token:   absent or expired")
	}
	return nil
}

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Clear the cached application token" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if err := newTokenStore(cfg).Clear(api.TokenKey); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Token cleared")
	return nil
}

func init() {
	RegisterCmd(statusCmd{})
	RegisterCmd(logoutCmd{})
}
