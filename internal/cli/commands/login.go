package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"StoreFront/internal/config"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Sign in as a customer" }
func (loginCmd) Usage() string       { return "login <email> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	email, password := args[0], args[1]

	endpoint := strings.TrimRight(cfg.APIURL, "/") + "/api/customers/login"
	status, body, err := postJSON(endpoint, CustomerRequest{Email: email, Password: password})
	if err != nil {
		return err
	}
	switch status {
	case http.StatusOK:
		fmt.Fprintln(Out, "Logged in successfully")
		return nil
	case http.StatusUnauthorized:
		return errors.New("invalid email or password")
	default:
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}
}

func init() { RegisterCmd(loginCmd{}) }
