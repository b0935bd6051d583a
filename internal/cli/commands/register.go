package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"StoreFront/internal/cli/validate"
	"StoreFront/internal/config"
)

type CustomerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create a customer account" }
func (registerCmd) Usage() string       { return "register <email> <password>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	email, password := args[0], args[1]

	// формат пароля проверяем до похода на сервер
	if ok, msg := validate.Password(password); !ok {
		return errors.New(msg)
	}

	endpoint := strings.TrimRight(cfg.APIURL, "/") + "/api/customers/register"
	status, body, err := postJSON(endpoint, CustomerRequest{Email: email, Password: password})
	if err != nil {
		return err
	}
	switch status {
	case http.StatusOK, http.StatusCreated:
		fmt.Fprintln(Out, "Account created")
		return nil
	case http.StatusConflict:
		return errors.New("email already in use")
	default:
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}
}

func init() { RegisterCmd(registerCmd{}) }
