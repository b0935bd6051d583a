package commands

import (
	"context"
	"fmt"
	"strings"

	"StoreFront/internal/config"
)

type discountsCmd struct{}

func (discountsCmd) Name() string        { return "discounts" }
func (discountsCmd) Description() string { return "List discount codes" }
func (discountsCmd) Usage() string       { return "discounts" }

func (discountsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	catalog, closeFn := newCatalog(cfg)
	defer closeFn()

	res, err := catalog.DiscountCodes(ctx, 0)
	if err != nil {
		return err
	}
	for _, d := range res.Results {
		active := "inactive"
		if d.IsActive {
			active = "active"
		}
		fmt.Fprintf(Out, "  %-36s  %-16s %s\n", d.ID, d.Code, active)
	}
	return nil
}

type discountCmd struct{}

func (discountCmd) Name() string        { return "discount" }
func (discountCmd) Description() string { return "Show a discount code by id or key" }
func (discountCmd) Usage() string       { return "discount <id|key=KEY>" }

func (discountCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	idOrKey := args[0]
	byKey := false
	if strings.HasPrefix(idOrKey, "key=") {
		idOrKey = strings.TrimPrefix(idOrKey, "key=")
		byKey = true
	}
	if idOrKey == "" {
		return ErrUsage
	}

	catalog, closeFn := newCatalog(cfg)
	defer closeFn()

	d, err := catalog.Discount(ctx, idOrKey, byKey)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "ID:     %s\n", d.ID)
	if d.Key != "" {
		fmt.Fprintf(Out, "Key:    %s\n", d.Key)
	}
	fmt.Fprintf(Out, "Code:   %s\n", d.Code)
	if d.Name != "" {
		fmt.Fprintf(Out, "Name:   %s\n", d.Name)
	}
	fmt.Fprintf(Out, "Active: %v\n", d.IsActive)
	return nil
}

func init() {
	RegisterCmd(discountsCmd{})
	RegisterCmd(discountCmd{})
}
