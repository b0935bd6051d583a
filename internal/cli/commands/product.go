package commands

import (
	"context"
	"fmt"
	"strings"

	"StoreFront/internal/config"
)

type productCmd struct{}

func (productCmd) Name() string        { return "product" }
func (productCmd) Description() string { return "Show a single product by id or key" }
func (productCmd) Usage() string       { return "product <id|key=KEY>" }

func (productCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
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

	p, fromCache, err := catalog.Product(ctx, idOrKey, byKey)
	if err != nil {
		return err
	}

	fmt.Fprintf(Out, "ID:       %s\n", p.ID)
	if p.Key != "" {
		fmt.Fprintf(Out, "Key:      %s\n", p.Key)
	}
	fmt.Fprintf(Out, "Name:     %s\n", p.Name)
	if p.Description != "" {
		fmt.Fprintf(Out, "About:    %s\n", p.Description)
	}
	fmt.Fprintf(Out, "Price:    %s\n", formatPrice(p.Price, p.Currency))
	if p.Size != "" {
		fmt.Fprintf(Out, "Size:     %s\n", p.Size)
	}
	if fromCache {
		fmt.Fprintln(Out, "(shown from local cache, API unavailable)")
	}
	return nil
}

func init() { RegisterCmd(productCmd{}) }
