package commands

import (
	"context"
	"fmt"

	"StoreFront/internal/config"
)

type categoriesCmd struct{}

func (categoriesCmd) Name() string        { return "categories" }
func (categoriesCmd) Description() string { return "List catalog categories" }
func (categoriesCmd) Usage() string       { return "categories" }

func (categoriesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	catalog, closeFn := newCatalog(cfg)
	defer closeFn()

	res, err := catalog.Categories(ctx, 0)
	if err != nil {
		return err
	}
	for _, c := range res.Results {
		fmt.Fprintf(Out, "  %-36s  %s\n", c.ID, c.Name)
	}
	return nil
}

type categoryCmd struct{}

func (categoryCmd) Name() string        { return "category" }
func (categoryCmd) Description() string { return "Show a single category by id" }
func (categoryCmd) Usage() string       { return "category <id>" }

func (categoryCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || args[0] == "" {
		return ErrUsage
	}

	catalog, closeFn := newCatalog(cfg)
	defer closeFn()

	c, err := catalog.Category(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "ID:   %s\n", c.ID)
	fmt.Fprintf(Out, "Name: %s\n", c.Name)
	if c.ParentID != "" {
		fmt.Fprintf(Out, "Parent: %s\n", c.ParentID)
	}
	return nil
}

func init() {
	RegisterCmd(categoriesCmd{})
	RegisterCmd(categoryCmd{})
}
