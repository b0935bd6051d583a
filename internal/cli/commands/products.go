package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"StoreFront/internal/cli/api"
	"StoreFront/internal/config"
)

type productsCmd struct{}

func (productsCmd) Name() string        { return "products" }
func (productsCmd) Description() string { return "Search products with filters and pagination" }
func (productsCmd) Usage() string {
	return "products [--page N] [--category ID] [--min X --max Y] [--size S,M,L] [--text PHRASE] [--sort KEY]"
}

func (productsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fl := flag.NewFlagSet("products", flag.ContinueOnError)
	fl.SetOutput(Out)
	page := fl.Int("page", 1, "page number (1-based)")
	category := fl.String("category", "", "category id filter")
	minPrice := fl.Float64("min", 0, "minimum price")
	maxPrice := fl.Float64("max", 0, "maximum price")
	sizes := fl.String("size", "", "comma-separated sizes: S,M,L")
	text := fl.String("text", "", "fuzzy full-text search phrase")
	sortKey := fl.String("sort", "", "sort key, e.g. 'price desc'")
	if err := fl.Parse(args); err != nil {
		return ErrUsage
	}

	params := api.SearchParams{
		CategoryID: *category,
		Page:       *page,
		PageSize:   cfg.PageSize,
		Sort:       *sortKey,
		Text:       *text,
		Locale:     cfg.Locale,
	}
	if *minPrice > 0 || *maxPrice > 0 {
		params.MinPrice = *minPrice
		params.MaxPrice = *maxPrice
		params.HasPriceRange = true
	}
	for _, s := range strings.Split(*sizes, ",") {
		switch strings.ToUpper(strings.TrimSpace(s)) {
		case "S":
			params.Sizes.S = true
		case "M":
			params.Sizes.M = true
		case "L":
			params.Sizes.L = true
		case "":
		default:
			return fmt.Errorf("unknown size %q (expected S, M or L)", s)
		}
	}

	catalog, closeFn := newCatalog(cfg)
	defer closeFn()

	res, err := catalog.Search(ctx, params)
	if err != nil {
		return err
	}

	fmt.Fprintf(Out, "Page %d: %d of %d products\n", *page, res.Count, res.Total)
	for _, p := range res.Results {
		fmt.Fprintf(Out, "  %-36s  %-24s %10s\n", p.ID, p.Name, formatPrice(p.Price, p.Currency))
	}
	return nil
}

func init() { RegisterCmd(productsCmd{}) }
