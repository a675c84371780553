package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"portfolio/internal/catalog/repository"
	"portfolio/internal/commons"
	"portfolio/internal/domain"
	"portfolio/internal/pricing"
)

func prices(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	file, err := commons.LoadCatalog(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	calc := pricing.NewCalculator(domain.Money(cfg.Catalog.DefaultDiscountCap))
	return writePrices(c.Context, os.Stdout, file, calc)
}

func writePrices(ctx context.Context, out io.Writer, file *commons.CatalogFile, calc *pricing.Calculator) error {
	offerings, err := repository.NewMemoryRepository(file).FindAll(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSERVICE\tLIST\tDISCOUNT\tFINAL\tOFF")
	for _, o := range offerings {
		b := calc.ForOffering(o)
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d%%\n",
			o.ID, o.Title,
			pricing.Format(b.Original), pricing.Format(b.Discount), pricing.Format(b.Final),
			b.Percentage,
		)
	}
	return w.Flush()
}
