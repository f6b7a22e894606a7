// Package main implements an interactive console demo for the specification
// library, running warehouse reporting scenarios over the embedded sample
// inventory.
package main

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/warespec/specification-go/example/warehouse/core"
	"github.com/warespec/specification-go/example/warehouse/features/expiringstock"
	"github.com/warespec/specification-go/example/warehouse/features/reorderreport"
	"github.com/warespec/specification-go/example/warehouse/features/zoneaudit"
	"github.com/warespec/specification-go/example/warehouse/rules"
	"github.com/warespec/specification-go/specification"
	"github.com/warespec/specification-go/specification/sqlspec"
)

const menu = `
Warehouse Specification Demo
  [1] Reorder report
  [2] Expiring stock
  [3] Zone audit
  [4] Low stock lookup
  [5] SQL preview of the reorder rule
  [q] Quit
Choose an option: `

// Demo runs the interactive scenario menu over a fixed stock list.
type Demo struct {
	stock     core.StockItems
	config    Config
	obsConfig ObservabilityConfig
	clock     func() time.Time
}

// NewDemo creates a Demo over the provided stock.
func NewDemo(stock core.StockItems, config Config, obsConfig ObservabilityConfig) *Demo {
	return &Demo{
		stock:     stock,
		config:    config,
		obsConfig: obsConfig,
		clock:     time.Now,
	}
}

// Run loops over the menu until the user quits or input ends.
func (d *Demo) Run(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, menu)

		if !scanner.Scan() {
			return scanner.Err()
		}

		choice := strings.TrimSpace(scanner.Text())

		var err error

		switch choice {
		case "1":
			err = d.runReorderReport(out)
		case "2":
			err = d.runExpiringStock(out)
		case "3":
			err = d.runZoneAudit(out)
		case "4":
			err = d.runLowStockLookup(out)
		case "5":
			err = d.runSQLPreview(out)
		case "q", "Q":
			return nil
		default:
			fmt.Fprintf(out, "Unknown option %q\n", choice)
		}

		if err != nil {
			return err
		}
	}
}

func (d *Demo) runReorderReport(out io.Writer) error {
	query, err := reorderreport.BuildQuery(d.config.ReorderThreshold)
	if err != nil {
		return err
	}

	report, err := reorderreport.ProjectReorderReport(d.stock, query)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%d item(s) need reordering (threshold %d):\n", report.Count, report.Threshold)

	for _, line := range report.Lines {
		status := fmt.Sprintf("%d left", line.Quantity)
		if line.OutOfStock {
			status = "OUT OF STOCK"
		}

		fmt.Fprintf(out, "  %-10s %-28s zone %s shelf %-5s %s\n",
			line.SKU, line.Name, line.Zone, line.Shelf, status)
	}

	return nil
}

func (d *Demo) runExpiringStock(out io.Writer) error {
	query, err := expiringstock.BuildQuery(d.clock(), d.config.ExpiryWindow)
	if err != nil {
		return err
	}

	result, err := expiringstock.ProjectExpiringStock(d.stock, query)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%d item(s) expire before %s:\n",
		result.Count, result.Deadline.Format(time.DateOnly))

	for _, group := range result.Groups {
		fmt.Fprintf(out, "  Zone %s:\n", group.Zone)

		for _, item := range group.Items {
			fmt.Fprintf(out, "    %-10s %-28s shelf %-5s best before %s\n",
				item.SKU, item.Name, item.Shelf, item.BestBefore.Format(time.DateOnly))
		}
	}

	return nil
}

func (d *Demo) runZoneAudit(out io.Writer) error {
	query, err := zoneaudit.BuildQuery(d.config.AuditZone, d.clock(), "cooling", "frozen")
	if err != nil {
		return err
	}

	audit, err := zoneaudit.ProjectZoneAudit(d.stock, query)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nZone %s: %d item(s), total quantity %d\n",
		audit.Zone, audit.ItemCount, audit.TotalQuantity)

	if len(audit.Breaches) == 0 {
		fmt.Fprintln(out, "  No breaches found")
		return nil
	}

	for _, breach := range audit.Breaches {
		fmt.Fprintf(out, "  BREACH %-10s shelf %-5s %s\n", breach.SKU, breach.Shelf, breach.Reason)
	}

	return nil
}

// runLowStockLookup exercises the collection adapter directly: count the low
// stock items and fetch the first one, with instrumented rule evaluation when
// observability is enabled.
func (d *Demo) runLowStockLookup(out io.Writer) error {
	lowStock, err := rules.LowStock(d.config.ReorderThreshold)
	if err != nil {
		return err
	}

	lowStock, err = d.instrument(lowStock, "low_stock")
	if err != nil {
		return err
	}

	matches := specification.Count(slices.Values(d.stock), lowStock)

	fmt.Fprintf(out, "\n%d item(s) at or below quantity %d\n", matches, d.config.ReorderThreshold)

	first, err := specification.First(slices.Values(d.stock), lowStock)
	if err != nil {
		fmt.Fprintln(out, "  Nothing to pick first")
		return nil
	}

	fmt.Fprintf(out, "  First match: %s (%s), %d left on shelf %s\n",
		first.Product.SKU, first.Product.Name, first.Quantity, first.Shelf)

	return nil
}

// runSQLPreview renders the reorder rule as a SQL WHERE clause without ever
// touching a database, then evaluates the same rule in memory over the loaded
// stock to show both representations agree.
func (d *Demo) runSQLPreview(out io.Writer) error {
	outOfStock, err := sqlspec.Field("quantity", sqlspec.OpEqual, 0)
	if err != nil {
		return err
	}

	lowStock, err := sqlspec.Field("quantity", sqlspec.OpLessOrEqual, d.config.ReorderThreshold)
	if err != nil {
		return err
	}

	needsReorder, err := outOfStock.Or(lowStock)
	if err != nil {
		return err
	}

	query, err := needsReorder.ToSQL("stock_items")
	if err != nil {
		return err
	}

	matches := 0
	for _, item := range d.stock {
		if needsReorder.IsSatisfiedBy(item.Fields()) {
			matches++
		}
	}

	fmt.Fprintf(out, "\n%s\n", query)
	fmt.Fprintf(out, "Evaluated in memory, the same rule matches %d of %d item(s)\n", matches, len(d.stock))

	return nil
}

func (d *Demo) instrument(
	spec rules.StockSpecification,
	name string,
) (rules.StockSpecification, error) {

	if !d.config.ObservabilityEnabled {
		return spec, nil
	}

	options := []specification.InstrumentOption{specification.WithName(name)}

	if d.obsConfig.Logger != nil {
		options = append(options, specification.WithLogger(d.obsConfig.Logger))
	}

	if d.obsConfig.MetricsCollector != nil {
		options = append(options, specification.WithMetrics(d.obsConfig.MetricsCollector))
	}

	return specification.Instrument(spec, options...)
}
