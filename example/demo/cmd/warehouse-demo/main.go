package main

import (
	"flag"
	"log"
	"os"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/warespec/specification-go/example/warehouse/catalog"
	"github.com/warespec/specification-go/specification"
	"github.com/warespec/specification-go/specification/oteladapters"
)

const (
	defaultReorderThreshold = 5
	defaultExpiryWindow     = 14 * 24 * time.Hour
	defaultAuditZone        = "A"
)

// Config holds the flag-configured demo settings.
type Config struct {
	ReorderThreshold     int
	ExpiryWindow         time.Duration
	AuditZone            string
	ObservabilityEnabled bool
}

func main() {
	cfg := parseFlags()

	stock, err := catalog.LoadSampleStock()
	if err != nil {
		log.Fatalf("Failed to load sample inventory: %v", err)
	}

	obsConfig := cfg.NewObservabilityConfig()
	if cfg.ObservabilityEnabled {
		log.Printf("Observability enabled: metrics=%v, logging=%v",
			obsConfig.MetricsCollector != nil,
			obsConfig.Logger != nil)
	}

	demo := NewDemo(stock, cfg, obsConfig)

	log.Printf("Warehouse Specification Demo started with %d stock items", len(stock))

	if err := demo.Run(os.Stdin, os.Stdout); err != nil {
		log.Fatalf("Demo failed: %v", err)
	}

	log.Printf("Warehouse Specification Demo stopped")
}

func parseFlags() Config {
	var (
		threshold     = flag.Int("reorder-threshold", defaultReorderThreshold, "Quantity at or below which an item needs reordering")
		windowHours   = flag.Int("expiry-window-hours", int(defaultExpiryWindow.Hours()), "Lookahead window for the expiring stock report, in hours")
		zone          = flag.String("audit-zone", defaultAuditZone, "Warehouse zone to audit")
		observability = flag.Bool("observability-enabled", false, "Enable OpenTelemetry observability for rule evaluation")
	)

	flag.Parse()

	if *threshold < 0 {
		log.Fatalf("Invalid reorder threshold %d: must not be negative", *threshold)
	}

	if *windowHours <= 0 {
		log.Fatalf("Invalid expiry window %d: must be positive", *windowHours)
	}

	return Config{
		ReorderThreshold:     *threshold,
		ExpiryWindow:         time.Duration(*windowHours) * time.Hour,
		AuditZone:            *zone,
		ObservabilityEnabled: *observability,
	}
}

// ObservabilityConfig holds the observability adapters for rule evaluation.
type ObservabilityConfig struct {
	Logger           specification.Logger
	MetricsCollector specification.MetricsCollector
}

func (c Config) NewObservabilityConfig() ObservabilityConfig {
	if !c.ObservabilityEnabled {
		return ObservabilityConfig{}
	}

	meter := otel.Meter("warehouse-demo")

	return ObservabilityConfig{
		Logger:           oteladapters.NewSlogBridgeLogger("warehouse-demo"),
		MetricsCollector: oteladapters.NewMetricsCollector(meter),
	}
}
