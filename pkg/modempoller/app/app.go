// Package app wires every other package together into one poll cycle:
// Bootstrap (spec.md §4.7). Shaped after the teacher's pkg/snmpcollector/app
// lifecycle (Config.withDefaults, New, Start/Stop), generalised from a
// long-running pipeline to a single bounded cycle: load catalog, open
// inventory, build host contexts and prime requests, run the dispatcher
// to completion, close sessions and sinks.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/olebowle/modempoller/pkg/modempoller/catalog"
	"github.com/olebowle/modempoller/pkg/modempoller/dispatcher"
	"github.com/olebowle/modempoller/pkg/modempoller/hostcontext"
	"github.com/olebowle/modempoller/pkg/modempoller/inventory"
	"github.com/olebowle/modempoller/pkg/modempoller/inventory/mysql"
	"github.com/olebowle/modempoller/pkg/modempoller/inventory/postgres"
	"github.com/olebowle/modempoller/pkg/modempoller/report"
	"github.com/olebowle/modempoller/pkg/modempoller/rlimit"
)

const (
	// Retries and Timeout match modempoller-nmsprime.c's #define RETRIES 3 /
	// TIMEOUT 5 exactly; they size both the per-session retry budget and
	// the dispatcher's global deadline.
	defaultRetries = 3
	defaultTimeout = 5 * time.Second
)

// InventoryBackend selects which SQL adapter App.Run opens.
type InventoryBackend string

const (
	BackendPostgres InventoryBackend = "postgres"
	BackendMySQL    InventoryBackend = "mysql"
)

// Config is every knob Bootstrap (spec.md §4.7) parses from flags.
type Config struct {
	Analysis         bool // -a: verbose single-modem catalog, stdout sink
	ModemFilter      string // -m
	InventoryBackend InventoryBackend
	DB               inventory.Params // -d -h -u -p

	Retries int
	Timeout time.Duration

	Logger *slog.Logger
	Stdout io.Writer // where analysis-mode output and Timeout markers go
}

func (c *Config) withDefaults() {
	if c.Retries == 0 {
		c.Retries = defaultRetries
	}
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	if c.InventoryBackend == "" {
		c.InventoryBackend = BackendPostgres
	}
}

// App runs exactly one poll cycle.
type App struct {
	cfg Config
}

// New builds an App, applying Config's defaults.
func New(cfg Config) *App {
	cfg.withDefaults()
	return &App{cfg: cfg}
}

// Run executes the full bootstrap-through-dispatch-through-shutdown
// sequence described by spec.md §4.7 and returns a non-nil error only for
// configuration-fatal failures (unparseable catalog OID, inventory
// connect/query failure) per §7's error taxonomy, or with ctx's error when
// ctx is cancelled before the dispatcher finishes.
func (a *App) Run(ctx context.Context) error {
	if err := rlimit.Raise(); err != nil {
		a.cfg.Logger.Warn("could not raise open-file limit; continuing", "err", err)
	}

	variant := catalog.VariantBulk
	if a.cfg.Analysis {
		variant = catalog.VariantAnalysis
	}
	cat, err := catalog.Load(variant)
	if err != nil {
		return fmt.Errorf("app: catalog: %w", err)
	}

	inv, err := a.openInventory()
	if err != nil {
		return fmt.Errorf("app: inventory: %w", err)
	}
	defer inv.Close()

	records, err := inv.Fetch(ctx, a.cfg.ModemFilter)
	if err != nil {
		return fmt.Errorf("app: fetch: %w", err)
	}
	a.cfg.Logger.Info("inventory loaded", "hosts", len(records), "catalog", variant)

	hosts, sharedSink, err := a.buildHostContexts(records, cat)
	if err != nil {
		return fmt.Errorf("app: host contexts: %w", err)
	}
	defer func() {
		for _, h := range hosts {
			h.Close()
		}
		if sharedSink != nil {
			sharedSink.Close()
		}
	}()

	d := dispatcher.New(cat, hosts, dispatcher.Config{
		Retries:     a.cfg.Retries,
		Timeout:     a.cfg.Timeout,
		Logger:      a.cfg.Logger,
		OperatorOut: a.cfg.Stdout,
	})

	start := time.Now()
	d.Prime(start)
	if err := d.Run(ctx); err != nil {
		return fmt.Errorf("app: dispatcher: %w", err)
	}
	a.cfg.Logger.Info("poll cycle complete", "duration", time.Since(start), "hosts", len(hosts))
	return nil
}

func (a *App) openInventory() (inventory.Inventory, error) {
	switch a.cfg.InventoryBackend {
	case BackendMySQL:
		return mysql.Open(a.cfg.DB)
	default:
		return postgres.Open(a.cfg.DB)
	}
}

// buildHostContexts opens one session per inventory row, skipping (not
// failing the cycle for) any host whose session fails to open, per
// spec.md §4.3/§7. Analysis mode shares one stdout sink across every
// host; bulk mode opens one exclusive file per host named after its
// report name.
func (a *App) buildHostContexts(records []inventory.HostRecord, cat *catalog.Catalog) ([]*hostcontext.Context, report.Sink, error) {
	var sharedSink report.Sink
	if a.cfg.Analysis {
		sharedSink = report.NewSharedSink(a.cfg.Stdout)
	}

	hosts := make([]*hostcontext.Context, 0, len(records))
	for _, rec := range records {
		sink := sharedSink
		if sink == nil {
			f, err := os.Create(rec.ReportName)
			if err != nil {
				a.cfg.Logger.Warn("could not create report file; skipping host", "host", rec.TransportAddress, "err", err)
				continue
			}
			fileSink := report.NewFileSink(f)
			fileSink.WriteLine(report.IPv4Header(rec.TransportAddress))
			sink = fileSink
		}

		h, err := hostcontext.Open(rec, a.cfg.Timeout, a.cfg.Retries, cat.SegmentCount(), sink)
		if err != nil {
			a.cfg.Logger.Warn("could not open session; skipping host", "host", rec.TransportAddress, "err", err)
			sink.Close()
			continue
		}
		hosts = append(hosts, h)
	}
	return hosts, sharedSink, nil
}
