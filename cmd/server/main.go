package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	staticcatalog "buddyverse/internal/adapter/catalog/static"
	httpadapter "buddyverse/internal/adapter/http"
	metricsinmem "buddyverse/internal/adapter/metrics/inmemory"
	"buddyverse/internal/adapter/notify/lognotify"
	"buddyverse/internal/app/adventures"
	"buddyverse/internal/app/companion"
	"buddyverse/internal/app/history"
	"buddyverse/internal/app/scheduler"
	"buddyverse/internal/app/snapshot"
	"buddyverse/internal/app/status"
	"buddyverse/internal/platform/logger"
	"buddyverse/internal/platform/otel"

	"github.com/cloudwego/hertz/pkg/app/server"
)

const serviceName = "buddyverse"

// cleanupStack releases what run acquired when startup fails before the
// server takes ownership.
type cleanupStack []func(context.Context) error

func (c *cleanupStack) push(fn func(context.Context) error) {
	*c = append(*c, fn)
}

// unwind runs every cleanup in reverse order, logging failures.
func (c cleanupStack) unwind(ctx context.Context, lg *logger.Logger) {
	for i := len(c) - 1; i >= 0; i-- {
		if err := c[i](ctx); err != nil {
			lg.Warn("cleanup after failed start: %v", err)
		}
	}
}

func main() {
	cfg, err := ParseConfig(flag.NewFlagSet("buddyverse", flag.ExitOnError), os.Args[1:])
	if err != nil {
		log.Fatalf("parse config: %v", err)
	}
	if err := run(context.Background(), cfg); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg Config) (err error) {
	lg := logger.NewStd()

	var cleanups cleanupStack
	defer func() {
		if err != nil {
			cleanups.unwind(context.Background(), lg)
		}
	}()

	shutdownTracing, err := otel.Setup(ctx, otel.Options{
		ServiceName: serviceName,
		Endpoint:    cfg.OTELEndpoint,
		Enabled:     cfg.OTELEnabled,
		SampleRatio: cfg.OTELSampleRatio,
	})
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	cleanups.push(shutdownTracing)

	st, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	cleanups.push(func(context.Context) error { return st.close() })

	catalog, err := staticcatalog.Load(cfg.AdventuresFile)
	if err != nil {
		return fmt.Errorf("load adventures: %w", err)
	}
	kpiRecorder := metricsinmem.NewRecorder()

	svc, err := companion.New(ctx, companion.Options{
		Gateway:     snapshot.Gateway{Store: st.snapshots, Logger: lg},
		Events:      st.events,
		Catalog:     catalog,
		Metrics:     kpiRecorder,
		Logger:      lg,
		DefaultName: cfg.DefaultName,
		Now:         time.Now,
	})
	if err != nil {
		return fmt.Errorf("start companion: %w", err)
	}

	sched := scheduler.New(svc, scheduler.Options{
		Notifier: lognotify.Notifier{Logger: lg},
		Logger:   lg,
		Interval: cfg.DecayInterval,
		Now:      time.Now,
		Location: time.Local,
	})

	h := httpadapter.Handler{
		Companion:    svc,
		StatusUC:     status.UseCase{State: svc, Now: svc.Now},
		HistoryUC:    history.UseCase{Events: st.events},
		AdventuresUC: adventures.UseCase{Catalog: catalog, Buddy: svc},
		KPI:          kpiRecorder,
		CORSOrigin:   cfg.CORSOrigin,
	}

	s := server.Default(server.WithHostPorts(cfg.HTTPAddr))
	h.RegisterRoutes(s)
	s.OnShutdown = append(s.OnShutdown, func(ctx context.Context) {
		sched.Stop()
		if err := st.close(); err != nil {
			lg.Warn("close storage: %v", err)
		}
		if err := shutdownTracing(ctx); err != nil {
			lg.Warn("shutdown tracing: %v", err)
		}
	})

	go sched.Start(ctx)
	lg.Info("buddyverse listening on %s (storage=%s, decay every %s)", cfg.HTTPAddr, cfg.Storage, cfg.DecayInterval)
	s.Spin()
	return nil
}
