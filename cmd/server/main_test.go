package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"buddyverse/internal/platform/logger"

	globalotel "go.opentelemetry.io/otel"
)

func TestCleanupStack_UnwindsInReverseAndContinues(t *testing.T) {
	var order []string
	var c cleanupStack
	c.push(func(context.Context) error { order = append(order, "tracing"); return nil })
	c.push(func(context.Context) error { order = append(order, "storage"); return errors.New("already closed") })
	c.push(func(context.Context) error { order = append(order, "catalog"); return nil })

	var out bytes.Buffer
	c.unwind(context.Background(), logger.New(&out, &out))

	if want := []string{"catalog", "storage", "tracing"}; !reflect.DeepEqual(order, want) {
		t.Fatalf("order mismatch: got=%v want=%v", order, want)
	}
	if !strings.Contains(out.String(), "already closed") {
		t.Fatalf("expected failed cleanup logged, got %q", out.String())
	}
}

func TestRun_FailedStartShutsDownTracing(t *testing.T) {
	before := globalotel.GetTracerProvider()
	t.Cleanup(func() { globalotel.SetTracerProvider(before) })

	cfg := Config{
		Storage:         StorageSQLite,
		DBPath:          filepath.Join(t.TempDir(), "buddy.db"),
		DecayInterval:   time.Minute,
		DefaultName:     "Mochi",
		AdventuresFile:  filepath.Join(t.TempDir(), "missing.json"),
		OTELEnabled:     true,
		OTELEndpoint:    "http://192.0.2.1:4318",
		OTELSampleRatio: 1,
	}
	err := run(context.Background(), cfg)
	if err == nil || !strings.Contains(err.Error(), "load adventures") {
		t.Fatalf("expected load adventures error, got %v", err)
	}

	// A shut down SDK provider only hands out non-recording tracers.
	_, span := globalotel.Tracer("buddyverse-test").Start(context.Background(), "after-failed-start")
	defer span.End()
	if got := span.IsRecording(); got {
		t.Fatalf("recording mismatch: got=%v want=%v", got, false)
	}
}
