package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/getsentry/sentry-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/trace"

	"ctstream.dev"
	"ctstream.dev/archive"
)

func main() {
	logURL := flag.String("url", "", "Base URL of the CT log, e.g. https://ct.example.com/")
	workers := flag.Int("workers", 0, "Number of batches to fetch concurrently (0 = runtime.NumCPU()).")
	batch := flag.Int("batch", 0, "Entries requested per get-entries call (0 = library default).")
	index := flag.Int64("index", -1, "Tree index to start streaming from (-1 = tail, start at the current tree size).")
	timeout := flag.Duration("timeout", 0, "Base retry/poll interval (0 = library default).")
	otlpEndpoint := flag.String("otlp-endpoint", "", "OTLP/gRPC endpoint for trace export. Empty disables tracing.")
	sentryDSN := flag.String("sentry-dsn", "", "Sentry DSN for error reporting. Empty disables Sentry.")
	archiveBucket := flag.String("archive-bucket", "", "S3 bucket to archive every leaf and chain certificate into. Empty disables archiving.")
	archiveRegion := flag.String("archive-region", "us-east-1", "Region of -archive-bucket.")
	flag.Parse()

	if *logURL == "" {
		fmt.Println("Error: -url flag must be set")
		flag.Usage()
		os.Exit(1)
	}

	if *sentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: *sentryDSN}); err != nil {
			log.Fatalf("failed to initialize sentry: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	if *otlpEndpoint != "" {
		shutdownOtel := configureOtel(*otlpEndpoint)
		defer shutdownOtel()
	}

	cfg := ctstream.NewStreamConfig(*logURL)
	if *workers > 0 {
		cfg = cfg.WithWorkers(*workers)
	}
	if *batch > 0 {
		cfg = cfg.WithBatch(*batch)
	}
	if *timeout > 0 {
		cfg = cfg.WithTimeout(*timeout)
	}
	if *index >= 0 {
		cfg = cfg.WithIndex(uint64(*index))
	}

	handler := printEntry

	if *archiveBucket != "" {
		awsCfg, err := config.LoadDefaultConfig(context.Background(), config.WithRegion(*archiveRegion))
		if err != nil {
			log.Fatalf("failed to load AWS config: %v", err)
		}
		sink := archive.NewSink(awsCfg, *archiveBucket)
		handler = sink.Handler(handler)
	}

	if err := ctstream.StreamBlocking(cfg, handler); err != nil {
		if *sentryDSN != "" {
			sentry.CaptureException(err)
			sentry.Flush(2 * time.Second)
		}
		log.Fatalf("stream ended: %v", err)
	}
}

func printEntry(entry ctstream.Entry) bool {
	fmt.Println(strconv.FormatUint(entry.Index, 10) + " " + entry.Certificate.SubjectCommonName)
	return true
}

func configureOtel(endpoint string) func() {
	ctx := context.Background()

	client := otlptracegrpc.NewClient(otlptracegrpc.WithEndpoint(endpoint))
	exp, err := otlptrace.New(ctx, client)
	if err != nil {
		log.Fatalf("failed to initialize exporter: %v", err)
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exp),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	)

	return func() {
		_ = exp.Shutdown(ctx)
		_ = tp.Shutdown(ctx)
	}
}
