package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ashitosh07/lambda/cmd/consumer/internal/handle"
	"github.com/ashitosh07/lambda/internal/cfg"
	"github.com/ashitosh07/lambda/internal/logging"
	"github.com/ashitosh07/lambda/internal/mapper"
	"github.com/ashitosh07/lambda/internal/metric"
	"github.com/ashitosh07/lambda/internal/pipeline"
	"github.com/ashitosh07/lambda/internal/store"
	"github.com/ashitosh07/lambda/internal/upstream"
	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	conf, err := cfg.Load()
	if err != nil {
		fatal("failed to load config", err)
	}

	logger := logging.New(os.Stdout, conf.AppConfig.LogLevel)
	slog.SetDefault(logger)

	family, err := mapper.ParseFamily(conf.AppConfig.EntityFamily)
	if err != nil {
		fatal("invalid entity family", err)
	}
	familyMapper, err := mapper.For(family)
	if err != nil {
		fatal("failed to build mapper", err)
	}

	awsCfg, err := conf.AWSConfig.LoadAWS(context.Background())
	if err != nil {
		fatal("failed to load AWS config", err)
	}

	auditStore, err := store.New(conf, awsCfg)
	if err != nil {
		fatal("failed to create audit store", err)
	}

	observer, err := metric.NewObserver(family)
	if err != nil {
		fatal("failed to register metrics", err)
	}

	p, err := pipeline.New(pipeline.Options{
		Family:          family,
		Mapper:          familyMapper,
		Store:           auditStore,
		Publisher:       upstream.NewClient(conf.UpstreamConfig),
		CreateEndpoint:  conf.UpstreamConfig.PostEndpoint,
		ReplaceEndpoint: conf.UpstreamConfig.PutEndpoint,
		Observer:        observer,
		Logger:          logger,
	})
	if err != nil {
		fatal("failed to build pipeline", err)
	}

	var flusher handle.MetricsFlusher
	if conf.MetricsConfig.PushgatewayURL != "" {
		flusher = metric.NewPusher(conf.MetricsConfig.PushgatewayURL, conf.MetricsConfig.Job, observer.Registry())
	}

	logger.Info("consumer ready",
		"family", string(family),
		"audit_backend", conf.AuditConfig.Backend,
		"retry_enabled", conf.UpstreamConfig.RetryEnabled,
	)
	lambda.Start(handle.Kinesis(p, flusher, logger))
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
