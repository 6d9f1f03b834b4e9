package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ashitosh07/lambda/cmd/republisher/internal/handle"
	"github.com/ashitosh07/lambda/internal/cfg"
	"github.com/ashitosh07/lambda/internal/logging"
	"github.com/ashitosh07/lambda/internal/republish"
	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	conf, err := cfg.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, conf.AppConfig.LogLevel)
	slog.SetDefault(logger)

	awsCfg, err := conf.AWSConfig.LoadAWS(context.Background())
	if err != nil {
		logger.Error("failed to load AWS config", "error", err)
		os.Exit(1)
	}

	republisher := republish.NewRepublisher(awsCfg, conf.StreamConfig.Name, conf.StreamConfig.PartitionKey, conf.AWSConfig.Endpoint, logger)

	logger.Info("republisher ready", "stream", conf.StreamConfig.Name)
	lambda.Start(handle.Payload(republisher, logger))
}
