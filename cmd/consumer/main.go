package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ramadhanif/bakery-inventory/cmd/config"
	"github.com/ramadhanif/bakery-inventory/thirdparty/rabbitmq"
	"github.com/ramadhanif/bakery-inventory/utils/logger"
	"go.uber.org/zap"
)

// Stock-alert worker. Drains the alert queue and forwards each alert to the
// API's internal notify endpoint.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting stock-alert consumer", zap.String("env", cfg.Environment))

	consumer, err := rabbitmq.NewConsumer(
		cfg.RabbitMQ.Host,
		cfg.RabbitMQ.Port,
		cfg.RabbitMQ.User,
		cfg.RabbitMQ.Password,
		cfg.Internal.APIURL,
		cfg.Internal.APIKey,
	)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer func() {
		_ = consumer.Close()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := consumer.Start(ctx); err != nil && err != context.Canceled {
		logger.Fatal("consumer stopped", zap.Error(err))
	}
	logger.Info("consumer shut down")
}
